package combo

import (
	"github.com/jsphweid/steelchords/copedent"
)

// PedalCombos returns every single pedal followed by every pair of pedals that
// sit next to each other, in the copedent's pedal order.
func PedalCombos(c *copedent.Copedent) []copedent.Combination {
	order := c.Pedals()
	var res []copedent.Combination
	for _, p := range order {
		res = append(res, copedent.NewCombination(p))
	}
	for i := 0; i < len(order)-1; i++ {
		res = append(res, copedent.NewCombination(order[i], order[i+1]))
	}
	return res
}

func distinctKnees(levers []copedent.Control) bool {
	knees := make(map[string]bool, len(levers))
	for _, l := range levers {
		if knees[l.Knee] {
			return false
		}
		knees[l.Knee] = true
	}
	return true
}

func subsets(levers []copedent.Control) [][]copedent.Control {
	var res [][]copedent.Control
	n := len(levers)
	for mask := 0; mask < 1<<n; mask++ {
		var set []copedent.Control
		for j := 0; j < n; j++ {
			if mask&(1<<j) != 0 {
				set = append(set, levers[j])
			}
		}
		res = append(res, set)
	}
	return res
}

// LeverCombos returns every non-empty set of levers that can be pushed at once:
// at most one lever per knee, plus any of the free levers.
func LeverCombos(c *copedent.Copedent) []copedent.Combination {
	var kneed, free []copedent.Control
	for _, l := range c.Levers() {
		if l.Knee == "" {
			free = append(free, l)
		} else {
			kneed = append(kneed, l)
		}
	}

	var valid [][]copedent.Control
	for _, set := range subsets(kneed) {
		if distinctKnees(set) {
			valid = append(valid, set)
		}
	}

	var res []copedent.Combination
	for _, extra := range subsets(free) {
		for _, set := range valid {
			if len(set)+len(extra) == 0 {
				continue
			}
			var names []string
			for _, l := range set {
				names = append(names, l.Name)
			}
			for _, l := range extra {
				names = append(names, l.Name)
			}
			res = append(res, copedent.NewCombination(names...))
		}
	}
	return res
}

// Generate returns every mechanically valid combination, starting with the open
// (empty) combination, then pedals, levers, and pedals crossed with levers.
func Generate(c *copedent.Copedent) []copedent.Combination {
	pedals := PedalCombos(c)
	levers := LeverCombos(c)

	all := []copedent.Combination{{}}
	all = append(all, pedals...)
	all = append(all, levers...)
	for _, p := range pedals {
		for _, l := range levers {
			names := append(append([]string(nil), p...), l...)
			all = append(all, copedent.NewCombination(names...))
		}
	}

	seen := make(map[string]bool, len(all))
	res := make([]copedent.Combination, 0, len(all))
	for _, combo := range all {
		key := combo.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, combo)
	}
	return res
}
