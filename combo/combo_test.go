package combo

import (
	"testing"

	"github.com/jsphweid/steelchords/copedent"
	"github.com/stretchr/testify/assert"
)

func keys(combos []copedent.Combination) []string {
	var res []string
	for _, c := range combos {
		res = append(res, c.Key())
	}
	return res
}

func TestPedalCombos(t *testing.T) {
	got := keys(PedalCombos(copedent.Default()))
	assert.Equal(t, []string{
		"A", "B", "C", "D", "E", "F", "G",
		"A,B", "B,C", "C,D", "D,E", "E,F", "F,G",
	}, got)
}

func TestLeverCombos(t *testing.T) {
	got := keys(LeverCombos(copedent.Default()))
	assert.Equal(t, []string{
		"LKL", "LKR", "RKL", "LKL,RKL", "LKR,RKL", "RKR", "LKL,RKR", "LKR,RKR",
		"V", "LKL,V", "LKR,V", "RKL,V", "LKL,RKL,V", "LKR,RKL,V", "RKR,V", "LKL,RKR,V", "LKR,RKR,V",
	}, got)
}

func TestLeverCombosNeverShareAKnee(t *testing.T) {
	c := copedent.Default()
	for _, combo := range LeverCombos(c) {
		knees := map[string]int{}
		for _, name := range combo {
			if k := c.Controls[name].Knee; k != "" {
				knees[k]++
			}
		}
		for knee, n := range knees {
			assert.Equal(t, 1, n, "knee %s in %v", knee, combo)
		}
	}
}

func TestGenerate(t *testing.T) {
	all := Generate(copedent.Default())

	assert := assert.New(t)
	assert.Len(all, 1+13+17+13*17)
	assert.Empty(all[0])
	assert.Equal("A", all[1].Key())

	seen := map[string]bool{}
	for _, combo := range all {
		assert.False(seen[combo.Key()], "duplicate %v", combo)
		seen[combo.Key()] = true
		assert.IsIncreasing(([]string)(combo), "%v not sorted", combo)
	}
	assert.True(seen["A,B,LKR,RKR,V"])
	assert.False(seen["A,C"])
	assert.False(seen["LKL,LKR"])
}

func TestGenerateUsesExplicitPedalOrder(t *testing.T) {
	d := copedent.Default()
	var controls []copedent.Control
	for _, ctl := range d.Controls {
		controls = append(controls, ctl)
	}
	c, err := copedent.New("reordered", d.Tuning, controls,
		[]string{"A", "C", "B", "D", "E", "F", "G"}, d.Overrides)
	assert.NoError(t, err)

	got := keys(PedalCombos(c))
	assert.Contains(t, got, "A,C")
	assert.Contains(t, got, "B,C")
	assert.Contains(t, got, "B,D")
	assert.NotContains(t, got, "A,B")
}
