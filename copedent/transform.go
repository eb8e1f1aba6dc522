package copedent

import "github.com/jsphweid/steelchords/note"

// StringPitch is a string's open pitch after the engaged controls, and which of
// them moved it.
type StringPitch struct {
	Pitch     note.Pitch
	ChangedBy []string
}

// Override returns the rule for string s under combo, if any. Controls that
// neither move s nor take part in one of its overrides are ignored, so V does
// not cancel the C + LKL rule on string 4.
func (c *Copedent) Override(s StringID, combo Combination) (Override, bool) {
	var engaged Combination
	for _, name := range combo {
		if c.relevant[s][name] {
			engaged = append(engaged, name)
		}
	}
	if len(engaged) == 0 {
		return Override{}, false
	}
	o, ok := c.overrides[overrideKey{s, NewCombination(engaged...).Key()}]
	return o, ok
}

// Apply computes every string's pitch with combo engaged. An override matching
// the engaged controls that bear on a string replaces its summed deltas.
func (c *Copedent) Apply(combo Combination) map[StringID]StringPitch {
	res := make(map[StringID]StringPitch, len(c.Tuning))
	for s, open := range c.Tuning {
		if o, ok := c.Override(s, combo); ok {
			res[s] = StringPitch{
				Pitch:     note.PitchAt(open, o.Result),
				ChangedBy: NewCombination(o.Controls...),
			}
			continue
		}

		var delta int
		var changedBy []string
		for _, name := range combo {
			d := c.Controls[name].DeltaFor(s)
			if d != 0 {
				delta += d
				changedBy = append(changedBy, name)
			}
		}
		res[s] = StringPitch{Pitch: note.PitchAt(open, delta), ChangedBy: changedBy}
	}
	return res
}

func PitchAtFret(p note.Pitch, fret int) note.Pitch {
	return note.PitchAt(p, fret)
}
