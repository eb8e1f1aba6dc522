package chord

import (
	"errors"
	"fmt"
)

var ErrUnknownChordType = errors.New("unknown chord type")

// Template lists a chord type's degrees as semitone offsets from the root.
// Every degree of a triad has to sound; other chords only need a minimum count.
type Template struct {
	Name    string `json:"name"`
	Degrees []int  `json:"degrees"`
	Triad   bool   `json:"triad"`
}

// Table keeps templates in display order.
type Table struct {
	templates []Template
	byName    map[string]int
}

func NewTable(templates []Template) (*Table, error) {
	t := &Table{byName: make(map[string]int, len(templates))}
	for _, tmpl := range templates {
		if _, dup := t.byName[tmpl.Name]; dup {
			return nil, fmt.Errorf("chord type %q defined twice", tmpl.Name)
		}
		if len(tmpl.Degrees) == 0 {
			return nil, fmt.Errorf("chord type %q has no degrees", tmpl.Name)
		}
		seen := map[int]bool{}
		for _, d := range tmpl.Degrees {
			if d < 0 || d > 11 || seen[d] {
				return nil, fmt.Errorf("chord type %q has bad degree %d", tmpl.Name, d)
			}
			seen[d] = true
		}
		t.byName[tmpl.Name] = len(t.templates)
		t.templates = append(t.templates, tmpl)
	}
	return t, nil
}

func (t *Table) Lookup(name string) (Template, error) {
	i, ok := t.byName[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownChordType, name)
	}
	return t.templates[i], nil
}

func (t *Table) Names() []string {
	res := make([]string, len(t.templates))
	for i, tmpl := range t.templates {
		res[i] = tmpl.Name
	}
	return res
}

func (t *Table) All() []Template {
	return append([]Template(nil), t.templates...)
}

var defaultTemplates = []Template{
	{Name: "Major Triad", Degrees: []int{0, 4, 7}, Triad: true},
	{Name: "Minor Triad", Degrees: []int{0, 3, 7}, Triad: true},
	{Name: "Diminished Triad", Degrees: []int{0, 3, 6}, Triad: true},
	{Name: "Augmented Triad", Degrees: []int{0, 4, 8}, Triad: true},
	{Name: "sus2 Triad", Degrees: []int{0, 2, 7}, Triad: true},
	{Name: "sus4 Triad", Degrees: []int{0, 5, 7}, Triad: true},
	{Name: "Lydian Triad no 5th", Degrees: []int{0, 4, 6}, Triad: true},
	{Name: "Lydian Triad no 3rd", Degrees: []int{0, 6, 7}, Triad: true},

	{Name: "Major 6th", Degrees: []int{0, 4, 7, 9}},
	{Name: "Minor 6th", Degrees: []int{0, 3, 7, 9}},
	{Name: "Dominant 7th", Degrees: []int{0, 4, 7, 10}},
	{Name: "Major 7th", Degrees: []int{0, 4, 7, 11}},
	{Name: "Minor 7th", Degrees: []int{0, 3, 7, 10}},
	{Name: "Minor Major 7th", Degrees: []int{0, 3, 7, 11}},
	{Name: "Half-Diminished 7th", Degrees: []int{0, 3, 6, 10}},
	{Name: "Diminished 7th", Degrees: []int{0, 3, 6, 9}},
	{Name: "Augmented 7th", Degrees: []int{0, 4, 8, 10}},
	{Name: "7sus4", Degrees: []int{0, 5, 7, 10}},
	{Name: "add9", Degrees: []int{0, 2, 4, 7}},
	{Name: "Dominant 9th", Degrees: []int{0, 2, 4, 7, 10}},
	{Name: "Major 9th", Degrees: []int{0, 2, 4, 7, 11}},
	{Name: "Minor 9th", Degrees: []int{0, 2, 3, 7, 10}},
	{Name: "6/9", Degrees: []int{0, 2, 4, 7, 9}},
	{Name: "Dominant 13th", Degrees: []int{0, 4, 7, 9, 10}},
}

func Default() *Table {
	t, err := NewTable(defaultTemplates)
	if err != nil {
		panic("default chord table: " + err.Error())
	}
	return t
}

// Targets maps each chord tone's semitone class to its degree.
func (tmpl Template) Targets(rootClass int) map[int]int {
	res := make(map[int]int, len(tmpl.Degrees))
	for _, d := range tmpl.Degrees {
		res[(rootClass+d)%12] = d
	}
	return res
}
