package copedent

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/steelchords/constants"
	"github.com/jsphweid/steelchords/note"
)

var ErrInconsistentConfig = errors.New("inconsistent copedent")

type StringID int

type Kind string

const (
	Pedal Kind = "pedal"
	Lever Kind = "lever"
)

type Tuning = map[StringID]note.Pitch

type Change struct {
	String StringID `json:"string"`
	Delta  int      `json:"delta"`
}

// Control is a pedal or knee lever. Levers sharing a Knee cannot be engaged
// together; a lever with no Knee combines with anything.
type Control struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Knee        string   `json:"knee,omitempty"`
	Description string   `json:"description,omitempty"`
	Changes     []Change `json:"changes"`
}

func (c Control) DeltaFor(s StringID) int {
	var total int
	for _, ch := range c.Changes {
		if ch.String == s {
			total += ch.Delta
		}
	}
	return total
}

// Override replaces the summed deltas on one string when Controls are exactly
// the engaged controls that bear on that string.
type Override struct {
	String   StringID `json:"string"`
	Controls []string `json:"controls"`
	Result   int      `json:"result"`
	Note     string   `json:"note,omitempty"`
}

// Combination is a set of control names, kept sorted.
type Combination []string

func NewCombination(names ...string) Combination {
	c := make(Combination, len(names))
	copy(c, names)
	sort.Strings(c)
	return c
}

func (c Combination) Key() string {
	return strings.Join(c, ",")
}

func (c Combination) Contains(name string) bool {
	for _, n := range c {
		if n == name {
			return true
		}
	}
	return false
}

func (c Combination) String() string {
	if len(c) == 0 {
		return "Open"
	}
	return strings.Join(c, " + ")
}

type overrideKey struct {
	str   StringID
	combo string
}

// Copedent describes one instrument setup. Build it with Default, Load or New;
// it is read-only afterwards.
type Copedent struct {
	Name       string
	Tuning     Tuning
	Controls   map[string]Control
	PedalOrder []string
	Overrides  []Override

	overrides map[overrideKey]Override
	// controls that move a string or appear in one of its overrides
	relevant map[StringID]map[string]bool
}

// New validates the pieces and indexes the overrides.
func New(name string, tuning Tuning, controls []Control, pedalOrder []string, overrides []Override) (*Copedent, error) {
	c := &Copedent{
		Name:       name,
		Tuning:     tuning,
		Controls:   make(map[string]Control, len(controls)),
		PedalOrder: pedalOrder,
		Overrides:  overrides,
	}
	for _, ctl := range controls {
		if _, dup := c.Controls[ctl.Name]; dup {
			return nil, fmt.Errorf("%w: control %q defined twice", ErrInconsistentConfig, ctl.Name)
		}
		c.Controls[ctl.Name] = ctl
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.overrides = make(map[overrideKey]Override, len(overrides))
	c.relevant = make(map[StringID]map[string]bool, len(tuning))
	mark := func(s StringID, name string) {
		if c.relevant[s] == nil {
			c.relevant[s] = make(map[string]bool)
		}
		c.relevant[s][name] = true
	}
	for _, o := range overrides {
		c.overrides[overrideKey{o.String, NewCombination(o.Controls...).Key()}] = o
		for _, name := range o.Controls {
			mark(o.String, name)
		}
	}
	for name, ctl := range c.Controls {
		for _, ch := range ctl.Changes {
			if ch.Delta != 0 {
				mark(ch.String, name)
			}
		}
	}
	return c, nil
}

func validString(s StringID) bool {
	return s >= 1 && s <= constants.NumStrings
}

func (c *Copedent) Validate() error {
	if len(c.Tuning) != constants.NumStrings {
		return fmt.Errorf("%w: tuning has %d strings, want %d", ErrInconsistentConfig, len(c.Tuning), constants.NumStrings)
	}
	for s := range c.Tuning {
		if !validString(s) {
			return fmt.Errorf("%w: tuning references string %d", ErrInconsistentConfig, s)
		}
	}

	for name, ctl := range c.Controls {
		if name == "" {
			return fmt.Errorf("%w: control with empty name", ErrInconsistentConfig)
		}
		if ctl.Kind != Pedal && ctl.Kind != Lever {
			return fmt.Errorf("%w: control %q has kind %q", ErrInconsistentConfig, name, ctl.Kind)
		}
		for _, ch := range ctl.Changes {
			if !validString(ch.String) {
				return fmt.Errorf("%w: control %q changes string %d", ErrInconsistentConfig, name, ch.String)
			}
		}
	}

	seen := make(map[string]bool, len(c.PedalOrder))
	for _, name := range c.PedalOrder {
		ctl, ok := c.Controls[name]
		if !ok || ctl.Kind != Pedal {
			return fmt.Errorf("%w: pedal order lists %q which is not a pedal", ErrInconsistentConfig, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: pedal order lists %q twice", ErrInconsistentConfig, name)
		}
		seen[name] = true
	}
	for name, ctl := range c.Controls {
		if ctl.Kind == Pedal && !seen[name] {
			return fmt.Errorf("%w: pedal %q missing from pedal order", ErrInconsistentConfig, name)
		}
	}

	keys := make(map[overrideKey]bool, len(c.Overrides))
	for _, o := range c.Overrides {
		if !validString(o.String) {
			return fmt.Errorf("%w: override references string %d", ErrInconsistentConfig, o.String)
		}
		if len(o.Controls) == 0 {
			return fmt.Errorf("%w: override on string %d has no controls", ErrInconsistentConfig, o.String)
		}
		for _, name := range o.Controls {
			if _, ok := c.Controls[name]; !ok {
				return fmt.Errorf("%w: override on string %d references unknown control %q", ErrInconsistentConfig, o.String, name)
			}
		}
		k := overrideKey{o.String, NewCombination(o.Controls...).Key()}
		if keys[k] {
			return fmt.Errorf("%w: duplicate override for string %d and %v", ErrInconsistentConfig, o.String, o.Controls)
		}
		keys[k] = true
	}
	return nil
}

// Pedals returns pedal names in physical order.
func (c *Copedent) Pedals() []string {
	return c.PedalOrder
}

// Levers returns the levers sorted by name.
func (c *Copedent) Levers() []Control {
	var res []Control
	for _, ctl := range c.Controls {
		if ctl.Kind == Lever {
			res = append(res, ctl)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// StringIDs returns 1..12.
func StringIDs() []StringID {
	ids := make([]StringID, constants.NumStrings)
	for i := range ids {
		ids[i] = StringID(i + 1)
	}
	return ids
}
