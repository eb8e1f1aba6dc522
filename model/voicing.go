package model

import (
	"github.com/jsphweid/steelchords/copedent"
	"github.com/jsphweid/steelchords/note"
)

// SoundingNote is a string that lands on a chord tone.
type SoundingNote struct {
	Pitch  note.Pitch `json:"pitch"`
	Degree int        `json:"degree"`
}

// Voicing is one playable way to sound a chord: bar at Fret with Combination
// engaged. Treat it as read-only.
type Voicing struct {
	Fret        int                                `json:"fret"`
	Combination copedent.Combination               `json:"combination"`
	Sounding    map[copedent.StringID]SoundingNote `json:"sounding"`
	Strings     map[copedent.StringID]note.Pitch   `json:"strings"`
	ChangedBy   map[copedent.StringID][]string     `json:"changedBy,omitempty"`

	PlayedStrings int `json:"playedStrings"`
	UniqueDegrees int `json:"uniqueDegrees"`
}

// SameSound reports whether both voicings put the same pitch on every string.
func (v Voicing) SameSound(other Voicing) bool {
	if len(v.Sounding) != len(other.Sounding) {
		return false
	}
	for s, n := range v.Sounding {
		o, ok := other.Sounding[s]
		if !ok || o.Pitch != n.Pitch {
			return false
		}
	}
	return true
}

// Selection ties a voicing to the chord it was searched for, for exporters.
type Selection struct {
	Voicing   Voicing `json:"voicing"`
	Root      string  `json:"root"`
	ChordType string  `json:"chordType"`
}
