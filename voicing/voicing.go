package voicing

import (
	"github.com/jsphweid/steelchords/chord"
	"github.com/jsphweid/steelchords/combo"
	"github.com/jsphweid/steelchords/constants"
	"github.com/jsphweid/steelchords/copedent"
	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/note"
	"github.com/jsphweid/steelchords/util"
)

// position is a combination with its open-string pitches already worked out,
// so the fret loop only has to slide the bar.
type position struct {
	combo   copedent.Combination
	strings map[copedent.StringID]copedent.StringPitch
}

// Engine searches one copedent for chord voicings. It holds no mutable state
// and can be shared between goroutines.
type Engine struct {
	copedent   *copedent.Copedent
	templates  *chord.Table
	positions  []position
	minDegrees int
}

type Option func(*Engine)

// WithMinDegrees sets how many distinct chord tones a non-triad voicing needs.
// Values below 2 are raised to 2.
func WithMinDegrees(n int) Option {
	return func(e *Engine) {
		e.minDegrees = n
	}
}

func New(c *copedent.Copedent, templates *chord.Table, opts ...Option) *Engine {
	e := &Engine{
		copedent:   c,
		templates:  templates,
		minDegrees: constants.DefaultMinDegrees,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.minDegrees = util.Max([]int{e.minDegrees, constants.DefaultMinDegrees})

	for _, combination := range combo.Generate(c) {
		e.positions = append(e.positions, position{
			combo:   combination,
			strings: c.Apply(combination),
		})
	}
	return e
}

func (e *Engine) Copedent() *copedent.Copedent { return e.copedent }

func (e *Engine) Templates() *chord.Table { return e.templates }

func (e *Engine) Combinations() []copedent.Combination {
	res := make([]copedent.Combination, len(e.positions))
	for i, p := range e.positions {
		res[i] = p.combo
	}
	return res
}

// Template looks up a chord type, returning chord.ErrUnknownChordType if absent.
func (e *Engine) Template(chordType string) (chord.Template, error) {
	return e.templates.Lookup(chordType)
}

func (e *Engine) requiredDegrees(tmpl chord.Template) int {
	if tmpl.Triad {
		return len(tmpl.Degrees)
	}
	return e.minDegrees
}

// FindVoicings returns the fullest distinct voicings of root + chordType at
// every fret from 0 to maxFret, ordered by fret. An unknown chord type yields no
// voicings and no error; an invalid root is note.ErrInvalidNoteName.
func (e *Engine) FindVoicings(root, chordType string, maxFret int) ([]model.Voicing, error) {
	rootClass, err := note.NameToClass(root)
	if err != nil {
		return nil, err
	}
	tmpl, err := e.templates.Lookup(chordType)
	if err != nil {
		return []model.Voicing{}, nil
	}

	targets := tmpl.Targets(rootClass)
	required := e.requiredDegrees(tmpl)

	res := []model.Voicing{}
	for fret := 0; fret <= maxFret; fret++ {
		res = append(res, e.atFret(fret, targets, required)...)
	}
	return res, nil
}

func (e *Engine) atFret(fret int, targets map[int]int, required int) []model.Voicing {
	var candidates []model.Voicing
	maxPlayed := 0
	for _, pos := range e.positions {
		v, ok := e.match(pos, fret, targets, required)
		if !ok {
			continue
		}
		if v.PlayedStrings > maxPlayed {
			maxPlayed = v.PlayedStrings
		}
		candidates = append(candidates, v)
	}

	var kept []model.Voicing
	for _, v := range candidates {
		if v.PlayedStrings != maxPlayed {
			continue
		}
		if containsSound(kept, v) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

func containsSound(vs []model.Voicing, v model.Voicing) bool {
	for _, other := range vs {
		if other.SameSound(v) {
			return true
		}
	}
	return false
}

func (e *Engine) match(pos position, fret int, targets map[int]int, required int) (model.Voicing, bool) {
	sounding := make(map[copedent.StringID]model.SoundingNote)
	found := make(map[int]bool)
	for s, sp := range pos.strings {
		p := copedent.PitchAtFret(sp.Pitch, fret)
		degree, ok := targets[p.Class]
		if !ok {
			continue
		}
		sounding[s] = model.SoundingNote{Pitch: p, Degree: degree}
		found[degree] = true
	}

	// a triad's required count equals its degree count, so this also makes
	// every triad voicing complete
	if len(found) < required {
		return model.Voicing{}, false
	}

	strings := make(map[copedent.StringID]note.Pitch, len(pos.strings))
	changedBy := make(map[copedent.StringID][]string)
	for s, sp := range pos.strings {
		strings[s] = copedent.PitchAtFret(sp.Pitch, fret)
		if len(sp.ChangedBy) > 0 {
			changedBy[s] = sp.ChangedBy
		}
	}

	return model.Voicing{
		Fret:          fret,
		Combination:   pos.combo,
		Sounding:      sounding,
		Strings:       strings,
		ChangedBy:     changedBy,
		PlayedStrings: len(sounding),
		UniqueDegrees: len(found),
	}, true
}
