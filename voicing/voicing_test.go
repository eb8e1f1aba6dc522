package voicing

import (
	"sync"
	"testing"

	"github.com/jsphweid/steelchords/chord"
	"github.com/jsphweid/steelchords/combo"
	"github.com/jsphweid/steelchords/copedent"
	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEngine() *Engine {
	return New(copedent.Default(), chord.Default())
}

// Strings 1-3 spell C major, string 4 is A#2 until P or Q raise it to C3.
func toyCopedent(t *testing.T) *copedent.Copedent {
	tuning := copedent.Tuning{
		1: note.MustParsePitch("G4"),
		2: note.MustParsePitch("E4"),
		3: note.MustParsePitch("C4"),
	}
	for s := copedent.StringID(4); s <= 12; s++ {
		tuning[s] = note.MustParsePitch("A#2")
	}
	controls := []copedent.Control{
		{Name: "P", Kind: copedent.Pedal, Changes: []copedent.Change{{String: 4, Delta: 2}}},
		{Name: "Q", Kind: copedent.Pedal, Changes: []copedent.Change{{String: 4, Delta: 2}}},
		{Name: "L", Kind: copedent.Lever, Knee: "L", Changes: []copedent.Change{{String: 1, Delta: -3}}},
	}
	c, err := copedent.New("toy", tuning, controls, []string{"P", "Q"}, nil)
	require.NoError(t, err)
	return c
}

func TestToyKeepsFullestFirstSeen(t *testing.T) {
	e := New(toyCopedent(t), chord.Default())
	res, err := e.FindVoicings("C", "Major Triad", 0)
	require.NoError(t, err)

	require.Len(t, res, 1)
	v := res[0]
	assert := assert.New(t)
	assert.Equal(0, v.Fret)
	assert.Equal(copedent.Combination{"P"}, v.Combination)
	assert.Equal(4, v.PlayedStrings)
	assert.Equal(3, v.UniqueDegrees)
	assert.Equal(model.SoundingNote{Pitch: note.MustParsePitch("C3"), Degree: 0}, v.Sounding[4])
	assert.Equal(model.SoundingNote{Pitch: note.MustParsePitch("G4"), Degree: 7}, v.Sounding[1])
	assert.Equal([]string{"P"}, v.ChangedBy[4])
	assert.Len(v.Strings, 12)
	assert.Equal(note.MustParsePitch("A#2"), v.Strings[5])
}

func TestOpenEMajorAtFretZero(t *testing.T) {
	res, err := defaultEngine().FindVoicings("E", "Major Triad", 0)
	require.NoError(t, err)

	require.Len(t, res, 1)
	assert.Empty(t, res[0].Combination)
	assert.Equal(t, 9, res[0].PlayedStrings)
	for _, s := range []copedent.StringID{1, 2, 7} {
		assert.NotContains(t, res[0].Sounding, s)
	}
}

func TestCMajorOpenAtEighthFret(t *testing.T) {
	res, err := defaultEngine().FindVoicings("C", "Major Triad", 12)
	require.NoError(t, err)

	var atFret8 []model.Voicing
	for _, v := range res {
		if v.Fret == 0 {
			// no C or G on the open strings
			assert.NotEmpty(t, v.Combination)
		}
		if v.Fret == 8 {
			atFret8 = append(atFret8, v)
		}
	}
	require.Len(t, atFret8, 1)
	assert.Empty(t, atFret8[0].Combination)
	assert.Equal(t, "C5", atFret8[0].Sounding[4].Pitch.String())
	assert.Equal(t, 0, atFret8[0].Sounding[4].Degree)
}

func TestDeterministic(t *testing.T) {
	e := defaultEngine()
	a, err := e.FindVoicings("A", "Dominant 7th", 12)
	require.NoError(t, err)
	b, err := e.FindVoicings("A", "Dominant 7th", 12)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestUnknownChordTypeIsEmpty(t *testing.T) {
	res, err := defaultEngine().FindVoicings("C", "Mu Major", 12)
	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)

	_, err = defaultEngine().Template("Mu Major")
	assert.ErrorIs(t, err, chord.ErrUnknownChordType)
}

func TestInvalidRoot(t *testing.T) {
	_, err := defaultEngine().FindVoicings("Db", "Major Triad", 12)
	assert.ErrorIs(t, err, note.ErrInvalidNoteName)
}

func TestNegativeMaxFret(t *testing.T) {
	res, err := defaultEngine().FindVoicings("E", "Major Triad", -1)
	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestOrderedByFret(t *testing.T) {
	res, err := defaultEngine().FindVoicings("G", "Minor 7th", 12)
	require.NoError(t, err)
	for i := 1; i < len(res); i++ {
		assert.LessOrEqual(t, res[i-1].Fret, res[i].Fret)
	}
	assert.LessOrEqual(t, res[len(res)-1].Fret, 12)
}

func TestTriadsAreComplete(t *testing.T) {
	e := defaultEngine()
	for _, tmpl := range e.Templates().All() {
		if !tmpl.Triad {
			continue
		}
		t.Run(tmpl.Name, func(t *testing.T) {
			res, err := e.FindVoicings("D", tmpl.Name, 12)
			require.NoError(t, err)
			for _, v := range res {
				degrees := map[int]bool{}
				for _, n := range v.Sounding {
					degrees[n.Degree] = true
				}
				for _, d := range tmpl.Degrees {
					assert.True(t, degrees[d], "fret %d %v lacks degree %d", v.Fret, v.Combination, d)
				}
			}
		})
	}
}

func TestMinDegrees(t *testing.T) {
	loose, err := defaultEngine().FindVoicings("C", "Dominant 9th", 12)
	require.NoError(t, err)
	for _, v := range loose {
		assert.GreaterOrEqual(t, v.UniqueDegrees, 2)
	}

	strict, err := New(copedent.Default(), chord.Default(), WithMinDegrees(4)).FindVoicings("C", "Dominant 9th", 12)
	require.NoError(t, err)
	for _, v := range strict {
		assert.GreaterOrEqual(t, v.UniqueDegrees, 4)
	}

	clamped := New(copedent.Default(), chord.Default(), WithMinDegrees(0))
	assert.Equal(t, 2, clamped.minDegrees)
}

func TestSoundingNotesAreChordTones(t *testing.T) {
	res, err := defaultEngine().FindVoicings("F#", "Major 7th", 12)
	require.NoError(t, err)
	tmpl, _ := chord.Default().Lookup("Major 7th")
	targets := tmpl.Targets(6)
	for _, v := range res {
		assert.Equal(t, len(v.Sounding), v.PlayedStrings)
		for s, n := range v.Sounding {
			assert.Equal(t, targets[n.Pitch.Class], n.Degree)
			assert.Equal(t, v.Strings[s], n.Pitch)
		}
	}
}

// bruteMax recomputes, without the engine, the most chord tones any valid
// combination can sound at a fret.
func bruteMax(c *copedent.Copedent, tmpl chord.Template, rootClass, fret, required int) int {
	targets := tmpl.Targets(rootClass)
	best := 0
	for _, combination := range combo.Generate(c) {
		played := 0
		found := map[int]bool{}
		for _, sp := range c.Apply(combination) {
			p := note.PitchAt(sp.Pitch, fret)
			if d, ok := targets[p.Class]; ok {
				played++
				found[d] = true
			}
		}
		if len(found) >= required && played > best {
			best = played
		}
	}
	return best
}

func TestMaximalAndDistinctPerFret(t *testing.T) {
	c := copedent.Default()
	e := New(c, chord.Default())
	cases := []struct{ root, chordType string }{
		{"C", "Major Triad"},
		{"A", "Minor Triad"},
		{"B", "Dominant 7th"},
		{"F", "Major 6th"},
	}
	for _, tc := range cases {
		t.Run(tc.root+" "+tc.chordType, func(t *testing.T) {
			res, err := e.FindVoicings(tc.root, tc.chordType, 12)
			require.NoError(t, err)
			tmpl, _ := e.Template(tc.chordType)
			rootClass, _ := note.NameToClass(tc.root)

			byFret := map[int][]model.Voicing{}
			for _, v := range res {
				byFret[v.Fret] = append(byFret[v.Fret], v)
			}
			for fret := 0; fret <= 12; fret++ {
				want := bruteMax(c, tmpl, rootClass, fret, e.requiredDegrees(tmpl))
				vs := byFret[fret]
				if want == 0 {
					assert.Empty(t, vs, "fret %d", fret)
					continue
				}
				require.NotEmpty(t, vs, "fret %d", fret)
				for i, v := range vs {
					assert.Equal(t, want, v.PlayedStrings, "fret %d", fret)
					for _, other := range vs[i+1:] {
						assert.False(t, v.SameSound(other), "fret %d: %v and %v sound alike", fret, v.Combination, other.Combination)
					}
				}
			}
		})
	}
}

func TestConcurrentSearches(t *testing.T) {
	e := defaultEngine()
	want, err := e.FindVoicings("D", "Major Triad", 12)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]model.Voicing, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = e.FindVoicings("D", "Major Triad", 12)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCombinationsCached(t *testing.T) {
	e := defaultEngine()
	assert.Len(t, e.Combinations(), 252)
	assert.Equal(t, combo.Generate(e.Copedent()), e.Combinations())
}
