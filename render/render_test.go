package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/steelchords/chord"
	"github.com/jsphweid/steelchords/copedent"
	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/voicing"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestVoicing(t *testing.T) {
	c := copedent.Default()
	vs, err := voicing.New(c, chord.Default()).FindVoicings("E", "Major Triad", 0)
	require.NoError(t, err)
	require.Len(t, vs, 1)

	out := Voicing(vs[0], "E", "Major Triad", c)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert := assert.New(t)
	assert.Len(lines, 14)
	assert.Contains(lines[0], "E Major Triad - Fret 0")
	assert.Contains(lines[0], "Open")
	assert.Contains(lines[1], "S1  F#")
	assert.Contains(lines[1], "x")
	assert.Contains(lines[4], "E4   R")
	assert.Contains(lines[12], "B1   5")
	assert.Contains(lines[13], "chord tones 9, unique degrees 3, controls 0")
}

func TestVoicingShowsChangedBy(t *testing.T) {
	c := copedent.Default()
	vs, err := voicing.New(c, chord.Default()).FindVoicings("A", "Major Triad", 0)
	require.NoError(t, err)
	for _, v := range vs {
		if len(v.Combination) == 0 {
			continue
		}
		out := Voicing(v, "A", "Major Triad", c)
		for s, by := range v.ChangedBy {
			assert.Contains(t, out, strings.Join(by, "+"), "string %d", s)
		}
	}
}

func TestListEmpty(t *testing.T) {
	out := List(nil, "C", "Mu Major", copedent.Default())
	assert.Equal(t, "No chord voicings found for C Mu Major\n", out)
}

func TestTitle(t *testing.T) {
	v := voicingAt(t, "E", 0)
	assert.Equal(t, "E Major Triad - Fret 0 [Open]", Title(v, "E", "Major Triad"))
}

func voicingAt(t *testing.T, root string, fret int) model.Voicing {
	vs, err := voicing.New(copedent.Default(), chord.Default()).FindVoicings(root, "Major Triad", fret)
	require.NoError(t, err)
	require.NotEmpty(t, vs)
	return vs[0]
}
