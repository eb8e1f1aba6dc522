package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/steelchords/copedent"
	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/note"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	comboStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	hitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Title is the one-line heading for a voicing, e.g. "C Major Triad - Fret 8 [Open]".
func Title(v model.Voicing, root, chordType string) string {
	return fmt.Sprintf("%s %s - Fret %d [%s]", root, chordType, v.Fret, v.Combination)
}

// Voicing draws one row per string: open note, sounding pitch, degree label,
// and the controls that moved the string.
func Voicing(v model.Voicing, root, chordType string, c *copedent.Copedent) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s - Fret %d", root, chordType, v.Fret)))
	b.WriteString("  ")
	b.WriteString(comboStyle.Render(v.Combination.String()))
	b.WriteString("\n")

	for _, s := range copedent.StringIDs() {
		open := c.Tuning[s].Name()
		row := fmt.Sprintf("S%-2d %-2s ", s, open)
		if n, ok := v.Sounding[s]; ok {
			cell := fmt.Sprintf("%-4s %-3s", n.Pitch, note.IntervalName(n.Degree))
			row += hitStyle.Render(cell)
		} else {
			row += missStyle.Render(fmt.Sprintf("%-4s %-3s", v.Strings[s], "x"))
		}
		if by := v.ChangedBy[s]; len(by) > 0 {
			row += " " + dimStyle.Render(strings.Join(by, "+"))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("chord tones %d, unique degrees %d, controls %d\n",
		v.PlayedStrings, v.UniqueDegrees, len(v.Combination)))
	return b.String()
}

// List renders every voicing separated by blank lines.
func List(vs []model.Voicing, root, chordType string, c *copedent.Copedent) string {
	if len(vs) == 0 {
		return fmt.Sprintf("No chord voicings found for %s %s\n", root, chordType)
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Voicing(v, root, chordType, c)
	}
	header := titleStyle.Render(fmt.Sprintf("%s %s - Found %d Voicings", root, chordType, len(vs)))
	return header + "\n\n" + strings.Join(parts, "\n")
}
