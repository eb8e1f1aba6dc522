package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/render"
	"github.com/spf13/cobra"
)

var (
	maxFret    int
	minDegrees int
	brief      bool
)

func init() {
	searchCmd.Flags().IntVar(&maxFret, "max-fret", -1, "highest fret to search (default from config)")
	searchCmd.Flags().BoolVar(&brief, "brief", false, "print one line per voicing")
	searchCmd.Flags().IntVar(&minDegrees, "min-degrees", 0, "distinct chord tones a non-triad needs (default from config)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:     "search ROOT CHORD_TYPE",
	Short:   "Finds voicings for a chord",
	Long:    `Finds voicings for a chord, e.g. "steelchords search C Dominant 7th"`,
	Args:    cobra.MinimumNArgs(2),
	Example: `steelchords search F# Minor Triad --max-fret 7`,
	Run: func(cmd *cobra.Command, args []string) {
		root, chordType := chordArgs(args)
		out, err := search(root, chordType)
		cobra.CheckErr(err)
		fmt.Print(out)
	},
}

func search(root, chordType string) (string, error) {
	cfg := loadConfig()
	if maxFret >= 0 {
		cfg.Search.MaxFret = maxFret
	}
	if minDegrees > 0 {
		cfg.Search.MinDegrees = minDegrees
	}
	engine := newEngine(cfg)

	if _, err := engine.Template(chordType); err != nil {
		fmt.Printf("Warning: %v, known types: %v\n", err, strings.Join(engine.Templates().Names(), ", "))
	}
	voicings, err := engine.FindVoicings(root, chordType, cfg.Search.MaxFret)
	if err != nil {
		return "", err
	}
	if brief {
		return briefList(voicings, root, chordType), nil
	}
	return render.List(voicings, root, chordType, engine.Copedent()), nil
}

func briefList(voicings []model.Voicing, root, chordType string) string {
	if len(voicings) == 0 {
		return fmt.Sprintf("No chord voicings found for %s %s\n", root, chordType)
	}
	var b strings.Builder
	for _, v := range voicings {
		b.WriteString(render.Title(v, root, chordType))
		b.WriteString("\n")
	}
	return b.String()
}
