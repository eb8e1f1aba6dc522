package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/steelchords/file"
	"github.com/jsphweid/steelchords/midi"
	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/util"
	"github.com/spf13/cobra"
)

var (
	exportOut   string
	exportLimit int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output .mid path (default a new file in the export dir)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "export at most this many voicings, 0 for all")
	exportCmd.Flags().IntVar(&maxFret, "max-fret", -1, "highest fret to search (default from config)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export ROOT CHORD_TYPE",
	Short: "Writes a chord's voicings to a midi file",
	Long:  `Writes a chord's voicings to a midi file, one voicing per bar`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		root, chordType := chordArgs(args)
		exportVoicings(root, chordType)
	},
}

func exportVoicings(root, chordType string) {
	cfg := loadConfig()
	if maxFret >= 0 {
		cfg.Search.MaxFret = maxFret
	}
	engine := newEngine(cfg)

	voicings, err := engine.FindVoicings(root, chordType, cfg.Search.MaxFret)
	cobra.CheckErr(err)
	if len(voicings) == 0 {
		fmt.Printf("No chord voicings found for %s %s\n", root, chordType)
		return
	}
	if exportLimit > 0 && exportLimit < len(voicings) {
		voicings = voicings[:exportLimit]
	}

	sels := make([]model.Selection, len(voicings))
	for i, v := range voicings {
		sels[i] = model.Selection{Voicing: v, Root: root, ChordType: chordType}
	}

	path := exportOut
	if path == "" {
		path = file.ExportPath(cfg.Export.Dir, root, chordType, ".mid")
	}
	cobra.CheckErr(util.EnsureDir(filepath.Dir(path)))
	cobra.CheckErr(midi.WriteFile(path, sels, cfg.Export.BPM))
	fmt.Printf("Wrote %v voicings to %v\n", len(sels), path)
}
