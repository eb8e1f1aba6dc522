package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/jsphweid/steelchords/file"
	"github.com/jsphweid/steelchords/tone"
	"github.com/jsphweid/steelchords/util"
	"github.com/spf13/cobra"
)

var (
	toneOut     string
	voicingIdx  int
	toneMaxFret int
)

func init() {
	toneCmd.Flags().StringVarP(&toneOut, "out", "o", "", "output .wav path (default a new file in the export dir)")
	toneCmd.Flags().IntVar(&voicingIdx, "voicing", -1, "render the nth voicing of ROOT CHORD_TYPE instead of a single note")
	toneCmd.Flags().IntVar(&toneMaxFret, "max-fret", -1, "highest fret to search (default from config)")
	rootCmd.AddCommand(toneCmd)
}

var toneCmd = &cobra.Command{
	Use:   "tone NOTE | tone --voicing N ROOT CHORD_TYPE",
	Short: "Renders a note or a voicing to a wav file",
	Long:  `Renders a note such as A4, or a strummed voicing, to a wav file`,
	Example: `steelchords tone A4
steelchords tone --voicing 0 C Major Triad`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		rate := beep.SampleRate(cfg.Tone.SampleRate)

		var (
			s     beep.Streamer
			label string
		)
		if voicingIdx < 0 {
			var err error
			s, err = tone.Note(args[0], cfg.Tone.Duration, rate)
			cobra.CheckErr(err)
			label = args[0]
		} else {
			if len(args) < 2 {
				cobra.CheckErr(fmt.Errorf("--voicing needs ROOT and CHORD_TYPE"))
			}
			if toneMaxFret >= 0 {
				cfg.Search.MaxFret = toneMaxFret
			}
			root, chordType := chordArgs(args)
			voicings, err := newEngine(cfg).FindVoicings(root, chordType, cfg.Search.MaxFret)
			cobra.CheckErr(err)
			if voicingIdx >= len(voicings) {
				cobra.CheckErr(fmt.Errorf("%s %s has %d voicings, no index %d", root, chordType, len(voicings), voicingIdx))
			}
			s = tone.Voicing(voicings[voicingIdx], cfg.Tone.Duration, cfg.Tone.Strum, rate)
			label = root + " " + chordType
		}

		path := toneOut
		if path == "" {
			path = file.ExportPath(cfg.Export.Dir, label, "tone", ".wav")
		}
		cobra.CheckErr(util.EnsureDir(filepath.Dir(path)))
		cobra.CheckErr(tone.WriteWAVFile(path, s, rate))
		fmt.Printf("Wrote %v\n", path)
	},
}
