package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/steelchords/midi"
	"github.com/jsphweid/steelchords/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Inspects an exported midi file",
	Long:  `Prints the chords in a midi file as note names`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := inspect(args[0])
		cobra.CheckErr(err)
		fmt.Print(out)
	},
}

func inspect(path string) (string, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, c := range midi.Chords(s) {
		names := make([]string, len(c.Keys))
		for i, k := range c.Keys {
			names[i] = note.FromAbs(int(k) - 12).String()
		}
		fmt.Fprintf(&b, "tick: %v\n", c.Tick)
		fmt.Fprintf(&b, "notes: %v\n", strings.Join(names, " "))
	}
	return b.String(), nil
}
