package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/steelchords/chord"
	"github.com/jsphweid/steelchords/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Lists chord types",
	Long:  `Lists chord types`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, tmpl := range chord.Default().All() {
			var degrees []string
			for _, d := range tmpl.Degrees {
				degrees = append(degrees, note.IntervalName(d))
			}
			kind := ""
			if tmpl.Triad {
				kind = " (triad)"
			}
			fmt.Printf("%-22s %s%s\n", tmpl.Name, strings.Join(degrees, " "), kind)
		}
	},
}
