package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/steelchords/copedent"
	"github.com/spf13/cobra"
)

var (
	showStrings bool
	withControl string
)

func init() {
	combosCmd.Flags().BoolVar(&showStrings, "strings", false, "print each string's pitch for every combination")
	combosCmd.Flags().StringVar(&withControl, "with", "", "only list combinations that engage this control")
	rootCmd.AddCommand(combosCmd)
}

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Lists valid pedal and lever combinations",
	Long:  `Lists valid pedal and lever combinations`,
	Run: func(cmd *cobra.Command, args []string) {
		engine := newEngine(loadConfig())
		c := engine.Copedent()
		combos := filterCombos(engine.Combinations(), withControl)
		fmt.Printf("%v: %v combinations\n", c.Name, len(combos))
		for _, combination := range combos {
			if !showStrings {
				fmt.Println(combination)
				continue
			}
			fmt.Printf("%-22s %s\n", combination, tuningLine(c, combination))
		}
	},
}

func tuningLine(c *copedent.Copedent, combination copedent.Combination) string {
	applied := c.Apply(combination)
	var parts []string
	for _, s := range copedent.StringIDs() {
		parts = append(parts, fmt.Sprintf("%-4s", applied[s].Pitch))
	}
	return strings.Join(parts, " ")
}

func filterCombos(combos []copedent.Combination, control string) []copedent.Combination {
	if control == "" {
		return combos
	}
	var res []copedent.Combination
	for _, combination := range combos {
		if combination.Contains(control) {
			res = append(res, combination)
		}
	}
	return res
}
