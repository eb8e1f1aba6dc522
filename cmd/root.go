package cmd

import (
	"strings"

	"github.com/jsphweid/steelchords/chord"
	"github.com/jsphweid/steelchords/config"
	"github.com/jsphweid/steelchords/copedent"
	"github.com/jsphweid/steelchords/voicing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	copedentFile string
)

var rootCmd = &cobra.Command{
	Use:   "steelchords",
	Short: "Pedal steel chord finder",
	Long:  `Finds every playable voicing of a chord on a 12-string pedal steel guitar.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./steelchords.yaml)")
	rootCmd.PersistentFlags().StringVar(&copedentFile, "copedent", "", "copedent file (default built-in E9 universal)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func loadConfig() *config.Config {
	cfg, err := config.LoadWith(viper.New(), cfgFile)
	cobra.CheckErr(err)
	if copedentFile != "" {
		cfg.Copedent.Path = copedentFile
	}
	return cfg
}

func LoadCopedent(path string) (*copedent.Copedent, error) {
	if path == "" {
		return copedent.Default(), nil
	}
	return copedent.Load(path)
}

func newEngine(cfg *config.Config) *voicing.Engine {
	c, err := LoadCopedent(cfg.Copedent.Path)
	cobra.CheckErr(err)
	return voicing.New(c, chord.Default(), voicing.WithMinDegrees(cfg.Search.MinDegrees))
}

// chordArgs splits "C Dominant 7th" style arguments into root and chord type.
func chordArgs(args []string) (string, string) {
	return args[0], strings.Join(args[1:], " ")
}
