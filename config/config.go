package config

import (
	"strings"
	"time"

	"github.com/jsphweid/steelchords/constants"
	"github.com/jsphweid/steelchords/util"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Search   SearchConfig
	Copedent CopedentConfig
	Export   ExportConfig
	Tone     ToneConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type SearchConfig struct {
	MaxFret    int
	MinDegrees int
}

type CopedentConfig struct {
	// empty means the built-in E9 setup
	Path  string
	Watch bool
}

type ExportConfig struct {
	Dir string
	BPM float64
}

type ToneConfig struct {
	Duration   time.Duration
	Strum      time.Duration
	SampleRate int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("search.max_fret", constants.DefaultMaxFret)
	v.SetDefault("search.min_degrees", constants.DefaultMinDegrees)
	v.SetDefault("copedent.path", "")
	v.SetDefault("copedent.watch", true)
	v.SetDefault("export.dir", constants.GetExportDir())
	v.SetDefault("export.bpm", 90.0)
	v.SetDefault("tone.duration", 330*time.Millisecond)
	v.SetDefault("tone.strum", 40*time.Millisecond)
	v.SetDefault("tone.sample_rate", constants.DefaultSampleRate)
}

// Load reads steelchords.yaml from the working directory or ./config if there
// is one, then STEELCHORDS_* environment variables.
func Load() (*Config, error) {
	return LoadWith(viper.New(), "")
}

// LoadWith reads settings through v. A non-empty file replaces the search path.
func LoadWith(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("steelchords")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("steelchords")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("server.port"),
			AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
		},
		Search: SearchConfig{
			MaxFret:    util.Clamp(v.GetInt("search.max_fret"), 0, constants.MaxFret),
			MinDegrees: v.GetInt("search.min_degrees"),
		},
		Copedent: CopedentConfig{
			Path:  v.GetString("copedent.path"),
			Watch: v.GetBool("copedent.watch"),
		},
		Export: ExportConfig{
			Dir: v.GetString("export.dir"),
			BPM: v.GetFloat64("export.bpm"),
		},
		Tone: ToneConfig{
			Duration:   v.GetDuration("tone.duration"),
			Strum:      v.GetDuration("tone.strum"),
			SampleRate: v.GetInt("tone.sample_rate"),
		},
	}

	return cfg, nil
}
