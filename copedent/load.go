package copedent

import (
	"fmt"

	"github.com/jsphweid/steelchords/note"
	"github.com/spf13/viper"
)

type fileChange struct {
	String int `mapstructure:"string"`
	Delta  int `mapstructure:"delta"`
}

type fileControl struct {
	Name        string       `mapstructure:"name"`
	Kind        string       `mapstructure:"kind"`
	Knee        string       `mapstructure:"knee"`
	Free        bool         `mapstructure:"free"`
	Description string       `mapstructure:"description"`
	Changes     []fileChange `mapstructure:"changes"`
}

type fileOverride struct {
	String   int      `mapstructure:"string"`
	Controls []string `mapstructure:"controls"`
	Result   int      `mapstructure:"result"`
	Note     string   `mapstructure:"note"`
}

// File is the on-disk shape of a copedent. Tuning lists string 1 first.
type File struct {
	Name       string         `mapstructure:"name"`
	Tuning     []string       `mapstructure:"tuning"`
	PedalOrder []string       `mapstructure:"pedal_order"`
	Controls   []fileControl  `mapstructure:"controls"`
	Overrides  []fileOverride `mapstructure:"overrides"`
}

// Load reads a YAML, JSON or TOML copedent file.
func Load(path string) (*Copedent, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading copedent %s: %w", path, err)
	}
	return FromViper(v)
}

func FromViper(v *viper.Viper) (*Copedent, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decoding copedent: %w", err)
	}
	return f.Build()
}

func (f File) Build() (*Copedent, error) {
	tuning := make(Tuning, len(f.Tuning))
	for i, name := range f.Tuning {
		p, err := note.ParsePitch(name)
		if err != nil {
			return nil, fmt.Errorf("%w: string %d: %v", ErrInconsistentConfig, i+1, err)
		}
		tuning[StringID(i+1)] = p
	}

	controls := make([]Control, 0, len(f.Controls))
	for _, fc := range f.Controls {
		ctl := Control{
			Name:        fc.Name,
			Kind:        Kind(fc.Kind),
			Knee:        fc.Knee,
			Description: fc.Description,
		}
		// LKL, LKR, RKL, RKR: the first letter names the knee.
		if ctl.Kind == Lever && ctl.Knee == "" && !fc.Free && len(fc.Name) > 0 {
			ctl.Knee = fc.Name[:1]
		}
		if ctl.Kind == Pedal {
			ctl.Knee = ""
		}
		for _, ch := range fc.Changes {
			ctl.Changes = append(ctl.Changes, Change{String: StringID(ch.String), Delta: ch.Delta})
		}
		controls = append(controls, ctl)
	}

	overrides := make([]Override, 0, len(f.Overrides))
	for _, fo := range f.Overrides {
		overrides = append(overrides, Override{
			String:   StringID(fo.String),
			Controls: fo.Controls,
			Result:   fo.Result,
			Note:     fo.Note,
		})
	}

	return New(f.Name, tuning, controls, f.PedalOrder, overrides)
}
