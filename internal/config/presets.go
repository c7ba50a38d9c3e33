package config

import (
	"sort"

	"github.com/san-kum/ddmsim/internal/ddm"
)

var Presets = map[string]ddm.Params{
	"default":      {A: 1.0, V: 0.5, Z: 0.5, S: 0.1, Dt: 0.01},
	"fast":         {A: 0.6, V: 1.5, Z: 0.5, S: 0.1, Dt: 0.01},
	"slow":         {A: 1.8, V: 0.3, Z: 0.5, S: 0.1, Dt: 0.01},
	"biased-upper": {A: 1.0, V: 0.0, Z: 0.7, S: 0.1, Dt: 0.01},
	"biased-lower": {A: 1.0, V: 0.0, Z: 0.3, S: 0.1, Dt: 0.01},
	"noisy":        {A: 1.0, V: 0.5, Z: 0.5, S: 0.3, Dt: 0.01},
	"no-drift":     {A: 1.0, V: 0.0, Z: 0.5, S: 0.1, Dt: 0.01},
}

func GetPreset(name string) (ddm.Params, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
