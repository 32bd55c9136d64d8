package config

import "sort"

type Preset struct {
	Contribs bool
	Speed    int
	Smoke    int
}

var Presets = map[string]Preset{
	"ember":   {Speed: 6, Smoke: 2},
	"bonfire": {Speed: 1, Smoke: 0},
	"smolder": {Speed: 3, Smoke: 12},
	"graph":   {Contribs: true, Speed: 2, Smoke: 0},
}

func GetPreset(name string) (Preset, bool) {
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

// Apply copies the preset's animation settings onto c.
func (p Preset) Apply(c *Config) {
	c.Contribs = p.Contribs
	c.Speed = p.Speed
	c.Smoke = p.Smoke
}
