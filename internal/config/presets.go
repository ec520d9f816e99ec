package config

import "sort"

var Presets = map[string]*Config{
	"threebody": DefaultConfig(),
	"headon": withBodies("headon", 1.0,
		BodyConfig{X: 392.5, Y: 300, VX: 50, VY: 0, Mass: 1000, Radius: 10},
		BodyConfig{X: 407.5, Y: 300, VX: -50, VY: 0, Mass: 1000, Radius: 10},
	),
	"binary": withBodies("binary", 20.0,
		BodyConfig{X: 300, Y: 300, VX: 0, VY: -80, Mass: 200000, Radius: 20},
		BodyConfig{X: 500, Y: 300, VX: 0, VY: 80, Mass: 200000, Radius: 20},
	),
	"cluster": withBodies("cluster", 10.0,
		BodyConfig{X: 400, Y: 300, VX: 0, VY: 0, Mass: 300000, Radius: 25},
		BodyConfig{X: 470, Y: 300, VX: 0, VY: -160, Mass: 1500, Radius: 10},
		BodyConfig{X: 330, Y: 300, VX: 0, VY: 160, Mass: 1500, Radius: 10},
		BodyConfig{X: 400, Y: 180, VX: 120, VY: 0, Mass: 800, Radius: 8},
		BodyConfig{X: 400, Y: 440, VX: -110, VY: 0, Mass: 800, Radius: 8},
	),
}

func withBodies(name string, duration float64, bodies ...BodyConfig) *Config {
	cfg := DefaultConfig()
	cfg.Name = name
	cfg.Duration = duration
	cfg.Bodies = bodies
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
