package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]FieldConfig{
	"classic": {Particles: 100, PointerRadius: 100, MaxDistance: 200, Friction: 0.95},
	"dense":   {Particles: 220, PointerRadius: 120, MaxDistance: 110, Friction: 0.95},
	"sparse":  {Particles: 40, PointerRadius: 150, MaxDistance: 320, Friction: 0.95},
	"calm":    {Particles: 100, PointerRadius: 80, MaxDistance: 200, Friction: 0.85},
}

// GetPreset returns the default config with the named field preset applied.
func GetPreset(name string) (*Config, error) {
	field, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	cfg.Preset = name
	cfg.Field = field
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
