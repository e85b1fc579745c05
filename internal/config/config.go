package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/plexus/internal/particle"
	"github.com/san-kum/plexus/internal/scene"
)

const (
	DefaultWidth  = 1280.0
	DefaultHeight = 720.0
	DefaultFPS    = 60
	DefaultFrames = 600
	// DefaultScale is world units per braille dot in the terminal view.
	DefaultScale = 4.0
)

type Config struct {
	Preset string      `yaml:"preset,omitempty"`
	Seed   int64       `yaml:"seed"`
	Field  FieldConfig `yaml:"field"`
	View   ViewConfig  `yaml:"view"`
	Run    RunConfig   `yaml:"run"`
}

// FieldConfig holds the simulation constants.
type FieldConfig struct {
	Particles     int     `yaml:"particles"`
	PointerRadius float64 `yaml:"pointer_radius"`
	MaxDistance   float64 `yaml:"max_distance"`
	Friction      float64 `yaml:"friction"`
}

type ViewConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
	Scale  float64 `yaml:"scale"`
}

// RunConfig drives headless runs.
type RunConfig struct {
	Frames      int    `yaml:"frames"`
	PointerPath string `yaml:"pointer_path"`
}

func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			Particles:     scene.DefaultParticles,
			PointerRadius: scene.DefaultPointerRadius,
			MaxDistance:   scene.DefaultMaxDistance,
			Friction:      particle.DefaultFriction,
		},
		View: ViewConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			Scale:  DefaultScale,
		},
		Run: RunConfig{
			Frames:      DefaultFrames,
			PointerPath: "none",
		},
	}
}

// Load reads a yaml file over the defaults. A preset named in the file is
// applied first, then the file's own fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if head.Preset != "" {
		p, err := GetPreset(head.Preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SceneOptions maps the field section onto scene options.
func (c *Config) SceneOptions() scene.Options {
	return scene.Options{
		Particles:     c.Field.Particles,
		PointerRadius: c.Field.PointerRadius,
		MaxDistance:   c.Field.MaxDistance,
		Friction:      c.Field.Friction,
		Seed:          c.Seed,
	}
}
