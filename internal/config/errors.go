package config

import "errors"

var (
	// ErrUnknownPreset indicates a preset name missing from Presets.
	ErrUnknownPreset = errors.New("config: unknown preset")
)
