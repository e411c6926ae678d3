package config

import (
	_ "embed"
)

//go:embed defaults/dovefly.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Backend: "tea",
			Color:   true,
		},
		Sound: SoundConfig{
			Enabled: false,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: "30m",
		},
	}
}
