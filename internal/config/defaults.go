package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed: 0,
		Display: DisplayConfig{
			Color:    true,
			ShowHelp: true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
