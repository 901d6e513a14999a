// Package config provides YAML-based settings loading for the terminal
// front end. Game rules are not configurable.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Config holds the user-tunable settings.
type Config struct {
	Seed    int64         `yaml:"seed"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls how frames are drawn.
type DisplayConfig struct {
	Color    bool `yaml:"color"`
	ShowHelp bool `yaml:"show_help"`
}

// LogConfig controls the session log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks values that YAML decoding cannot.
func (c Config) Validate() error {
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts the configured level name to a log.Level.
// An empty level means info.
func (l LogConfig) ParseLevel() (log.Level, error) {
	if l.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
