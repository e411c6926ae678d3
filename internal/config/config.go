// Package config provides YAML-based configuration for the DoveFly program:
// display backend, asset directory, sound, logging and the SSH server.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dovefly/internal/registry"
)

// Config is the application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Assets  AssetsConfig  `yaml:"assets"`
	Sound   SoundConfig   `yaml:"sound"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// DisplayConfig selects how the game is drawn.
type DisplayConfig struct {
	Backend string `yaml:"backend"`
	Color   bool   `yaml:"color"`
}

// AssetsConfig points at an optional directory overriding the built-in art.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// SoundConfig toggles sound effects.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig defines where logs go and how verbose they are.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout string `yaml:"idle_timeout"`
}

// Displays returns the names of the registered display backends, which are
// the values display.backend accepts.
func Displays() []string {
	infos := registry.List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Timeout parses IdleTimeout.
func (c SSHConfig) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.IdleTimeout)
	if err != nil {
		return 0, fmt.Errorf("config: ssh.idle_timeout: %w", err)
	}
	return d, nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return lvl, nil
}

// Validate checks every field that has a restricted set of values.
func (c Config) Validate() error {
	if !registry.Exists(c.Display.Backend) {
		return fmt.Errorf("config: display.backend %q: want one of %v", c.Display.Backend, Displays())
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.SSH.Address == "" {
		return fmt.Errorf("config: ssh.address is empty")
	}
	d, err := c.SSH.Timeout()
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("config: ssh.idle_timeout %s is negative", d)
	}
	return nil
}
