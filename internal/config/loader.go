package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource is reported by Load when no file was found.
const EmbeddedSource = "embedded"

// Load reads the configuration and reports where it came from.
// Search order: customPath -> ~/.dovefly/config.yaml -> ./configs/dovefly.yaml -> embedded default
// Fields a file leaves out keep their default values.
func Load(customPath string) (Config, string, error) {
	home, _ := os.UserHomeDir()
	return load(customPath, userConfigPath(home), filepath.Join("configs", "dovefly.yaml"))
}

func load(customPath, userPath, localPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		return cfg, customPath, err
	}

	for _, path := range []string{userPath, localPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, "", fmt.Errorf("config: read %s: %w", path, err)
		}
		cfg, err := parse(data, path)
		return cfg, path, err
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML, EmbeddedSource)
	if err != nil {
		return DefaultConfig(), EmbeddedSource, nil // Fallback to hardcoded if embed fails
	}
	return cfg, EmbeddedSource, nil
}

func parse(data []byte, source string) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".dovefly", "config.yaml")
}
