package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSerpent loads serpent configuration.
// Search order: customPath -> ~/.snakepit/configs/serpent.yaml ->
// ./configs/serpent.yaml -> embedded default.
func LoadSerpent(customPath string) (SerpentConfig, error) {
	var cfg SerpentConfig
	if err := load("serpent.yaml", customPath, defaultSerpentYAML, &cfg); err != nil {
		return DefaultSerpentConfig(), err
	}
	return cfg, nil
}

// LoadRailshot loads rail shooter configuration with the same search order.
func LoadRailshot(customPath string) (RailshotConfig, error) {
	var cfg RailshotConfig
	if err := load("railshot.yaml", customPath, defaultRailshotYAML, &cfg); err != nil {
		return DefaultRailshotConfig(), err
	}
	return cfg, nil
}

// load resolves the config search order into out. A custom path that
// cannot be read or parsed is an error; the implicit locations fall
// through silently to the embedded default.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to the user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snakepit", "configs", filename)
}
