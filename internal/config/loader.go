package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load returns the configuration to play with. A non-empty customPath must
// be readable. Otherwise the first readable file among searchPaths is used,
// and the embedded defaults when there is none. Fields missing from a file
// keep their default values, and the result is always validated.
func Load(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	for _, path := range searchPaths() {
		if data, err := os.ReadFile(path); err == nil {
			return parse(data, path)
		}
	}

	cfg, err := parse(defaultSnakeYAML, "embedded default")
	if err != nil {
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

// searchPaths lists config locations in priority order: the user's
// ~/.gridsnake/configs directory, then ./configs.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath("snake.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "snake.yaml"))
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	return parse(data, "input")
}

func parse(data []byte, source string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "configs", filename)
}
