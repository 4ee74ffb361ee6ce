package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
// A custom path ending in .toml is decoded as TOML.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, formatFor(customPath))
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return FlappyConfig{}, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "flappy.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := decode(defaultFlappyYAML, formatYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultFlappyConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads an optional config file; missing or invalid files are skipped.
func tryLoad(path string) (FlappyConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, false
	}
	cfg, err := decode(data, formatFor(path))
	if err != nil || cfg.Validate() != nil {
		return FlappyConfig{}, false
	}
	return cfg, true
}

type format int

const (
	formatYAML format = iota
	formatTOML
)

func formatFor(path string) format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return formatTOML
	}
	return formatYAML
}

// decode unmarshals data over DefaultFlappyConfig. A file that lists tiers
// replaces the whole default ladder; without an explicit initial tier the
// first tier is used.
func decode(data []byte, f format) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	cfg.Difficulty.Tiers = nil
	cfg.Difficulty.Initial = ""

	var err error
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return FlappyConfig{}, err
	}

	if len(cfg.Difficulty.Tiers) == 0 {
		cfg.Difficulty.Tiers = DefaultFlappyConfig().Difficulty.Tiers
	}
	if cfg.Difficulty.Initial == "" {
		cfg.Difficulty.Initial = cfg.Difficulty.Tiers[0].Name
	}
	return cfg, nil
}

// MarshalYAML renders a config in the same layout as the embedded default.
func MarshalYAML(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
