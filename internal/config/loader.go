package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const mirrorFile = "mirror.yaml"

// LoadMirror loads Mirror Lane configuration.
// Search order: customPath -> ~/.mirrorlane/configs/mirror.yaml -> ./configs/mirror.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadMirror(customPath string) (MirrorConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MirrorConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseMirror(data)
		if err != nil {
			return MirrorConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(mirrorFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseMirror(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", mirrorFile)); err == nil {
		if cfg, err := ParseMirror(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseMirror(defaultMirrorYAML)
	if err != nil {
		return DefaultMirrorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseMirror decodes YAML over the default configuration.
func ParseMirror(data []byte) (MirrorConfig, error) {
	cfg := DefaultMirrorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MirrorConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mirrorlane", "configs", filename)
}
