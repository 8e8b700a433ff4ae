package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, scores and logs.
const AppDir = ".invasion"

// LoadInvasion loads the program configuration.
// Search order: customPath -> ~/.invasion/configs/invasion.yaml -> ./configs/invasion.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadInvasion(customPath string) (InvasionConfig, error) {
	cfg := DefaultInvasionConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "invasion.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "invasion.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultInvasionYAML, &cfg); err != nil {
		return DefaultInvasionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable, malformed or invalid
// files are skipped.
func tryLoad(path string) (InvasionConfig, bool) {
	cfg := DefaultInvasionConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// UserPath joins elem under ~/.invasion, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// DBPath returns the configured score database path or the per-user default.
func (c InvasionConfig) DBPath() string {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath
	}
	return UserPath("scores.db")
}

// LogPath returns the configured log file or the per-user default.
func (c InvasionConfig) LogPath() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return UserPath("invasion.log")
}
