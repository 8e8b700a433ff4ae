package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so no
// real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg InvasionConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultInvasionConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultInvasionConfig %+v", cfg, DefaultInvasionConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadInvasionFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadInvasion("")
	if err != nil {
		t.Fatalf("LoadInvasion failed: %v", err)
	}
	if cfg != DefaultInvasionConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadInvasionSearchOrder(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join("configs", "invasion.yaml"), "timing:\n  tick_rate: 30\n")

	cfg, err := LoadInvasion("")
	if err != nil {
		t.Fatalf("LoadInvasion failed: %v", err)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("local config should be used, tick_rate %d", cfg.Timing.TickRate)
	}

	writeFile(t, filepath.Join(home, AppDir, "configs", "invasion.yaml"), "timing:\n  tick_rate: 45\n")

	cfg, err = LoadInvasion("")
	if err != nil {
		t.Fatalf("LoadInvasion failed: %v", err)
	}
	if cfg.Timing.TickRate != 45 {
		t.Errorf("user config should win over local, tick_rate %d", cfg.Timing.TickRate)
	}
	if cfg.Arena.Width != 800 {
		t.Errorf("unset keys should keep their defaults, width %v", cfg.Arena.Width)
	}
}

func TestLoadInvasionSkipsInvalidUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, AppDir, "configs", "invasion.yaml"), "arena:\n  width: 50\n")

	cfg, err := LoadInvasion("")
	if err != nil {
		t.Fatalf("LoadInvasion failed: %v", err)
	}
	if cfg.Arena.Width != 800 {
		t.Errorf("invalid user config should be skipped, width %v", cfg.Arena.Width)
	}
}

func TestLoadInvasionCustomPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"valid", "arena:\n  width: 1024\n  height: 768\n", ""},
		{"malformed", "arena: [", "parse"},
		{"too small", "arena:\n  width: 100\n  height: 600\n", "smaller than the boss"},
		{"zero tick rate", "timing:\n  tick_rate: 0\n", "tick_rate"},
		{"bad level", "logging:\n  level: loud\n", "logging level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			writeFile(t, path, tt.content)

			cfg, err := LoadInvasion(path)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if cfg.Arena.Width != 1024 || cfg.Arena.Height != 768 {
					t.Errorf("arena = %+v", cfg.Arena)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadInvasionMissingCustomPath(t *testing.T) {
	isolate(t)

	if _, err := LoadInvasion(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestSessionConfig(t *testing.T) {
	cfg := DefaultInvasionConfig()
	cfg.Timing.Seed = 7

	sc := cfg.SessionConfig()

	if sc.Width != 800 || sc.Height != 600 || sc.TickRate != 60 || sc.Seed != 7 {
		t.Errorf("SessionConfig = %+v", sc)
	}
	if sc.AnnounceDuration != 1500*time.Millisecond {
		t.Errorf("AnnounceDuration = %v", sc.AnnounceDuration)
	}
	if cfg.InputHold() != 150*time.Millisecond {
		t.Errorf("InputHold = %v", cfg.InputHold())
	}
	if cfg.IdleTimeout() != 10*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout())
	}
}

func TestDefaultPaths(t *testing.T) {
	home := isolate(t)
	cfg := DefaultInvasionConfig()

	if got := cfg.DBPath(); got != filepath.Join(home, AppDir, "scores.db") {
		t.Errorf("DBPath = %q", got)
	}
	if got := cfg.LogPath(); got != filepath.Join(home, AppDir, "invasion.log") {
		t.Errorf("LogPath = %q", got)
	}

	cfg.Storage.DBPath = "runs.db"
	if cfg.DBPath() != "runs.db" {
		t.Errorf("explicit db_path should win, got %q", cfg.DBPath())
	}
}
