// Package config provides YAML-based configuration loading for the
// invasion shooter: play area, timing, storage, logging and SSH serving.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invasion/internal/invasion"
)

// InvasionConfig contains all configuration for the invasion program.
type InvasionConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Timing  TimingConfig  `yaml:"timing"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// ArenaConfig defines the simulated play area in pixels.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines the tick loop and time windows.
type TimingConfig struct {
	TickRate    int   `yaml:"tick_rate"`     // Simulation ticks per second
	Seed        int64 `yaml:"seed"`          // 0 = seed from the wall clock
	AnnounceMS  int   `yaml:"announce_ms"`   // Wave banner duration; 0 disables banners
	InputHoldMS int   `yaml:"input_hold_ms"` // How long a key press counts as held
}

// StorageConfig defines where finished runs are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Empty = ~/.invasion/scores.db
}

// LoggingConfig defines the log destination and verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = ~/.invasion/invasion.log for the TUI
}

// SSHConfig defines the SSH server used by `invasion serve`.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// Validate checks that the configuration can drive a session.
func (c InvasionConfig) Validate() error {
	var errs []error
	if c.Arena.Width < invasion.BossWidth || c.Arena.Height < invasion.BossHeight {
		errs = append(errs, fmt.Errorf("arena %vx%v is smaller than the boss (%dx%d)",
			c.Arena.Width, c.Arena.Height, invasion.BossWidth, invasion.BossHeight))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.AnnounceMS < 0 {
		errs = append(errs, fmt.Errorf("announce_ms must not be negative, got %d", c.Timing.AnnounceMS))
	}
	if c.Timing.InputHoldMS <= 0 {
		errs = append(errs, fmt.Errorf("input_hold_ms must be positive, got %d", c.Timing.InputHoldMS))
	}
	if c.Logging.Level != "" {
		if _, err := log.ParseLevel(c.Logging.Level); err != nil {
			errs = append(errs, fmt.Errorf("logging level: %w", err))
		}
	}
	if c.SSH.IdleTimeoutMin < 0 {
		errs = append(errs, fmt.Errorf("idle_timeout_min must not be negative, got %d", c.SSH.IdleTimeoutMin))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SessionConfig converts the configuration into engine parameters.
func (c InvasionConfig) SessionConfig() invasion.Config {
	return invasion.Config{
		Width:            c.Arena.Width,
		Height:           c.Arena.Height,
		TickRate:         c.Timing.TickRate,
		Seed:             c.Timing.Seed,
		AnnounceDuration: time.Duration(c.Timing.AnnounceMS) * time.Millisecond,
	}
}

// InputHold returns the key hold window as a duration.
func (c InvasionConfig) InputHold() time.Duration {
	return time.Duration(c.Timing.InputHoldMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c InvasionConfig) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMin) * time.Minute
}
