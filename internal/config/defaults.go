package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the hard-coded default configuration.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Timing: TimingConfig{
			TickRate:    60,
			AnnounceMS:  1500,
			InputHoldMS: 150,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:        ":2222",
			HostKey:        ".ssh/invasion_ed25519",
			IdleTimeoutMin: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvasionYAML
}
