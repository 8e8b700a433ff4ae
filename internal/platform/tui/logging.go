package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invasion/internal/invasion"
)

// NewLogger creates a timestamped logger writing to w at the named level.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, prefix, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}

// OpenLogFile opens path for appending, creating parent directories.
// The TUI owns the terminal, so the local game logs to a file.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("tui: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("tui: open log file: %w", err)
	}
	return f, nil
}

// logEvents writes the notable entries of a tick's event log.
func logEvents(logger *log.Logger, player string, events []invasion.Event) {
	for _, e := range events {
		switch e.Kind {
		case invasion.EventWaveStarted:
			logger.Debug("wave started", "player", player, "wave", e.Wave, "spawned", e.Points)
		case invasion.EventBossHit:
			logger.Debug("boss hit", "player", player, "health", e.Health)
		case invasion.EventBossDestroyed:
			logger.Info("boss destroyed", "player", player, "wave", e.Wave)
		case invasion.EventBossWaveCleared:
			logger.Debug("boss wave cleared", "player", player, "wave", e.Wave)
		case invasion.EventLifeLost:
			logger.Debug("life lost", "player", player, "lives", e.Lives, "cause", e.Cause)
		case invasion.EventGameOver:
			logger.Info("game over", "player", player, "score", e.Points, "wave", e.Wave)
		case invasion.EventRestarted:
			logger.Debug("restarted", "player", player)
		}
	}
}
