package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/platform/tui"
	"github.com/vovakirdan/tui-invasion/internal/storage"
	"github.com/vovakirdan/tui-invasion/internal/trace"
)

var (
	flagTrace  string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A, Right/D  - Move
  Space/Up         - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  ?                - Toggle full help

Finished runs are saved to the scores database. With --trace, every tick's
snapshot is written to a msgpack file that 'invasion inspect' can read.

Examples:
  invasion play
  invasion play --seed 42
  invasion play --trace run.trace --log-level debug
  invasion play --config ./my-invasion.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTrace, "trace", "", "Write a msgpack snapshot trace to this file")
	playCmd.Flags().StringVar(&flagPlayer, "name", "", "Player name for the scoreboard (default $USER)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	// The terminal belongs to the UI, so logs go to a file
	logFile, err := tui.OpenLogFile(cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := tui.NewLogger(logFile, "invasion", cfg.Logging.Level)

	width, height := core.DefaultScreenW, core.DefaultScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player := flagPlayer
	if player == "" {
		player = playerName()
	}

	session := cfg.SessionConfig()
	if session.Seed == 0 {
		session.Seed = time.Now().UnixNano()
	}

	opts := tui.Options{
		Session:   session,
		InputHold: cfg.InputHold(),
		Player:    player,
		Logger:    logger,
		ScreenW:   width,
		ScreenH:   height,
	}

	// Open score storage
	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without score storage", "error", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
	}

	var rec *trace.Recorder
	if flagTrace != "" {
		rec, err = trace.Create(flagTrace, trace.Header{
			Player:    player,
			Seed:      session.Seed,
			TickRate:  session.TickRate,
			Width:     session.Width,
			Height:    session.Height,
			StartedAt: time.Now(),
		})
		if err != nil {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Recorder = rec
		logger.Info("recording trace", "path", flagTrace)
	}

	runErr := tui.Run(opts)

	if rec != nil {
		if err := rec.Close(); err != nil {
			logger.Error("trace not flushed", "error", err)
		} else {
			logger.Info("trace written", "path", flagTrace, "frames", rec.Frames())
		}
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
