// invasion is a terminal alien-invasion shooter.
//
// Usage:
//
//	invasion play              - Play a game in this terminal
//	invasion serve             - Start SSH server for remote play
//	invasion scores            - Show high scores
//	invasion inspect <trace>   - Summarize a recorded trace
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.invasion/configs, ./configs)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.invasion/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log file for the local game (default: ~/.invasion/invasion.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invasion/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Invasion - defend the bottom of your terminal",
	Long: `Invasion is a terminal shooter. Waves of invaders fall from the top of
the screen; shoot them before they reach the bottom. Every fifth wave a
boss appears that takes ten hits.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  inspect  - Summarize a recorded trace

Examples:
  invasion play
  invasion play --seed 42 --trace run.trace
  invasion serve --ssh :2222
  invasion scores --table
  invasion inspect run.trace`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.invasion/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.invasion/invasion.log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(inspectCmd)
}

// loadConfig loads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) config.InvasionConfig {
	cfg, err := config.LoadInvasion(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Timing.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// playerName returns the name local runs are recorded under.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "anonymous"
}
