package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invasion/internal/trace"
)

var flagInspectEvents bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <trace>",
	Short: "Summarize a recorded trace",
	Long: `Read a trace written by 'invasion play --trace' and print what happened:
ticks played, final score, highest wave, kills and lives lost.

A trace is a debugging log. It can not be loaded back into a game.

Examples:
  invasion inspect run.trace
  invasion inspect run.trace --events`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&flagInspectEvents, "events", false, "Print every event with its tick")
}

func runInspect(_ *cobra.Command, args []string) {
	r, err := trace.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	h := r.Header()
	fmt.Printf("Trace %s\n", args[0])
	fmt.Printf("  player   %s\n", h.Player)
	fmt.Printf("  started  %s\n", h.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  seed     %d\n", h.Seed)
	fmt.Printf("  arena    %.0fx%.0f at %d ticks/s\n", h.Width, h.Height, h.TickRate)
	fmt.Println()

	if flagInspectEvents {
		if err := printEvents(os.Stdout, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sum, err := trace.Summarize(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seconds := 0.0
	if h.TickRate > 0 {
		seconds = float64(sum.Ticks) / float64(h.TickRate)
	}
	fmt.Printf("  ticks         %d (%.1fs)\n", sum.Ticks, seconds)
	fmt.Printf("  final score   %d\n", sum.FinalScore)
	fmt.Printf("  highest wave  %d\n", sum.HighestWave)
	fmt.Printf("  shots fired   %d\n", sum.ShotsFired)
	fmt.Printf("  enemy kills   %d\n", sum.EnemyKills)
	fmt.Printf("  boss kills    %d\n", sum.BossKills)
	fmt.Printf("  lives lost    %d\n", sum.LivesLost)
	fmt.Printf("  game overs    %d\n", sum.GameOvers)
	fmt.Printf("  restarts      %d\n", sum.Restarts)
}

// printEvents writes one line per recorded event.
func printEvents(w io.Writer, r *trace.Reader) error {
	for {
		fr, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		for _, e := range fr.Events {
			fmt.Fprintf(w, "%8d  %-18s", fr.Snapshot.Tick, e.Kind)
			switch {
			case e.Points > 0:
				fmt.Fprintf(w, "  points=%d", e.Points)
			case e.Health > 0:
				fmt.Fprintf(w, "  health=%d", e.Health)
			}
			if e.Wave > 0 {
				fmt.Fprintf(w, "  wave=%d", e.Wave)
			}
			if e.Cause != 0 {
				fmt.Fprintf(w, "  lives=%d cause=%s", e.Lives, e.Cause)
			}
			fmt.Fprintln(w)
		}
	}
}
