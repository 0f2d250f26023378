package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slither-tui/slither/internal/config"
	"github.com/slither-tui/slither/internal/core"
	"github.com/slither-tui/slither/internal/engine"
	"github.com/slither-tui/slither/internal/replay"
	"github.com/slither-tui/slither/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded session",
	Long: `Re-run a recorded session headlessly and print the final board.

The stored seed and input trace reproduce the session exactly, so the
printed board and score match what the player saw.

Examples:
  slither replay 3`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid session ID %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entry, err := store.SessionByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving session: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: no session with ID %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'slither sessions' to list recorded sessions.")
		os.Exit(1)
	}

	trace, err := replay.Decode(entry.Trace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding trace: %v\n", err)
		os.Exit(1)
	}

	gcfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		FieldW: entry.Width,
		FieldH: entry.Height,
		Seed:   entry.Seed,
	}
	snap := replay.Simulate(trace, cfg, gcfg)

	fmt.Printf("Session %d — %dx%d, %d ticks, final score %d\n",
		entry.ID, entry.Width, entry.Height, snap.Ticks, snap.Score)
	fmt.Println()
	fmt.Println(renderBoard(snap, core.Bounds{W: entry.Width, H: entry.Height}, gcfg))
}

// renderBoard draws the final snapshot as plain text for stdout.
func renderBoard(snap engine.Snapshot, field core.Bounds, gcfg config.Game) string {
	screen := core.NewScreen(field.W+2, field.H+2)
	screen.DrawBox(0, 0, field.W+2, field.H+2)

	screen.Set(1+snap.Food.X, 1+snap.Food.Y, snap.FoodGlyph)
	for i := len(snap.Body) - 1; i >= 1; i-- {
		seg := snap.Body[i]
		screen.Set(1+seg.X, 1+seg.Y, gcfg.Glyphs.BodyRune())
	}
	head := snap.Body[0]
	screen.Set(1+head.X, 1+head.Y, gcfg.Glyphs.HeadRune())

	return screen.String()
}
