package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/slither-tui/slither/internal/config"
	"github.com/slither-tui/slither/internal/platform/tui"
	"github.com/slither-tui/slither/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/hjkl - Steer the snake (each press advances one tick)
  Q/Ctrl+C    - Quit

The board wraps around: moving off one edge re-enters from the
opposite edge. Finished sessions are recorded to the database and can
be replayed with 'slither replay'.

Examples:
  slither play
  slither play --seed 42
  slither play --config ./my-slither.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gcfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(store, gcfg, width, height, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
