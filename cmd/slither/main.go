// slither is a terminal snake game.
//
// Usage:
//
//	slither play             - Play in the current terminal
//	slither serve            - Start SSH server for remote play
//	slither sessions         - List recorded game sessions
//	slither replay <id>      - Re-simulate a recorded session
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.slither/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slither",
	Short: "Slither - snake in your terminal",
	Long: `Slither is a terminal snake game: steer the snake with the arrow
keys (or hjkl), eat food to grow, press q to quit. The board wraps
around at the edges.

Available commands:
  play      - Play in the current terminal
  serve     - Start SSH server for remote play
  sessions  - List recorded game sessions
  replay    - Re-simulate a recorded session

Examples:
  slither play
  slither play --seed 42
  slither serve --ssh :2222
  slither sessions
  slither replay 3`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slither/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(replayCmd)
}
