package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slither-tui/slither/internal/storage"
)

var flagSessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded game sessions",
	Long: `Show the most recently recorded game sessions.

Each finished game is stored as a seed plus input trace, which is
enough to reproduce the whole session with 'slither replay <id>'.

Examples:
  slither sessions
  slither sessions --limit 50`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 20, "Maximum number of sessions to list")
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagSessionsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slither play' to record the first one!")
		return
	}

	fmt.Println("Recent sessions:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-9s  %-6s  %s\n", "ID", "Field", "Ticks", "Date")
	fmt.Printf("  %-4s  %-9s  %-6s  %s\n", "--", "-----", "-----", "----")

	for _, e := range sessions {
		field := fmt.Sprintf("%dx%d", e.Width, e.Height)
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-9s  %-6d  %s\n", e.ID, field, e.Ticks, dateStr)
	}

	fmt.Println()
	fmt.Println("Run 'slither replay <id>' to re-simulate a session.")
}
