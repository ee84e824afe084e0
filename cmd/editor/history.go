package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-editor/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show journaled console sessions",
	Long: `Without arguments, list the most recent editor sessions recorded in the
journal. With a session id, print that session's console.

Examples:
  editor history
  editor history --limit 20
  editor history alice-1717243200000000000`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to list")
}

func runHistory(_ *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		if err := printSession(store, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sessions, err := store.RecentSessions(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sessions {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %-16s  %s\n", maxIDLen, "ID", "Started", "Ended", "Lines")
	fmt.Printf("  %-*s  %-16s  %-16s  %s\n", maxIDLen, "--", "-------", "-----", "-----")

	for _, s := range sessions {
		ended := "open"
		if !s.EndedAt.IsZero() {
			ended = s.EndedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-*s  %-16s  %-16s  %d\n",
			maxIDLen, s.ID, s.StartedAt.Local().Format("2006-01-02 15:04"), ended, s.Entries)
	}

	fmt.Println()
	fmt.Println("Run 'editor history <id>' to print a session's console.")
}

func printSession(store *storage.Store, id string) error {
	info, err := store.Session(id)
	if err != nil {
		return err
	}

	records, err := store.Entries(id, 0)
	if err != nil {
		return err
	}

	fmt.Printf("Session %s (%s) - %s\n\n", info.ID, info.User, info.StartedAt.Local().Format("2006-01-02 15:04:05"))
	for _, r := range records {
		fmt.Print(r.Text)
	}
	return nil
}
