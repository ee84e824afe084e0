// editor is a terminal shell for a game level editor.
//
// Usage:
//
//	editor                      - Start the editor (same as 'editor run')
//	editor run                  - Start the editor
//	editor exec <command>...    - Run commands headlessly and print the console
//	editor commands             - List editor commands and key bindings
//	editor history [session]    - Show journaled sessions or one session's console
//	editor serve                - Start SSH server for remote editing
//
// Global flags:
//
//	--config <path>     - Path to config YAML
//	--db <path>         - Set journal database path (default: ~/.editor/journal.db)
//	--log-level <lvl>   - Diagnostic log level (debug, info, warn, error)
//	--no-journal        - Do not journal console lines
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLogLevel  string
	flagNoJournal bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "editor",
	Short: "Level Editor - a game editor shell in your terminal",
	Long: `Level Editor is a terminal shell for a game level editor: a toolbar,
a console and a status clock, with play sessions you can start,
pause and stop.

Available commands:
  run       - Start the editor (default)
  exec      - Run commands without a UI
  commands  - Show editor commands and key bindings
  history   - Show journaled console sessions
  serve     - Start SSH server for remote editing

Examples:
  editor
  editor exec play pause stop
  editor history
  editor serve --ssh :2222`,
	Run: runEditor,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to journal database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Diagnostic log level (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoJournal, "no-journal", false, "Do not journal console lines")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
