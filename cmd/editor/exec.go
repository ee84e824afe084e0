package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-editor/internal/config"
	"github.com/vovakirdan/tui-editor/internal/core"
	"github.com/vovakirdan/tui-editor/internal/editor"
	"github.com/vovakirdan/tui-editor/internal/logging"
)

var execCmd = &cobra.Command{
	Use:   "exec <command>...",
	Short: "Run editor commands without a UI",
	Long: `Run editor commands in order against a fresh editor, then print the
console and the final play-session state.

Commands: new, open, save, play, pause, stop

Examples:
  editor exec play
  editor exec play play stop
  editor exec new save play pause stop`,
	Args: cobra.MinimumNArgs(1),
	Run:  runExec,
}

func runExec(_ *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	if err := execCommands(os.Stdout, cfg, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'editor commands' to see available commands.")
		os.Exit(1)
	}
}

// execCommands parses every name before running any of them, so an unknown
// name leaves no partial output.
func execCommands(w io.Writer, cfg config.EditorConfig, names []string) error {
	cmds := make([]core.Command, 0, len(names))
	for _, name := range names {
		c, err := core.ParseCommand(name)
		if err != nil {
			return err
		}
		cmds = append(cmds, c)
	}

	logger, closer, err := logging.New(config.LogConfig{Level: cfg.Log.Level}, "editor", os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	ed := editor.New(editor.OptionsFromConfig(cfg, logger))
	for _, fx := range ed.HandleAll(cmds...) {
		if fx.Ignored {
			logger.Info("command ignored", "command", fx.Command, "state", fx.State)
		}
	}

	if _, err := io.WriteString(w, ed.Console().String()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "state: %s\n", ed.State())
	return err
}
