package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-editor/internal/config"
	"github.com/vovakirdan/tui-editor/internal/console"
	"github.com/vovakirdan/tui-editor/internal/core"
	"github.com/vovakirdan/tui-editor/internal/editor"
	"github.com/vovakirdan/tui-editor/internal/logging"
	"github.com/vovakirdan/tui-editor/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the editor",
	Long: `Start the interactive editor.

Controls:
  N / O / S      - New, Open, Save level
  P              - Play
  Space          - Pause
  X              - Stop
  Left/Right     - Move toolbar focus
  Enter          - Press focused button
  Up/Down, PgUp  - Scroll console
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Toolbar buttons can also be clicked with the mouse.`,
	Run: runEditor,
}

func runEditor(_ *cobra.Command, _ []string) {
	if err := startEditor(mustLoadConfig(), tui.Run); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}

// runFunc drives an editor until the user quits.
type runFunc func(ed *editor.Editor, rt core.RuntimeConfig, theme config.ThemeConfig) error

// startEditor wires logging and the journal around run. Everything it opens
// is closed before it returns.
func startEditor(cfg config.EditorConfig, run runFunc) error {
	logger, logCloser, err := logging.New(cfg.Log, "editor", nil)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Get terminal size early for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:       width,
		ScreenH:       height,
		ClockInterval: cfg.Clock.Interval,
	}

	store, journal := openJournal(cfg, logger)
	var sinks []console.Sink
	if journal != nil {
		sinks = append(sinks, journal)
		logger.Info("journaling console", "session", journal.SessionID())
	}

	ed := editor.New(editor.OptionsFromConfig(cfg, logger, sinks...))
	runErr := run(ed, rt, cfg.Theme)

	if store != nil {
		if err := store.EndSession(journal.SessionID(), time.Now()); err != nil {
			logger.Warn("could not close journal session", "error", err)
		}
		store.Close()
	}

	if runErr != nil {
		logger.Error("editor exited", "error", runErr)
		return runErr
	}
	return nil
}
