// Package editor is the headless command dispatcher of the level-editor shell.
//
// An Editor owns the play-session tracker, the console buffer, the status
// clock and the Play indicator. Every control (toolbar button, key binding,
// CLI argument) is reduced to a core.Command and passed to Handle, so the
// whole editor can be driven and tested without a terminal.
package editor

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-editor/internal/clock"
	"github.com/vovakirdan/tui-editor/internal/console"
	"github.com/vovakirdan/tui-editor/internal/core"
	"github.com/vovakirdan/tui-editor/internal/logging"
	"github.com/vovakirdan/tui-editor/internal/session"
)

// Startup messages, logged once when an editor is created.
const (
	MsgInitialized = "Game Editor initialized successfully."
	MsgReady       = "Ready to create amazing games!"
)

// Options configures an Editor.
type Options struct {
	Console     console.Options
	ClockLayout string       // Status clock layout, defaults to clock.Layout
	Clock       clock.Source // Defaults to clock.System
	Sinks       []console.Sink
	Logger      *log.Logger // Defaults to a discarding logger
}

// Effects is the outcome of handling one command.
type Effects struct {
	Command   core.Command
	State     session.State
	Entries   []console.Entry // Console lines appended by this command
	Indicator core.Color      // Indicator color after the command
	Ignored   bool            // Command was invalid in the previous state
}

// Editor dispatches commands. It is not safe for concurrent use.
type Editor struct {
	tracker   *session.Tracker
	console   *console.Buffer
	status    *clock.Status
	source    clock.Source
	indicator core.Color
	logger    *log.Logger
}

// New creates an editor and writes the startup lines to its console.
func New(opts Options) *Editor {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Console.Clock == nil {
		opts.Console.Clock = opts.Clock
	}

	logger := opts.Logger
	if opts.Console.OnSinkError == nil {
		opts.Console.OnSinkError = func(e console.Entry, err error) {
			logger.Warn("console sink failed", "seq", e.Seq, "error", err)
		}
	}

	buf := console.New(opts.Console)
	for _, s := range opts.Sinks {
		buf.AddSink(s)
	}

	e := &Editor{
		tracker:   session.NewTracker(),
		console:   buf,
		status:    clock.NewStatus(opts.ClockLayout),
		source:    opts.Clock,
		indicator: core.ColorDefault,
		logger:    logger,
	}

	e.console.Log(MsgInitialized)
	e.console.Log(MsgReady)
	logger.Debug("editor initialized")

	return e
}

// Handle applies cmd and returns its effects.
func (e *Editor) Handle(cmd core.Command) Effects {
	from := e.tracker.State()
	fx := e.tracker.Apply(cmd)

	out := Effects{
		Command: cmd,
		State:   e.tracker.State(),
		Ignored: fx.Ignored,
	}

	if fx.Ignored {
		e.logger.Debug("command ignored", "command", cmd, "state", from)
		out.Indicator = e.indicator
		return out
	}

	for _, msg := range fx.Messages {
		out.Entries = append(out.Entries, e.console.Log(msg))
	}
	if fx.IndicatorSet {
		e.indicator = fx.Indicator
	}
	out.Indicator = e.indicator

	e.logger.Debug("command handled",
		"command", cmd,
		"from", from,
		"to", out.State,
		"lines", len(out.Entries),
	)
	return out
}

// HandleAll applies commands in order and returns each command's effects.
func (e *Editor) HandleAll(cmds ...core.Command) []Effects {
	out := make([]Effects, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, e.Handle(c))
	}
	return out
}

// Tick refreshes the status clock from t and returns the display text.
func (e *Editor) Tick(t time.Time) string {
	return e.status.Tick(t)
}

// TickNow refreshes the status clock from the editor's clock source.
func (e *Editor) TickNow() string {
	return e.status.Tick(e.source.Now())
}

// State returns the play-session state.
func (e *Editor) State() session.State {
	return e.tracker.State()
}

// IsPlaying reports whether a play session is active.
func (e *Editor) IsPlaying() bool {
	return e.tracker.IsPlaying()
}

// Indicator returns the current Play indicator color.
func (e *Editor) Indicator() core.Color {
	return e.indicator
}

// Console returns the console buffer.
func (e *Editor) Console() *console.Buffer {
	return e.console
}

// Status returns the status clock display.
func (e *Editor) Status() *clock.Status {
	return e.status
}
