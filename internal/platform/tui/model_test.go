package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-editor/internal/clock"
	"github.com/vovakirdan/tui-editor/internal/config"
	"github.com/vovakirdan/tui-editor/internal/core"
	"github.com/vovakirdan/tui-editor/internal/editor"
	"github.com/vovakirdan/tui-editor/internal/session"
)

var testStart = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ed := editor.New(editor.Options{Clock: clock.NewManual(testStart)})
	return NewModel(ed, core.DefaultConfig(), config.DefaultEditorConfig().Theme)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestNewModelShowsStartupConsole(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	for _, want := range []string{
		"LogPlay: Game Editor initialized successfully.",
		"LogPlay: Ready to create amazing games!",
		"New", "Open", "Save", "Play", "Pause", "Stop",
		"04:05:06",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.Init() == nil {
		t.Error("Init should start the clock")
	}
}

func TestKeyCommands(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('p'))
	if !m.Editor().IsPlaying() {
		t.Fatal("p should start a play session")
	}
	lines := m.Editor().Console().Len()

	// Play again is a no-op
	m, _ = update(t, m, runeKey('p'))
	if m.Editor().Console().Len() != lines {
		t.Error("second Play appended console lines")
	}
	if m.notice == "" {
		t.Error("ignored command should leave a status notice")
	}

	m, _ = update(t, m, runeKey(' '))
	if got := m.Editor().Console().Lines()[lines]; got != "LogPlay: Play session paused\n" {
		t.Errorf("space line = %q", got)
	}

	m, _ = update(t, m, runeKey('x'))
	if m.Editor().State() != session.StateStopped {
		t.Errorf("x should stop, state = %v", m.Editor().State())
	}
	if m.notice != "" {
		t.Errorf("notice not cleared: %q", m.notice)
	}
	if !strings.Contains(m.View(), "LogPlay: Returned to editor") {
		t.Error("console view not synced")
	}
}

func TestConsoleSyncAppendsNewEntries(t *testing.T) {
	m := newTestModel(t)
	if m.rendered != 2 {
		t.Fatalf("rendered = %d after startup, want 2", m.rendered)
	}

	for _, r := range []rune{'n', 'p', 'p', ' ', 'x', 's'} {
		m, _ = update(t, m, runeKey(r))
	}

	buf := m.Editor().Console()
	if m.rendered != buf.Len() {
		t.Errorf("rendered = %d, console has %d entries", m.rendered, buf.Len())
	}
	if m.content != buf.String() {
		t.Errorf("viewport content drifted from console:\n got %q\nwant %q", m.content, buf.String())
	}
}

func TestToolbarFocusAndPress(t *testing.T) {
	m := newTestModel(t)

	// Move focus from New to Save and press it
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	lines := m.Editor().Console().Lines()
	if got := lines[len(lines)-1]; got != "LogPlay: Level saved successfully\n" {
		t.Errorf("last line = %q", got)
	}

	// Wrap around to the left
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if core.Commands[m.focus] != core.CommandStop {
		t.Errorf("focus = %v, want Stop", core.Commands[m.focus])
	}
}

func TestMouseClickPressesButton(t *testing.T) {
	m := newTestModel(t)

	var playSpan buttonSpan
	for _, sp := range m.spans {
		if sp.cmd == core.CommandPlay {
			playSpan = sp
		}
	}

	click := tea.MouseMsg{X: playSpan.x0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, click)
	if !m.Editor().IsPlaying() {
		t.Error("clicking Play did not start a session")
	}
	if core.Commands[m.focus] != core.CommandPlay {
		t.Errorf("focus = %v, want Play", core.Commands[m.focus])
	}

	// Clicks below the toolbar never dispatch
	before := m.Editor().Console().Len()
	off := tea.MouseMsg{X: playSpan.x0, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, off)
	if m.Editor().Console().Len() != before {
		t.Error("click outside toolbar dispatched a command")
	}
}

func TestClockTicks(t *testing.T) {
	m := newTestModel(t)

	tick := ClockMsg{Time: testStart.Add(time.Second), gen: m.clock.gen}
	m, cmd := update(t, m, tick)
	if got := m.Editor().Status().Text(); got != "04:05:07" {
		t.Errorf("status = %q, want 04:05:07", got)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	stale := ClockMsg{Time: testStart.Add(time.Hour), gen: m.clock.gen - 1}
	m, cmd = update(t, m, stale)
	if cmd != nil || m.Editor().Status().Text() != "04:05:07" {
		t.Error("stale tick was applied")
	}
}

func TestQuitStopsClock(t *testing.T) {
	m := newTestModel(t)
	gen := m.clock.gen

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}

	m, cmd = update(t, m, ClockMsg{Time: testStart, gen: gen})
	if cmd != nil || m.Editor().Status().Ticks() != 1 {
		t.Error("tick after quit was applied")
	}
}

func TestResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.console.Width != 118 || m.console.Height != 35 {
		t.Errorf("console size = %dx%d, want 118x35", m.console.Width, m.console.Height)
	}

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll || m.console.Height >= 35 {
		t.Errorf("full help should shrink the console, height = %d", m.console.Height)
	}
}
