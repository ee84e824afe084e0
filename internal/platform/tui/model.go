package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-editor/internal/config"
	"github.com/vovakirdan/tui-editor/internal/core"
	"github.com/vovakirdan/tui-editor/internal/editor"
)

// Rows used by everything except the console viewport:
// toolbar, console border (2), status bar, help bar.
const chromeHeight = 5

// Model is the Bubble Tea model for the editor shell.
type Model struct {
	editor   *editor.Editor
	keys     EditorKeyMap
	help     help.Model
	console  viewport.Model
	styles   styles
	clock    clockTask
	spans    []buttonSpan // Toolbar button extents
	focus    int          // Focused toolbar button
	rendered int          // Console entries already in the viewport
	content  string       // Text of the rendered entries
	notice   string       // Transient status-bar hint
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model around ed.
func NewModel(ed *editor.Editor, cfg core.RuntimeConfig, theme config.ThemeConfig) Model {
	keys := DefaultEditorKeyMap()

	vp := viewport.New(consoleSize(cfg.ScreenW, cfg.ScreenH))
	// Only explicit scroll keys reach the viewport; its defaults collide
	// with command shortcuts.
	vp.KeyMap = viewport.KeyMap{
		Up:       keys.ScrollUp,
		Down:     keys.ScrollDown,
		PageUp:   keys.PageUp,
		PageDown: keys.PageDown,
	}

	m := Model{
		editor:  ed,
		keys:    keys,
		help:    help.New(),
		console: vp,
		styles:  newStyles(theme),
		clock:   newClockTask(cfg.ClockInterval),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW

	// Show the time immediately rather than after the first interval
	ed.TickNow()
	m.clock.start()
	m.syncConsole()
	_, m.spans = m.styles.renderToolbar(m.focus, ed.Indicator())

	return m
}

// consoleSize returns the viewport dimensions for a screen.
func consoleSize(w, h int) (int, int) {
	return max(w-2, 1), max(h-chromeHeight, 1)
}

// Init starts the status clock.
func (m Model) Init() tea.Cmd {
	return m.clock.cmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ClockMsg:
		if !m.clock.accept(msg) {
			return m, nil
		}
		m.editor.Tick(msg.Time)
		return m, m.clock.cmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.clock.stop()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeConsole()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.focus = (m.focus + len(core.Commands) - 1) % len(core.Commands)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.focus = (m.focus + 1) % len(core.Commands)
		return m, nil

	case key.Matches(msg, m.keys.Press):
		m.dispatch(core.Commands[m.focus])
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}

	if cmd := m.keys.Command(msg); cmd != core.CommandNone {
		m.dispatch(cmd)
	}
	return m, nil
}

// handleMouse presses toolbar buttons and forwards wheel events to the console.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y == 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if cmd, ok := hitTest(m.spans, msg.X); ok {
			for i, c := range core.Commands {
				if c == cmd {
					m.focus = i
				}
			}
			m.dispatch(cmd)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.console, cmd = m.console.Update(msg)
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.resizeConsole()
	return m, nil
}

// resizeConsole fits the viewport to the screen and keeps it at the newest line.
func (m *Model) resizeConsole() {
	w, h := consoleSize(m.width, m.height)
	if m.help.ShowAll {
		h = max(h-(fullHelpRows(m.keys)-1), 1)
	}
	m.console.Width = w
	m.console.Height = h
	m.console.GotoBottom()
}

// fullHelpRows returns the height of the expanded help view.
func fullHelpRows(k EditorKeyMap) int {
	rows := 1
	for _, col := range k.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// dispatch sends cmd to the editor and reflects the effects.
func (m *Model) dispatch(cmd core.Command) {
	fx := m.editor.Handle(cmd)
	if fx.Ignored {
		m.notice = fmt.Sprintf("%s is not available while %s", cmd.Label(), fx.State)
	} else {
		m.notice = ""
	}
	m.syncConsole()
}

// syncConsole appends new console lines to the viewport and scrolls to the end.
func (m *Model) syncConsole() {
	fresh := m.editor.Console().Since(m.rendered)
	if len(fresh) == 0 {
		return
	}
	for _, e := range fresh {
		m.content += e.Text
	}
	m.rendered += len(fresh)
	m.console.SetContent(strings.TrimSuffix(m.content, "\n"))
	m.console.GotoBottom()
}

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	toolbar, _ := m.styles.renderToolbar(m.focus, m.editor.Indicator())

	var b strings.Builder
	b.WriteString(toolbar)
	b.WriteString("\n")
	b.WriteString(m.styles.consoleBox.Render(m.console.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.renderStatus(m.editor.State(), m.notice, m.editor.Status().Text(), m.width))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

// Editor returns the underlying editor.
func (m Model) Editor() *editor.Editor {
	return m.editor
}

// Run starts the Bubble Tea program for ed.
func Run(ed *editor.Editor, cfg core.RuntimeConfig, theme config.ThemeConfig) error {
	model := NewModel(ed, cfg, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Toolbar clicks and console wheel
	)

	_, err := p.Run()
	return err
}
