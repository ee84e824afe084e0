package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-editor/internal/core"
)

// EditorKeyMap defines the key bindings for the editor.
type EditorKeyMap struct {
	New   key.Binding
	Open  key.Binding
	Save  key.Binding
	Play  key.Binding
	Pause key.Binding
	Stop  key.Binding

	Left  key.Binding
	Right key.Binding
	Press key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Pause, k.Stop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Open, k.Save},
		{k.Play, k.Pause, k.Stop},
		{k.Left, k.Right, k.Press},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new level"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open level"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save level"),
		),
		Play: key.NewBinding(
			key.WithKeys("p", "f5"),
			key.WithHelp("p", "play"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x", "shift+f5"),
			key.WithHelp("x", "stop"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev button"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press button"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key message to an editor command.
// Returns CommandNone for keys that are not command shortcuts.
func (k EditorKeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.New):
		return core.CommandNew
	case key.Matches(msg, k.Open):
		return core.CommandOpen
	case key.Matches(msg, k.Save):
		return core.CommandSave
	case key.Matches(msg, k.Play):
		return core.CommandPlay
	case key.Matches(msg, k.Pause):
		return core.CommandPause
	case key.Matches(msg, k.Stop):
		return core.CommandStop
	}
	return core.CommandNone
}

// Binding returns the binding that triggers cmd.
func (k EditorKeyMap) Binding(cmd core.Command) (key.Binding, bool) {
	switch cmd {
	case core.CommandNew:
		return k.New, true
	case core.CommandOpen:
		return k.Open, true
	case core.CommandSave:
		return k.Save, true
	case core.CommandPlay:
		return k.Play, true
	case core.CommandPause:
		return k.Pause, true
	case core.CommandStop:
		return k.Stop, true
	}
	return key.Binding{}, false
}
