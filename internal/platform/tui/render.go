package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-editor/internal/config"
	"github.com/vovakirdan/tui-editor/internal/core"
	"github.com/vovakirdan/tui-editor/internal/session"
)

// Toolbar layout constants
const (
	buttonGap      = " "
	groupSeparator = " │ "
)

// styles holds the lipgloss styles derived from the theme.
type styles struct {
	button        lipgloss.Style
	buttonFocused lipgloss.Style
	indicator     map[core.Color]lipgloss.Style
	consoleBox    lipgloss.Style
	statusBar     lipgloss.Style
	statePlaying  lipgloss.Style
	stateStopped  lipgloss.Style
	notice        lipgloss.Style
	help          lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	button := lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color(theme.Accent)).
		Foreground(lipgloss.Color("252"))

	return styles{
		button: button,
		buttonFocused: button.
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("229")),
		// Background applied to the Play button, keyed by indicator color
		indicator: map[core.Color]lipgloss.Style{
			core.ColorDefault:    lipgloss.NewStyle(),
			core.ColorPlayActive: lipgloss.NewStyle().Background(lipgloss.Color(theme.PlayActive)).Foreground(lipgloss.Color("16")),
		},
		consoleBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)),
		statusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		statePlaying: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.PlayActive)),
		stateStopped: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
		notice: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(theme.Muted)),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
	}
}

// buttonSpan is the horizontal extent [x0, x1) of a toolbar button.
type buttonSpan struct {
	cmd    core.Command
	x0, x1 int
}

// renderToolbar draws the toolbar buttons and returns their extents for
// mouse hit-testing.
func (s styles) renderToolbar(focus int, indicator core.Color) (string, []buttonSpan) {
	var sb strings.Builder
	spans := make([]buttonSpan, 0, len(core.Commands))
	x := 0

	for i, cmd := range core.Commands {
		if i > 0 {
			sep := buttonGap
			if cmd == core.CommandPlay {
				sep = groupSeparator
			}
			sb.WriteString(sep)
			x += lipgloss.Width(sep)
		}

		style := s.button
		if i == focus {
			style = s.buttonFocused
		}
		if cmd == core.CommandPlay {
			if ind, ok := s.indicator[indicator]; ok && indicator != core.ColorDefault {
				style = style.Background(ind.GetBackground()).Foreground(ind.GetForeground())
			}
		}

		rendered := style.Render(cmd.Label())
		w := lipgloss.Width(rendered)
		spans = append(spans, buttonSpan{cmd: cmd, x0: x, x1: x + w})
		sb.WriteString(rendered)
		x += w
	}

	return sb.String(), spans
}

// hitTest returns the command of the button under column x.
func hitTest(spans []buttonSpan, x int) (core.Command, bool) {
	for _, sp := range spans {
		if x >= sp.x0 && x < sp.x1 {
			return sp.cmd, true
		}
	}
	return core.CommandNone, false
}

// renderStatus draws the status bar: play state and notice on the left,
// clock on the right.
func (s styles) renderStatus(state session.State, notice, clockText string, width int) string {
	var left string
	if state == session.StatePlaying {
		left = s.statePlaying.Render("▶ " + state.String())
	} else {
		left = s.stateStopped.Render("■ " + state.String())
	}
	if notice != "" {
		left += "  " + s.notice.Render(notice)
	}

	right := clockText
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return s.statusBar.Render(left + strings.Repeat(" ", gap) + right)
}
