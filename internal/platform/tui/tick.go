// Package tui provides the Bubble Tea integration for the editor.
// It handles the terminal UI loop, input mapping and the status clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockMsg is sent to refresh the status clock.
type ClockMsg struct {
	Time time.Time
	gen  int
}

// clockTask is the periodic status-clock refresh. Each tick schedules the
// next one while the task is running. Stopping bumps the generation so
// ticks already in flight are dropped when they arrive.
type clockTask struct {
	interval time.Duration
	gen      int
	running  bool
}

func newClockTask(interval time.Duration) clockTask {
	if interval <= 0 {
		interval = time.Second
	}
	return clockTask{interval: interval}
}

// start begins a new generation.
func (c *clockTask) start() {
	c.gen++
	c.running = true
}

// stop cancels the task.
func (c *clockTask) stop() {
	c.gen++
	c.running = false
}

// accept reports whether msg belongs to the running generation.
func (c *clockTask) accept(msg ClockMsg) bool {
	return c.running && msg.gen == c.gen
}

// cmd returns a command that delivers the next tick, or nil when stopped.
func (c clockTask) cmd() tea.Cmd {
	if !c.running {
		return nil
	}
	gen := c.gen
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return ClockMsg{Time: t, gen: gen}
	})
}
