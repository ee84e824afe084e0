// Package clock provides the editor status clock.
package clock

import (
	"sync"
	"time"
)

// Layout renders time as zero-padded 24-hour HH:mm:ss.
const Layout = "15:04:05"

// Format renders t with Layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Source supplies the current time.
type Source interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Manual is a settable Source for deterministic ticking.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock starting at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Status is the displayed status-clock text.
type Status struct {
	layout string
	text   string
	ticks  int
}

// NewStatus creates a status display using layout, or Layout if empty.
func NewStatus(layout string) *Status {
	if layout == "" {
		layout = Layout
	}
	return &Status{layout: layout}
}

// Tick refreshes the display from t and returns the new text.
func (s *Status) Tick(t time.Time) string {
	s.text = t.Format(s.layout)
	s.ticks++
	return s.text
}

// Text returns the last rendered time, or an empty string before the first tick.
func (s *Status) Text() string {
	return s.text
}

// Ticks returns how many times the display was refreshed.
func (s *Status) Ticks() int {
	return s.ticks
}
