package tui

import (
	"testing"
	"time"
)

func TestClockTaskLifecycle(t *testing.T) {
	c := newClockTask(time.Second)
	if c.cmd() != nil {
		t.Error("stopped task should not schedule ticks")
	}

	c.start()
	first := ClockMsg{gen: c.gen}
	if !c.accept(first) || c.cmd() == nil {
		t.Error("running task should accept its own ticks")
	}

	c.stop()
	if c.accept(first) || c.cmd() != nil {
		t.Error("stopped task accepted a tick")
	}

	// Restarting does not revive ticks from an earlier generation
	c.start()
	if c.accept(first) {
		t.Error("restarted task accepted a stale tick")
	}
	if !c.accept(ClockMsg{gen: c.gen}) {
		t.Error("restarted task rejected a current tick")
	}
}

func TestClockTaskDefaultInterval(t *testing.T) {
	if c := newClockTask(0); c.interval != time.Second {
		t.Errorf("interval = %v, want 1s", c.interval)
	}
}
