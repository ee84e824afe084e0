package console

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-editor/internal/clock"
)

func TestLogFormat(t *testing.T) {
	b := New(Options{})

	e := b.Log("Map loaded")
	if e.Text != "LogPlay: Map loaded\n" {
		t.Errorf("Text = %q, want %q", e.Text, "LogPlay: Map loaded\n")
	}
	if e.Seq != 0 || e.Message != "Map loaded" {
		t.Errorf("entry = %+v", e)
	}
}

func TestLogAppendOnly(t *testing.T) {
	b := New(Options{})
	msgs := []string{"one", "two", "", "three"}

	var snapshots [][]string
	for _, m := range msgs {
		b.Log(m)
		snapshots = append(snapshots, b.Lines())
	}

	// Each append grows the buffer by exactly one line and keeps every
	// earlier line untouched.
	for i, snap := range snapshots {
		if len(snap) != i+1 {
			t.Fatalf("after %d logs, len = %d", i+1, len(snap))
		}
		if i > 0 && !reflect.DeepEqual(snap[:i], snapshots[i-1]) {
			t.Errorf("append %d modified earlier lines: %q vs %q", i, snap[:i], snapshots[i-1])
		}
	}

	want := "LogPlay: one\nLogPlay: two\nLogPlay: \nLogPlay: three\n"
	if b.String() != want {
		t.Errorf("String() = %q, want %q", b.String(), want)
	}
}

func TestLinesAreCopies(t *testing.T) {
	b := New(Options{})
	b.Log("a")

	lines := b.Lines()
	lines[0] = "mutated"
	entries := b.Entries()
	entries[0].Text = "mutated"

	if b.Lines()[0] != "LogPlay: a\n" {
		t.Errorf("buffer changed through a returned slice: %q", b.Lines()[0])
	}
}

func TestTimestamps(t *testing.T) {
	m := clock.NewManual(time.Date(2024, 3, 4, 7, 8, 9, 0, time.UTC))
	b := New(Options{Timestamps: true, Clock: m})

	e := b.Log("Started play session")
	want := "[07:08:09] LogPlay: Started play session\n"
	if e.Text != want {
		t.Errorf("Text = %q, want %q", e.Text, want)
	}
	if !e.Time.Equal(m.Now()) {
		t.Errorf("Time = %v, want %v", e.Time, m.Now())
	}
}

func TestCustomPrefix(t *testing.T) {
	b := New(Options{Prefix: "LogEditor"})
	if got := b.Log("x").Text; got != "LogEditor: x\n" {
		t.Errorf("Text = %q", got)
	}
}

func TestSince(t *testing.T) {
	b := New(Options{})
	for _, m := range []string{"a", "b", "c"} {
		b.Log(m)
	}

	tests := []struct {
		seq  int
		want int
	}{
		{-1, 3}, {0, 3}, {1, 2}, {2, 1}, {3, 0}, {10, 0},
	}
	for _, tt := range tests {
		if got := len(b.Since(tt.seq)); got != tt.want {
			t.Errorf("Since(%d) len = %d, want %d", tt.seq, got, tt.want)
		}
	}
	if got := b.Since(1)[0].Message; got != "b" {
		t.Errorf("Since(1)[0] = %q, want b", got)
	}
}

func TestSinks(t *testing.T) {
	var seen []Entry
	var failures int

	b := New(Options{
		OnSinkError: func(e Entry, err error) { failures++ },
	})
	b.AddSink(SinkFunc(func(e Entry) error {
		seen = append(seen, e)
		return nil
	}))
	b.AddSink(SinkFunc(func(e Entry) error {
		return errors.New("disk full")
	}))
	b.AddSink(nil)

	b.Log("first")
	b.Log("second")

	if len(seen) != 2 || seen[0].Message != "first" || seen[1].Seq != 1 {
		t.Errorf("sink saw %+v", seen)
	}
	if failures != 2 {
		t.Errorf("failures = %d, want 2", failures)
	}
	if b.Len() != 2 {
		t.Errorf("sink errors must not drop entries, Len = %d", b.Len())
	}
}
