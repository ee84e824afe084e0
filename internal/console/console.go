// Package console implements the editor's append-only log buffer.
//
// Every Log call appends exactly one line of the form "<prefix>: <message>\n".
// Lines are never mutated or removed and the buffer is unbounded.
package console

import (
	"strings"
	"time"

	"github.com/vovakirdan/tui-editor/internal/clock"
)

// DefaultPrefix is the tag written before every console message.
const DefaultPrefix = "LogPlay"

// Entry is a single console line.
type Entry struct {
	Seq     int       // Position in the buffer, starting at 0
	Time    time.Time // When the line was appended
	Message string    // Raw message
	Text    string    // Emitted line, including the trailing newline
}

// Sink observes appended entries, e.g. a persistent journal.
type Sink interface {
	Write(e Entry) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(e Entry) error

// Write calls f(e).
func (f SinkFunc) Write(e Entry) error { return f(e) }

// Options configures a Buffer.
type Options struct {
	Prefix string // Defaults to DefaultPrefix

	// Timestamps prepends "[HH:mm:ss] " to every emitted line.
	Timestamps      bool
	TimestampLayout string // Defaults to clock.Layout

	Clock clock.Source // Defaults to clock.System

	// OnSinkError is called when a sink fails. The entry is kept regardless.
	OnSinkError func(e Entry, err error)
}

// Buffer is the append-only console. It is not safe for concurrent use.
type Buffer struct {
	opts    Options
	entries []Entry
	sinks   []Sink
}

// New creates an empty console buffer.
func New(opts Options) *Buffer {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	if opts.TimestampLayout == "" {
		opts.TimestampLayout = clock.Layout
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	return &Buffer{opts: opts}
}

// AddSink registers s to receive every entry appended from now on.
func (b *Buffer) AddSink(s Sink) {
	if s != nil {
		b.sinks = append(b.sinks, s)
	}
}

// Log appends one line for message and returns the new entry.
func (b *Buffer) Log(message string) Entry {
	now := b.opts.Clock.Now()

	var sb strings.Builder
	if b.opts.Timestamps {
		sb.WriteByte('[')
		sb.WriteString(now.Format(b.opts.TimestampLayout))
		sb.WriteString("] ")
	}
	sb.WriteString(b.opts.Prefix)
	sb.WriteString(": ")
	sb.WriteString(message)
	sb.WriteByte('\n')

	e := Entry{
		Seq:     len(b.entries),
		Time:    now,
		Message: message,
		Text:    sb.String(),
	}
	b.entries = append(b.entries, e)

	for _, s := range b.sinks {
		if err := s.Write(e); err != nil && b.opts.OnSinkError != nil {
			b.opts.OnSinkError(e, err)
		}
	}

	return e
}

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Entries returns a copy of all entries.
func (b *Buffer) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Since returns a copy of the entries with Seq >= seq.
func (b *Buffer) Since(seq int) []Entry {
	if seq < 0 {
		seq = 0
	}
	if seq >= len(b.entries) {
		return nil
	}
	out := make([]Entry, len(b.entries)-seq)
	copy(out, b.entries[seq:])
	return out
}

// Lines returns the emitted lines in order.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Text
	}
	return out
}

// String returns the full console text.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, e := range b.entries {
		sb.WriteString(e.Text)
	}
	return sb.String()
}
