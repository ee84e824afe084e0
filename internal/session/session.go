// Package session implements the play-session state machine of the editor.
// Transitions are pure functions so the logic can be exercised without a UI.
package session

import "github.com/vovakirdan/tui-editor/internal/core"

// State is the play-session state.
type State uint8

const (
	StateStopped State = iota
	StatePlaying
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// Console messages emitted by transitions.
const (
	MsgNewLevel       = "Created new level"
	MsgOpenLevel      = "Opening level dialog"
	MsgSaveLevel      = "Level saved successfully"
	MsgPlayStarted    = "Started play session"
	MsgMapLoaded      = "Map loaded"
	MsgPlayPaused     = "Play session paused"
	MsgPlayStopped    = "Stopped play session"
	MsgReturnedEditor = "Returned to editor"
)

// Effects describes what a transition produced.
type Effects struct {
	Messages []string // Console messages, in emission order

	// Indicator is the Play indicator color to apply when IndicatorSet is true.
	Indicator    core.Color
	IndicatorSet bool

	// Ignored reports that the command was not valid in the current state.
	// Ignored transitions emit nothing.
	Ignored bool
}

// Transition applies cmd to s and returns the resulting state and effects.
// New, Open and Save are valid in any state. Play is valid only while
// stopped; Pause and Stop only while playing.
func Transition(s State, cmd core.Command) (State, Effects) {
	switch cmd {
	case core.CommandNew:
		return s, Effects{Messages: []string{MsgNewLevel}}
	case core.CommandOpen:
		return s, Effects{Messages: []string{MsgOpenLevel}}
	case core.CommandSave:
		return s, Effects{Messages: []string{MsgSaveLevel}}

	case core.CommandPlay:
		if s != StateStopped {
			return s, Effects{Ignored: true}
		}
		return StatePlaying, Effects{
			Messages:     []string{MsgPlayStarted, MsgMapLoaded},
			Indicator:    core.ColorPlayActive,
			IndicatorSet: true,
		}

	case core.CommandPause:
		// There is no paused sub-state; the session keeps playing.
		if s != StatePlaying {
			return s, Effects{Ignored: true}
		}
		return s, Effects{Messages: []string{MsgPlayPaused}}

	case core.CommandStop:
		if s != StatePlaying {
			return s, Effects{Ignored: true}
		}
		// The indicator is reset to the same color Play set.
		return StateStopped, Effects{
			Messages:     []string{MsgPlayStopped, MsgReturnedEditor},
			Indicator:    core.ColorPlayActive,
			IndicatorSet: true,
		}
	}

	return s, Effects{Ignored: true}
}

// Tracker holds the current play-session state.
// It is not safe for concurrent use.
type Tracker struct {
	state State
}

// NewTracker creates a tracker in the Stopped state.
func NewTracker() *Tracker {
	return &Tracker{state: StateStopped}
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// IsPlaying reports whether a play session is active.
func (t *Tracker) IsPlaying() bool {
	return t.state == StatePlaying
}

// Apply runs cmd through Transition and stores the new state.
func (t *Tracker) Apply(cmd core.Command) Effects {
	next, fx := Transition(t.state, cmd)
	t.state = next
	return fx
}
