package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for names that map to no command.
var ErrUnknownCommand = errors.New("unknown command")

// Command represents a semantic editor command, abstracted from the control
// that triggered it. Toolbar buttons, key bindings and the headless CLI all
// produce commands; the editor dispatcher consumes them.
type Command int

const (
	CommandNone  Command = iota
	CommandNew           // N - create a new level
	CommandOpen          // O - open a level
	CommandSave          // S - save the current level
	CommandPlay          // P - start a play session
	CommandPause         // Space - pause the running session
	CommandStop          // X - stop the running session
)

// Commands lists every dispatchable command in toolbar order.
var Commands = []Command{
	CommandNew,
	CommandOpen,
	CommandSave,
	CommandPlay,
	CommandPause,
	CommandStop,
}

// String returns the lowercase name of the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandNew:
		return "new"
	case CommandOpen:
		return "open"
	case CommandSave:
		return "save"
	case CommandPlay:
		return "play"
	case CommandPause:
		return "pause"
	case CommandStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Label returns the toolbar caption for the command.
func (c Command) Label() string {
	switch c {
	case CommandNew:
		return "New"
	case CommandOpen:
		return "Open"
	case CommandSave:
		return "Save"
	case CommandPlay:
		return "Play"
	case CommandPause:
		return "Pause"
	case CommandStop:
		return "Stop"
	default:
		return ""
	}
}

// ParseCommand resolves a command by name, ignoring case and surrounding space.
func ParseCommand(name string) (Command, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Commands {
		if c.String() == n {
			return c, nil
		}
	}
	return CommandNone, fmt.Errorf("core: %w %q", ErrUnknownCommand, name)
}
