package session

import (
	"fmt"
	"strings"
)

// Command is one discrete input.
type Command int

const (
	CmdUp Command = iota
	CmdDown
	CmdLeft
	CmdRight
	CmdActivate
)

var commandNames = [...]string{
	CmdUp:       "up",
	CmdDown:     "down",
	CmdLeft:     "left",
	CmdRight:    "right",
	CmdActivate: "activate",
}

// String returns the command name.
func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// ParseCommand parses a command name. Single-letter and arrow aliases are
// accepted: u/d/l/r, "enter", "select" and "a" for activate.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return CmdUp, nil
	case "down", "d":
		return CmdDown, nil
	case "left", "l":
		return CmdLeft, nil
	case "right", "r":
		return CmdRight, nil
	case "activate", "a", "enter", "select":
		return CmdActivate, nil
	default:
		return 0, fmt.Errorf("unknown command %q", s)
	}
}
