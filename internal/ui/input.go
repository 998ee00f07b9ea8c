package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hailam/focuschess/internal/session"
)

// Action is a frame-level request that is not a session command.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionToggleSound
	ActionQuit
)

// Binding maps a key to a session command.
type Binding struct {
	Key     ebiten.Key
	Command session.Command
}

// DefaultBindings returns arrow keys, WASD, and Enter/Space for activate.
func DefaultBindings() []Binding {
	return []Binding{
		{ebiten.KeyArrowUp, session.CmdUp},
		{ebiten.KeyW, session.CmdUp},
		{ebiten.KeyArrowDown, session.CmdDown},
		{ebiten.KeyS, session.CmdDown},
		{ebiten.KeyArrowLeft, session.CmdLeft},
		{ebiten.KeyA, session.CmdLeft},
		{ebiten.KeyArrowRight, session.CmdRight},
		{ebiten.KeyD, session.CmdRight},
		{ebiten.KeyEnter, session.CmdActivate},
		{ebiten.KeySpace, session.CmdActivate},
	}
}

var actionKeys = map[ebiten.Key]Action{
	ebiten.KeyR:      ActionReset,
	ebiten.KeyM:      ActionToggleSound,
	ebiten.KeyEscape: ActionQuit,
}

// InputHandler turns key presses into session commands.
type InputHandler struct {
	bindings []Binding
	pressed  func(ebiten.Key) bool
}

// NewInputHandler creates an input handler with the default bindings.
func NewInputHandler() *InputHandler {
	return &InputHandler{
		bindings: DefaultBindings(),
		pressed:  inpututil.IsKeyJustPressed,
	}
}

// Commands returns the commands pressed this frame, in binding order. A
// command appears once even when two of its keys were pressed together.
func (ih *InputHandler) Commands() []session.Command {
	var cmds []session.Command
	seen := make(map[session.Command]bool)
	for _, b := range ih.bindings {
		if seen[b.Command] || !ih.pressed(b.Key) {
			continue
		}
		seen[b.Command] = true
		cmds = append(cmds, b.Command)
	}
	return cmds
}

// Action returns the frame-level action pressed this frame, if any.
func (ih *InputHandler) Action() Action {
	for _, key := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyR, ebiten.KeyM} {
		if ih.pressed(key) {
			return actionKeys[key]
		}
	}
	return ActionNone
}
