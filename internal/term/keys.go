package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/hailam/focuschess/internal/session"
)

type keyBinding struct {
	k tcell.Key
	r rune
	c session.Command
}

var keyBindings = []keyBinding{
	{k: tcell.KeyUp, c: session.CmdUp},
	{k: tcell.KeyRune, r: 'w', c: session.CmdUp},
	{k: tcell.KeyRune, r: 'k', c: session.CmdUp},
	{k: tcell.KeyDown, c: session.CmdDown},
	{k: tcell.KeyRune, r: 's', c: session.CmdDown},
	{k: tcell.KeyRune, r: 'j', c: session.CmdDown},
	{k: tcell.KeyLeft, c: session.CmdLeft},
	{k: tcell.KeyRune, r: 'a', c: session.CmdLeft},
	{k: tcell.KeyRune, r: 'h', c: session.CmdLeft},
	{k: tcell.KeyRight, c: session.CmdRight},
	{k: tcell.KeyRune, r: 'd', c: session.CmdRight},
	{k: tcell.KeyRune, r: 'l', c: session.CmdRight},
	{k: tcell.KeyEnter, c: session.CmdActivate},
	{k: tcell.KeyRune, r: ' ', c: session.CmdActivate},
}

// KeyCommand maps a key event to a session command.
func KeyCommand(ev *tcell.EventKey) (session.Command, bool) {
	for _, b := range keyBindings {
		if ev.Key() != b.k {
			continue
		}
		if b.k == tcell.KeyRune && ev.Rune() != b.r {
			continue
		}
		return b.c, true
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func isReset(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'r'
}
