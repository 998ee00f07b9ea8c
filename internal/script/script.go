// Package script drives a session from a line-oriented command stream.
//
// Each input line holds one command and produces exactly one response line.
// Blank lines and lines starting with '#' are skipped.
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/logx"
	"github.com/hailam/focuschess/internal/selection"
	"github.com/hailam/focuschess/internal/session"
)

// Script executes protocol lines against a session.
type Script struct {
	session *session.Session
	out     io.Writer
	log     logx.Logger
}

// New creates a script runner writing responses to out.
func New(s *session.Session, out io.Writer, log logx.Logger) *Script {
	if log == nil {
		log = logx.Nop()
	}
	return &Script{session: s, out: out, log: log}
}

// Run reads commands from in until EOF, quit, or ctx is done.
func (sc *Script) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		resp, quit := sc.Exec(line)
		if _, err := fmt.Fprintln(sc.out, resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs one command line and returns its response.
func (sc *Script) Exec(line string) (resp string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "error empty command", false
	}
	if len(fields) > 1 {
		return fmt.Sprintf("error unexpected arguments to %q", fields[0]), false
	}

	switch name := strings.ToLower(fields[0]); name {
	case "quit", "exit":
		return "bye", true
	case "reset":
		if err := sc.session.Reset(); err != nil {
			sc.log.Errorf("script reset: %v", err)
			return "error " + err.Error(), false
		}
		return "ok", false
	case "board":
		return "board " + placement(sc.session.Board().FEN()), false
	case "cursor":
		return "cursor " + sc.session.Cursor().String(), false
	case "state":
		return sc.state(), false
	case "history":
		return sc.history(), false
	default:
		cmd, err := session.ParseCommand(name)
		if err != nil {
			return "error " + err.Error(), false
		}
		return sc.handle(cmd), false
	}
}

func (sc *Script) handle(cmd session.Command) string {
	res, err := sc.session.Handle(cmd)
	if err != nil {
		return "error " + err.Error()
	}
	if cmd != session.CmdActivate {
		return "cursor " + sc.session.Cursor().String()
	}
	switch res.Outcome {
	case selection.PickedUp:
		return fmt.Sprintf("holding %s %s", res.From, res.Piece.Name())
	case selection.Dropped:
		resp := fmt.Sprintf("dropped %s %s-%s", res.Piece.Name(), res.From, res.To)
		if res.Displaced != board.NoPiece {
			resp += " x " + res.Displaced.Name()
		}
		return resp
	default:
		return "empty " + sc.session.Cursor().String()
	}
}

func (sc *Script) state() string {
	origin, piece, ok := sc.session.Held()
	if !ok {
		return "idle"
	}
	return fmt.Sprintf("holding %s %s", origin, piece.Name())
}

func (sc *Script) history() string {
	entries, err := sc.session.History()
	if err != nil {
		return "error " + err.Error()
	}
	var sb strings.Builder
	sb.WriteString("history")
	for _, e := range entries {
		fmt.Fprintf(&sb, " %s-%s", e.From, e.To)
	}
	return sb.String()
}

// placement returns the piece placement field of a FEN string.
func placement(fen string) string {
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		return fen[:i]
	}
	return fen
}
