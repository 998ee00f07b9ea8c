package script

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/session"
)

func newScript(t *testing.T, layout board.Layout) (*Script, *bytes.Buffer) {
	t.Helper()
	s, err := session.New(session.Options{Layout: layout})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	var out bytes.Buffer
	return New(s, &out, nil), &out
}

func TestRun(t *testing.T) {
	sc, out := newScript(t, board.Standard())

	in := strings.NewReader(`# rook takes bishop
activate
state
right

RIGHT
activate
state
history
board
up
quit
cursor
`)
	if err := sc.Run(context.Background(), in); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"holding A1 RookWhite",
		"holding A1 RookWhite",
		"cursor B1",
		"cursor C1",
		"dropped RookWhite A1-C1 x BishopWhite",
		"idle",
		"history A1-C1",
		"board rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NRQKBNR",
		"cursor C2",
		"bye",
	}
	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExec(t *testing.T) {
	sc, _ := newScript(t, board.SinglePawn())

	tests := []struct {
		line string
		want string
		quit bool
	}{
		{"d", "cursor A8", false},
		{"activate", "empty A8", false},
		{"u", "cursor A1", false},
		{"enter", "holding A1 PawnWhite", false},
		{"select", "dropped PawnWhite A1-A1", false},
		{"history", "history", false},
		{"jump", `error unknown command "jump"`, false},
		{"up 3", `error unexpected arguments to "up"`, false},
		{"reset", "ok", false},
		{"exit", "bye", true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			resp, quit := sc.Exec(tt.line)
			if resp != tt.want || quit != tt.quit {
				t.Errorf("Exec(%q) = %q, %v; want %q, %v", tt.line, resp, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	sc, out := newScript(t, board.Empty())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sc.Run(ctx, strings.NewReader("up\n")); err != context.Canceled {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
