package ui

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/selection"
	"github.com/hailam/focuschess/internal/session"
	"github.com/hailam/focuschess/internal/storage"
)

func TestDrawDiamond(t *testing.T) {
	fill := color.RGBA{200, 100, 50, 255}
	img := DrawDiamond(112, 56, fill, color.RGBA{0, 0, 0, 255})
	r, g, b, _ := img.At(56, 28).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("center = %d,%d,%d", r>>8, g>>8, b>>8)
	}
	if _, _, _, a := img.At(2, 2).RGBA(); a != 0 {
		t.Error("corners outside the diamond should be transparent")
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		elapsed, duration, want float64
	}{
		{0, 1, 0},
		{0.1, 1, 0.5},
		{0.5, 1, 1},
		{0.9, 1, 0.5},
		{2, 1, 0},
	}
	for _, tt := range tests {
		if got := fade(tt.elapsed, tt.duration); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("fade(%v, %v) = %v, want %v", tt.elapsed, tt.duration, got, tt.want)
		}
	}
}

func TestToastExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tm := NewToastManager(func() time.Time { return now })
	for i := 0; i < 5; i++ {
		tm.Show(string(rune('a'+i)), ToastInfo, time.Second)
	}
	if got := strings.Join(tm.Messages(), ""); got != "cde" {
		t.Errorf("Messages = %q, want the newest three", got)
	}
	now = now.Add(2 * time.Second)
	tm.Update()
	if tm.Len() != 0 {
		t.Errorf("Len = %d after expiry", tm.Len())
	}
}

func TestFeedbackOnResult(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	f := &Feedback{Toasts: NewToastManager(clock), Animations: NewAnimationManager(clock)}

	f.OnResult(selection.Result{Outcome: selection.PickedUp, From: board.A1, To: board.A1, Piece: board.WhiteRook, Displaced: board.NoPiece})
	f.OnResult(selection.Result{Outcome: selection.Dropped, From: board.A1, To: board.A1, Piece: board.WhiteRook, Displaced: board.NoPiece})
	if f.Toasts.Len() != 0 {
		t.Error("pick up and self drop should not toast")
	}

	f.OnResult(selection.Result{Outcome: selection.Dropped, From: board.A1, To: board.C1, Piece: board.WhiteRook, Displaced: board.WhiteBishop})
	if msgs := f.Toasts.Messages(); len(msgs) != 1 || msgs[0] != "RookWhite takes BishopWhite on C1" {
		t.Errorf("Messages = %q", msgs)
	}
	if !f.Animations.Flashing(board.C1) {
		t.Error("capture should flash the destination")
	}
	now = now.Add(time.Second)
	f.Update()
	if f.Animations.Flashing(board.C1) {
		t.Error("flash should expire")
	}
}

func TestInputCommands(t *testing.T) {
	down := map[ebiten.Key]bool{ebiten.KeyArrowUp: true, ebiten.KeyW: true, ebiten.KeySpace: true}
	ih := NewInputHandler()
	ih.pressed = func(k ebiten.Key) bool { return down[k] }

	cmds := ih.Commands()
	if len(cmds) != 2 || cmds[0] != session.CmdUp || cmds[1] != session.CmdActivate {
		t.Errorf("Commands = %v", cmds)
	}
	if ih.Action() != ActionNone {
		t.Error("no action key was pressed")
	}
	down[ebiten.KeyR] = true
	down[ebiten.KeyEscape] = true
	if ih.Action() != ActionQuit {
		t.Error("Escape should win over R")
	}
}

func TestStatusLine(t *testing.T) {
	v := session.View{
		Squares:   make([]session.SquareView, board.NumSquares),
		Cursor:    board.C1,
		Holding:   true,
		HeldFrom:  board.A1,
		HeldPiece: board.WhiteRook,
	}
	v.Squares[board.C1].Occupied = true
	v.Squares[board.C1].Piece = board.WhiteBishop
	v.LastMove = &storage.Entry{From: board.B1, To: board.C3, Piece: board.WhiteKnight, Displaced: board.NoPiece}

	got := StatusLine(v)
	want := "Cursor C1 (BishopWhite)  Holding RookWhite from A1  Last: KnightWhite B1-C3"
	if got != want {
		t.Errorf("StatusLine = %q, want %q", got, want)
	}
}
