package session

import (
	"testing"
	"time"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/effect"
	"github.com/hailam/focuschess/internal/projection"
	"github.com/hailam/focuschess/internal/selection"
)

func newSession(t *testing.T, layout board.Layout) *Session {
	t.Helper()
	s, err := New(Options{
		Layout:     layout,
		Projection: projection.OrthogonalConfig(projection.DefaultSquareSize),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func handle(t *testing.T, s *Session, cmds ...Command) selection.Result {
	t.Helper()
	var res selection.Result
	for _, c := range cmds {
		var err error
		res, err = s.Handle(c)
		if err != nil {
			t.Fatalf("Handle(%s): %v", c, err)
		}
	}
	return res
}

func TestRookTakesBishop(t *testing.T) {
	s := newSession(t, board.Standard())

	if s.Cursor() != board.A1 {
		t.Fatalf("cursor starts at %s, want A1", s.Cursor())
	}

	res := handle(t, s, CmdActivate)
	if res.Outcome != selection.PickedUp {
		t.Fatalf("first activate = %s, want picked-up", res.Outcome)
	}
	origin, piece, ok := s.Held()
	if !ok || origin != board.A1 || piece != board.WhiteRook {
		t.Fatalf("Held = %s %s %v, want A1 RookWhite", origin, piece.Name(), ok)
	}

	handle(t, s, CmdRight, CmdRight)
	if s.Cursor() != board.C1 || s.Cursor().Index() != 16 {
		t.Fatalf("cursor at %s (%d), want C1 (16)", s.Cursor(), s.Cursor().Index())
	}

	res = handle(t, s, CmdActivate)
	if res.Outcome != selection.Dropped || res.Displaced != board.WhiteBishop {
		t.Errorf("drop result = %+v", res)
	}
	if s.IsHolding() {
		t.Error("session should be idle after the drop")
	}

	b := s.Board()
	if _, ok := b.PieceAt(board.A1); ok {
		t.Error("A1 should be empty")
	}
	if p, _ := b.PieceAt(board.C1); p != board.WhiteRook {
		t.Errorf("C1 = %s, want RookWhite", p.Name())
	}
	if b.Count() != 31 {
		t.Errorf("Count = %d, want 31 (bishop destroyed)", b.Count())
	}

	history, err := s.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].From != board.A1 || history[0].To != board.C1 || history[0].Displaced != board.WhiteBishop {
		t.Errorf("History = %+v", history)
	}
}

func TestSinglePawnRoundTrip(t *testing.T) {
	s := newSession(t, board.SinglePawn())

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sched := effect.NewScheduler(func() time.Time { return clock })
	deselect := effect.NewDeselect(sched, 250*time.Millisecond)

	handle(t, s, CmdActivate)
	if !s.IsHolding() {
		t.Fatal("pawn should be held")
	}
	handle(t, s, CmdDown, CmdUp)
	if s.Cursor() != board.A1 {
		t.Fatalf("cursor at %s, want A1", s.Cursor())
	}

	res := handle(t, s, CmdActivate)
	if res.Outcome != selection.Dropped {
		t.Fatalf("second activate = %s", res.Outcome)
	}
	deselect.Dropped(res.To)

	// State transitioned synchronously, before the effect fires.
	if s.State() != selection.Idle {
		t.Error("selection should be idle right after the drop")
	}
	fenAtDrop := s.Board().FEN()
	if p, ok := s.Board().PieceAt(0); !ok || p != board.WhitePawn {
		t.Fatalf("square 0 = %s, want PawnWhite", p.Name())
	}

	// Input keeps flowing while the effect is pending.
	handle(t, s, CmdRight, CmdLeft)
	if !deselect.Active(board.A1) {
		t.Error("deselect effect should still be pending")
	}

	clock = clock.Add(300 * time.Millisecond)
	sched.Run()
	if deselect.Fired() != 1 || deselect.Active(board.A1) {
		t.Error("deselect effect should have fired")
	}
	if s.Board().FEN() != fenAtDrop || s.State() != selection.Idle {
		t.Error("deselect effect altered core state")
	}

	// Self drop is not a move.
	if history, _ := s.History(); len(history) != 0 {
		t.Errorf("History = %+v, want empty", history)
	}
}

func TestActivateEmptyIsNoOp(t *testing.T) {
	s := newSession(t, board.Standard())
	handle(t, s, CmdUp, CmdUp, CmdUp) // A4
	before := s.Board().FEN()

	res := handle(t, s, CmdActivate)
	if res.Outcome != selection.NoOp {
		t.Errorf("Outcome = %s, want no-op", res.Outcome)
	}
	if s.IsHolding() || s.Board().FEN() != before {
		t.Error("no-op activation changed state")
	}
}

func TestView(t *testing.T) {
	s := newSession(t, board.Standard())
	handle(t, s, CmdUp, CmdActivate) // pick up A2 pawn

	v := s.View()
	if len(v.Squares) != board.NumSquares {
		t.Fatalf("view has %d squares", len(v.Squares))
	}
	if v.Cursor != board.A2 || !v.Holding || v.HeldFrom != board.A2 || v.HeldPiece != board.WhitePawn {
		t.Errorf("view = cursor %s holding %v from %s piece %s", v.Cursor, v.Holding, v.HeldFrom, v.HeldPiece.Name())
	}

	a2 := v.At(board.A2)
	if !a2.Focused || !a2.Held || a2.Occupied || a2.Piece != board.WhitePawn {
		t.Errorf("A2 view = %+v", a2)
	}
	a1 := v.At(board.A1)
	if a1.Focused || a1.Held || !a1.Occupied || a1.Piece != board.WhiteRook {
		t.Errorf("A1 view = %+v", a1)
	}
	if a1.Light() || !a2.Light() {
		t.Error("A1 should be dark and A2 light")
	}
	if a1.Point.X != 0 || a1.Point.Y != 448 {
		t.Errorf("A1 at (%d, %d)", a1.Point.X, a1.Point.Y)
	}

	focused := 0
	for _, sv := range v.Squares {
		if sv.Focused {
			focused++
		}
	}
	if focused != 1 {
		t.Errorf("%d focused squares, want 1", focused)
	}
}

func TestDrawListIsometric(t *testing.T) {
	pc, _ := projection.IsometricPreset(projection.PresetRaised)
	s, err := New(Options{Layout: board.Standard(), Projection: pc})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	list := s.View().DrawList()
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		if prev.Point.DrawOrder > cur.Point.DrawOrder {
			t.Fatalf("draw list out of order at %d", i)
		}
		if prev.Point.DrawOrder == cur.Point.DrawOrder && prev.Square > cur.Square {
			t.Fatalf("ties not in enumeration order at %d", i)
		}
	}
	if list[0].Square != board.A1 || list[len(list)-1].Square != board.H8 {
		t.Errorf("draw list runs %s..%s", list[0].Square, list[len(list)-1].Square)
	}
}

func TestReset(t *testing.T) {
	s := newSession(t, board.Standard())
	handle(t, s, CmdActivate, CmdUp, CmdUp, CmdActivate, CmdRight, CmdActivate)

	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	if s.Cursor() != board.A1 || s.IsHolding() {
		t.Error("Reset should restore cursor and selection")
	}
	if s.Board().Count() != 32 {
		t.Errorf("Count = %d after Reset", s.Board().Count())
	}
	if v := s.View(); v.Moves != 0 || v.LastMove != nil {
		t.Error("Reset should clear the journal")
	}
}

func TestMalformedLayout(t *testing.T) {
	_, err := New(Options{Layout: board.Layout{
		Name:       "twice",
		Placements: []board.Placement{{Square: board.A1, Piece: board.WhiteKing}, {Square: board.A1, Piece: board.WhiteKing}},
	}})
	if err == nil {
		t.Fatal("malformed layout should fail at startup")
	}
}

func TestParseCommand(t *testing.T) {
	for in, want := range map[string]Command{
		"up":       CmdUp,
		"D":        CmdDown,
		"left":     CmdLeft,
		" right ":  CmdRight,
		"activate": CmdActivate,
		"enter":    CmdActivate,
	} {
		got, err := ParseCommand(in)
		if err != nil || got != want {
			t.Errorf("ParseCommand(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseCommand("jump"); err == nil {
		t.Error("unknown command should fail")
	}
	if CmdActivate.String() != "activate" || Command(99).String() != "unknown" {
		t.Error("Command.String mismatch")
	}
}
