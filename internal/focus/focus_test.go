package focus

import (
	"errors"
	"testing"

	"github.com/hailam/focuschess/internal/board"
)

func TestStartsAtSquareZero(t *testing.T) {
	if got := New().Index(); got != 0 {
		t.Errorf("new cursor at %s, want A1", got)
	}
}

func TestDirections(t *testing.T) {
	tests := []struct {
		start board.Square
		dir   Direction
		want  board.Square
	}{
		{board.D4, Up, board.D5},
		{board.D4, Down, board.D3},
		{board.D4, Left, board.C4},
		{board.D4, Right, board.E4},
		{board.A1, Right, board.B1},
		// Wraparound at each edge
		{board.D8, Up, board.D1},
		{board.D1, Down, board.D8},
		{board.A4, Left, board.H4},
		{board.H4, Right, board.A4},
		{board.A1, Left, board.H1},
		{board.H8, Up, board.H1},
	}
	for _, tt := range tests {
		c := New()
		if err := c.Set(tt.start); err != nil {
			t.Fatal(err)
		}
		if got := c.Move(tt.dir); got != tt.want {
			t.Errorf("%s from %s = %s, want %s", tt.dir, tt.start, got, tt.want)
		}
		if c.Index() != tt.want {
			t.Errorf("Index after %s from %s = %s", tt.dir, tt.start, c.Index())
		}
	}
}

func TestTorus(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		for _, sq := range board.Squares() {
			c := New()
			c.Set(sq)
			for i := 0; i < 8; i++ {
				if !c.Move(d).IsValid() {
					t.Fatalf("%s from %s left the board", d, sq)
				}
			}
			if c.Index() != sq {
				t.Errorf("8x %s from %s ended at %s", d, sq, c.Index())
			}
		}
	}
}

func TestOppositeMovesCancel(t *testing.T) {
	c := New()
	c.Set(board.F6)
	c.Down()
	c.Up()
	c.Left()
	c.Right()
	if c.Index() != board.F6 {
		t.Errorf("cursor at %s, want F6", c.Index())
	}
}

func TestSetInvalid(t *testing.T) {
	c := New()
	c.Set(board.C3)
	if err := c.Set(board.NoSquare); !errors.Is(err, board.ErrInvalidSquare) {
		t.Errorf("Set(NoSquare) error = %v", err)
	}
	if c.Index() != board.C3 {
		t.Error("failed Set must not move the cursor")
	}
	c.Reset()
	if c.Index() != board.A1 {
		t.Error("Reset should return to A1")
	}
}
