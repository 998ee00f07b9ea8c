// Package focus implements the board cursor driven by directional input.
package focus

import (
	"fmt"

	"github.com/hailam/focuschess/internal/board"
)

// Direction is one of the four cursor movements.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the file and rank change for a direction. Up increases the
// rank, so on screen the cursor climbs towards rank 8.
func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Cursor is the focused square. It is always a valid board square; moving
// past an edge wraps to the opposite edge, so navigation is on a torus.
type Cursor struct {
	sq board.Square
}

// New returns a cursor on square 0 (A1).
func New() *Cursor {
	return &Cursor{sq: board.A1}
}

// Index returns the focused square.
func (c *Cursor) Index() board.Square {
	return c.sq
}

// Move steps the cursor one square in direction d and returns the new square.
func (c *Cursor) Move(d Direction) board.Square {
	df, dr := d.delta()
	file := wrap(c.sq.File()+df, board.NumFiles)
	rank := wrap(c.sq.Rank()+dr, board.NumRanks)
	c.sq = board.NewSquare(file, rank)
	return c.sq
}

// Up moves the cursor towards rank 8.
func (c *Cursor) Up() board.Square { return c.Move(Up) }

// Down moves the cursor towards rank 1.
func (c *Cursor) Down() board.Square { return c.Move(Down) }

// Left moves the cursor towards file A.
func (c *Cursor) Left() board.Square { return c.Move(Left) }

// Right moves the cursor towards file H.
func (c *Cursor) Right() board.Square { return c.Move(Right) }

// Set places the cursor on sq.
func (c *Cursor) Set(sq board.Square) error {
	if !sq.IsValid() {
		return fmt.Errorf("focus: %w: %d", board.ErrInvalidSquare, sq)
	}
	c.sq = sq
	return nil
}

// Reset returns the cursor to square 0.
func (c *Cursor) Reset() {
	c.sq = board.A1
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
