// Package selection implements the pick-up and drop state machine.
//
// The controller is either Idle or Holding a single piece. One input,
// Activate, drives every transition:
//
//	Idle    + piece under cursor  -> Holding(cursor, piece), piece lifted off the board
//	Idle    + empty square        -> Idle (no-op)
//	Holding + any square          -> Idle, piece dropped on the cursor square
//
// Dropping replaces whatever occupies the destination. No legality check of
// any kind is performed.
package selection

import (
	"fmt"

	"github.com/hailam/focuschess/internal/board"
)

// State is the controller state.
type State int

const (
	Idle State = iota
	Holding
)

// String returns the state name.
func (s State) String() string {
	if s == Holding {
		return "holding"
	}
	return "idle"
}

// Outcome describes what an activation did.
type Outcome int

const (
	NoOp Outcome = iota
	PickedUp
	Dropped
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case PickedUp:
		return "picked-up"
	case Dropped:
		return "dropped"
	default:
		return "no-op"
	}
}

// Result reports a transition. From is the origin square of the held piece;
// To is the drop square. Displaced is the piece that was destroyed by the
// drop, or NoPiece.
type Result struct {
	Outcome   Outcome
	From      board.Square
	To        board.Square
	Piece     board.Piece
	Displaced board.Piece
}

// Controller is the selection state machine for one board.
type Controller struct {
	board  *board.Board
	state  State
	origin board.Square
	piece  board.Piece
}

// New returns an idle controller over b.
func New(b *board.Board) *Controller {
	return &Controller{
		board:  b,
		origin: board.NoSquare,
		piece:  board.NoPiece,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// IsHolding reports whether a piece is held.
func (c *Controller) IsHolding() bool {
	return c.state == Holding
}

// Held returns the origin square and the held piece while Holding.
func (c *Controller) Held() (board.Square, board.Piece, bool) {
	if c.state != Holding {
		return board.NoSquare, board.NoPiece, false
	}
	return c.origin, c.piece, true
}

// Activate applies the activate input against the focused square.
//
// An error means a broken invariant: the held piece could not be returned
// to its origin or the move found no piece there. The controller stays
// Holding in that case so the piece is not lost.
func (c *Controller) Activate(cursor board.Square) (Result, error) {
	if !cursor.IsValid() {
		return Result{}, fmt.Errorf("activate: %w: %d", board.ErrInvalidSquare, cursor)
	}
	if c.state == Holding {
		return c.drop(cursor)
	}
	return c.pickUp(cursor), nil
}

func (c *Controller) pickUp(cursor board.Square) Result {
	p, ok := c.board.Remove(cursor)
	if !ok {
		return Result{Outcome: NoOp, From: board.NoSquare, To: board.NoSquare, Piece: board.NoPiece, Displaced: board.NoPiece}
	}
	c.state = Holding
	c.origin = cursor
	c.piece = p
	return Result{Outcome: PickedUp, From: cursor, To: board.NoSquare, Piece: p, Displaced: board.NoPiece}
}

func (c *Controller) drop(cursor board.Square) (Result, error) {
	// The origin has been empty since pick-up; put the piece back and let
	// the board relocate it.
	if err := c.board.Place(c.origin, c.piece); err != nil {
		return Result{}, fmt.Errorf("drop %s from %s: %w", c.piece.Name(), c.origin, err)
	}
	displaced, err := c.board.Move(c.origin, cursor)
	if err != nil {
		c.board.Remove(c.origin)
		return Result{}, fmt.Errorf("drop %s from %s: %w", c.piece.Name(), c.origin, err)
	}

	res := Result{Outcome: Dropped, From: c.origin, To: cursor, Piece: c.piece, Displaced: displaced}
	c.clear()
	return res, nil
}

// Reset drops any held state without touching the board.
func (c *Controller) Reset() {
	c.clear()
}

func (c *Controller) clear() {
	c.state = Idle
	c.origin = board.NoSquare
	c.piece = board.NoPiece
}
