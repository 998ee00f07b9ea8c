package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOccupancyConflict is returned when placing onto an occupied square.
	ErrOccupancyConflict = errors.New("square already occupied")
	// ErrEmptySource is returned when moving from a square with no piece.
	ErrEmptySource = errors.New("no piece on source square")
	// ErrInvalidSquare is returned for squares outside the 64-square board.
	ErrInvalidSquare = errors.New("invalid square")
	// ErrInvalidPiece is returned when placing NoPiece or an out-of-range value.
	ErrInvalidPiece = errors.New("invalid piece")
)

// Board is the fixed 64-square topology plus a mutable occupancy mapping
// holding at most one piece per square.
type Board struct {
	occupancy [NumSquares]Piece
	count     int
}

// New builds an empty board.
func New() *Board {
	b := &Board{}
	for i := range b.occupancy {
		b.occupancy[i] = NoPiece
	}
	return b
}

// Squares returns the board's squares in enumeration order.
func (b *Board) Squares() [NumSquares]Square {
	return allSquares
}

// Place puts p on sq. It fails with ErrOccupancyConflict if sq already
// holds a piece.
func (b *Board) Place(sq Square, p Piece) error {
	if !sq.IsValid() {
		return fmt.Errorf("place: %w: %d", ErrInvalidSquare, sq)
	}
	if p >= NoPiece {
		return fmt.Errorf("place on %s: %w", sq, ErrInvalidPiece)
	}
	if cur := b.occupancy[sq]; cur != NoPiece {
		return fmt.Errorf("place %s on %s: %w by %s", p.Name(), sq, ErrOccupancyConflict, cur.Name())
	}
	b.occupancy[sq] = p
	b.count++
	return nil
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return NoPiece, false
	}
	p := b.occupancy[sq]
	return p, p != NoPiece
}

// Remove clears sq and returns the piece that was there, if any.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.PieceAt(sq)
	if !ok {
		return NoPiece, false
	}
	b.occupancy[sq] = NoPiece
	b.count--
	return p, true
}

// Move relocates the piece on from to to. Whatever occupies to is discarded
// and returned as displaced; no legality of any kind is checked. Moving a
// piece onto its own square leaves the board unchanged.
func (b *Board) Move(from, to Square) (displaced Piece, err error) {
	if !from.IsValid() || !to.IsValid() {
		return NoPiece, fmt.Errorf("move %s-%s: %w", from, to, ErrInvalidSquare)
	}
	p, ok := b.PieceAt(from)
	if !ok {
		return NoPiece, fmt.Errorf("move %s-%s: %w", from, to, ErrEmptySource)
	}
	if from == to {
		return NoPiece, nil
	}

	displaced, _ = b.Remove(to)
	b.Remove(from)
	b.occupancy[to] = p
	b.count++
	return displaced, nil
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	return b.count
}

// Clear removes every piece.
func (b *Board) Clear() {
	for i := range b.occupancy {
		b.occupancy[i] = NoPiece
	}
	b.count = 0
}

// String returns an ASCII diagram of the board with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for rank := NumRanks - 1; rank >= 0; rank-- {
		sb.WriteByte(Ranks[rank])
		sb.WriteString(" | ")
		for file := 0; file < NumFiles; file++ {
			p, ok := b.PieceAt(NewSquare(file, rank))
			if ok {
				sb.WriteString(p.String())
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    A B C D E F G H\n")
	return sb.String()
}
