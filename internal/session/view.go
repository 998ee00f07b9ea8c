package session

import (
	"sort"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/projection"
	"github.com/hailam/focuschess/internal/storage"
)

// SquareView is the render state of one square. Piece is the piece drawn on
// the square: the occupant, or the held piece on its origin square, in which
// case Held is set and Occupied is not.
type SquareView struct {
	Square   board.Square
	Point    projection.Point
	Piece    board.Piece
	Occupied bool
	Focused  bool
	Held     bool
}

// Name returns the square label.
func (v SquareView) Name() string {
	return v.Square.String()
}

// Light reports whether the square is painted light.
func (v SquareView) Light() bool {
	return v.Square.IsLight()
}

// HasPiece reports whether a piece should be drawn on the square.
func (v SquareView) HasPiece() bool {
	return v.Piece != board.NoPiece
}

// View is a snapshot of everything a render adapter needs after an input.
type View struct {
	Squares    []SquareView // enumeration order
	Projection projection.Config
	Cursor     board.Square
	Holding    bool
	HeldFrom   board.Square
	HeldPiece  board.Piece
	LastMove   *storage.Entry
	Moves      int
}

// View returns the current render state.
func (s *Session) View() View {
	origin, held, holding := s.selection.Held()
	cursor := s.cursor.Index()

	v := View{
		Squares:    make([]SquareView, 0, board.NumSquares),
		Projection: s.proj,
		Cursor:     cursor,
		Holding:    holding,
		HeldFrom:   origin,
		HeldPiece:  held,
		Moves:      s.journal.Len(),
	}

	for _, sq := range s.board.Squares() {
		p, ok := s.board.PieceAt(sq)
		sv := SquareView{
			Square:   sq,
			Point:    s.proj.Project(sq.File(), sq.Rank()),
			Piece:    p,
			Occupied: ok,
			Focused:  sq == cursor,
		}
		if holding && sq == origin {
			sv.Piece = held
			sv.Held = true
		}
		v.Squares = append(v.Squares, sv)
	}

	if last, ok, err := s.journal.Last(); err == nil && ok {
		v.LastMove = &last
	}
	return v
}

// DrawList returns the squares in paint order: ascending DrawOrder, ties in
// enumeration order.
func (v View) DrawList() []SquareView {
	out := make([]SquareView, len(v.Squares))
	copy(out, v.Squares)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Point.DrawOrder < out[j].Point.DrawOrder
	})
	return out
}

// At returns the view of sq.
func (v View) At(sq board.Square) SquareView {
	return v.Squares[sq]
}
