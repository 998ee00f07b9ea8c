package board

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownLayout is returned by LayoutByName for unregistered names.
var ErrUnknownLayout = errors.New("unknown layout")

// Layout names.
const (
	LayoutStandard   = "standard"
	LayoutSinglePawn = "single-pawn"
	LayoutEmpty      = "empty"
)

// Placement is one piece on one square of an initial layout.
type Placement struct {
	Square Square
	Piece  Piece
}

// Layout is a named initial piece arrangement.
type Layout struct {
	Name       string
	Placements []Placement
}

// Apply places every piece of the layout on b. A layout that names the same
// square twice is malformed and fails with ErrOccupancyConflict.
func (l Layout) Apply(b *Board) error {
	for _, pl := range l.Placements {
		if err := b.Place(pl.Square, pl.Piece); err != nil {
			return fmt.Errorf("layout %s: %w", l.Name, err)
		}
	}
	return nil
}

// NewBoard builds a fresh board seeded with the layout.
func (l Layout) NewBoard() (*Board, error) {
	b := New()
	if err := l.Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}

var backRank = [NumFiles]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Standard returns the standard chess starting position.
func Standard() Layout {
	placements := make([]Placement, 0, 32)
	for file := 0; file < NumFiles; file++ {
		placements = append(placements,
			Placement{NewSquare(file, 0), NewPiece(backRank[file], White)},
			Placement{NewSquare(file, 1), NewPiece(Pawn, White)},
			Placement{NewSquare(file, 6), NewPiece(Pawn, Black)},
			Placement{NewSquare(file, 7), NewPiece(backRank[file], Black)},
		)
	}
	return Layout{Name: LayoutStandard, Placements: placements}
}

// SinglePawn returns the reduced layout: one white pawn on square 0.
func SinglePawn() Layout {
	return Layout{
		Name:       LayoutSinglePawn,
		Placements: []Placement{{A1, WhitePawn}},
	}
}

// Empty returns a layout with no pieces.
func Empty() Layout {
	return Layout{Name: LayoutEmpty}
}

var layouts = map[string]func() Layout{
	LayoutStandard:   Standard,
	LayoutSinglePawn: SinglePawn,
	LayoutEmpty:      Empty,
}

// LayoutByName returns the named preset.
func LayoutByName(name string) (Layout, error) {
	build, ok := layouts[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownLayout, name, strings.Join(LayoutNames(), ", "))
	}
	return build(), nil
}

// LayoutNames returns the registered preset names, sorted.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
