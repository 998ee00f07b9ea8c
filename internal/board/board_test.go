package board

import (
	"errors"
	"testing"
)

func TestSquareEnumeration(t *testing.T) {
	squares := Squares()
	for i, sq := range squares {
		if sq.Index() != i {
			t.Fatalf("square %s has index %d, want %d", sq, sq.Index(), i)
		}
		if got := NewSquare(sq.File(), sq.Rank()); got != sq {
			t.Errorf("NewSquare(%d, %d) = %s, want %s", sq.File(), sq.Rank(), got, sq)
		}
	}

	// Files outer, ranks inner
	tests := []struct {
		sq   Square
		name string
	}{
		{A1, "A1"},
		{A2, "A2"},
		{A8, "A8"},
		{B1, "B1"},
		{C1, "C1"},
		{H8, "H8"},
	}
	for _, tt := range tests {
		if tt.sq.String() != tt.name {
			t.Errorf("square %d = %s, want %s", tt.sq, tt.sq, tt.name)
		}
	}
	if C1 != 16 {
		t.Errorf("C1 = %d, want 16", C1)
	}
}

func TestParseSquare(t *testing.T) {
	for _, sq := range Squares() {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%s): %v", sq, err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%s) = %s", sq, got)
		}
	}

	if got, err := ParseSquare("e4"); err != nil || got != E4 {
		t.Errorf("ParseSquare(e4) = %s, %v", got, err)
	}

	for _, bad := range []string{"", "A", "I1", "A9", "A0", "A10"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", bad, err)
		}
	}
}

func TestCheckerboard(t *testing.T) {
	if A1.IsLight() {
		t.Error("A1 should be dark")
	}
	if !A2.IsLight() || !B1.IsLight() {
		t.Error("A2 and B1 should be light")
	}

	for _, sq := range Squares() {
		f, r := sq.File(), sq.Rank()
		if f+1 < NumFiles {
			if next := NewSquare(f+1, r); next.IsLight() == sq.IsLight() {
				t.Errorf("%s and %s share a color", sq, next)
			}
		}
		if r+1 < NumRanks {
			if next := NewSquare(f, r+1); next.IsLight() == sq.IsLight() {
				t.Errorf("%s and %s share a color", sq, next)
			}
		}
	}
}

func TestPlaceAndRemove(t *testing.T) {
	b := New()

	if _, ok := b.PieceAt(D4); ok {
		t.Fatal("new board should be empty")
	}
	if err := b.Place(D4, BlackQueen); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if p, ok := b.PieceAt(D4); !ok || p != BlackQueen {
		t.Errorf("PieceAt(D4) = %v, %v", p.Name(), ok)
	}

	err := b.Place(D4, WhitePawn)
	if !errors.Is(err, ErrOccupancyConflict) {
		t.Errorf("Place on occupied square error = %v, want ErrOccupancyConflict", err)
	}
	if p, _ := b.PieceAt(D4); p != BlackQueen {
		t.Error("conflicting Place must not overwrite")
	}

	if err := b.Place(NoSquare, WhitePawn); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("Place on NoSquare error = %v", err)
	}
	if err := b.Place(E4, NoPiece); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("Place NoPiece error = %v", err)
	}

	p, ok := b.Remove(D4)
	if !ok || p != BlackQueen {
		t.Errorf("Remove(D4) = %v, %v", p.Name(), ok)
	}
	if _, ok := b.Remove(D4); ok {
		t.Error("second Remove should return nothing")
	}
	if b.Count() != 0 {
		t.Errorf("Count = %d, want 0", b.Count())
	}
}

func TestMovePiece(t *testing.T) {
	t.Run("AllPairs", func(t *testing.T) {
		for _, from := range Squares() {
			for _, to := range Squares() {
				if from == to {
					continue
				}
				b := New()
				if err := b.Place(from, WhiteKnight); err != nil {
					t.Fatal(err)
				}
				if _, err := b.Move(from, to); err != nil {
					t.Fatalf("Move(%s, %s): %v", from, to, err)
				}
				if p, ok := b.PieceAt(to); !ok || p != WhiteKnight {
					t.Fatalf("after Move(%s, %s) destination holds %v", from, to, p.Name())
				}
				if _, ok := b.PieceAt(from); ok {
					t.Fatalf("after Move(%s, %s) source still occupied", from, to)
				}
			}
		}
	})

	t.Run("OverwritesDestination", func(t *testing.T) {
		b := New()
		b.Place(A1, WhiteRook)
		b.Place(C1, WhiteBishop)

		displaced, err := b.Move(A1, C1)
		if err != nil {
			t.Fatalf("Move: %v", err)
		}
		if displaced != WhiteBishop {
			t.Errorf("displaced = %s, want BishopWhite", displaced.Name())
		}
		if p, _ := b.PieceAt(C1); p != WhiteRook {
			t.Errorf("C1 = %s, want RookWhite", p.Name())
		}
		if b.Count() != 1 {
			t.Errorf("Count = %d, want 1", b.Count())
		}
	})

	t.Run("EmptySource", func(t *testing.T) {
		b := New()
		if _, err := b.Move(A1, A2); !errors.Is(err, ErrEmptySource) {
			t.Errorf("Move from empty square error = %v, want ErrEmptySource", err)
		}
	})

	t.Run("OntoItself", func(t *testing.T) {
		b := New()
		b.Place(E2, WhitePawn)
		displaced, err := b.Move(E2, E2)
		if err != nil {
			t.Fatalf("Move onto itself: %v", err)
		}
		if displaced != NoPiece {
			t.Errorf("displaced = %s, want none", displaced.Name())
		}
		if p, ok := b.PieceAt(E2); !ok || p != WhitePawn {
			t.Error("piece should remain on E2")
		}
		if b.Count() != 1 {
			t.Errorf("Count = %d, want 1", b.Count())
		}
	})
}

func TestPieceEncoding(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(pt, c)
			if p.Type() != pt || p.Color() != c {
				t.Errorf("NewPiece(%s, %s) decodes to %s %s", pt, c, p.Type(), p.Color())
			}
			if PieceFromChar(p.String()[0]) != p {
				t.Errorf("PieceFromChar(%s) round trip failed", p)
			}
		}
	}
	if WhiteRook.Name() != "RookWhite" {
		t.Errorf("WhiteRook.Name() = %s", WhiteRook.Name())
	}
	if NewPiece(NoPieceType, White) != NoPiece {
		t.Error("NewPiece(NoPieceType) should be NoPiece")
	}
}
