// Package board implements the board topology and the piece occupancy model.
package board

import (
	"fmt"
	"strings"
)

const (
	NumFiles   = 8
	NumRanks   = 8
	NumSquares = NumFiles * NumRanks
)

// Files and Ranks are the board symbols in enumeration order. They are shared,
// read-only topology for every session in the process.
var (
	Files = [NumFiles]byte{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H'}
	Ranks = [NumRanks]byte{'1', '2', '3', '4', '5', '6', '7', '8'}
)

// Square represents a square on the board (0-63).
// Squares are enumerated file-major: files outer, ranks inner, so
// A1=0, A2=1, ..., A8=7, B1=8, ..., H8=63.
type Square uint8

// Square constants for all 64 squares, in enumeration order.
const (
	A1 Square = iota
	A2
	A3
	A4
	A5
	A6
	A7
	A8
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	C8
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	E1
	E2
	E3
	E4
	E5
	E6
	E7
	E8
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	G1
	G2
	G3
	G4
	G5
	G6
	G7
	G8
	H1
	H2
	H3
	H4
	H5
	H6
	H7
	H8
	NoSquare Square = NumSquares
)

// File returns the file index of the square (0-7, where 0=A, 7=H).
func (sq Square) File() int {
	return int(sq) / NumRanks
}

// Rank returns the rank index of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) % NumRanks
}

// Index returns the canonical enumeration index of the square.
func (sq Square) Index() int {
	return int(sq)
}

// IsLight reports whether the square is painted light. The tiling alternates
// on index parity against file parity, which for the file-major enumeration
// leaves A1 dark.
func (sq Square) IsLight() bool {
	return int(sq)%2 != sq.File()%2
}

// String returns the square name (e.g., "C1").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return string([]byte{Files[sq.File()], Ranks[sq.Rank()]})
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	if file < 0 || file >= NumFiles || rank < 0 || rank >= NumRanks {
		return NoSquare
	}
	return Square(file*NumRanks + rank)
}

// ParseSquare parses a square name (e.g., "c1" or "C1") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	s = strings.ToUpper(s)
	file := int(s[0] - 'A')
	rank := int(s[1] - '1')

	if file < 0 || file >= NumFiles || rank < 0 || rank >= NumRanks {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return NewSquare(file, rank), nil
}

var allSquares = buildSquares()

func buildSquares() [NumSquares]Square {
	var squares [NumSquares]Square
	i := 0
	for file := 0; file < NumFiles; file++ {
		for rank := 0; rank < NumRanks; rank++ {
			squares[i] = NewSquare(file, rank)
			i++
		}
	}
	return squares
}

// Squares returns all 64 squares in enumeration order.
func Squares() [NumSquares]Square {
	return allSquares
}
