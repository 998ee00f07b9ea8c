package board

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notnil/chess"
)

// fenSuffix completes a placement-only FEN so it can be decoded as a position.
const fenSuffix = " w - - 0 1"

var chessPieces = map[Piece]chess.Piece{
	WhitePawn:   chess.WhitePawn,
	WhiteKnight: chess.WhiteKnight,
	WhiteBishop: chess.WhiteBishop,
	WhiteRook:   chess.WhiteRook,
	WhiteQueen:  chess.WhiteQueen,
	WhiteKing:   chess.WhiteKing,
	BlackPawn:   chess.BlackPawn,
	BlackKnight: chess.BlackKnight,
	BlackBishop: chess.BlackBishop,
	BlackRook:   chess.BlackRook,
	BlackQueen:  chess.BlackQueen,
	BlackKing:   chess.BlackKing,
}

func toChessSquare(sq Square) chess.Square {
	return chess.Square(sq.Rank()*NumFiles + sq.File())
}

func fromChessSquare(sq chess.Square) Square {
	return NewSquare(int(sq.File()), int(sq.Rank()))
}

func fromChessPiece(p chess.Piece) Piece {
	for ours, theirs := range chessPieces {
		if theirs == p {
			return ours
		}
	}
	return NoPiece
}

// FEN returns the piece-placement field of the board in Forsyth-Edwards
// Notation, e.g. "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR".
func (b *Board) FEN() string {
	m := make(map[chess.Square]chess.Piece, b.count)
	for _, sq := range allSquares {
		if p, ok := b.PieceAt(sq); ok {
			m[toChessSquare(sq)] = chessPieces[p]
		}
	}
	return chess.NewBoard(m).String()
}

// LayoutFromFEN builds a layout from a FEN string. Either a full FEN record
// or only its piece-placement field is accepted.
func LayoutFromFEN(fen string) (Layout, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return Layout{}, fmt.Errorf("parse fen: empty string")
	}
	full := fen
	if !strings.Contains(fen, " ") {
		full += fenSuffix
	}

	opt, err := chess.FEN(full)
	if err != nil {
		return Layout{}, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	game := chess.NewGame(opt)

	placements := make([]Placement, 0, 32)
	for csq, cp := range game.Position().Board().SquareMap() {
		p := fromChessPiece(cp)
		if p == NoPiece {
			continue
		}
		placements = append(placements, Placement{Square: fromChessSquare(csq), Piece: p})
	}
	sort.Slice(placements, func(i, j int) bool {
		return placements[i].Square < placements[j].Square
	})

	return Layout{Name: "fen:" + strings.Fields(fen)[0], Placements: placements}, nil
}
