// Package sprite draws piece silhouettes from generated SVG documents.
package sprite

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/focuschess/internal/board"
)

// Rasterize renders a piece silhouette into a size×size image.
func Rasterize(p board.Piece, size int) (*image.RGBA, error) {
	src, ok := SVG(p)
	if !ok {
		return nil, fmt.Errorf("sprite: no sprite for piece %d", p)
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("sprite: parse %s sprite: %w", p.Name(), err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// Silhouettes on a 45×45 canvas. Each shape shares the same base.
var pieceShapes = map[board.PieceType]string{
	board.Pawn: `<circle cx="22.5" cy="14" r="5"/>
<path d="M17 36 L19.5 22 L25.5 22 L28 36 Z"/>`,
	board.Knight: `<path d="M14 36 L16 26 Q13 22 16 17 L22 9 L24 12 Q31 13 32 22 L30 36 Z"/>
<circle cx="21" cy="16" r="1.2"/>`,
	board.Bishop: `<ellipse cx="22.5" cy="20" rx="6" ry="9"/>
<circle cx="22.5" cy="8.5" r="2.2"/>
<path d="M18 36 L19.5 27 L25.5 27 L27 36 Z"/>`,
	board.Rook: `<path d="M13 10 L17 10 L17 13 L20.5 13 L20.5 10 L24.5 10 L24.5 13 L28 13 L28 10 L32 10 L32 17 L13 17 Z"/>
<path d="M15 36 L16.5 17 L28.5 17 L30 36 Z"/>`,
	board.Queen: `<path d="M10 14 L15 28 L17 10 L21 26 L22.5 8 L24 26 L28 10 L30 28 L35 14 L31 36 L14 36 Z"/>`,
	board.King: `<path d="M21 4 L24 4 L24 7 L27 7 L27 10 L24 10 L24 13 L21 13 L21 10 L18 10 L18 7 L21 7 Z"/>
<path d="M12 20 Q22.5 8 33 20 L29 36 L16 36 Z"/>`,
}

const pieceBase = `<rect x="11" y="36" width="23" height="4" rx="1.5"/>`

// SVG returns the SVG document for a piece.
func SVG(p board.Piece) (string, bool) {
	if p == board.NoPiece {
		return "", false
	}
	shape, ok := pieceShapes[p.Type()]
	if !ok {
		return "", false
	}
	fill, stroke := "#ffffff", "#000000"
	if p.Color() == board.Black {
		fill, stroke = "#1e1e1e", "#d0d0d0"
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">
<g fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round">
%s
%s
</g>
</svg>`, fill, stroke, shape, pieceBase), true
}
