// Package projection maps logical board coordinates to screen geometry.
package projection

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Mode selects the geometric mapping from board to screen.
type Mode int

const (
	Orthogonal Mode = iota
	Isometric
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Orthogonal:
		return "orthogonal"
	case Isometric:
		return "isometric"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name ("orthogonal"/"flat" or "isometric"/"iso").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orthogonal", "ortho", "flat":
		return Orthogonal, nil
	case "isometric", "iso":
		return Isometric, nil
	default:
		return Orthogonal, fmt.Errorf("unknown projection mode %q", s)
	}
}

// DefaultSquareSize is the orthogonal square edge in pixels.
const DefaultSquareSize = 64

// Config holds the projection parameters. SquareSize applies to orthogonal
// mode; the tile and offset fields apply to isometric mode.
type Config struct {
	Mode       Mode
	SquareSize int
	TileWidth  int
	TileHeight int
	OffsetX    int
	OffsetY    int
}

// Point is a projected square: its top-left screen position and the order
// in which it is drawn. Higher DrawOrder draws later, above lower ones.
type Point struct {
	X, Y      int
	DrawOrder int
}

// OrthogonalConfig returns a flat grid projection.
func OrthogonalConfig(squareSize int) Config {
	return Config{Mode: Orthogonal, SquareSize: squareSize}
}

// Project maps a file and rank index to a screen position.
func (c Config) Project(file, rank int) Point {
	if c.Mode == Isometric {
		return Point{
			X:         c.OffsetX + roundHalfUp(float64((file-rank)*c.TileWidth)/2),
			Y:         c.OffsetY + roundHalfUp(float64((file+rank)*c.TileHeight)/2),
			DrawOrder: rank,
		}
	}
	// Rank 8 at the top
	return Point{
		X: file * c.SquareSize,
		Y: (7 - rank) * c.SquareSize,
	}
}

// TileSize returns the width and height of one projected square.
func (c Config) TileSize() (int, int) {
	if c.Mode == Isometric {
		return c.TileWidth, c.TileHeight
	}
	return c.SquareSize, c.SquareSize
}

// Bounds returns the rectangle covering every projected square.
func (c Config) Bounds() image.Rectangle {
	w, h := c.TileSize()
	var r image.Rectangle
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			p := c.Project(file, rank)
			tile := image.Rect(p.X, p.Y, p.X+w, p.Y+h)
			if file == 0 && rank == 0 {
				r = tile
				continue
			}
			r = r.Union(tile)
		}
	}
	return r
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
