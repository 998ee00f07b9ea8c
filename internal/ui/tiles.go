package ui

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// TileSet caches isometric diamond tiles per fill color.
type TileSet struct {
	width, height int
	outline       color.RGBA
	tiles         map[color.RGBA]*ebiten.Image
}

// NewTileSet creates tiles of the given bounding size and pre-renders the
// theme's square colors.
func NewTileSet(width, height int, theme *Theme) *TileSet {
	ts := &TileSet{
		width:   width,
		height:  height,
		outline: theme.TileOutline,
		tiles:   make(map[color.RGBA]*ebiten.Image),
	}
	for _, c := range []color.RGBA{theme.LightSquare, theme.DarkSquare, theme.FocusSquare} {
		ts.Tile(c)
	}
	return ts
}

// Tile returns the diamond tile filled with c.
func (ts *TileSet) Tile(c color.RGBA) *ebiten.Image {
	if img, ok := ts.tiles[c]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(DrawDiamond(ts.width, ts.height, c, ts.outline))
	ts.tiles[c] = img
	return img
}

// DrawDiamond renders a diamond touching the midpoints of a w×h box.
func DrawDiamond(w, h int, fill, outline color.RGBA) image.Image {
	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)
	dc.MoveTo(fw/2, 0)
	dc.LineTo(fw, fh/2)
	dc.LineTo(fw/2, fh)
	dc.LineTo(0, fh/2)
	dc.ClosePath()
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.FillPreserve()
	dc.SetRGBA255(int(outline.R), int(outline.G), int(outline.B), int(outline.A))
	dc.SetLineWidth(1)
	dc.Stroke()
	return dc.Image()
}
