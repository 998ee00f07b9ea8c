package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/focuschess/internal/effect"
	"github.com/hailam/focuschess/internal/projection"
	"github.com/hailam/focuschess/internal/session"
)

// Theme defines the color scheme and piece styling.
type Theme struct {
	LightSquare   color.RGBA
	DarkSquare    color.RGBA
	FocusSquare   color.RGBA
	Label         color.RGBA
	FocusLabel    color.RGBA
	Background    color.RGBA
	TextColor     color.RGBA
	TileOutline   color.RGBA
	FocusScale    float64 // piece on the focused square
	FocusLift     float64 // upward offset per 64px of square
	SelectedScale float64 // held piece, and dropped piece until deselected
	SelectedLift  float64
}

// DefaultTheme returns the default theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:   color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:    color.RGBA{181, 136, 99, 255},  // Brown
		FocusSquare:   color.RGBA{0x76, 0x3f, 0xfc, 255},
		Label:         color.RGBA{0, 0, 0, 255},
		FocusLabel:    color.RGBA{255, 255, 255, 255},
		Background:    color.RGBA{40, 44, 52, 255},
		TextColor:     color.RGBA{220, 220, 220, 255},
		TileOutline:   color.RGBA{60, 40, 30, 255},
		FocusScale:    1.2,
		FocusLift:     35,
		SelectedScale: 1.4,
		SelectedLift:  50,
	}
}

// SquareColor returns the fill for a square view.
func (t *Theme) SquareColor(sv session.SquareView) color.RGBA {
	switch {
	case sv.Focused:
		return t.FocusSquare
	case sv.Light():
		return t.LightSquare
	default:
		return t.DarkSquare
	}
}

// Renderer draws a session view.
type Renderer struct {
	sprites *SpriteManager
	tiles   *TileSet
	theme   *Theme
	proj    projection.Config
	origin  image.Point
	tileW   int
	tileH   int
}

// NewRenderer creates a renderer that centers the projected board on a
// screen of the given size.
func NewRenderer(proj projection.Config, screenW, screenH int) *Renderer {
	tw, th := proj.TileSize()
	bounds := proj.Bounds()
	r := &Renderer{
		theme: DefaultTheme(),
		proj:  proj,
		tileW: tw,
		tileH: th,
	}
	if proj.Mode == projection.Isometric {
		// Isometric offsets are absolute screen coordinates
		r.origin = image.Point{}
		r.tiles = NewTileSet(tw, th, r.theme)
	} else {
		r.origin = image.Point{
			X: (screenW-bounds.Dx())/2 - bounds.Min.X,
			Y: (screenH-bounds.Dy())/2 - bounds.Min.Y,
		}
	}
	r.sprites = NewSpriteManager(r.pieceSize())
	return r
}

func (r *Renderer) pieceSize() int {
	if r.proj.Mode == projection.Isometric {
		return r.tileH
	}
	return r.tileW
}

// SquareToScreen converts a projected point to screen coordinates.
func (r *Renderer) SquareToScreen(p projection.Point) (int, int) {
	return p.X + r.origin.X, p.Y + r.origin.Y
}

// Draw renders the board, its pieces and labels. deselect may be nil.
func (r *Renderer) Draw(screen *ebiten.Image, v session.View, deselect *effect.Deselect) {
	list := v.DrawList()

	for _, sv := range list {
		r.drawSquare(screen, sv)
	}

	// Lifted pieces go on top of everything else
	var lifted []session.SquareView
	for _, sv := range list {
		if !sv.HasPiece() {
			continue
		}
		if sv.Held || (deselect != nil && deselect.Active(sv.Square)) {
			lifted = append(lifted, sv)
			continue
		}
		scale, lift := 1.0, 0.0
		if sv.Focused {
			scale, lift = r.theme.FocusScale, r.theme.FocusLift
		}
		r.drawPiece(screen, sv, scale, lift, false)
	}
	for _, sv := range lifted {
		r.drawPiece(screen, sv, r.theme.SelectedScale, r.theme.SelectedLift, true)
	}
}

func (r *Renderer) drawSquare(screen *ebiten.Image, sv session.SquareView) {
	x, y := r.SquareToScreen(sv.Point)
	fill := r.theme.SquareColor(sv)

	if r.tiles != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(r.tiles.Tile(fill), op)
	} else {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.tileW), float32(r.tileH), fill, false)
	}

	r.drawLabel(screen, sv, x, y)
}

// DrawOverlay tints a square with c at the given alpha.
func (r *Renderer) DrawOverlay(screen *ebiten.Image, sv session.SquareView, c color.RGBA, alpha float64) {
	x, y := r.SquareToScreen(sv.Point)
	if r.tiles != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleAlpha(float32(alpha * float64(c.A) / 255))
		opaque := c
		opaque.A = 255
		screen.DrawImage(r.tiles.Tile(opaque), op)
		return
	}
	c.A = uint8(float64(c.A) * alpha)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.tileW), float32(r.tileH), c, false)
}

func (r *Renderer) drawLabel(screen *ebiten.Image, sv session.SquareView, x, y int) {
	face := GetLabelFace()
	if face == nil {
		return
	}
	c := r.theme.Label
	if sv.Focused {
		c = r.theme.FocusLabel
	}

	op := &text.DrawOptions{}
	if r.tiles != nil {
		w, h := MeasureText(sv.Name(), face)
		op.GeoM.Translate(float64(x)+(float64(r.tileW)-w)/2, float64(y)+(float64(r.tileH)-h)/2)
	} else {
		_, h := MeasureText(sv.Name(), face)
		op.GeoM.Translate(float64(x)+4, float64(y)+(float64(r.tileH)-h)/2)
	}
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, sv.Name(), face, op)
}

// drawPiece draws a piece scaled about its base and raised by lift, given
// per 64 pixels of square.
func (r *Renderer) drawPiece(screen *ebiten.Image, sv session.SquareView, scale, lift float64, invert bool) {
	sprite := r.sprites.GetPiece(sv.Piece)
	if sprite == nil {
		return
	}
	x, y := r.SquareToScreen(sv.Point)
	size := float64(r.pieceSize())
	drawn := size * scale

	// Anchor: horizontally centered on the tile, base on the tile bottom
	// (orthogonal) or tile center (isometric).
	cx := float64(x) + float64(r.tileW)/2
	baseY := float64(y) + float64(r.tileH)
	if r.tiles != nil {
		baseY = float64(y) + float64(r.tileH)*0.75
	}
	baseY -= lift * size / 64

	op := &colorm.DrawImageOptions{}
	s := r.sprites.Scale() * scale
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(cx-drawn/2, baseY-drawn)
	op.Filter = ebiten.FilterLinear

	var cm colorm.ColorM
	if invert {
		cm.Scale(-1, -1, -1, 1)
		cm.Translate(1, 1, 1, 0)
	}
	colorm.DrawImage(screen, sprite, cm, op)
}

// DrawStatus draws the status line at the bottom of the screen.
func (r *Renderer) DrawStatus(screen *ebiten.Image, v session.View, screenH int) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	line := StatusLine(v)
	_, h := MeasureText(line, face)

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(screenH)-h-6)
	op.ColorScale.ScaleWithColor(r.theme.TextColor)
	text.Draw(screen, line, face, op)
}

// StatusLine summarises the view in one line.
func StatusLine(v session.View) string {
	line := "Cursor " + v.Cursor.String()
	if p := v.At(v.Cursor); p.Occupied {
		line += " (" + p.Piece.Name() + ")"
	}
	if v.Holding {
		line += "  Holding " + v.HeldPiece.Name() + " from " + v.HeldFrom.String()
	}
	if v.LastMove != nil {
		line += "  Last: " + v.LastMove.String()
	}
	return line
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Origin returns the screen translation applied to projected points.
func (r *Renderer) Origin() image.Point {
	return r.origin
}
