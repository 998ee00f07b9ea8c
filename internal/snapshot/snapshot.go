// Package snapshot renders a session view to a PNG image without a window.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/hailam/focuschess/internal/projection"
	"github.com/hailam/focuschess/internal/session"
	"github.com/hailam/focuschess/internal/sprite"
)

// Theme colors a snapshot.
type Theme struct {
	Background  color.RGBA
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	FocusSquare color.RGBA
	Label       color.RGBA
	FocusLabel  color.RGBA
	Outline     color.RGBA
}

// DefaultTheme matches the window renderer.
func DefaultTheme() Theme {
	return Theme{
		Background:  color.RGBA{40, 44, 52, 255},
		LightSquare: color.RGBA{240, 217, 181, 255},
		DarkSquare:  color.RGBA{181, 136, 99, 255},
		FocusSquare: color.RGBA{0x76, 0x3f, 0xfc, 255},
		Label:       color.RGBA{0, 0, 0, 255},
		FocusLabel:  color.RGBA{255, 255, 255, 255},
		Outline:     color.RGBA{60, 40, 30, 255},
	}
}

// Options configures Render.
type Options struct {
	Theme  Theme
	Margin int
	// Labels draws square names.
	Labels bool
}

// DefaultOptions returns labelled output with a 16px margin.
func DefaultOptions() Options {
	return Options{Theme: DefaultTheme(), Margin: 16, Labels: true}
}

const (
	focusScale = 1.2
	focusLift  = 35
	heldScale  = 1.4
	heldLift   = 50
)

var (
	labelFace     font.Face
	labelFaceErr  error
	labelFaceOnce sync.Once
)

func loadLabelFace() (font.Face, error) {
	labelFaceOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			labelFaceErr = err
			return
		}
		labelFace, labelFaceErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    11,
			DPI:     72,
			Hinting: font.HintingNone,
		})
	})
	return labelFace, labelFaceErr
}

// Render draws the view. The canvas covers the projected board plus the
// margin on every side.
func Render(v session.View, opts Options) (image.Image, error) {
	dc, err := draw(v, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders the view and encodes it as PNG.
func WritePNG(w io.Writer, v session.View, opts Options) error {
	dc, err := draw(v, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders the view into a PNG file.
func SavePNG(path string, v session.View, opts Options) error {
	dc, err := draw(v, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func draw(v session.View, opts Options) (*gg.Context, error) {
	bounds := v.Projection.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("snapshot: empty projection")
	}
	m := opts.Margin
	dc := gg.NewContext(bounds.Dx()+2*m, bounds.Dy()+2*m)
	setColor(dc, opts.Theme.Background)
	dc.Clear()

	// Shift projected points onto the canvas
	dx := float64(m - bounds.Min.X)
	dy := float64(m - bounds.Min.Y)
	tw, th := v.Projection.TileSize()
	iso := v.Projection.Mode == projection.Isometric

	if opts.Labels {
		face, err := loadLabelFace()
		if err != nil {
			return nil, fmt.Errorf("snapshot: load font: %w", err)
		}
		dc.SetFontFace(face)
	}

	list := v.DrawList()
	for _, sv := range list {
		x, y := float64(sv.Point.X)+dx, float64(sv.Point.Y)+dy
		fill := opts.Theme.DarkSquare
		switch {
		case sv.Focused:
			fill = opts.Theme.FocusSquare
		case sv.Light():
			fill = opts.Theme.LightSquare
		}
		if iso {
			diamond(dc, x, y, float64(tw), float64(th))
		} else {
			dc.DrawRectangle(x, y, float64(tw), float64(th))
		}
		setColor(dc, fill)
		dc.FillPreserve()
		setColor(dc, opts.Theme.Outline)
		dc.SetLineWidth(1)
		dc.Stroke()

		if opts.Labels {
			label := opts.Theme.Label
			if sv.Focused {
				label = opts.Theme.FocusLabel
			}
			setColor(dc, label)
			if iso {
				dc.DrawStringAnchored(sv.Name(), x+float64(tw)/2, y+float64(th)/2, 0.5, 0.5)
			} else {
				dc.DrawStringAnchored(sv.Name(), x+4, y+float64(th)/2, 0, 0.5)
			}
		}
	}

	size := tw
	if iso {
		size = th
	}
	var held *session.SquareView
	for i, sv := range list {
		if !sv.HasPiece() {
			continue
		}
		if sv.Held {
			held = &list[i]
			continue
		}
		scale, lift := 1.0, 0.0
		if sv.Focused {
			scale, lift = focusScale, focusLift
		}
		if err := drawPiece(dc, sv, dx, dy, tw, th, size, iso, scale, lift, false); err != nil {
			return nil, err
		}
	}
	if held != nil {
		if err := drawPiece(dc, *held, dx, dy, tw, th, size, iso, heldScale, heldLift, true); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

func drawPiece(dc *gg.Context, sv session.SquareView, dx, dy float64, tw, th, size int, iso bool, scale, lift float64, invert bool) error {
	drawn := int(float64(size) * scale)
	img, err := sprite.Rasterize(sv.Piece, drawn)
	if err != nil {
		return err
	}
	if invert {
		invertRGBA(img)
	}
	x, y := float64(sv.Point.X)+dx, float64(sv.Point.Y)+dy
	baseY := y + float64(th)
	if iso {
		baseY = y + float64(th)*0.75
	}
	baseY -= lift * float64(size) / 64
	dc.DrawImage(img, int(x+float64(tw)/2)-drawn/2, int(baseY)-drawn)
	return nil
}

// invertRGBA inverts the color channels of a premultiplied image in place.
func invertRGBA(img *image.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		img.Pix[i] = a - img.Pix[i]
		img.Pix[i+1] = a - img.Pix[i+1]
		img.Pix[i+2] = a - img.Pix[i+2]
	}
}

func diamond(dc *gg.Context, x, y, w, h float64) {
	dc.MoveTo(x+w/2, y)
	dc.LineTo(x+w, y+h/2)
	dc.LineTo(x+w/2, y+h)
	dc.LineTo(x, y+h/2)
	dc.ClosePath()
}

func setColor(dc *gg.Context, c color.RGBA) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}
