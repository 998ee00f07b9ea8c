package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/selection"
	"github.com/hailam/focuschess/internal/session"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
	now      func() time.Time
}

// NewToastManager creates a new toast manager. A nil now uses time.Now.
func NewToastManager(now func() time.Time) *ToastManager {
	if now == nil {
		now = time.Now
	}
	return &ToastManager{maxStack: 3, now: now}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: tm.now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := tm.now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Len returns the number of visible toasts.
func (tm *ToastManager) Len() int {
	return len(tm.toasts)
}

// Messages returns the visible toast messages, oldest first.
func (tm *ToastManager) Messages() []string {
	out := make([]string, len(tm.toasts))
	for i, t := range tm.toasts {
		out[i] = t.Message
	}
	return out
}

// Draw renders all active toasts centered on a screen of the given width.
func (tm *ToastManager) Draw(screen *ebiten.Image, screenW int) {
	face := GetBoldFace()
	if face == nil {
		return
	}

	now := tm.now()
	y := 12.0
	for _, t := range tm.toasts {
		alpha := fade(now.Sub(t.StartTime).Seconds(), t.Duration.Seconds())

		var bg color.RGBA
		switch t.Type {
		case ToastWarning:
			bg = color.RGBA{180, 140, 20, uint8(220 * alpha)}
		case ToastError:
			bg = color.RGBA{180, 50, 50, uint8(220 * alpha)}
		case ToastSuccess:
			bg = color.RGBA{50, 150, 50, uint8(220 * alpha)}
		default:
			bg = color.RGBA{50, 100, 150, uint8(220 * alpha)}
		}
		fg := color.RGBA{255, 255, 255, uint8(255 * alpha)}

		w, h := MeasureText(t.Message, face)
		padding := 10.0
		boxW, boxH := w+padding*2, h+padding*2
		x := float64(screenW)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 6
	}
}

// fade ramps alpha in and out over the first and last 0.2s.
func fade(elapsed, duration float64) float64 {
	const fadeTime = 0.2
	alpha := 1.0
	if elapsed < fadeTime {
		alpha = elapsed / fadeTime
	} else if elapsed > duration-fadeTime {
		alpha = (duration - elapsed) / fadeTime
	}
	return math.Max(0, math.Min(1, alpha))
}

// FlashAnimation represents a square flash effect.
type FlashAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager manages square flashes.
type AnimationManager struct {
	flashes []*FlashAnimation
	now     func() time.Time
}

// NewAnimationManager creates a new animation manager. A nil now uses
// time.Now.
func NewAnimationManager(now func() time.Time) *AnimationManager {
	if now == nil {
		now = time.Now
	}
	return &AnimationManager{now: now}
}

// StartFlash begins a flash animation on a square.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Square:    sq,
		StartTime: am.now(),
		Duration:  400 * time.Millisecond,
		Color:     c,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := am.now()
	active := am.flashes[:0]
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			active = append(active, f)
		}
	}
	am.flashes = active
}

// Flashing reports whether sq has an active flash.
func (am *AnimationManager) Flashing(sq board.Square) bool {
	for _, f := range am.flashes {
		if f.Square == sq {
			return true
		}
	}
	return false
}

// Draw renders flashes as a pulsing overlay on their squares.
func (am *AnimationManager) Draw(screen *ebiten.Image, r *Renderer, v session.View) {
	now := am.now()
	for _, f := range am.flashes {
		progress := now.Sub(f.StartTime).Seconds() / f.Duration.Seconds()
		r.DrawOverlay(screen, v.At(f.Square), f.Color, math.Sin(progress*math.Pi))
	}
}

// Feedback turns selection results into sound, toasts and flashes.
type Feedback struct {
	Toasts     *ToastManager
	Animations *AnimationManager
	Audio      *AudioManager
}

var captureFlash = color.RGBA{220, 60, 60, 160}

// OnResult reacts to one activation.
func (f *Feedback) OnResult(res selection.Result) {
	if f.Audio != nil {
		f.Audio.OnResult(res)
	}
	if res.Outcome != selection.Dropped || res.From == res.To {
		return
	}
	if res.Displaced != board.NoPiece {
		f.Toasts.Show(res.Piece.Name()+" takes "+res.Displaced.Name()+" on "+res.To.String(), ToastWarning, 1500*time.Millisecond)
		f.Animations.StartFlash(res.To, captureFlash)
		return
	}
	f.Toasts.Show(res.Piece.Name()+" "+res.From.String()+"-"+res.To.String(), ToastInfo, 1200*time.Millisecond)
}

// Update expires toasts and flashes.
func (f *Feedback) Update() {
	f.Toasts.Update()
	f.Animations.Update()
}
