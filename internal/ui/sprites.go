package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/sprite"
)

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	for _, p := range board.AllPieces() {
		img, err := sprite.Rasterize(p, int(float64(size)*sm.renderScale))
		if err != nil {
			continue
		}
		sm.pieces[p] = ebiten.NewImageFromImage(img)
	}
	return sm
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// Size returns the display size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}

// Scale returns the factor from sprite resolution to display size.
func (sm *SpriteManager) Scale() float64 {
	return 1.0 / sm.renderScale
}
