// Package config holds the application configuration surface.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/logx"
	"github.com/hailam/focuschess/internal/projection"
)

// SinglePawnDeselectDelay is the cosmetic delay before a dropped piece loses
// its highlight in the single-pawn layout.
const SinglePawnDeselectDelay = 250 * time.Millisecond

// Config is the full configuration for one run.
type Config struct {
	Projection string `json:"projection"` // orthogonal/isometric
	SquareSize int    `json:"square_size"`
	IsoPreset  string `json:"iso_preset"` // raised/lowered
	TileWidth  int    `json:"tile_width"`
	TileHeight int    `json:"tile_height"`
	OffsetX    int    `json:"offset_x"`
	OffsetY    int    `json:"offset_y"`

	Layout string `json:"layout"` // standard/single-pawn/empty
	FEN    string `json:"fen"`    // overrides Layout when set

	// DeselectDelay overrides the layout's delay; negative means use the layout's.
	DeselectDelay time.Duration `json:"deselect_delay"`

	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`

	// Mute disables sound effects in the window adapter.
	Mute bool `json:"mute"`

	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"` // stderr when empty
	Debug    bool   `json:"debug"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Projection:    projection.Orthogonal.String(),
		SquareSize:    projection.DefaultSquareSize,
		IsoPreset:     projection.PresetRaised,
		Layout:        board.LayoutStandard,
		DeselectDelay: -1,
		ScreenWidth:   960,
		ScreenHeight:  540,
		LogLevel:      "info",
	}
}

// Normalize replaces empty or out-of-range values with defaults. Values that
// are present but unrecognised are left for Validate to report.
func (c *Config) Normalize() {
	def := Default()
	c.Projection = strings.ToLower(strings.TrimSpace(c.Projection))
	if c.Projection == "" {
		c.Projection = def.Projection
	}
	if c.SquareSize <= 0 {
		c.SquareSize = def.SquareSize
	}
	c.IsoPreset = strings.ToLower(strings.TrimSpace(c.IsoPreset))
	if c.IsoPreset == "" {
		c.IsoPreset = def.IsoPreset
	}
	if c.TileWidth < 0 {
		c.TileWidth = 0
	}
	if c.TileHeight < 0 {
		c.TileHeight = 0
	}
	c.Layout = strings.ToLower(strings.TrimSpace(c.Layout))
	if c.Layout == "" {
		c.Layout = def.Layout
	}
	c.FEN = strings.TrimSpace(c.FEN)
	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = def.ScreenWidth
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = def.ScreenHeight
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate reports configuration values that cannot be resolved.
func (c Config) Validate() error {
	if _, err := c.ProjectionConfig(); err != nil {
		return err
	}
	if _, err := c.BoardLayout(); err != nil {
		return err
	}
	return nil
}

// ProjectionConfig resolves the projection settings. Non-zero tile and
// offset fields override the isometric preset.
func (c Config) ProjectionConfig() (projection.Config, error) {
	mode, err := projection.ParseMode(c.Projection)
	if err != nil {
		return projection.Config{}, fmt.Errorf("config: %w", err)
	}
	if mode == projection.Orthogonal {
		return projection.OrthogonalConfig(c.SquareSize), nil
	}

	pc, err := projection.IsometricPreset(c.IsoPreset)
	if err != nil {
		return projection.Config{}, fmt.Errorf("config: %w", err)
	}
	if c.TileWidth > 0 {
		pc.TileWidth = c.TileWidth
	}
	if c.TileHeight > 0 {
		pc.TileHeight = c.TileHeight
	}
	if c.OffsetX != 0 {
		pc.OffsetX = c.OffsetX
	}
	if c.OffsetY != 0 {
		pc.OffsetY = c.OffsetY
	}
	return pc, nil
}

// BoardLayout resolves the initial piece layout.
func (c Config) BoardLayout() (board.Layout, error) {
	if c.FEN != "" {
		l, err := board.LayoutFromFEN(c.FEN)
		if err != nil {
			return board.Layout{}, fmt.Errorf("config: %w", err)
		}
		return l, nil
	}
	l, err := board.LayoutByName(c.Layout)
	if err != nil {
		return board.Layout{}, fmt.Errorf("config: %w", err)
	}
	return l, nil
}

// Deselect returns the cosmetic delay before a drop highlight clears.
func (c Config) Deselect() time.Duration {
	if c.DeselectDelay >= 0 {
		return c.DeselectDelay
	}
	if c.FEN == "" && c.Layout == board.LayoutSinglePawn {
		return SinglePawnDeselectDelay
	}
	return 0
}

// Logger builds the zap logger for this configuration, writing to out.
// A nil out means stderr.
func (c Config) Logger(out io.Writer) logx.Logger {
	return logx.New(logx.Options{
		Level:   c.LogLevel,
		Dev:     c.Debug,
		Console: true,
		Output:  out,
	})
}
