package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/projection"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	pc, _ := c.ProjectionConfig()
	if pc.Mode != projection.Orthogonal || pc.SquareSize != 64 {
		t.Errorf("default projection = %+v", pc)
	}
	l, _ := c.BoardLayout()
	if l.Name != board.LayoutStandard {
		t.Errorf("default layout = %s", l.Name)
	}
	if c.Deselect() != 0 {
		t.Errorf("standard deselect delay = %v, want 0", c.Deselect())
	}
}

func TestNormalize(t *testing.T) {
	c := Config{
		Projection:   "  ISO ",
		SquareSize:   -3,
		Layout:       " Single-Pawn",
		TileWidth:    -1,
		ScreenWidth:  0,
		ScreenHeight: -10,
	}
	c.Normalize()

	if c.Projection != "iso" {
		t.Errorf("Projection = %q", c.Projection)
	}
	if c.SquareSize != 64 {
		t.Errorf("SquareSize = %d", c.SquareSize)
	}
	if c.Layout != board.LayoutSinglePawn {
		t.Errorf("Layout = %q", c.Layout)
	}
	if c.TileWidth != 0 {
		t.Errorf("TileWidth = %d", c.TileWidth)
	}
	if c.IsoPreset != projection.PresetRaised {
		t.Errorf("IsoPreset = %q", c.IsoPreset)
	}
	if c.ScreenWidth != 960 || c.ScreenHeight != 540 {
		t.Errorf("screen = %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q", c.LogLevel)
	}
}

func TestIsometricOverrides(t *testing.T) {
	c := Default()
	c.Projection = "isometric"
	c.IsoPreset = projection.PresetLowered
	c.TileWidth = 80
	c.OffsetY = 33

	pc, err := c.ProjectionConfig()
	if err != nil {
		t.Fatal(err)
	}
	preset, _ := projection.IsometricPreset(projection.PresetLowered)
	if pc.Mode != projection.Isometric {
		t.Errorf("Mode = %s", pc.Mode)
	}
	if pc.TileWidth != 80 || pc.TileHeight != preset.TileHeight {
		t.Errorf("tile = %dx%d", pc.TileWidth, pc.TileHeight)
	}
	if pc.OffsetX != preset.OffsetX || pc.OffsetY != 33 {
		t.Errorf("offset = %d,%d", pc.OffsetX, pc.OffsetY)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Projection = "cylindrical"
	if err := c.Validate(); err == nil {
		t.Error("unknown projection should fail")
	}

	c = Default()
	c.Layout = "chess960"
	if err := c.Validate(); !errors.Is(err, board.ErrUnknownLayout) {
		t.Errorf("unknown layout error = %v", err)
	}

	c = Default()
	c.Projection = "isometric"
	c.IsoPreset = "upside-down"
	if err := c.Validate(); err == nil {
		t.Error("unknown iso preset should fail")
	}

	c = Default()
	c.Layout = "chess960"
	c.FEN = "8/8/8/8/8/8/8/R7"
	if err := c.Validate(); err != nil {
		t.Errorf("FEN should take precedence over layout: %v", err)
	}
}

func TestDeselect(t *testing.T) {
	c := Default()
	c.Layout = board.LayoutSinglePawn
	if c.Deselect() != SinglePawnDeselectDelay {
		t.Errorf("single-pawn delay = %v", c.Deselect())
	}

	c.DeselectDelay = 0
	if c.Deselect() != 0 {
		t.Errorf("explicit zero delay = %v", c.Deselect())
	}

	c = Default()
	c.DeselectDelay = 100 * time.Millisecond
	if c.Deselect() != 100*time.Millisecond {
		t.Errorf("override delay = %v", c.Deselect())
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	c := Default()
	c.LogLevel = "warn"
	log := c.Logger(&buf)
	log.Infof("hidden")
	log.Warnf("shown %d", 1)
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown 1") {
		t.Errorf("log output = %q", out)
	}
}
