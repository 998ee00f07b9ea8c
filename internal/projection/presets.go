package projection

import (
	"fmt"
	"sort"
	"strings"
)

// Isometric preset names. Both share the tile geometry and differ only in
// vertical offset.
const (
	PresetRaised  = "raised"
	PresetLowered = "lowered"
)

const (
	isoTileWidth  = 112
	isoTileHeight = 56
	isoOffsetX    = 424
)

var isoPresets = map[string]Config{
	PresetRaised: {
		Mode:       Isometric,
		TileWidth:  isoTileWidth,
		TileHeight: isoTileHeight,
		OffsetX:    isoOffsetX,
		OffsetY:    20,
	},
	PresetLowered: {
		Mode:       Isometric,
		TileWidth:  isoTileWidth,
		TileHeight: isoTileHeight,
		OffsetX:    isoOffsetX,
		OffsetY:    72,
	},
}

// IsometricPreset returns a named isometric configuration.
func IsometricPreset(name string) (Config, error) {
	c, ok := isoPresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, fmt.Errorf("unknown isometric preset %q (have %s)", name, strings.Join(IsometricPresetNames(), ", "))
	}
	return c, nil
}

// IsometricPresetNames returns the preset names, sorted.
func IsometricPresetNames() []string {
	names := make([]string, 0, len(isoPresets))
	for name := range isoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
