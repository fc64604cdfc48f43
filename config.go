package main

import (
	"image/color"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// --- Camera & View ---
	DefaultCameraZoom = 1.0
	ZoomLimitMin      = 0.2
	ZoomLimitMax      = 6.0
	ZoomSpeed         = 0.1

	// --- Fold view (world units) ---
	PanelWorldWidth  = 160.0
	PanelWorldHeight = 240.0
	ZLiftScale       = 6.0  // world-space lift per unit of z offset
	EdgeOnExtent     = 2.0  // below this horizontal extent a panel draws as an edge
	ScrubStep        = 0.04 // scalar change per wheel notch

	// --- Editor strip (screen pixels) ---
	StripHeight   = 150.0
	ThumbWidth    = 72.0
	ThumbHeight   = 48.0
	ThumbGap      = 26.0
	RowGap        = 14.0
	StripPadding  = 12.0
	CreaseHitSize = 22.0

	// --- UI ---
	ButtonWidth   = 64.0
	ButtonHeight  = 26.0
	ButtonMargin  = 8.0
	SliderWidth   = 220.0
	SliderHeight  = 10.0
	StatusSeconds = 3

	DefaultStatePath  = "card.yaml"
	DefaultConfigPath = "cardfold.toml"
)

var (
	// --- Colors ---
	ColorBackground   = color.RGBA{30, 30, 35, 255}
	ColorGrid         = color.RGBA{255, 255, 255, 14}
	ColorOriginCross  = color.RGBA{255, 100, 100, 110}
	ColorStripBack    = color.RGBA{22, 22, 26, 235}
	ColorThumbBorder  = color.RGBA{70, 70, 80, 255}
	ColorThumbHover   = color.RGBA{0, 120, 255, 255}
	ColorThumbDrag    = color.RGBA{255, 140, 0, 255}
	ColorCreaseMarker = color.RGBA{150, 150, 150, 255}
	ColorCreaseHover  = color.RGBA{100, 200, 255, 255}
	ColorSeqBadge     = color.RGBA{60, 60, 70, 220}
	ColorPanelEdge    = color.RGBA{220, 220, 225, 255}
	ColorCoverMark    = color.RGBA{255, 200, 50, 255}
	ColorButton       = color.RGBA{60, 60, 70, 200}
	ColorButtonHover  = color.RGBA{80, 80, 95, 230}
	ColorSliderTrack  = color.RGBA{60, 60, 70, 255}
	ColorSliderFill   = color.RGBA{0, 120, 255, 255}

	// PanelPalette colors panels that carry no image asset.
	PanelPalette = []color.RGBA{
		{100, 149, 237, 255},
		{255, 105, 180, 255},
		{60, 179, 113, 255},
		{218, 165, 32, 255},
		{147, 112, 219, 255},
		{70, 130, 180, 255},
	}
)

// Config is the optional cardfold.toml file. Everything has a default, so
// running without one works.
type Config struct {
	WindowWidth  int `toml:"window_width"`
	WindowHeight int `toml:"window_height"`

	// Sequencer timing, milliseconds.
	PerCreaseMs      int `toml:"per_crease_ms"`
	StaggerOverlapMs int `toml:"stagger_overlap_ms"`

	// Kinematics options.
	ZSpacing    float64 `toml:"z_spacing"`
	MinAngleDeg float64 `toml:"min_angle_deg"`

	StatePath string `toml:"state_path"`
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:      1024,
		WindowHeight:     768,
		PerCreaseMs:      600,
		StaggerOverlapMs: 200,
		ZSpacing:         1.0,
		MinAngleDeg:      0,
		StatePath:        DefaultStatePath,
	}
}

// LoadConfig reads the TOML file at path over the defaults. A missing file
// is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) perCrease() time.Duration {
	return time.Duration(c.PerCreaseMs) * time.Millisecond
}

func (c Config) staggerOverlap() time.Duration {
	return time.Duration(c.StaggerOverlapMs) * time.Millisecond
}
