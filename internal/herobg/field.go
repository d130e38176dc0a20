package herobg

import "math"

// RenderConfig is every tier-dependent knob of the grid, chosen once per
// mount (and again on resize) and passed explicitly to the field math and
// the renderer.
type RenderConfig struct {
	Spacing       float64
	DotSize       float64
	WaveAmplitude float64
	WaveFrequency float64
	TimeScale     float64
	Perspective   float64
	LineAlpha     float64

	// MaxRows and MaxCols cap the grid regardless of surface size.
	// Zero means uncapped.
	MaxRows int
	MaxCols int

	// SkipAlternateEdges draws edges only from cells with an even
	// row+column sum.
	SkipAlternateEdges bool
}

var (
	FullConfig = RenderConfig{
		Spacing:       40,
		DotSize:       1.5,
		WaveAmplitude: 15,
		WaveFrequency: 2,
		TimeScale:     1,
		Perspective:   400,
		LineAlpha:     0.05,
	}

	ReducedConfig = RenderConfig{
		Spacing:            40,
		DotSize:            1.2,
		WaveAmplitude:      15,
		WaveFrequency:      1.5,
		TimeScale:          0.6,
		Perspective:        400,
		LineAlpha:          0.05,
		MaxRows:            24,
		MaxCols:            24,
		SkipAlternateEdges: true,
	}
)

// ConfigFor returns the config of an animated tier. TierStatic never renders
// frames and gets FullConfig.
func ConfigFor(tier Tier) RenderConfig {
	if tier == TierReduced {
		return ReducedConfig
	}
	return FullConfig
}

// Viewport is the drawing surface size and the tier the grid is drawn at.
type Viewport struct {
	Width  int
	Height int
	Tier   Tier
}

// Cell is one grid point as computed for a single frame.
type Cell struct {
	Col, Row int
	X, Y     float64
	Depth    float64
	Size     float64
	Color    Color
}

// GridSize returns ceil(w/spacing)+2 columns and ceil(h/spacing)+2 rows,
// capped by MaxCols and MaxRows.
func (cfg RenderConfig) GridSize(w, h int) (cols, rows int) {
	cols = int(math.Ceil(float64(w)/cfg.Spacing)) + 2
	rows = int(math.Ceil(float64(h)/cfg.Spacing)) + 2
	if cfg.MaxCols > 0 && cols > cfg.MaxCols {
		cols = cfg.MaxCols
	}
	if cfg.MaxRows > 0 && rows > cfg.MaxRows {
		rows = cfg.MaxRows
	}
	return cols, rows
}

// Position places cell (col, row) so that the grid is centred on the surface
// and starts one spacing before its top-left corner.
func (cfg RenderConfig) Position(col, row int, w, h float64) (x, y float64) {
	offsetX := math.Mod(w, cfg.Spacing) / 2
	offsetY := math.Mod(h, cfg.Spacing) / 2
	return float64(col-1)*cfg.Spacing + offsetX, float64(row-1)*cfg.Spacing + offsetY
}

// Depth is the wave height at (x, y) on a w×h surface t seconds after mount.
func (cfg RenderConfig) Depth(x, y, w, h, t float64) float64 {
	d := normDist(x, y, w, h)
	return math.Sin(d*cfg.WaveFrequency*math.Pi+t*cfg.TimeScale) * cfg.WaveAmplitude
}

// PerspectiveFactor scales size and opacity: deeper points shrink and fade.
func (cfg RenderConfig) PerspectiveFactor(depth float64) float64 {
	return 1 - depth/cfg.Perspective
}

// RenderedSize is the dot radius at depth; it never drops below half a pixel.
func (cfg RenderConfig) RenderedSize(depth float64) float64 {
	return math.Max(0.5, cfg.DotSize*cfg.PerspectiveFactor(depth))
}

// LineOpacity fades an edge by how far apart its endpoints' depths are.
func (cfg RenderConfig) LineOpacity(depthA, depthB float64) float64 {
	return math.Max(0, cfg.LineAlpha*(1-math.Abs(depthA-depthB)/cfg.WaveAmplitude))
}

// Cell computes the position, depth, size and colour of (col, row).
func (cfg RenderConfig) Cell(col, row int, w, h float64, pal Palette, t float64) Cell {
	x, y := cfg.Position(col, row, w, h)
	d := normDist(x, y, w, h)
	depth := math.Sin(d*cfg.WaveFrequency*math.Pi+t*cfg.TimeScale) * cfg.WaveAmplitude
	pf := cfg.PerspectiveFactor(depth)

	var c Color
	if mix := math.Sin(d*3+t*0.5)*0.5 + 0.5; mix > 0.7 {
		c = pal.Primary.WithAlpha(0.3 * pf)
	} else {
		c = pal.Accent.WithAlpha(0.15 * pf)
	}
	return Cell{
		Col:   col,
		Row:   row,
		X:     x,
		Y:     y,
		Depth: depth,
		Size:  cfg.RenderedSize(depth),
		Color: c,
	}
}

func normDist(x, y, w, h float64) float64 {
	dx := (x - w/2) / w
	dy := (y - h/2) / h
	return math.Sqrt(dx*dx + dy*dy)
}
