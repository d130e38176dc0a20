package herobg

import (
	"io"

	"github.com/gogpu/gg"
)

// Surface is a 2D drawing target.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int) error
	Clear()
	FillCircle(x, y, r float64, c Color) error
	StrokeLine(x0, y0, x1, y1 float64, c Color) error
	// FillGradient paints the whole surface with a diagonal gradient.
	FillGradient(from, to Color) error
}

// DrawPlaceholder replaces the surface content with the static gradient
// shown to constrained clients and after a draw failure.
func DrawPlaceholder(s Surface, pal Palette) error {
	s.Clear()
	return s.FillGradient(pal.Primary.WithAlpha(0.15), pal.Accent.WithAlpha(0.08))
}

// CanvasSurface rasterises onto an in-memory gogpu/gg context.
type CanvasSurface struct {
	dc *gg.Context
}

var _ Surface = (*CanvasSurface)(nil)

// NewCanvasSurface creates a surface of at least 1×1 pixels.
func NewCanvasSurface(width, height int) *CanvasSurface {
	return &CanvasSurface{dc: gg.NewContext(max(width, 1), max(height, 1))}
}

func (s *CanvasSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *CanvasSurface) Resize(width, height int) error {
	return s.dc.Resize(width, height)
}

func (s *CanvasSurface) Clear() {
	s.dc.Clear()
}

func (s *CanvasSurface) FillCircle(x, y, r float64, c Color) error {
	s.dc.SetFillBrush(gg.Solid(c.toGG()))
	s.dc.DrawCircle(x, y, r)
	return s.dc.Fill()
}

func (s *CanvasSurface) StrokeLine(x0, y0, x1, y1 float64, c Color) error {
	s.dc.SetStrokeBrush(gg.Solid(c.toGG()))
	s.dc.SetLineWidth(1)
	s.dc.DrawLine(x0, y0, x1, y1)
	return s.dc.Stroke()
}

func (s *CanvasSurface) FillGradient(from, to Color) error {
	w, h := float64(s.dc.Width()), float64(s.dc.Height())
	s.dc.SetFillBrush(gg.NewLinearGradientBrush(0, 0, w, h).
		AddColorStop(0, from.toGG()).
		AddColorStop(1, to.toGG()))
	s.dc.DrawRectangle(0, 0, w, h)
	return s.dc.Fill()
}

// EncodePNG writes the current pixels as PNG.
func (s *CanvasSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *CanvasSurface) Close() error {
	return s.dc.Close()
}
