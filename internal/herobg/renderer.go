package herobg

import "fmt"

// Stats counts the draw calls issued for one frame.
type Stats struct {
	Dots  int
	Edges int
}

// RenderFrame clears s and draws the whole grid for time t.
//
// Cells are visited row-major. Each cell draws its dot, then an edge to its
// right neighbour and one to its bottom neighbour, so every shared edge is
// drawn exactly once. The first surface error aborts the frame.
func RenderFrame(s Surface, vp Viewport, pal Palette, cfg RenderConfig, t float64) (Stats, error) {
	var st Stats
	if vp.Width <= 0 || vp.Height <= 0 {
		return st, nil
	}
	s.Clear()

	w, h := float64(vp.Width), float64(vp.Height)
	cols, rows := cfg.GridSize(vp.Width, vp.Height)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := cfg.Cell(col, row, w, h, pal, t)
			if err := s.FillCircle(c.X, c.Y, c.Size, c.Color); err != nil {
				return st, fmt.Errorf("dot (%d,%d): %w", col, row, err)
			}
			st.Dots++

			if cfg.SkipAlternateEdges && (row+col)%2 == 1 {
				continue
			}
			if col < cols-1 {
				if err := drawEdge(s, cfg, pal, c, col+1, row, w, h, t); err != nil {
					return st, err
				}
				st.Edges++
			}
			if row < rows-1 {
				if err := drawEdge(s, cfg, pal, c, col, row+1, w, h, t); err != nil {
					return st, err
				}
				st.Edges++
			}
		}
	}
	return st, nil
}

func drawEdge(s Surface, cfg RenderConfig, pal Palette, from Cell, col, row int, w, h, t float64) error {
	x, y := cfg.Position(col, row, w, h)
	depth := cfg.Depth(x, y, w, h, t)
	c := pal.Primary.WithAlpha(cfg.LineOpacity(from.Depth, depth))
	if err := s.StrokeLine(from.X, from.Y, x, y, c); err != nil {
		return fmt.Errorf("edge (%d,%d)-(%d,%d): %w", from.Col, from.Row, col, row, err)
	}
	return nil
}
