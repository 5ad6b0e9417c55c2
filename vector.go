package svgpath

import "golang.org/x/image/vector"

// RasterizerSink draws the operations onto a vector.Rasterizer. The
// rasterizer works in float32, so coordinates lose precision on the way.
type RasterizerSink struct {
	Rasterizer *vector.Rasterizer
	pen
}

// NewRasterizerSink returns a sink over a new w by h rasterizer.
func NewRasterizerSink(w, h int) *RasterizerSink {
	return &RasterizerSink{Rasterizer: vector.NewRasterizer(w, h)}
}

func (s *RasterizerSink) begin(pt Point) {
	if s.open {
		return
	}
	if cur, ok := s.CurrentPoint(); ok {
		pt = cur
	}
	s.Rasterizer.MoveTo(float32(pt.X), float32(pt.Y))
}

// MoveTo closes an open subpath first, as filling would, so that its
// edges leave no winding behind in the rasterizer.
func (s *RasterizerSink) MoveTo(pt Point) {
	if s.open {
		s.Rasterizer.ClosePath()
	}
	s.pen.moveTo(pt)
	s.Rasterizer.MoveTo(float32(pt.X), float32(pt.Y))
}

func (s *RasterizerSink) LineTo(pt Point) {
	s.begin(pt)
	s.pen.drawTo(pt)
	s.Rasterizer.LineTo(float32(pt.X), float32(pt.Y))
}

func (s *RasterizerSink) CurveTo(pt, c1, c2 Point) {
	s.begin(pt)
	s.pen.drawTo(pt)
	s.Rasterizer.CubeTo(
		float32(c1.X), float32(c1.Y),
		float32(c2.X), float32(c2.Y),
		float32(pt.X), float32(pt.Y))
}

func (s *RasterizerSink) QuadCurveTo(pt, c Point) {
	s.begin(pt)
	s.pen.drawTo(pt)
	s.Rasterizer.QuadTo(float32(c.X), float32(c.Y), float32(pt.X), float32(pt.Y))
}

func (s *RasterizerSink) CloseSubpath() {
	if !s.open {
		return
	}
	s.pen.close()
	s.Rasterizer.ClosePath()
}

// Finish closes the last subpath if it is still open. Call it once the
// last command has been interpreted and before drawing the rasterizer.
func (s *RasterizerSink) Finish() {
	if s.open {
		s.Rasterizer.ClosePath()
		s.open = false
	}
}
