package svgpath

import (
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// AdderSink feeds the operations into a rasterx.Adder, such as a
// rasterx.Path, a Filler or a Stroker. Coordinates are converted to 26.6
// fixed point.
type AdderSink struct {
	Adder rasterx.Adder
	pen
}

// NewAdderSink wraps a.
func NewAdderSink(a rasterx.Adder) *AdderSink {
	return &AdderSink{Adder: a}
}

func toFixed(p Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

// begin opens a curve on the adder when drawing resumes after a close
// or starts without a move.
func (s *AdderSink) begin(pt Point) {
	if s.open {
		return
	}
	if cur, ok := s.CurrentPoint(); ok {
		pt = cur
	}
	s.Adder.Start(toFixed(pt))
}

func (s *AdderSink) MoveTo(pt Point) {
	if s.open {
		s.Adder.Stop(false)
	}
	s.pen.moveTo(pt)
	s.Adder.Start(toFixed(pt))
}

func (s *AdderSink) LineTo(pt Point) {
	s.begin(pt)
	s.pen.drawTo(pt)
	s.Adder.Line(toFixed(pt))
}

func (s *AdderSink) CurveTo(pt, c1, c2 Point) {
	s.begin(pt)
	s.pen.drawTo(pt)
	s.Adder.CubeBezier(toFixed(c1), toFixed(c2), toFixed(pt))
}

func (s *AdderSink) QuadCurveTo(pt, c Point) {
	s.begin(pt)
	s.pen.drawTo(pt)
	s.Adder.QuadBezier(toFixed(c), toFixed(pt))
}

func (s *AdderSink) CloseSubpath() {
	if !s.open {
		return
	}
	s.pen.close()
	s.Adder.Stop(true)
}

// Finish ends an open subpath without closing it. Call it once the last
// command has been interpreted.
func (s *AdderSink) Finish() {
	if s.open {
		s.Adder.Stop(false)
		s.open = false
	}
}
