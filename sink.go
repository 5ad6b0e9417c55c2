package svgpath

// Sink is a 2-D path builder that receives absolute coordinates. It is
// modelled on CoreGraphics paths: CurrentPoint is unset until the first
// operation and closing a subpath moves it back to the subpath start.
type Sink interface {
	MoveTo(p Point)
	LineTo(p Point)
	// CurveTo adds a cubic Bezier curve to p.
	CurveTo(p, control1, control2 Point)
	// QuadCurveTo adds a quadratic Bezier curve to p.
	QuadCurveTo(p, control Point)
	CloseSubpath()
	CurrentPoint() (Point, bool)
}

// pen tracks the current point for sinks whose backend does not expose
// one the way Sink needs it.
type pen struct {
	current, start Point
	ok             bool
	open           bool
}

func (p *pen) moveTo(pt Point) {
	p.current, p.start, p.ok = pt, pt, true
	p.open = true
}

func (p *pen) drawTo(pt Point) {
	if !p.ok {
		p.start = pt
	}
	p.current, p.ok = pt, true
	p.open = true
}

func (p *pen) close() {
	if p.ok {
		p.current = p.start
	}
	p.open = false
}

func (p *pen) CurrentPoint() (Point, bool) {
	return p.current, p.ok
}
