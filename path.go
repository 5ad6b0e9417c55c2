package svgpath

import "math"

// Path records the drawing instructions it receives. It is the Sink to
// use when the instructions are needed as data.
type Path struct {
	Instructions []DrawingInstruction
	pen
}

// A Segment of a path that contains the list of connected on-curve
// points of one subpath and whether the subpath forms a closed loop.
type Segment struct {
	Closed bool
	Points []Point
}

func (p *Path) MoveTo(pt Point) {
	p.pen.moveTo(pt)
	p.Instructions = append(p.Instructions, DrawingInstruction{Kind: MoveInstruction, M: pt})
}

func (p *Path) LineTo(pt Point) {
	p.pen.drawTo(pt)
	p.Instructions = append(p.Instructions, DrawingInstruction{Kind: LineInstruction, M: pt})
}

func (p *Path) CurveTo(pt, c1, c2 Point) {
	p.pen.drawTo(pt)
	p.Instructions = append(p.Instructions, DrawingInstruction{Kind: CurveInstruction, M: pt, C1: c1, C2: c2})
}

func (p *Path) QuadCurveTo(pt, c Point) {
	p.pen.drawTo(pt)
	p.Instructions = append(p.Instructions, DrawingInstruction{Kind: QuadInstruction, M: pt, C1: c})
}

func (p *Path) CloseSubpath() {
	p.pen.close()
	p.Instructions = append(p.Instructions, DrawingInstruction{Kind: CloseInstruction})
}

// Clear empties the path, keeping its storage.
func (p *Path) Clear() {
	p.Instructions = p.Instructions[:0]
	p.pen = pen{}
}

// Replay sends every recorded instruction to sink.
func (p *Path) Replay(sink Sink) {
	for _, di := range p.Instructions {
		di.Replay(sink)
	}
}

// String returns the recorded instructions as absolute path data.
func (p *Path) String() string {
	var f Formatter
	return f.Instructions(p.Instructions)
}

// Bounds returns the smallest rectangle holding every point of the path,
// control points included. ok is false for a path without points.
func (p *Path) Bounds() (min, max Point, ok bool) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, di := range p.Instructions {
		for _, pt := range di.points() {
			min.X, min.Y = math.Min(min.X, pt.X), math.Min(min.Y, pt.Y)
			max.X, max.Y = math.Max(max.X, pt.X), math.Max(max.Y, pt.Y)
			ok = true
		}
	}
	if !ok {
		return Point{}, Point{}, false
	}
	return min, max, true
}

// Segments splits the path into its subpaths, leaving out those with a
// single point. A close adds the subpath start as the last point.
func (p *Path) Segments() []Segment {
	var (
		segs []Segment
		cur  *Segment
	)
	for _, di := range p.Instructions {
		switch di.Kind {
		case MoveInstruction:
			if cur != nil && len(cur.Points) > 1 {
				segs = append(segs, *cur)
			}
			cur = &Segment{Points: []Point{di.M}}
		case CloseInstruction:
			if cur == nil {
				continue
			}
			start := cur.Points[0]
			cur.Points = append(cur.Points, start)
			cur.Closed = true
			segs = append(segs, *cur)
			// drawing on after a close starts from the old start
			cur = &Segment{Points: []Point{start}}
		default:
			if cur == nil {
				cur = &Segment{}
			}
			cur.Points = append(cur.Points, di.M)
		}
	}
	if cur != nil && len(cur.Points) > 1 {
		segs = append(segs, *cur)
	}
	return segs
}
