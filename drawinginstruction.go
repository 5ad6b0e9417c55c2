package svgpath

// InstructionType tells our path drawing library which function it has
// to call
type InstructionType int

// These are instruction types that we use with our path drawing library
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	CurveInstruction
	QuadInstruction
	CloseInstruction
)

func (t InstructionType) String() string {
	switch t {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case CurveInstruction:
		return "curve"
	case QuadInstruction:
		return "quad"
	case CloseInstruction:
		return "close"
	}
	return "unknown"
}

// DrawingInstruction is one resolved operation in absolute coordinates.
// M is the end point of every kind but CloseInstruction. C1 is the
// control point of a quadratic curve and the first control point of a
// cubic one; C2 is only used by cubic curves.
type DrawingInstruction struct {
	Kind InstructionType
	M    Point
	C1   Point
	C2   Point
}

// Replay sends the instruction to sink.
func (di DrawingInstruction) Replay(sink Sink) {
	switch di.Kind {
	case MoveInstruction:
		sink.MoveTo(di.M)
	case LineInstruction:
		sink.LineTo(di.M)
	case CurveInstruction:
		sink.CurveTo(di.M, di.C1, di.C2)
	case QuadInstruction:
		sink.QuadCurveTo(di.M, di.C1)
	case CloseInstruction:
		sink.CloseSubpath()
	}
}

// points returns the coordinates the instruction touches.
func (di DrawingInstruction) points() []Point {
	switch di.Kind {
	case MoveInstruction, LineInstruction:
		return []Point{di.M}
	case CurveInstruction:
		return []Point{di.C1, di.C2, di.M}
	case QuadInstruction:
		return []Point{di.C1, di.M}
	}
	return nil
}
