package svgpath

// Point is an X,Y coordinate
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// reflect returns ctrl mirrored through p.
func (p Point) reflect(ctrl Point) Point {
	return Point{2*p.X - ctrl.X, 2*p.Y - ctrl.Y}
}

// arities holds the number of arguments every path command letter needs.
var arities = map[byte]int{
	'M': 2, 'm': 2,
	'Z': 0, 'z': 0,
	'L': 2, 'l': 2,
	'H': 1, 'h': 1,
	'V': 1, 'v': 1,
	'C': 6, 'c': 6,
	'S': 4, 's': 4,
	'Q': 4, 'q': 4,
	'T': 2, 't': 2,
	'A': 7, 'a': 7,
}

// Arity returns the number of arguments the command letter takes. The
// second result is false if letter is not a path command.
func Arity(letter byte) (int, bool) {
	n, ok := arities[letter]
	return n, ok
}

// IsCommand reports whether c is one of the 20 path command letters.
func IsCommand(c byte) bool {
	_, ok := arities[c]
	return ok
}

// Command is a single parsed path command. The set of implementations is
// closed; switch on the concrete type to consume it.
type Command interface {
	// Letter is the path data letter the command was written with.
	Letter() byte
	String() string
	command()
}

// The argument names follow https://www.w3.org/TR/SVG/paths.html#PathData,
// with dx/dy for relative arguments.
type (
	MoveAbsolute struct{ XY Point }
	MoveRelative struct{ DX, DY float64 }

	// ClosePath is written as either Z or z; both mean the same.
	ClosePath struct{}

	LineToAbsolute struct{ XY Point }
	LineToRelative struct{ DX, DY float64 }

	HorizontalLineToAbsolute struct{ X float64 }
	HorizontalLineToRelative struct{ DX float64 }
	VerticalLineToAbsolute   struct{ Y float64 }
	VerticalLineToRelative   struct{ DY float64 }

	CurveToAbsolute struct{ XY1, XY2, XY Point }
	CurveToRelative struct{ DX1, DY1, DX2, DY2, DX, DY float64 }

	SmoothCurveToAbsolute struct{ XY2, XY Point }
	SmoothCurveToRelative struct{ DX2, DY2, DX, DY float64 }

	QuadraticCurveToAbsolute struct{ XY1, XY Point }
	QuadraticCurveToRelative struct{ DX1, DY1, DX, DY float64 }

	SmoothQuadraticCurveToAbsolute struct{ XY Point }
	SmoothQuadraticCurveToRelative struct{ DX, DY float64 }

	EllipticalArcAbsolute struct {
		RX, RY, XAxisRotation float64
		LargeArc, Sweep       bool
		XY                    Point
	}
	EllipticalArcRelative struct {
		RX, RY, XAxisRotation float64
		LargeArc, Sweep       bool
		DX, DY                float64
	}

	// Invalid stands in for a command whose argument count did not match
	// the arity of its letter.
	Invalid struct {
		Command          byte
		Expected, Actual int
	}
)

func (MoveAbsolute) Letter() byte                   { return 'M' }
func (MoveRelative) Letter() byte                   { return 'm' }
func (ClosePath) Letter() byte                      { return 'Z' }
func (LineToAbsolute) Letter() byte                 { return 'L' }
func (LineToRelative) Letter() byte                 { return 'l' }
func (HorizontalLineToAbsolute) Letter() byte       { return 'H' }
func (HorizontalLineToRelative) Letter() byte       { return 'h' }
func (VerticalLineToAbsolute) Letter() byte         { return 'V' }
func (VerticalLineToRelative) Letter() byte         { return 'v' }
func (CurveToAbsolute) Letter() byte                { return 'C' }
func (CurveToRelative) Letter() byte                { return 'c' }
func (SmoothCurveToAbsolute) Letter() byte          { return 'S' }
func (SmoothCurveToRelative) Letter() byte          { return 's' }
func (QuadraticCurveToAbsolute) Letter() byte       { return 'Q' }
func (QuadraticCurveToRelative) Letter() byte       { return 'q' }
func (SmoothQuadraticCurveToAbsolute) Letter() byte { return 'T' }
func (SmoothQuadraticCurveToRelative) Letter() byte { return 't' }
func (EllipticalArcAbsolute) Letter() byte          { return 'A' }
func (EllipticalArcRelative) Letter() byte          { return 'a' }
func (c Invalid) Letter() byte                      { return c.Command }

func (MoveAbsolute) command()                   {}
func (MoveRelative) command()                   {}
func (ClosePath) command()                      {}
func (LineToAbsolute) command()                 {}
func (LineToRelative) command()                 {}
func (HorizontalLineToAbsolute) command()       {}
func (HorizontalLineToRelative) command()       {}
func (VerticalLineToAbsolute) command()         {}
func (VerticalLineToRelative) command()         {}
func (CurveToAbsolute) command()                {}
func (CurveToRelative) command()                {}
func (SmoothCurveToAbsolute) command()          {}
func (SmoothCurveToRelative) command()          {}
func (QuadraticCurveToAbsolute) command()       {}
func (QuadraticCurveToRelative) command()       {}
func (SmoothQuadraticCurveToAbsolute) command() {}
func (SmoothQuadraticCurveToRelative) command() {}
func (EllipticalArcAbsolute) command()          {}
func (EllipticalArcRelative) command()          {}
func (Invalid) command()                        {}

// NewCommand builds the command for letter out of args. It returns an
// Invalid command when letter is unknown or len(args) differs from its
// arity.
func NewCommand(letter byte, args []float64) Command {
	n, ok := arities[letter]
	if !ok || n != len(args) {
		return Invalid{Command: letter, Expected: n, Actual: len(args)}
	}

	pt := func(i int) Point { return Point{args[i], args[i+1]} }

	switch letter {
	case 'M':
		return MoveAbsolute{XY: pt(0)}
	case 'm':
		return MoveRelative{DX: args[0], DY: args[1]}
	case 'Z', 'z':
		return ClosePath{}
	case 'L':
		return LineToAbsolute{XY: pt(0)}
	case 'l':
		return LineToRelative{DX: args[0], DY: args[1]}
	case 'H':
		return HorizontalLineToAbsolute{X: args[0]}
	case 'h':
		return HorizontalLineToRelative{DX: args[0]}
	case 'V':
		return VerticalLineToAbsolute{Y: args[0]}
	case 'v':
		return VerticalLineToRelative{DY: args[0]}
	case 'C':
		return CurveToAbsolute{XY1: pt(0), XY2: pt(2), XY: pt(4)}
	case 'c':
		return CurveToRelative{DX1: args[0], DY1: args[1], DX2: args[2], DY2: args[3], DX: args[4], DY: args[5]}
	case 'S':
		return SmoothCurveToAbsolute{XY2: pt(0), XY: pt(2)}
	case 's':
		return SmoothCurveToRelative{DX2: args[0], DY2: args[1], DX: args[2], DY: args[3]}
	case 'Q':
		return QuadraticCurveToAbsolute{XY1: pt(0), XY: pt(2)}
	case 'q':
		return QuadraticCurveToRelative{DX1: args[0], DY1: args[1], DX: args[2], DY: args[3]}
	case 'T':
		return SmoothQuadraticCurveToAbsolute{XY: pt(0)}
	case 't':
		return SmoothQuadraticCurveToRelative{DX: args[0], DY: args[1]}
	case 'A':
		return EllipticalArcAbsolute{RX: args[0], RY: args[1], XAxisRotation: args[2],
			LargeArc: args[3] != 0, Sweep: args[4] != 0, XY: pt(5)}
	default: // 'a'
		return EllipticalArcRelative{RX: args[0], RY: args[1], XAxisRotation: args[2],
			LargeArc: args[3] != 0, Sweep: args[4] != 0, DX: args[5], DY: args[6]}
	}
}

// Args returns the numeric arguments of c in path data order. Arc flags
// are returned as 0 or 1. Invalid commands have no arguments.
func Args(c Command) []float64 {
	switch c := c.(type) {
	case MoveAbsolute:
		return []float64{c.XY.X, c.XY.Y}
	case MoveRelative:
		return []float64{c.DX, c.DY}
	case LineToAbsolute:
		return []float64{c.XY.X, c.XY.Y}
	case LineToRelative:
		return []float64{c.DX, c.DY}
	case HorizontalLineToAbsolute:
		return []float64{c.X}
	case HorizontalLineToRelative:
		return []float64{c.DX}
	case VerticalLineToAbsolute:
		return []float64{c.Y}
	case VerticalLineToRelative:
		return []float64{c.DY}
	case CurveToAbsolute:
		return []float64{c.XY1.X, c.XY1.Y, c.XY2.X, c.XY2.Y, c.XY.X, c.XY.Y}
	case CurveToRelative:
		return []float64{c.DX1, c.DY1, c.DX2, c.DY2, c.DX, c.DY}
	case SmoothCurveToAbsolute:
		return []float64{c.XY2.X, c.XY2.Y, c.XY.X, c.XY.Y}
	case SmoothCurveToRelative:
		return []float64{c.DX2, c.DY2, c.DX, c.DY}
	case QuadraticCurveToAbsolute:
		return []float64{c.XY1.X, c.XY1.Y, c.XY.X, c.XY.Y}
	case QuadraticCurveToRelative:
		return []float64{c.DX1, c.DY1, c.DX, c.DY}
	case SmoothQuadraticCurveToAbsolute:
		return []float64{c.XY.X, c.XY.Y}
	case SmoothQuadraticCurveToRelative:
		return []float64{c.DX, c.DY}
	case EllipticalArcAbsolute:
		return []float64{c.RX, c.RY, c.XAxisRotation, flag(c.LargeArc), flag(c.Sweep), c.XY.X, c.XY.Y}
	case EllipticalArcRelative:
		return []float64{c.RX, c.RY, c.XAxisRotation, flag(c.LargeArc), flag(c.Sweep), c.DX, c.DY}
	}
	return nil
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
