package svgpath

// Interpreter resolves parsed commands into absolute drawing operations.
// The zero value logs its diagnostics through slog.
type Interpreter struct {
	Diagnostics DiagnosticHandler
}

// Interpret replays cmds onto sink with the zero Interpreter.
func Interpret(cmds []Command, sink Sink) {
	var in Interpreter
	in.Interpret(cmds, sink)
}

// Draw parses d and replays it onto sink, sending diagnostics of both
// steps to h. A nil h logs them through slog.
func Draw(d string, sink Sink, h DiagnosticHandler) {
	p := Parser{Diagnostics: h}
	in := Interpreter{Diagnostics: h}
	in.Interpret(p.Parse(d), sink)
}

// Instructions parses and resolves d, returning the drawing instructions
// together with every diagnostic raised on the way.
func Instructions(d string) ([]DrawingInstruction, Diagnostics) {
	var (
		path  Path
		diags Diagnostics
	)
	Draw(d, &path, &diags)
	return path.Instructions, diags
}

// Interpret walks cmds in order. A command needing a current point the
// sink does not have is reported as MissingCurrentPoint and skipped. A
// smooth curve with no cubic curve before it, relative smooth curves, arcs
// and Invalid commands are reported as UnhandledCommand and skipped.
func (in *Interpreter) Interpret(cmds []Command, sink Sink) {
	diag := orDefault(in.Diagnostics)

	// second control point of the last cubic curve
	var (
		prevControl    Point
		hasPrevControl bool
	)

	for i, cmd := range cmds {
		current, hasCurrent := sink.CurrentPoint()
		needCurrent := func() bool {
			if !hasCurrent {
				diag.HandleDiagnostic(Diagnostic{Kind: MissingCurrentPoint, Letter: cmd.Letter(), Command: cmd, Offset: i})
			}
			return hasCurrent
		}
		unhandled := func() {
			diag.HandleDiagnostic(Diagnostic{Kind: UnhandledCommand, Letter: cmd.Letter(), Command: cmd, Offset: i})
		}
		// smooth curves reflect the last cubic control point
		smooth := func() bool {
			if !needCurrent() {
				return false
			}
			if !hasPrevControl {
				unhandled()
			}
			return hasPrevControl
		}

		switch c := cmd.(type) {
		case MoveAbsolute:
			sink.MoveTo(c.XY)
		case MoveRelative:
			if needCurrent() {
				sink.MoveTo(current.Add(c.DX, c.DY))
			}
		case ClosePath:
			sink.CloseSubpath()
		case LineToAbsolute:
			sink.LineTo(c.XY)
		case LineToRelative:
			if needCurrent() {
				sink.LineTo(current.Add(c.DX, c.DY))
			}
		case HorizontalLineToAbsolute:
			if needCurrent() {
				sink.LineTo(Point{c.X, current.Y})
			}
		case HorizontalLineToRelative:
			if needCurrent() {
				sink.LineTo(current.Add(c.DX, 0))
			}
		case VerticalLineToAbsolute:
			if needCurrent() {
				sink.LineTo(Point{current.X, c.Y})
			}
		case VerticalLineToRelative:
			if needCurrent() {
				sink.LineTo(current.Add(0, c.DY))
			}
		case CurveToAbsolute:
			prevControl, hasPrevControl = c.XY2, true
			sink.CurveTo(c.XY, c.XY1, c.XY2)
		case CurveToRelative:
			if needCurrent() {
				c2 := current.Add(c.DX2, c.DY2)
				prevControl, hasPrevControl = c2, true
				sink.CurveTo(current.Add(c.DX, c.DY), current.Add(c.DX1, c.DY1), c2)
			}
		case SmoothCurveToAbsolute:
			if smooth() {
				sink.CurveTo(c.XY, current.reflect(prevControl), c.XY2)
			}
			prevControl, hasPrevControl = c.XY2, true
		case QuadraticCurveToAbsolute:
			sink.QuadCurveTo(c.XY, c.XY1)
		case QuadraticCurveToRelative:
			if needCurrent() {
				sink.QuadCurveTo(current.Add(c.DX, c.DY), current.Add(c.DX1, c.DY1))
			}
		case SmoothQuadraticCurveToAbsolute:
			if smooth() {
				sink.QuadCurveTo(c.XY, current.reflect(prevControl))
			}
		default:
			// s, t, arcs and Invalid
			unhandled()
		}
	}
}
