package svgpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interpret(cmds []Command) ([]DrawingInstruction, Diagnostics) {
	var (
		path  Path
		diags Diagnostics
	)
	in := Interpreter{Diagnostics: &diags}
	in.Interpret(cmds, &path)
	return path.Instructions, diags
}

func TestInterpretRelativeWithoutCurrentPoint(t *testing.T) {
	for _, cmd := range []Command{
		LineToRelative{DX: 5, DY: 5},
		MoveRelative{DX: 5, DY: 5},
		HorizontalLineToRelative{DX: 5},
		VerticalLineToAbsolute{Y: 5},
		CurveToRelative{DX: 1},
		QuadraticCurveToRelative{DX: 1},
		SmoothCurveToAbsolute{},
	} {
		dis, diags := interpret([]Command{cmd})
		assert.Empty(t, dis, "%v", cmd)
		require.Len(t, diags, 1, "%v", cmd)
		assert.Equal(t, MissingCurrentPoint, diags[0].Kind)
		assert.Equal(t, cmd, diags[0].Command)
		assert.ErrorIs(t, diags[0], ErrMissingCurrentPoint)
	}
}

func TestInterpretSmoothCurve(t *testing.T) {
	dis, diags := interpret([]Command{
		CurveToAbsolute{XY1: Point{0, 0}, XY2: Point{10, 0}, XY: Point{10, 10}},
		SmoothCurveToAbsolute{XY2: Point{20, 10}, XY: Point{20, 20}},
	})
	require.Empty(t, diags)
	require.Len(t, dis, 2)
	assert.Equal(t, DrawingInstruction{Kind: CurveInstruction, M: Point{20, 20}, C1: Point{10, 20}, C2: Point{20, 10}}, dis[1])
}

func TestInterpretSmoothChain(t *testing.T) {
	// every S records its own second control point for the next one
	dis, diags := interpret(Parse("M0 0 C0 0 10 0 10 10 S20 10 20 20 S30 20 30 30"))
	require.Empty(t, diags)
	require.Len(t, dis, 4)
	assert.Equal(t, Point{20, 30}, dis[3].C1)
}

func TestInterpretSmoothQuadratic(t *testing.T) {
	dis, diags := interpret(Parse("M0 0 C0 0 10 0 10 10 T20 20"))
	require.Empty(t, diags)
	require.Len(t, dis, 3)
	assert.Equal(t, DrawingInstruction{Kind: QuadInstruction, M: Point{20, 20}, C1: Point{10, 20}}, dis[2])
}

func TestInterpretSmoothWithoutPreviousCurve(t *testing.T) {
	dis, diags := interpret(Parse("M0 0 T4 4 S1 1 2 2"))
	assert.Len(t, dis, 1)
	assert.Equal(t, 2, diags.Count(UnhandledCommand))

	// a skipped S still leaves its control point behind
	dis, diags = interpret(Parse("M0 0 S10 0 10 10 T20 20"))
	require.Len(t, dis, 2)
	assert.Equal(t, 1, diags.Count(UnhandledCommand))
	assert.Equal(t, Point{-10, 0}, dis[1].C1)
}

func TestInterpretUnhandled(t *testing.T) {
	cmds := []Command{
		MoveAbsolute{},
		SmoothCurveToRelative{DX: 1},
		SmoothQuadraticCurveToRelative{DX: 1},
		EllipticalArcAbsolute{RX: 1, RY: 1, XY: Point{2, 0}},
		EllipticalArcRelative{RX: 1, RY: 1, DX: 2},
		Invalid{Command: 'L', Expected: 2, Actual: 1},
		LineToAbsolute{XY: Point{1, 1}},
	}
	dis, diags := interpret(cmds)
	assert.Equal(t, []InstructionType{MoveInstruction, LineInstruction}, kinds(dis))
	require.Len(t, diags, 5)
	for i, d := range diags {
		assert.Equal(t, UnhandledCommand, d.Kind)
		assert.Equal(t, i+1, d.Offset)
		assert.Equal(t, cmds[i+1].Letter(), d.Letter)
	}
}

func TestInterpretRelative(t *testing.T) {
	dis, diags := interpret(Parse("M1 1 m1 1 l2 2 h3 v4 c1 1 2 2 3 3 q1 1 2 2"))
	require.Empty(t, diags)
	assert.Equal(t, []DrawingInstruction{
		{Kind: MoveInstruction, M: Point{1, 1}},
		{Kind: MoveInstruction, M: Point{2, 2}},
		{Kind: LineInstruction, M: Point{4, 4}},
		{Kind: LineInstruction, M: Point{7, 4}},
		{Kind: LineInstruction, M: Point{7, 8}},
		{Kind: CurveInstruction, M: Point{10, 11}, C1: Point{8, 9}, C2: Point{9, 10}},
		{Kind: QuadInstruction, M: Point{12, 13}, C1: Point{11, 12}},
	}, dis)
}

func TestInterpretAxisLines(t *testing.T) {
	dis, diags := interpret(Parse("M1 2 H5 V7"))
	require.Empty(t, diags)
	assert.Equal(t, Point{5, 2}, dis[1].M)
	assert.Equal(t, Point{5, 7}, dis[2].M)
}

func TestInterpretMoveAfterClose(t *testing.T) {
	dis, diags := interpret(Parse("M10 10 L20 10 z m5 5"))
	require.Empty(t, diags)
	require.Len(t, dis, 4)
	assert.Equal(t, CloseInstruction, dis[2].Kind)
	assert.Equal(t, DrawingInstruction{Kind: MoveInstruction, M: Point{15, 15}}, dis[3])
}

func TestInterpretAbsoluteOnly(t *testing.T) {
	d := "M0 0 L1 1 H2 V3 C1 1 2 2 3 3 Q4 4 5 5 Z M6 6 L7 7"
	dis, diags := Instructions(d)
	require.Empty(t, diags)

	letters := 0
	for i := 0; i < len(d); i++ {
		if IsCommand(d[i]) {
			letters++
		}
	}
	assert.Len(t, dis, letters)
	assert.Equal(t, []InstructionType{
		MoveInstruction, LineInstruction, LineInstruction, LineInstruction,
		CurveInstruction, QuadInstruction, CloseInstruction,
		MoveInstruction, LineInstruction,
	}, kinds(dis))
}

func TestInterpretFixtures(t *testing.T) {
	tests := []struct {
		Name      string
		D         string
		Unhandled int
		Len       int
	}{
		{"circle", circlePathData, 0, 6},
		{"square", squarePathData, 0, 20},
		{"key", keyPathData, strings.Count(keyPathData, "s"), 59},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			dis, diags := Instructions(test.D)
			assert.Len(t, diags, test.Unhandled)
			assert.Equal(t, test.Unhandled, diags.Count(UnhandledCommand))
			require.Len(t, dis, test.Len)
			assert.Equal(t, CloseInstruction, dis[len(dis)-1].Kind)
		})
	}
}

func TestInterpretIdempotent(t *testing.T) {
	for _, d := range []string{circlePathData, squarePathData, keyPathData} {
		first, _ := Instructions(d)
		second, _ := Instructions(d)
		assert.Equal(t, first, second)
	}
}

func TestDraw(t *testing.T) {
	var (
		path  Path
		kinds []DiagnosticKind
	)
	Draw("M0 0 L1 x a1 1 0 0 0 2 2", &path, DiagnosticFunc(func(d Diagnostic) {
		kinds = append(kinds, d.Kind)
	}))
	assert.Equal(t, []DiagnosticKind{UnparseableNumber, BadArguments, UnhandledCommand}, kinds)
	assert.Len(t, path.Instructions, 1)
}

func TestInterpretPackageLevel(t *testing.T) {
	var path Path
	Interpret([]Command{MoveAbsolute{XY: Point{1, 1}}, ClosePath{}}, &path)
	assert.Equal(t, []InstructionType{MoveInstruction, CloseInstruction}, kinds(path.Instructions))
}

func kinds(dis []DrawingInstruction) []InstructionType {
	ks := make([]InstructionType, len(dis))
	for i, di := range dis {
		ks[i] = di.Kind
	}
	return ks
}
