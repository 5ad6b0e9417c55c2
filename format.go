package svgpath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Formatter writes commands and instructions back as compact path data.
// With full precision the output parses back into the same commands.
// Infinities and NaN have no path data form; they are written the way
// fmt prints them and are reported as unparseable when read back.
type Formatter struct {
	// Precision caps the number of digits written per number; zero or
	// negative keeps as many as needed for an exact round trip.
	Precision int
}

// Format writes cmds as path data with the zero Formatter.
func Format(cmds []Command) string {
	var f Formatter
	return f.Commands(cmds)
}

func (f *Formatter) appendNumber(b []byte, v float64) []byte {
	if f.Precision <= 0 {
		return appendShortest(b, v)
	}
	out, ok := tdstrconv.AppendFloat(b, v, f.Precision)
	if !ok {
		return fmt.Append(b, v)
	}
	return out
}

// appendShortest writes the shortest text that reads back as v, in
// plain or exponent notation, without a leading zero before the point.
func appendShortest(b []byte, v float64) []byte {
	num := strconv.AppendFloat(nil, v, 'f', -1, 64)
	switch {
	case bytes.HasPrefix(num, []byte("0.")):
		num = num[1:]
	case bytes.HasPrefix(num, []byte("-0.")):
		num = append(num[:1], num[2:]...)
	}
	if e := compactExponent(strconv.AppendFloat(nil, v, 'e', -1, 64)); len(e) < len(num) {
		num = e
	}
	return append(b, num...)
}

// compactExponent turns 1.5e+07 into 1.5e7 and 1e-07 into 1e-7.
func compactExponent(num []byte) []byte {
	i := bytes.IndexByte(num, 'e')
	if i < 0 {
		return num
	}
	mant, exp := num[:i+1], num[i+1:]
	out := append([]byte{}, mant...)
	if exp[0] == '-' {
		out = append(out, '-')
	}
	digits := bytes.TrimLeft(exp[1:], "0")
	if len(digits) == 0 {
		digits = []byte("0")
	}
	return append(out, digits...)
}

func (f *Formatter) appendCommand(b []byte, letter byte, args []float64) []byte {
	b = append(b, letter)
	for i, v := range args {
		if i > 0 {
			b = append(b, ',')
		}
		b = f.appendNumber(b, v)
	}
	return b
}

// Command returns c as path data. Invalid commands have no path data
// form and give an empty string.
func (f *Formatter) Command(c Command) string {
	if _, ok := c.(Invalid); ok {
		return ""
	}
	return string(f.appendCommand(nil, c.Letter(), Args(c)))
}

// Commands joins cmds into one path data string, skipping Invalid ones.
func (f *Formatter) Commands(cmds []Command) string {
	var b []byte
	for _, c := range cmds {
		if _, ok := c.(Invalid); ok {
			continue
		}
		if len(b) > 0 {
			b = append(b, ' ')
		}
		b = f.appendCommand(b, c.Letter(), Args(c))
	}
	return string(b)
}

// Instructions writes resolved instructions as absolute path data.
func (f *Formatter) Instructions(dis []DrawingInstruction) string {
	parts := make([]string, 0, len(dis))
	for _, di := range dis {
		var b []byte
		switch di.Kind {
		case MoveInstruction:
			b = f.appendCommand(b, 'M', []float64{di.M.X, di.M.Y})
		case LineInstruction:
			b = f.appendCommand(b, 'L', []float64{di.M.X, di.M.Y})
		case CurveInstruction:
			b = f.appendCommand(b, 'C', []float64{di.C1.X, di.C1.Y, di.C2.X, di.C2.Y, di.M.X, di.M.Y})
		case QuadInstruction:
			b = f.appendCommand(b, 'Q', []float64{di.C1.X, di.C1.Y, di.M.X, di.M.Y})
		case CloseInstruction:
			b = append(b, 'Z')
		}
		parts = append(parts, string(b))
	}
	return strings.Join(parts, " ")
}

func (c MoveAbsolute) String() string                   { return defaultFormatter.Command(c) }
func (c MoveRelative) String() string                   { return defaultFormatter.Command(c) }
func (c ClosePath) String() string                      { return defaultFormatter.Command(c) }
func (c LineToAbsolute) String() string                 { return defaultFormatter.Command(c) }
func (c LineToRelative) String() string                 { return defaultFormatter.Command(c) }
func (c HorizontalLineToAbsolute) String() string       { return defaultFormatter.Command(c) }
func (c HorizontalLineToRelative) String() string       { return defaultFormatter.Command(c) }
func (c VerticalLineToAbsolute) String() string         { return defaultFormatter.Command(c) }
func (c VerticalLineToRelative) String() string         { return defaultFormatter.Command(c) }
func (c CurveToAbsolute) String() string                { return defaultFormatter.Command(c) }
func (c CurveToRelative) String() string                { return defaultFormatter.Command(c) }
func (c SmoothCurveToAbsolute) String() string          { return defaultFormatter.Command(c) }
func (c SmoothCurveToRelative) String() string          { return defaultFormatter.Command(c) }
func (c QuadraticCurveToAbsolute) String() string       { return defaultFormatter.Command(c) }
func (c QuadraticCurveToRelative) String() string       { return defaultFormatter.Command(c) }
func (c SmoothQuadraticCurveToAbsolute) String() string { return defaultFormatter.Command(c) }
func (c SmoothQuadraticCurveToRelative) String() string { return defaultFormatter.Command(c) }
func (c EllipticalArcAbsolute) String() string          { return defaultFormatter.Command(c) }
func (c EllipticalArcRelative) String() string          { return defaultFormatter.Command(c) }

func (c Invalid) String() string {
	return fmt.Sprintf("invalid %c: expected %d arguments, got %d", c.Command, c.Expected, c.Actual)
}

var defaultFormatter Formatter
