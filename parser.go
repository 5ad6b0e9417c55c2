package svgpath

import (
	"math"
	"strconv"
	"strings"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Parser turns path data into commands. The zero value drops malformed
// commands and logs diagnostics through slog.
type Parser struct {
	// KeepInvalid appends an Invalid command wherever a command had the
	// wrong number of arguments instead of dropping it.
	KeepInvalid bool
	Diagnostics DiagnosticHandler
}

// Parse parses d with the zero Parser.
func Parse(d string) []Command {
	var p Parser
	return p.Parse(d)
}

// ParseStrict parses d and returns every diagnostic as a joined error
// next to the commands that could be parsed.
func ParseStrict(d string) ([]Command, error) {
	var diags Diagnostics
	p := Parser{Diagnostics: &diags}
	cmds := p.Parse(d)
	return cmds, diags.Err()
}

// Parse scans d once, left to right. It never fails: malformed numbers
// and commands are reported to p.Diagnostics and skipped.
func (p *Parser) Parse(d string) []Command {
	s := pathDataScanner{
		keepInvalid: p.KeepInvalid,
		diag:        orDefault(p.Diagnostics),
	}
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case IsCommand(c):
			s.flush()
			s.finish()
			s.open(c, i)
		case c == ',' || isSpace(c):
			s.flush()
		case c == '-' || c == '+':
			// 10-5 is two numbers, 1e-5 is one
			if !s.afterExponent() {
				s.flush()
			}
			s.push(c, i)
		case c == '.':
			// 0.5.25 is two numbers
			if s.hasFraction() {
				s.flush()
			}
			s.push(c, i)
		default:
			s.push(c, i)
		}
	}
	s.flush()
	s.finish()
	return s.commands
}

// pathDataScanner holds the state of one Parse call.
type pathDataScanner struct {
	keepInvalid bool
	diag        DiagnosticHandler

	commands []Command

	letter   byte // 0 until the first command letter
	letterAt int
	args     []float64
	// slots counts argument tokens including unparseable ones, so that
	// a bad number does not shift the arguments of later commands.
	slots int
	bad   bool

	token   []byte
	tokenAt int
}

func (s *pathDataScanner) open(letter byte, at int) {
	s.letter = letter
	s.letterAt = at
	s.args = s.args[:0]
	s.slots = 0
	s.bad = false
}

func (s *pathDataScanner) push(c byte, at int) {
	if len(s.token) == 0 {
		s.tokenAt = at
	}
	s.token = append(s.token, c)
}

func (s *pathDataScanner) afterExponent() bool {
	n := len(s.token)
	return n > 1 && (s.token[n-1] == 'e' || s.token[n-1] == 'E')
}

func (s *pathDataScanner) hasFraction() bool {
	for _, c := range s.token {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}

// flush ends the number token in progress. A command that already holds
// all its arguments is completed first and a new one with the same
// letter takes the number: L1 2 3 4 is L1 2 L3 4.
func (s *pathDataScanner) flush() {
	if len(s.token) == 0 {
		return
	}
	tok := string(s.token)
	s.token = s.token[:0]

	if s.letter == 0 {
		s.diag.HandleDiagnostic(Diagnostic{Kind: MissingCommand, Token: tok, Offset: s.tokenAt})
		return
	}
	if n, _ := Arity(s.letter); s.slots == n {
		letter := s.letter
		s.finish()
		s.open(letter, s.tokenAt)
	}

	s.slots++
	v, ok := parseNumber(tok)
	if !ok {
		s.bad = true
		s.diag.HandleDiagnostic(Diagnostic{Kind: UnparseableNumber, Letter: s.letter, Token: tok, Offset: s.tokenAt})
		return
	}
	s.args = append(s.args, v)
}

// finish completes the open command, if any.
func (s *pathDataScanner) finish() {
	if s.letter == 0 {
		return
	}
	letter := s.letter
	s.letter = 0

	var cmd Command
	if s.bad {
		n, _ := Arity(letter)
		cmd = Invalid{Command: letter, Expected: n, Actual: len(s.args)}
	} else {
		cmd = NewCommand(letter, s.args)
	}
	if inv, ok := cmd.(Invalid); ok {
		s.diag.HandleDiagnostic(Diagnostic{
			Kind:     BadArguments,
			Letter:   letter,
			Expected: inv.Expected,
			Actual:   inv.Actual,
			Offset:   s.letterAt,
		})
		if !s.keepInvalid {
			return
		}
	}
	s.commands = append(s.commands, cmd)
}

// parseNumber accepts tok only if all of it is a plain decimal number
// that fits a float64. The scanner decides the extent of the number,
// the value itself is converted with correct rounding.
func parseNumber(tok string) (float64, bool) {
	if _, n := tdstrconv.ParseFloat([]byte(tok)); n == 0 || n != len(tok) {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isSpace(c byte) bool {
	return strings.IndexByte(" \t\n\r\f", c) >= 0
}
