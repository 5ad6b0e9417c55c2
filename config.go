package svgpath

import (
	"fmt"
	"log/slog"
	"strings"
)

// ErrorMode decides what happens to diagnostics: IgnoreErrorMode drops
// them, WarnErrorMode logs them and StrictErrorMode turns them into an
// error where the API can return one.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	}
	return fmt.Sprintf("ErrorMode(%d)", uint8(m))
}

// ParseErrorMode is the inverse of ErrorMode.String.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return IgnoreErrorMode, nil
	case "", "warn":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	}
	return WarnErrorMode, fmt.Errorf("unknown error mode %q", s)
}

func (m ErrorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ErrorMode) UnmarshalText(text []byte) error {
	mode, err := ParseErrorMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Config gathers the knobs shared by Parser, Interpreter and Formatter.
type Config struct {
	// Precision caps the number of digits written when formatting
	// numbers; zero or negative means as many as needed.
	Precision int
	// KeepInvalid makes the parser emit Invalid commands instead of
	// dropping them.
	KeepInvalid bool
	ErrorMode   ErrorMode
}

// DefaultConfig logs diagnostics, drops malformed commands and formats
// numbers with full precision.
func DefaultConfig() Config {
	return Config{ErrorMode: WarnErrorMode}
}

// Handler returns the diagnostic handler the error mode asks for. In
// strict mode diagnostics are logged too; callers that want them as an
// error collect them with a Diagnostics value instead.
func (c Config) Handler(logger *slog.Logger) DiagnosticHandler {
	if c.ErrorMode == IgnoreErrorMode {
		return Discard
	}
	return LogDiagnostics(logger)
}

// NewParser returns a Parser configured by c that reports to h. A nil h
// selects c.Handler(nil).
func NewParser(c Config, h DiagnosticHandler) *Parser {
	if h == nil {
		h = c.Handler(nil)
	}
	return &Parser{KeepInvalid: c.KeepInvalid, Diagnostics: h}
}

// NewInterpreter returns an Interpreter reporting to h. A nil h selects
// c.Handler(nil).
func NewInterpreter(c Config, h DiagnosticHandler) *Interpreter {
	if h == nil {
		h = c.Handler(nil)
	}
	return &Interpreter{Diagnostics: h}
}

// NewFormatter returns a Formatter using c.Precision.
func NewFormatter(c Config) *Formatter {
	return &Formatter{Precision: c.Precision}
}
