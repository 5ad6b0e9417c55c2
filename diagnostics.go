package svgpath

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// These errors classify a Diagnostic; test for them with errors.Is.
var (
	ErrUnparseableNumber   = errors.New("unparseable number")
	ErrBadArguments        = errors.New("bad arguments")
	ErrMissingCommand      = errors.New("number outside of a command")
	ErrMissingCurrentPoint = errors.New("no current point")
	ErrUnhandledCommand    = errors.New("unhandled command")
)

// DiagnosticKind tells which recoverable problem a Diagnostic reports.
type DiagnosticKind int

const (
	UnparseableNumber DiagnosticKind = iota
	BadArguments
	MissingCommand
	MissingCurrentPoint
	UnhandledCommand
)

var diagnosticKinds = [...]struct {
	name string
	err  error
}{
	UnparseableNumber:   {"unparseable-number", ErrUnparseableNumber},
	BadArguments:        {"bad-arguments", ErrBadArguments},
	MissingCommand:      {"missing-command", ErrMissingCommand},
	MissingCurrentPoint: {"missing-current-point", ErrMissingCurrentPoint},
	UnhandledCommand:    {"unhandled-command", ErrUnhandledCommand},
}

func (k DiagnosticKind) String() string {
	if k < 0 || int(k) >= len(diagnosticKinds) {
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
	return diagnosticKinds[k].name
}

// Diagnostic describes an input problem that was skipped over. Parsing
// and drawing never stop because of one.
type Diagnostic struct {
	Kind DiagnosticKind

	// Letter is the command letter involved, or 0.
	Letter byte
	// Command is set for diagnostics raised while interpreting.
	Command Command
	// Token is the offending number text, if any.
	Token string
	// Expected and Actual are argument counts for BadArguments.
	Expected, Actual int
	// Offset is the byte offset in the path data, or the index into the
	// command list for interpreter diagnostics.
	Offset int
}

func (d Diagnostic) Error() string {
	switch d.Kind {
	case UnparseableNumber:
		return fmt.Sprintf("can't parse number %q at offset %d", d.Token, d.Offset)
	case BadArguments:
		return fmt.Sprintf("bad arguments for %c at offset %d: expected %d, got %d",
			d.Letter, d.Offset, d.Expected, d.Actual)
	case MissingCommand:
		return fmt.Sprintf("number %q at offset %d does not follow a command", d.Token, d.Offset)
	case MissingCurrentPoint:
		return fmt.Sprintf("no current point for %v (command %d)", d.Command, d.Offset)
	case UnhandledCommand:
		return fmt.Sprintf("don't know how to handle %v (command %d)", d.Command, d.Offset)
	}
	return d.Kind.String()
}

func (d Diagnostic) Unwrap() error {
	if d.Kind < 0 || int(d.Kind) >= len(diagnosticKinds) {
		return nil
	}
	return diagnosticKinds[d.Kind].err
}

// DiagnosticHandler receives the diagnostics raised by a Parser or an
// Interpreter.
type DiagnosticHandler interface {
	HandleDiagnostic(Diagnostic)
}

// DiagnosticFunc adapts a function to a DiagnosticHandler.
type DiagnosticFunc func(Diagnostic)

func (f DiagnosticFunc) HandleDiagnostic(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard DiagnosticHandler = DiagnosticFunc(func(Diagnostic) {})

// Diagnostics collects diagnostics in the order they were raised.
type Diagnostics []Diagnostic

func (ds *Diagnostics) HandleDiagnostic(d Diagnostic) {
	*ds = append(*ds, d)
}

// Count returns how many of the collected diagnostics are of kind k.
func (ds Diagnostics) Count(k DiagnosticKind) int {
	n := 0
	for _, d := range ds {
		if d.Kind == k {
			n++
		}
	}
	return n
}

// Err joins the collected diagnostics into one error, or returns nil if
// there are none.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	errs := make([]error, len(ds))
	for i, d := range ds {
		errs[i] = d
	}
	return errors.Join(errs...)
}

type logHandler struct {
	logger *slog.Logger
}

// LogDiagnostics returns a handler writing every diagnostic to logger as
// a warning. A nil logger means slog.Default().
func LogDiagnostics(logger *slog.Logger) DiagnosticHandler {
	return logHandler{logger: logger}
}

func (h logHandler) HandleDiagnostic(d Diagnostic) {
	logger := h.logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []slog.Attr{
		slog.String("kind", d.Kind.String()),
		slog.Int("offset", d.Offset),
	}
	if d.Letter != 0 {
		attrs = append(attrs, slog.String("command", string(d.Letter)))
	}
	if d.Token != "" {
		attrs = append(attrs, slog.String("token", d.Token))
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, d.Error(), attrs...)
}

// orDefault returns h, or the slog handler when h is nil.
func orDefault(h DiagnosticHandler) DiagnosticHandler {
	if h == nil {
		return LogDiagnostics(nil)
	}
	return h
}
