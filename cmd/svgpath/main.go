// Command svgpath parses SVG path data and prints the commands or the
// resolved drawing operations.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vasalvit/svgpath"
)

type app struct {
	configFile  string
	strict      bool
	keepInvalid bool
	precision   int
	logLevel    string

	cfg    config
	logger *slog.Logger
	diags  svgpath.Diagnostics
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "svgpath",
		Short:        "Parse and resolve SVG path data",
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(root, cmd.ErrOrStderr())
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "TOML config file")
	flags.BoolVar(&a.strict, "strict", false, "fail when the path data has any problem")
	flags.BoolVar(&a.keepInvalid, "keep-invalid", false, "print malformed commands instead of dropping them")
	flags.IntVar(&a.precision, "precision", 0, "digits per number, 0 for full precision")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		&cobra.Command{
			Use:   "commands <path-data>",
			Short: "Print one parsed command per line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.commands(cmd.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:   "draw <path-data>",
			Short: "Print the resolved absolute drawing operations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.draw(cmd.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:   "file <svg-file>",
			Short: "Print the drawing operations of every path in an SVG file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fp, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer fp.Close()
				return a.file(cmd.OutOrStdout(), fp)
			},
		},
	)
	return root
}

// setup merges the config file with the flags set on the command line.
func (a *app) setup(root *cobra.Command, stderr io.Writer) error {
	cfg, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}

	flags := root.PersistentFlags()
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("keep-invalid") {
		cfg.KeepInvalid = a.keepInvalid
	}
	if a.strict {
		cfg.ErrorMode = svgpath.StrictErrorMode
	}
	if flags.Changed("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(a.logLevel)); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	a.diags = nil
	return nil
}

// handler logs diagnostics as the error mode says and keeps them for the
// strict mode check.
func (a *app) handler() svgpath.DiagnosticHandler {
	logged := a.cfg.library().Handler(a.logger)
	return svgpath.DiagnosticFunc(func(d svgpath.Diagnostic) {
		a.diags.HandleDiagnostic(d)
		logged.HandleDiagnostic(d)
	})
}

func (a *app) done() error {
	if a.cfg.ErrorMode != svgpath.StrictErrorMode || len(a.diags) == 0 {
		return nil
	}
	return fmt.Errorf("%d problems in path data: %w", len(a.diags), a.diags.Err())
}

func (a *app) commands(w io.Writer, d string) error {
	lib := a.cfg.library()
	p := svgpath.NewParser(lib, a.handler())
	f := svgpath.NewFormatter(lib)
	for _, c := range p.Parse(d) {
		if _, ok := c.(svgpath.Invalid); ok {
			fmt.Fprintln(w, c)
			continue
		}
		fmt.Fprintln(w, f.Command(c))
	}
	return a.done()
}

func (a *app) drawPath(w io.Writer, d string) {
	lib := a.cfg.library()
	h := a.handler()
	var path svgpath.Path
	svgpath.NewInterpreter(lib, h).Interpret(svgpath.NewParser(lib, h).Parse(d), &path)

	f := svgpath.NewFormatter(lib)
	for _, di := range path.Instructions {
		fmt.Fprintln(w, f.Instructions([]svgpath.DrawingInstruction{di}))
	}
	a.logger.Debug("path drawn", "instructions", len(path.Instructions))
}

func (a *app) draw(w io.Writer, d string) error {
	a.drawPath(w, d)
	return a.done()
}

func (a *app) file(w io.Writer, r io.Reader) error {
	paths, err := svgpath.ReadPathData(r)
	if err != nil {
		return err
	}
	for i, p := range paths {
		name := p.ID
		if name == "" {
			name = fmt.Sprintf("path %d", i+1)
		}
		fmt.Fprintf(w, "# %s\n", name)
		a.drawPath(w, p.D)
	}
	return a.done()
}
