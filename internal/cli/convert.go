package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/randalmurphal/statkit/parser"
	"github.com/randalmurphal/statkit/statblock"
	"github.com/randalmurphal/statkit/watch"
	"github.com/randalmurphal/statkit/writer"
)

// output holds the flags shared by every command that writes a statblock.
type output struct {
	dialect string
	format  string
	section string
	path    string
	fenced  bool
}

func (a *App) outputFlags(name, args string) (*flag.FlagSet, *output) {
	o := &output{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.Stderr, "\nUsage:\n  statkit %s [options] %s\n\nOptions:\n", name, args)
		fs.PrintDefaults()
	}

	fs.StringVar(&o.dialect, "dialect", a.cfg.Dialect, "Input dialect: 'pdf', 'srd' or 'html'.")
	fs.StringVar(&o.format, "format", a.cfg.Format, "Output format. See 'statkit formats'.")
	fs.StringVar(&o.section, "section", string(parser.SectionFull), "Section to parse: full, description, attacks, traits, nastier or defenses.")
	fs.StringVar(&o.path, "o", "", "Write output to this file instead of stdout.")
	fs.BoolVar(&o.fenced, "fenced", a.cfg.Fenced, "Wrap YAML output in a ```statblock fence.")
	return fs, o
}

// pipeline is a parser and writer configured from flags and config.
type pipeline struct {
	parser  *parser.Parser
	section parser.Section
	writer  writer.Writer
	path    string
}

func (a *App) pipeline(o *output) (*pipeline, error) {
	dialect, err := parser.ParseDialect(o.dialect)
	if err != nil {
		return nil, usageError("%v", err)
	}
	section, err := parser.ParseSection(o.section)
	if err != nil {
		return nil, usageError("%v", err)
	}

	cfg := a.cfg
	cfg.Fenced = o.fenced
	opts, err := cfg.WriterOptions()
	if err != nil {
		return nil, usageError("%v", err)
	}
	w, err := writer.New(o.format, opts)
	if err != nil {
		return nil, usageError("%v", err)
	}

	return &pipeline{
		parser:  parser.New(dialect, parser.WithLogger(a.logger)),
		section: section,
		writer:  w,
		path:    o.path,
	}, nil
}

// render parses text and serializes the result.
func (p *pipeline) render(text string) ([]byte, error) {
	sb, err := p.parser.ParseSection(p.section, text)
	if err != nil {
		return nil, err
	}
	return p.writer.Write(sb)
}

func (a *App) emit(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := a.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (a *App) write(p *pipeline, sb *statblock.Statblock) error {
	data, err := p.writer.Write(sb)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	return a.emit(p.path, data)
}

func (a *App) convert(_ context.Context, args []string) error {
	fs, o := a.outputFlags("convert", "[FILE|-]")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError("%v", err)
	}
	if fs.NArg() > 1 {
		return usageError("convert takes at most one input file")
	}

	p, err := a.pipeline(o)
	if err != nil {
		return err
	}

	input, err := a.readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	data, err := p.render(string(input))
	if err != nil {
		return parseFailure(err)
	}
	return a.emit(p.path, data)
}

func (a *App) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(a.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	return data, nil
}

func parseFailure(err error) *ExitError {
	if parser.IsFatal(err) {
		return &ExitError{Code: ExitFailure, Message: "cannot parse statblock: " + err.Error()}
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}

func (a *App) watch(ctx context.Context, args []string) error {
	fs, o := a.outputFlags("watch", "FILE")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError("%v", err)
	}
	if fs.NArg() != 1 {
		return usageError("watch takes exactly one input file")
	}

	p, err := a.pipeline(o)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	a.logger.Info("watching statblock", slog.String("path", path))
	err = watch.File(ctx, path, func(input []byte) error {
		data, err := p.render(string(input))
		if err != nil {
			return err
		}
		return a.emit(p.path, data)
	}, watch.WithLogger(a.logger))
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	return nil
}
