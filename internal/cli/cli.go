package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/randalmurphal/statkit/config"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

const usage = `
statkit - convert 13th Age monster statblocks.

Usage:
  statkit [options] <command> [command options] [args]

Commands:
  convert      Parse a statblock from FILE or stdin and write it out
  watch        Convert FILE again every time it changes
  interactive  Paste a statblock section by section
  schema       Print the JSON Schema of Foundry actor output
  formats      List output formats

Options:
`

// App runs statkit commands against the given streams.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	cfg    config.Config
	logger *slog.Logger
}

// New creates an App bound to the process's standard streams.
func New() *App {
	return &App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

type command func(ctx context.Context, args []string) error

func (a *App) commands() map[string]command {
	return map[string]command{
		"convert":     a.convert,
		"watch":       a.watch,
		"interactive": a.interactive,
		"schema":      a.schema,
		"formats":     a.formats,
	}
}

// Run parses the global options and dispatches to a command. Help output
// returns nil.
func (a *App) Run(ctx context.Context, args []string) error {
	flagSet := flag.NewFlagSet("statkit", flag.ContinueOnError)
	flagSet.SetOutput(a.Stderr)
	flagSet.Usage = func() {
		fmt.Fprint(a.Stderr, usage)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a .toml or .yaml config file.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError("%v", err)
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return usageError("%v", err)
		}
		cfg = loaded
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if *logFormatFlag != "" {
		cfg.LogFormat = strings.ToLower(*logFormatFlag)
	}
	if err := cfg.Validate(); err != nil {
		return usageError("%v", err)
	}

	logger, err := newLogger(a.Stderr, &cfg)
	if err != nil {
		return usageError("%v", err)
	}
	a.cfg = cfg
	a.logger = logger

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil
	}

	name := flagSet.Arg(0)
	cmd, ok := a.commands()[name]
	if !ok {
		return usageError("unknown command %q", name)
	}
	a.logger.Debug("running command", slog.String("command", name))
	return cmd(ctx, flagSet.Args()[1:])
}

// Config returns the settings of the last Run.
func (a *App) Config() config.Config {
	return a.cfg
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == config.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
