package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/randalmurphal/statkit/prompt"
	"github.com/randalmurphal/statkit/writer"
	"github.com/randalmurphal/statkit/writer/foundry"
)

func (a *App) interactive(ctx context.Context, args []string) error {
	fs, o := a.outputFlags("interactive", "")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError("%v", err)
	}

	p, err := a.pipeline(o)
	if err != nil {
		return err
	}

	session := prompt.NewSession(p.parser)
	sb, err := prompt.NewPrompter(session, a.Stdin, a.Stderr, prompt.WithLogger(a.logger)).Run(ctx)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	return a.write(p, sb)
}

func (a *App) schema(_ context.Context, args []string) error {
	if len(args) > 0 {
		return usageError("schema takes no arguments")
	}
	data, err := json.MarshalIndent(foundry.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	return a.emit("", append(data, '\n'))
}

func (a *App) formats(_ context.Context, args []string) error {
	if len(args) > 0 {
		return usageError("formats takes no arguments")
	}
	for _, name := range writer.Available() {
		marker := ""
		if name == a.cfg.Format {
			marker = " (default)"
		}
		fmt.Fprintf(a.Stdout, "%s%s\n", name, marker)
	}
	return nil
}
