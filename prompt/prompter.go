package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/randalmurphal/statkit/parser"
	"github.com/randalmurphal/statkit/statblock"
)

// Terminator is the line that ends one pasted section.
const Terminator = "."

// ErrNoInput indicates the input ended before any section was applied.
var ErrNoInput = errors.New("no statblock input")

// Prompter asks for each section on out and reads the pasted text from in.
type Prompter struct {
	session  *Session
	in       *bufio.Scanner
	out      io.Writer
	sections []parser.Section
	logger   *slog.Logger
	eof      bool
}

// PrompterOption configures a Prompter.
type PrompterOption func(*Prompter)

// WithSections replaces the sections asked for. The default is
// parser.Sections.
func WithSections(sections ...parser.Section) PrompterOption {
	return func(p *Prompter) {
		if len(sections) > 0 {
			p.sections = sections
		}
	}
}

// WithLogger sets the logger for skipped sections.
func WithLogger(logger *slog.Logger) PrompterOption {
	return func(p *Prompter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPrompter creates a prompter feeding s.
func NewPrompter(s *Session, in io.Reader, out io.Writer, opts ...PrompterOption) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	p := &Prompter{
		session:  s,
		in:       scanner,
		out:      out,
		sections: parser.Sections,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run asks for every section in turn and returns the merged record. An
// empty section is skipped. A section that fails to parse is reported and
// asked for once more; a second failure skips it. Run stops early when the
// input ends or ctx is cancelled.
func (p *Prompter) Run(ctx context.Context) (*statblock.Statblock, error) {
	for _, section := range p.sections {
		if err := ctx.Err(); err != nil {
			return p.session.Record(), err
		}
		if p.eof {
			break
		}
		if err := p.ask(section); err != nil {
			return p.session.Record(), err
		}
	}

	for _, section := range p.sections {
		if p.session.Applied(section) {
			return p.session.Record(), nil
		}
	}
	return p.session.Record(), ErrNoInput
}

func (p *Prompter) ask(section parser.Section) error {
	for attempt := 0; attempt < 2; attempt++ {
		if attempt == 0 {
			fmt.Fprintf(p.out, "Paste the %s block, then a line with %q (empty to skip):\n", section, Terminator)
		} else {
			fmt.Fprintf(p.out, "Try the %s block again:\n", section)
		}

		text, err := p.readBlock()
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return nil
		}

		err = p.session.Apply(section, text)
		if err == nil {
			return nil
		}
		fmt.Fprintf(p.out, "error: %v\n", err)
		if p.eof {
			break
		}
	}

	p.logger.Warn("skipped statblock section", slog.String("section", string(section)))
	return nil
}

// readBlock reads lines up to the terminator or the end of input.
func (p *Prompter) readBlock() (string, error) {
	var lines []string
	for {
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			p.eof = true
			break
		}
		line := p.in.Text()
		if strings.TrimSpace(line) == Terminator {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
