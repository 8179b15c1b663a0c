// Package latex writes statblocks as a LaTeX monster environment.
package latex

import (
	"fmt"

	"github.com/randalmurphal/statkit/statblock"
	"github.com/randalmurphal/statkit/template"
	"github.com/randalmurphal/statkit/writer"
)

// Name is the format name the writer registers under.
const Name = "latex"

// Template delimiters. TeX braces pass through untouched.
const (
	LeftDelim  = "<<"
	RightDelim = ">>"
)

// DefaultTemplate renders the monster environment. Templates receive the
// *statblock.Statblock as data.
const DefaultTemplate = `\begin{monster}{<<latex .Name>>}
\monsterlevel{<<.LevelOrdinal>>}{<<latex (title .Size)>>}{<<latex (title .Role)>>}{<<latex (title .Type)>>}<<if .Mook>>\mook<<end>>
<<if .FlavorText>>\flavortext{<<latex .FlavorText>>}
<<end>>\initiative{<<latex .Initiative>>}
<<if .Vulnerability>>\vulnerability{<<latex .Vulnerability>>}
<<end>><<range .Attacks>>\attack{<<latex .Name>>}{<<latex .Description>>}
<<range .Traits>>  \attacktrait{<<latex .Name>>}{<<latex .Description>>}
<<end>><<end>><<range .Traits>>\trait{<<latex .Name>>}{<<latex .Description>>}
<<range .Traits>>  \subtrait{<<latex .Name>>}{<<latex .Description>>}
<<end>><<end>><<range .TriggeredAttacks>>\triggeredattack{<<latex .Name>>}{<<latex .Description>>}
<<range .Traits>>  \attacktrait{<<latex .Name>>}{<<latex .Description>>}
<<end>><<end>><<if .NastierTraits>>\nastierspecials
<<range .NastierTraits>>\trait{<<latex .Name>>}{<<latex .Description>>}
<<end>><<end>>\defenses{<<latex .AC>>}{<<latex .PD>>}{<<latex .MD>>}{<<latex .HP>>}
\end{monster}
`

func init() {
	writer.Register(Name, func(opts writer.Options) (writer.Writer, error) {
		return New(opts)
	})
}

// Writer renders a statblock through a LaTeX template.
type Writer struct {
	engine   *template.Engine
	template string
}

// New creates a LaTeX writer. opts.Template replaces the built-in template
// and is validated here.
func New(opts writer.Options) (*Writer, error) {
	w := &Writer{
		engine:   template.NewEngine(template.WithDelims(LeftDelim, RightDelim)),
		template: DefaultTemplate,
	}
	if opts.Template != "" {
		w.template = opts.Template
	}
	if _, err := w.engine.Parse(w.template); err != nil {
		return nil, fmt.Errorf("latex template: %w", err)
	}
	return w, nil
}

// Name implements writer.Writer.
func (w *Writer) Name() string {
	return Name
}

// Write implements writer.Writer.
func (w *Writer) Write(sb *statblock.Statblock) ([]byte, error) {
	if sb == nil {
		return nil, writer.WriteError(Name, writer.ErrNilStatblock)
	}
	out, err := w.engine.Render(w.template, sb)
	if err != nil {
		return nil, writer.WriteError(Name, err)
	}
	return []byte(out), nil
}
