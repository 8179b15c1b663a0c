package template

import (
	"fmt"
	"strings"
	"text/template"
)

// Default action delimiters.
const (
	DefaultLeftDelim  = "{{"
	DefaultRightDelim = "}}"
)

// Engine renders output templates. It accepts Go template syntax and a
// Handlebars-like shorthand that is converted before execution.
type Engine struct {
	funcs template.FuncMap
	left  string
	right string
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelims sets the action delimiters. LaTeX templates use "<<" and ">>"
// so that TeX braces pass through untouched.
func WithDelims(left, right string) Option {
	return func(e *Engine) {
		if left != "" && right != "" {
			e.left, e.right = left, right
		}
	}
}

// NewEngine creates an engine with the built-in helpers.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		funcs: defaultFuncs(),
		left:  DefaultLeftDelim,
		right: DefaultRightDelim,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Delims returns the engine's action delimiters.
func (e *Engine) Delims() (left, right string) {
	return e.left, e.right
}

// Render executes templateStr against data. data may be a map or a struct.
func (e *Engine) Render(templateStr string, data any) (string, error) {
	tmpl, err := e.compile(templateStr)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, data); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}
	return buf.String(), nil
}

// Parse validates the template and returns the variable names it
// references in shorthand form.
func (e *Engine) Parse(templateStr string) ([]string, error) {
	if _, err := e.compile(templateStr); err != nil {
		return nil, err
	}
	return e.syntax().variables(templateStr), nil
}

// AddFunc registers a helper. Shorthand calls to it get the same argument
// conversion as the built-ins.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

func (e *Engine) compile(templateStr string) (*template.Template, error) {
	if templateStr == "" {
		return nil, ErrEmpty
	}
	converted := e.syntax().convert(templateStr)
	tmpl, err := template.New("statblock").
		Delims(e.left, e.right).
		Funcs(e.funcs).
		Parse(converted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return tmpl, nil
}

// ValidateVariables checks that every required variable is present.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		if _, ok := provided[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
