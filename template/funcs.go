package template

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/goccy/go-json"

	"github.com/randalmurphal/statkit/statblock"
)

// defaultFuncs returns the built-in helpers.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": truncate,
		"json":     toJSON,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"trim":     strings.TrimSpace,
		"join":     strings.Join,
		"replace":  strings.ReplaceAll,
		"contains": strings.Contains,
		"default":  defaultValue,
		"indent":   indent,
		"latex":    EscapeLaTeX,
		"ordinal":  ordinal,
		"title":    statblock.TitleCase,
	}
}

// truncate cuts s to maxLen runes, ending with "..." when there is room.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// toJSON renders v as indented JSON, or with %v if it cannot be encoded.
func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// defaultValue returns defaultVal when val is nil or an empty string.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}

func indent(s string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

var latexEscaper = strings.NewReplacer(
	"<br>", `\newline{}`,
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// EscapeLaTeX escapes TeX special characters. The "<br>" joins left by
// the SRD plain parser become line breaks.
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

// ordinal formats a level given as an int or as text, e.g. 8 -> "8th".
func ordinal(v any) string {
	switch n := v.(type) {
	case int:
		return statblock.Ordinal(n)
	case string:
		return statblock.OrdinalFromText(n)
	default:
		return statblock.OrdinalFromText(fmt.Sprint(v))
	}
}
