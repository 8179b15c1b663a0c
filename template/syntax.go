package template

import (
	"regexp"
	"sort"
	"strings"
)

// goTemplateKeywords are never rewritten to field references.
var goTemplateKeywords = map[string]bool{
	"else":     true,
	"end":      true,
	"if":       true,
	"range":    true,
	"with":     true,
	"define":   true,
	"template": true,
	"block":    true,
}

// syntax converts the shorthand for one pair of delimiters.
type syntax struct {
	left, right string
	helpers     []string

	ifOpen   *regexp.Regexp
	eachOpen *regexp.Regexp
	variable *regexp.Regexp
	control  *regexp.Regexp
	argument *regexp.Regexp
}

func (e *Engine) syntax() *syntax {
	l, r := regexp.QuoteMeta(e.left), regexp.QuoteMeta(e.right)

	helpers := make([]string, 0, len(e.funcs))
	for name := range e.funcs {
		helpers = append(helpers, name)
	}
	sort.Strings(helpers)

	return &syntax{
		left:     e.left,
		right:    e.right,
		helpers:  helpers,
		ifOpen:   regexp.MustCompile(l + `#if\s+(\w+)` + r),
		eachOpen: regexp.MustCompile(l + `#each\s+(\w+)` + r),
		variable: regexp.MustCompile(l + `([a-zA-Z_]\w*)` + r),
		control:  regexp.MustCompile(l + `#(?:if|each)\s+([a-zA-Z_]\w*)` + r),
		argument: regexp.MustCompile(l + `\w+\s+([a-zA-Z_]\w*)`),
	}
}

// convert rewrites the shorthand to Go template syntax:
//
//	{{name}}              -> {{.name}}
//	{{#if x}}...{{/if}}   -> {{if .x}}...{{end}}
//	{{#each xs}}...{{/each}} -> {{range .xs}}...{{end}}
//	{{helper a 3 "b"}}    -> {{helper .a 3 "b"}}
func (s *syntax) convert(input string) string {
	out := s.ifOpen.ReplaceAllString(input, s.left+"if .$1"+s.right)
	out = strings.ReplaceAll(out, s.left+"/if"+s.right, s.left+"end"+s.right)
	out = s.eachOpen.ReplaceAllString(out, s.left+"range .$1"+s.right)
	out = strings.ReplaceAll(out, s.left+"/each"+s.right, s.left+"end"+s.right)

	out = s.variable.ReplaceAllStringFunc(out, func(match string) string {
		name := match[len(s.left) : len(match)-len(s.right)]
		if goTemplateKeywords[name] {
			return match
		}
		return s.left + "." + name + s.right
	})

	return s.convertHelperCalls(out)
}

func (s *syntax) convertHelperCalls(input string) string {
	l, r := regexp.QuoteMeta(s.left), regexp.QuoteMeta(s.right)
	for _, helper := range s.helpers {
		pattern := regexp.MustCompile(l + regexp.QuoteMeta(helper) + `\s+(.+?)` + r)
		input = pattern.ReplaceAllStringFunc(input, func(match string) string {
			args := match[len(s.left)+len(helper) : len(match)-len(s.right)]
			return s.left + helper + " " + convertArguments(strings.TrimSpace(args)) + s.right
		})
	}
	return input
}

// convertArguments prefixes bare identifiers with a dot. Numbers, quoted
// strings, booleans, pipes and existing field references stay as they are.
func convertArguments(args string) string {
	parts := splitArguments(args)
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, "."), strings.HasPrefix(part, "$"):
		case part == "|", part == "true", part == "false", part == "nil":
		case isNumber(part), isQuotedString(part):
		case isIdentifier(part):
			parts[i] = "." + part
		}
	}
	return strings.Join(parts, " ")
}

// splitArguments splits on spaces outside quotes.
func splitArguments(args string) []string {
	var (
		parts   []string
		current strings.Builder
		quote   rune
	)
	for _, ch := range args {
		switch {
		case quote == 0 && (ch == '"' || ch == '\'' || ch == '`'):
			quote = ch
			current.WriteRune(ch)
		case quote != 0 && ch == quote:
			quote = 0
			current.WriteRune(ch)
		case quote == 0 && ch == ' ':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

func isNumber(s string) bool {
	if s == "" || s == "-" {
		return false
	}
	for i, ch := range s {
		if (ch == '-' && i == 0) || ch == '.' || (ch >= '0' && ch <= '9') {
			continue
		}
		return false
	}
	return true
}

func isQuotedString(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == last && (first == '"' || first == '\'' || first == '`')
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
		digit := ch >= '0' && ch <= '9'
		if !letter && !(digit && i > 0) {
			return false
		}
	}
	return true
}

// variables lists, without duplicates, the names a template reads through
// the shorthand.
func (s *syntax) variables(templateStr string) []string {
	seen := make(map[string]bool)
	var result []string
	add := func(name string) {
		if !seen[name] && !goTemplateKeywords[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, m := range s.variable.FindAllStringSubmatch(templateStr, -1) {
		add(m[1])
	}
	for _, m := range s.control.FindAllStringSubmatch(templateStr, -1) {
		add(m[1])
	}
	for _, m := range s.argument.FindAllStringSubmatch(templateStr, -1) {
		add(m[1])
	}
	return result
}
