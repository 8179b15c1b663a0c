// Package template renders text output from statblock data.
//
// Templates are Go text/template with a Handlebars-like shorthand that is
// converted before execution:
//
//	{{name}}                      field or map key "name"
//	{{#if mook}}(mook){{/if}}     conditional
//	{{#each attacks}}...{{/each}} iteration
//	{{truncate description 100}}  helper call with bare identifiers
//
// Delimiters are configurable. The LaTeX writer uses "<<" and ">>" so that
// TeX groups such as \begin{monster} need no escaping:
//
//	e := template.NewEngine(template.WithDelims("<<", ">>"))
//	out, err := e.Render(`\section{<<latex .Name>>}`, sb)
//
// # Built-in Functions
//
//   - truncate(s, n) - cut to n runes with an ellipsis
//   - json(v) - indented JSON
//   - upper, lower, trim, join, replace, contains
//   - default(val, fallback) - fallback when val is nil or ""
//   - indent(s, n) - prefix every line with n spaces
//   - latex(s) - escape TeX specials, "<br>" becomes \newline{}
//   - ordinal(level) - 8 -> "8th"
//   - title(s) - title case
//
// Custom helpers are added with AddFunc.
package template
