// Package statkit converts 13th Age monster statblocks pasted from rulebook
// PDFs or the SRD into structured records and renders them for other tools.
//
// Each subpackage can be used on its own:
//
//   - parser: Parse PDF, SRD text and SRD HTML statblocks, whole or by section
//   - statblock: The record type, merging, ordinals
//   - pattern: The per-dialect line grammars
//   - writer: Output formats (Fantasy Statblocks YAML, LaTeX, Foundry VTT)
//   - template: Handlebars-style templates for the LaTeX writer
//   - config: TOML or YAML settings
//   - prompt: Section-by-section collection from pasted input
//   - watch: Re-convert a file on every save
//
// # Quick Start
//
// Parsing a whole block:
//
//	import "github.com/randalmurphal/statkit/parser"
//	sb, err := parser.New(parser.PDF).Parse(text)
//
// Parsing sections and merging them:
//
//	desc, _ := parser.ParseDescription(descText)
//	attacks, _ := parser.ParseAttacks(attackText)
//	desc.Merge(attacks)
//
// Writing:
//
//	import (
//	    "github.com/randalmurphal/statkit/writer"
//	    _ "github.com/randalmurphal/statkit/writer/writers"
//	)
//	w, _ := writer.New("yaml", writer.Options{Fenced: true})
//	out, _ := w.Write(sb)
//
// The statkit command in cmd/statkit wraps all of the above.
package statkit
