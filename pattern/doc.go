// Package pattern holds the line grammars used to recognize the parts of a
// pasted monster statblock.
//
// Three grammars exist, one per input dialect, and they share most of their
// patterns:
//
//   - PDF: text pasted from the rulebook PDFs
//   - SRD: plain text copied from a rendered SRD table
//   - SRDHTML: cell text extracted from SRD HTML
//
// Each grammar classifies a single line:
//
//	if s, ok := pattern.PDF.MatchStrength(line); ok {
//	    fmt.Println(s.Level, s.Role, s.Type)
//	}
//	if a, ok := pattern.PDF.MatchAttack(line); ok && a.Triggered {
//	    // "[Special trigger] ..." line
//	}
//
// The follow-up and standard attack-trait patterns are allow-lists tuned
// against published statblocks. Phrasings outside them are misclassified;
// that is a known limitation of pattern-based extraction.
package pattern
