// Package parser turns pasted monster statblock text into a statblock.Statblock.
//
// One parser handles three input dialects, selected when it is created:
//
//   - PDF: text pasted from the rulebook PDFs, one section at a time or whole
//   - SRD: plain text copied from a rendered SRD table, where blank lines,
//     indentation and a lone tab line are structural
//   - SRDHTML: an HTML fragment of an SRD monster table
//
// Example usage:
//
//	p := parser.New(parser.PDF)
//	desc, err := p.ParseDescription(descriptionText)
//	if err != nil {
//	    return err
//	}
//	attacks, _ := p.ParseAttacks(attackText)
//	desc.Merge(attacks)
//
// Whole blocks:
//
//	sb, err := parser.New(parser.SRD).Parse(srdText)
//	sb, err := parser.ParseSRDHTML(fragment)
//
// A missing strength/level line or defenses block is fatal: the parse
// returns ErrBadDescription or ErrBadDefenses and no record. Lines that do
// not match an optional pattern are folded into the previous description
// or skipped. The HTML dialect reports unclassifiable lines as a *LineError
// and recovers once by treating the line as a follow-up.
package parser
