// Package writer defines the output writer interface and the format
// registry.
//
// Each format lives in its own package and registers itself from init:
//
//   - yamlblock: Fantasy Statblocks YAML, optionally in a ```statblock fence
//   - latex: a monster environment rendered through package template
//   - foundry: an Archmage-system Foundry VTT actor document
//
// Import package writers to register all of them:
//
//	import _ "github.com/randalmurphal/statkit/writer/writers"
//
//	w, err := writer.New("yaml", writer.Options{Fenced: true})
//	out, err := w.Write(sb)
package writer
