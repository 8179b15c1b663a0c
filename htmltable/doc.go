// Package htmltable flattens an SRD HTML fragment into the rendered text of
// its cells, one line per cell or paragraph, in document order.
//
// Italic markup is kept as an underscore emphasis convention so trait names
// stay recognizable: <i>Miss:</i> becomes "_Miss:_".
package htmltable
