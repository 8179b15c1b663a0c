// Package cursor provides a movable position over the lines of a text block.
//
// Every statblock parser walks its input through a Cursor:
//
//	c := cursor.New(text)
//	for !c.AtEnd() {
//	    line := c.Line()
//	    // classify line
//	    c.Advance()
//	}
//
// The position is never clamped. Advancing past the end is legal and is
// observed through AtEnd. SetIndex performs no bounds checks; jumping to a
// sensible offset is the caller's responsibility.
package cursor
