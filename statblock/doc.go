// Package statblock defines the record every statblock parser produces and
// every writer consumes.
//
// A Statblock is built one section at a time. Each parse returns a partial
// record; callers accumulate them with Merge:
//
//	acc := statblock.New()
//	acc.Merge(description)
//	acc.Merge(attacks)
//	acc.Merge(defenses)
//
// List fields are never nil on a record returned by New or by a parser.
package statblock
