// Package writers registers all built-in output formats.
// Import it to make them available via writer.New():
//
//	import _ "github.com/randalmurphal/statkit/writer/writers"
package writers

import (
	_ "github.com/randalmurphal/statkit/writer/foundry"
	_ "github.com/randalmurphal/statkit/writer/latex"
	_ "github.com/randalmurphal/statkit/writer/yamlblock"
)
