package writer

import "github.com/randalmurphal/statkit/statblock"

// Writer serializes a statblock record into one output format.
type Writer interface {
	// Name returns the format name the writer is registered under.
	Name() string

	// Write renders the record. The record is not modified.
	Write(sb *statblock.Statblock) ([]byte, error)
}

// Options configures the built-in writers. Each writer reads the fields
// that apply to it and ignores the rest.
type Options struct {
	// Fenced wraps YAML output in a ```statblock code fence.
	Fenced bool `json:"fenced" yaml:"fenced" toml:"fenced"`

	// Template is a LaTeX template that replaces the built-in one. Empty
	// uses the built-in template.
	Template string `json:"template" yaml:"template" toml:"template"`

	// Foundry holds Foundry VTT actor settings.
	Foundry FoundryOptions `json:"foundry" yaml:"foundry" toml:"foundry"`
}

// FoundryOptions configures the Foundry actor writer.
type FoundryOptions struct {
	// Image is the actor portrait path. Empty uses the system default.
	Image string `json:"image" yaml:"image" toml:"image"`

	// Folder is the Foundry folder id the actor is filed under.
	Folder string `json:"folder" yaml:"folder" toml:"folder"`
}
