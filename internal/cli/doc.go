// Package cli parses statkit's command line, loads configuration, and runs
// the selected subcommand. Process-level concerns such as exit codes are
// reported through *ExitError.
package cli
