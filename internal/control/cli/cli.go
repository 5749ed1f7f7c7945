// Package cli provides the command-line interface for foldcal.
package cli

// CommandLineOpts are the options and commands go-flags parses the command
// line into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TuiCommand     `command:"tui" subcommands-optional:"true" description:"Run the interactive calendar"`
	PrintCommand   PrintCommand   `command:"print" subcommands-optional:"true" description:"Print a calendar page"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true" description:"Show the program version"`
}

// Opts holds the parsed command line.
var Opts CommandLineOpts
