// Package argz registers named command-line options bound to caller-owned
// variables and fills them in with a single pass over an argument vector.
//
//	var (
//		input string
//		size  int64 = 128
//		help  int
//	)
//	r := argz.New()
//	_ = r.RegisterString("-i", "Input file path.", &input)
//	_ = r.RegisterLong("--size", "Buffer size in bytes.", &size)
//	_ = r.RegisterFlag("-h", "Print this message and exit.", &help)
//	if err := r.Parse(os.Args); err != nil {
//		argz.Exit(err)
//	}
//
// Options are matched by exact name. There is no "--name=value" form, no
// grouping of short flags and no detection of unknown options.
package argz

import (
	"os"
)

// CommandLine is the default registry used by the package-level functions.
// Like every Registry it must only be used from one goroutine.
var CommandLine = New()

// Double registers a floating point option on CommandLine.
func Double(name, desc string, dest *float64) error {
	return CommandLine.RegisterDouble(name, desc, dest)
}

// Long registers a base-10 integer option on CommandLine.
func Long(name, desc string, dest *int64) error {
	return CommandLine.RegisterLong(name, desc, dest)
}

// Flag registers a valueless option on CommandLine.
func Flag(name, desc string, dest *int) error {
	return CommandLine.RegisterFlag(name, desc, dest)
}

// String registers a string option on CommandLine.
func String(name, desc string, dest *string) error {
	return CommandLine.RegisterString(name, desc, dest)
}

// Parse parses args against CommandLine. Pass os.Args to parse the process arguments.
func Parse(args []string) error {
	return CommandLine.Parse(args)
}

// PrintOptions writes the CommandLine option listing to standard output.
func PrintOptions() error {
	return CommandLine.PrintOptions(os.Stdout)
}
