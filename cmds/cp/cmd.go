package cp

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/go-juicedev/argz"
	"github.com/go-juicedev/argz/internal/command"
	"github.com/spf13/cobra"
)

type options struct {
	input  string
	output string
	size   int64
	help   int
}

func (o *options) register(registry *argz.Registry) error {
	if err := registry.RegisterString("-i", "Input file path.", &o.input); err != nil {
		return err
	}
	if err := registry.RegisterString("-o", "Output file path (default: output.txt).", &o.output); err != nil {
		return err
	}
	if err := registry.RegisterLong("--size", "Buffer size in bytes.", &o.size); err != nil {
		return err
	}
	return registry.RegisterFlag("-h", "Print this message and exit.", &o.help)
}

var green = color.New(color.FgGreen)

// noInput marks -i as absent. Process arguments cannot contain NUL,
// so no parsed value equals it and an explicit -i "" still counts as input.
const noInput = "\x00"

func do(out io.Writer, argv []string) error {
	opts := options{input: noInput, output: "output.txt", size: 128}
	registry := argz.New()
	if err := opts.register(registry); err != nil {
		return err
	}
	if err := registry.Parse(argv); err != nil {
		return err
	}
	if opts.help != 0 {
		return registry.PrintOptions(out)
	}
	if opts.input == noInput {
		_, err := fmt.Fprintln(out, "Error: No input")
		return err
	}
	_, err := green.Fprintf(out, "copy: %s => [%d] => %s\n", opts.input, opts.size, opts.output)
	return err
}

func NewCommand() *cobra.Command {
	cmd := command.NewRawCommand("copy")
	cmd.Short = "Describe a copy from an input file to an output file"
	cmd.Long = "Parse -i, -o, --size and -h with argz and print the copy that would be performed."
	cmd.Example = "  argzcli copy -i input.txt\n" +
		"  argzcli copy -i input.txt -o out.txt --size 4096\n" +
		"  argzcli copy -h"
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return do(cmd.OutOrStdout(), command.Argv(cmd, args))
	}
	return cmd
}
