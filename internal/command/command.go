package command

import (
	"github.com/spf13/cobra"
)

// NewCommand returns a command with the given flags registered.
func NewCommand(name string, args ...Arg) *cobra.Command {
	var cmd = &cobra.Command{Use: name}
	flags := cmd.Flags()
	for _, arg := range args {
		if arg.Repeated {
			var value []string
			if arg.Value != "" {
				value = []string{arg.Value}
			}
			flags.StringArrayP(arg.Name, arg.ShortHand, value, arg.Usage)
		} else {
			flags.StringP(arg.Name, arg.ShortHand, arg.Value, arg.Usage)
		}
		if arg.Required {
			_ = cmd.MarkFlagRequired(arg.Name)
		}
	}
	return cmd
}

// NewRawCommand returns a command whose arguments bypass cobra's flag parsing,
// so they can be handed to an argz registry untouched.
func NewRawCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:                name,
		DisableFlagParsing: true,
	}
}

// Argv returns args prefixed with the command path, the shape argz expects.
func Argv(cmd *cobra.Command, args []string) []string {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, cmd.CommandPath())
	return append(argv, args...)
}
