package probe

import (
	"fmt"
	"io"

	"github.com/go-juicedev/argz"
	"github.com/go-juicedev/argz/internal/command"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func register(registry *argz.Registry, decl command.Declaration) error {
	switch decl.Kind {
	case "double":
		return registry.RegisterDouble(decl.Name, decl.Description, new(float64))
	case "long":
		return registry.RegisterLong(decl.Name, decl.Description, new(int64))
	case "flag":
		return registry.RegisterFlag(decl.Name, decl.Description, new(int))
	case "string":
		return registry.RegisterString(decl.Name, decl.Description, new(string))
	default:
		return fmt.Errorf("unknown option kind %q for option '%s': expected double, long, flag or string", decl.Kind, decl.Name)
	}
}

func render(out io.Writer, registry *argz.Registry) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"NAME", "KIND", "VALUE", "DESCRIPTION"})
	for _, option := range registry.Options() {
		t.AppendRow(table.Row{option.Name, option.Kind().String(), option.Value(), option.Description})
	}
	t.Render()
}

func do(out io.Writer, declarations []string, capacity int, list bool, argv []string) error {
	registry := argz.New().WithCapacity(capacity)
	for _, text := range declarations {
		decl, err := command.ParseDeclaration(text)
		if err != nil {
			return err
		}
		if err = register(registry, decl); err != nil {
			return err
		}
	}
	if list {
		return registry.PrintOptions(out)
	}
	if err := registry.Parse(argv); err != nil {
		return err
	}
	render(out, registry)
	return nil
}

func NewCommand() *cobra.Command {
	optionArg := command.Arg{
		Name:      "option",
		ShortHand: "O",
		Required:  true,
		Repeated:  true,
		Usage:     "An option to register, as KIND:NAME[=DESCRIPTION] with KIND one of double, long, flag, string. May be repeated",
	}
	cmd := command.NewCommand("probe [flags] -- [ARGS...]", optionArg)
	cmd.Flags().BoolP("list", "l", false, "Print the option listing instead of parsing")
	cmd.Short = "Register options and show how argz parses a command line"
	cmd.Long = "Register the declared options on a fresh registry, parse the arguments after -- and print the resulting value of every option."
	cmd.Example = "  argzcli probe -O long:--size=Buffer -O flag:-v -- --size 42abc -v\n" +
		"  argzcli probe -O string:--name -O double:-r=Ratio --list"
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		declarations, _ := cmd.Flags().GetStringArray(optionArg.Name)
		list, _ := cmd.Flags().GetBool("list")
		capacity, err := cmd.Flags().GetInt("capacity")
		if err != nil {
			capacity = argz.DefaultCapacity
		}
		return do(cmd.OutOrStdout(), declarations, capacity, list, command.Argv(cmd, args))
	}
	return cmd
}
