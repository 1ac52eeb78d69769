package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-juicedev/argz"
	"github.com/go-juicedev/argz/cmds/cp"
	"github.com/go-juicedev/argz/cmds/probe"
	"github.com/spf13/cobra"
)

func newLogger(level, format string, out io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(out, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
}

func newRootCommand(stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "argzcli",
		Short:         "Exercise the argz option parser",
		SilenceErrors: true,
		SilenceUsage:  true,

		// root flags must be parsed before reaching copy, which disables its own flag parsing
		TraverseChildren: true,
	}
	flags := root.PersistentFlags()
	flags.Int("capacity", argz.DefaultCapacity, "Maximum number of options a registry accepts")
	logLevel := flags.String("log-level", "warn", "Logging level: debug, info, warn, error")
	logFormat := flags.String("log-format", "text", "Log output format: text or json")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(*logLevel, *logFormat, stderr)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	}
	root.AddCommand(cp.NewCommand(), probe.NewCommand())
	return root
}

func main() {
	if err := newRootCommand(os.Stderr).Execute(); err != nil {
		argz.Exit(err)
	}
}
