package argz

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ExitCode is the process exit status used for every fatal diagnostic.
const ExitCode = 1

var (
	// ErrEmptyName is returned when an option is registered without a name.
	ErrEmptyName = errors.New("empty option name")

	// ErrNilDestination is returned when an option is registered without a destination.
	ErrNilDestination = errors.New("nil destination")

	// ErrCapacityExceeded is returned when the registry is full.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrConversion is returned when a value token has no numeric prefix.
	ErrConversion = errors.New("conversion failed")
)

// Error describes a failed registration or parse.
type Error struct {
	Op       string // "register" or "parse"
	Option   string
	Value    string
	Kind     Kind
	Capacity int
	Err      error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrEmptyName):
		return "option cannot be empty"
	case errors.Is(e.Err, ErrNilDestination):
		return fmt.Sprintf("value address cannot be null for option '%s'", e.Option)
	case errors.Is(e.Err, ErrCapacityExceeded):
		return fmt.Sprintf("ARGZ_COUNT=%d exceeded, for option '%s'", e.Capacity, e.Option)
	case errors.Is(e.Err, ErrConversion):
		return fmt.Sprintf("Failed to parse option '%s'. Expected %s, got '%s'.", e.Option, e.Kind, e.Value)
	default:
		return fmt.Sprintf("%s option '%s': %v", e.Op, e.Option, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// isTerminal reports whether w is a terminal that accepts colour.
// NO_COLOR disables colour as it does for fatih/color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Fatal writes the one-line diagnostic for err to w and returns ExitCode.
// It writes nothing and returns 0 when err is nil.
// The "ERROR: " prefix is red only when w is a terminal.
func Fatal(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	prefix := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	_, _ = prefix.Fprint(w, "ERROR: ")
	_, _ = fmt.Fprintln(w, err.Error())
	return ExitCode
}

var osExit = os.Exit

// Exit reports err on standard error and terminates the process with ExitCode.
// It does nothing when err is nil.
func Exit(err error) {
	if code := Fatal(os.Stderr, err); code != 0 {
		osExit(code)
	}
}
