package argz

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PrintOptions writes the option listing to w:
//
//	Options:
//	  -a            Short option.
//	  --longoption  Long option.
//
// Descriptions start in one column; an empty description is shown as "?".
// The listing ends with a blank line.
func (r *Registry) PrintOptions(w io.Writer) error {
	maxWidth := 0
	for _, option := range r.options {
		maxWidth = max(maxWidth, runewidth.StringWidth(option.Name))
	}

	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString("Options:\n")
	for _, option := range r.options {
		desc := option.Description
		if desc == "" {
			desc = "?"
		}
		_, _ = bw.WriteString("  ")
		_, _ = bw.WriteString(option.Name)
		// two separators around a pad of maxWidth-width+1
		_, _ = bw.WriteString(strings.Repeat(" ", maxWidth-runewidth.StringWidth(option.Name)+3))
		_, _ = bw.WriteString(desc)
		_, _ = bw.WriteString("\n")
	}
	_, _ = bw.WriteString("\n")
	return bw.Flush()
}
