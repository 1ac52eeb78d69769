package command

import (
	"fmt"
	"strings"
)

// Arg declares a cobra flag.
type Arg struct {
	Name      string
	ShortHand string
	Value     string
	Usage     string
	Required  bool
	// Repeated flags collect every occurrence instead of keeping the last one.
	Repeated bool
}

// Declaration is a "KIND:NAME" or "KIND:NAME=DESCRIPTION" flag value naming an argz option.
type Declaration struct {
	Kind        string
	Name        string
	Description string
}

// ParseDeclaration splits a declaration at its first ':' and the remainder at its first '='.
func ParseDeclaration(text string) (Declaration, error) {
	kind, rest, ok := strings.Cut(text, ":")
	if !ok {
		return Declaration{}, fmt.Errorf("invalid option declaration %q: expected KIND:NAME[=DESCRIPTION]", text)
	}
	name, desc, _ := strings.Cut(rest, "=")
	return Declaration{Kind: strings.ToLower(kind), Name: name, Description: desc}, nil
}
