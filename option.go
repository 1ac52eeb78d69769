package argz

import (
	"strconv"
)

// Kind tags the type of value an option writes and how its value token is converted.
type Kind int

const (
	KindDouble Kind = iota
	KindFlag
	KindLong
	KindString
)

// kindNone is the kind of the zero Option.
const kindNone Kind = -1

// String returns the name used in conversion diagnostics.
func (k Kind) String() string {
	switch k {
	case KindDouble:
		return "double"
	case KindFlag:
		return "flag"
	case KindLong:
		return "long"
	case KindString:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// destination is the caller-owned slot an option writes through.
// The set of implementations is closed: doubleSlot, longSlot, flagSlot and stringSlot.
type destination interface {
	kind() Kind
	isNil() bool
	text() string
}

type doubleSlot struct{ p *float64 }

func (s doubleSlot) kind() Kind  { return KindDouble }
func (s doubleSlot) isNil() bool { return s.p == nil }
func (s doubleSlot) text() string {
	return strconv.FormatFloat(*s.p, 'g', -1, 64)
}

type longSlot struct{ p *int64 }

func (s longSlot) kind() Kind   { return KindLong }
func (s longSlot) isNil() bool  { return s.p == nil }
func (s longSlot) text() string { return strconv.FormatInt(*s.p, 10) }

type flagSlot struct{ p *int }

func (s flagSlot) kind() Kind   { return KindFlag }
func (s flagSlot) isNil() bool  { return s.p == nil }
func (s flagSlot) text() string { return strconv.Itoa(*s.p) }

type stringSlot struct{ p *string }

func (s stringSlot) kind() Kind   { return KindString }
func (s stringSlot) isNil() bool  { return s.p == nil }
func (s stringSlot) text() string { return *s.p }

// Option is a registered command-line option.
type Option struct {
	Name        string
	Description string
	dest        destination
}

// Kind returns the kind of value the option writes.
func (o Option) Kind() Kind {
	if o.dest == nil {
		return kindNone
	}
	return o.dest.kind()
}

// Value renders the current content of the option's destination,
// or "" for the zero Option.
func (o Option) Value() string {
	if o.dest == nil {
		return ""
	}
	return o.dest.text()
}
