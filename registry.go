package argz

import (
	"log/slog"
)

// DefaultCapacity is the number of options a registry holds unless configured otherwise.
const DefaultCapacity = 8

// Registry is an ordered, bounded table of options.
//
// A Registry is not safe for concurrent use. Registration and parsing on one
// registry must happen from a single goroutine; separate registries are independent.
type Registry struct {
	options  []Option
	capacity int
	logger   *slog.Logger
}

// New returns an empty registry with DefaultCapacity.
func New() *Registry {
	return &Registry{capacity: DefaultCapacity}
}

// WithCapacity sets the maximum number of options. Values below 1 keep DefaultCapacity.
func (r *Registry) WithCapacity(capacity int) *Registry {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	r.capacity = capacity
	return r
}

// WithLogger sets the logger used for debug output. A nil logger restores slog.Default.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// Capacity returns the maximum number of options.
func (r *Registry) Capacity() int {
	return r.capacity
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.options)
}

// Options returns the registered options in registration order.
func (r *Registry) Options() []Option {
	options := make([]Option, len(r.options))
	copy(options, r.options)
	return options
}

// Lookup returns the first option registered under name.
// On a miss it returns the zero Option and false.
func (r *Registry) Lookup(name string) (Option, bool) {
	for _, option := range r.options {
		if option.Name == name {
			return option, true
		}
	}
	return Option{}, false
}

// RegisterDouble adds a floating point option written to dest.
func (r *Registry) RegisterDouble(name, desc string, dest *float64) error {
	return r.register(name, desc, doubleSlot{p: dest})
}

// RegisterLong adds a base-10 integer option written to dest.
func (r *Registry) RegisterLong(name, desc string, dest *int64) error {
	return r.register(name, desc, longSlot{p: dest})
}

// RegisterFlag adds an option that takes no value and sets dest to 1 when present.
func (r *Registry) RegisterFlag(name, desc string, dest *int) error {
	return r.register(name, desc, flagSlot{p: dest})
}

// RegisterString adds an option whose value token is stored in dest as is.
func (r *Registry) RegisterString(name, desc string, dest *string) error {
	return r.register(name, desc, stringSlot{p: dest})
}

func (r *Registry) register(name, desc string, dest destination) error {
	if name == "" {
		return &Error{Op: "register", Kind: dest.kind(), Err: ErrEmptyName}
	}
	if dest.isNil() {
		return &Error{Op: "register", Option: name, Kind: dest.kind(), Err: ErrNilDestination}
	}
	if len(r.options) >= r.capacity {
		return &Error{Op: "register", Option: name, Kind: dest.kind(), Capacity: len(r.options), Err: ErrCapacityExceeded}
	}
	r.options = append(r.options, Option{Name: name, Description: desc, dest: dest})
	r.log().Debug("option registered", "option", name, "kind", dest.kind(), "position", len(r.options)-1)
	return nil
}
