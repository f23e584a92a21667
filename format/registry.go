package format

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"datetime-lab/errors"
)

// ComponentFormatter renders one placeholder. args is the raw text after
// the ':' in the placeholder, empty when absent.
type ComponentFormatter func(v View, args string) string

// Registry maps specifier names to component formatters. Registration is
// append-only: a name can never be overridden or removed once taken.
type Registry struct {
	mu         sync.Mutex
	formatters map[string]ComponentFormatter
}

// NewRegistry returns a registry pre-populated with the built-in
// specifiers.
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[string]ComponentFormatter)}
	for name, fn := range builtins() {
		r.formatters[name] = fn
	}
	return r
}

// Add registers fn under name. It fails with a SpecifierTakenError when
// the name is already registered, built-in or user-added alike.
func (r *Registry) Add(name string, fn ComponentFormatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.formatters[name]; taken {
		return errors.SpecifierTakenError{Name: name}
	}
	r.formatters[name] = fn
	return nil
}

// Names returns the registered specifier names in lexical order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := lo.Keys(r.formatters)
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(name string) (ComponentFormatter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn, ok := r.formatters[name]
	return fn, ok
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the process-wide registry shared by formatters
// built with New. It is bootstrapped exactly once, even under concurrent
// first use.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// AddFormatter registers fn in the process-wide registry.
func AddFormatter(name string, fn ComponentFormatter) error {
	return DefaultRegistry().Add(name, fn)
}
