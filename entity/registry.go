package entity

import (
	"fmt"
	"sort"
)

// Registry maps a level symbol to the entity kind it denotes. A new registry
// already contains the built-in alphabet; game code adds its own kinds with
// Register during start-up. Parsing treats the registry as read-only, so no
// locking happens here.
type Registry struct {
	entries map[rune]Descriptor
}

// NewRegistry returns a registry seeded with the built-in symbols.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[rune]Descriptor, 16)}
	for _, d := range builtins() {
		r.entries[d.Symbol] = d
	}
	return r
}

// Register adds a new entity kind keyed by its symbol. Symbols are unique
// within the registry; registering over an existing key (built-ins included)
// is an error, as is a symbol that could never appear in a level row.
func (r *Registry) Register(d Descriptor) error {
	switch d.Symbol {
	case 0, '\n', '\r':
		return fmt.Errorf("entity: unusable symbol %q", d.Symbol)
	}
	if prev, ok := r.entries[d.Symbol]; ok {
		return fmt.Errorf("entity: symbol %q already registered as %s", d.Symbol, prev.Name)
	}
	if d.Name == "" {
		return fmt.Errorf("entity: symbol %q registered without a name", d.Symbol)
	}
	r.entries[d.Symbol] = d
	return nil
}

// Resolve returns the entity kind a symbol denotes.
func (r *Registry) Resolve(symbol rune) (Descriptor, error) {
	d, ok := r.entries[symbol]
	if !ok {
		return Descriptor{}, fmt.Errorf("entity: unrecognised symbol %q", symbol)
	}
	return d, nil
}

// Known reports whether a symbol resolves.
func (r *Registry) Known(symbol rune) bool {
	_, ok := r.entries[symbol]
	return ok
}

// Descriptors returns every registered kind ordered by symbol.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.entries))
	for _, d := range r.entries {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
