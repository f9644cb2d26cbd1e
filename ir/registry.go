package ir

import "fmt"

// Registry maps component names to schemas. It is built once and is
// read-only afterwards; all reference resolution is a lookup against it.
type Registry struct {
	names   []string
	schemas map[string]ComponentSchema
}

// NewRegistry builds a registry from components in the given order.
// Component names must be unique and non-empty.
func NewRegistry(components []ComponentSchema) (*Registry, error) {
	r := &Registry{
		names:   make([]string, 0, len(components)),
		schemas: make(map[string]ComponentSchema, len(components)),
	}
	for _, c := range components {
		if c.Name == "" {
			return nil, fmt.Errorf("ir: component at index %d has no name", len(r.names))
		}
		if _, dup := r.schemas[c.Name]; dup {
			return nil, fmt.Errorf("ir: duplicate component %q", c.Name)
		}
		r.names = append(r.names, c.Name)
		r.schemas[c.Name] = c
	}
	return r, nil
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (ComponentSchema, bool) {
	if r == nil {
		return ComponentSchema{}, false
	}
	c, ok := r.schemas[name]
	return c, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Len returns the number of components.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Names returns component names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Components returns the schemas in registration order.
func (r *Registry) Components() []ComponentSchema {
	if r == nil {
		return nil
	}
	out := make([]ComponentSchema, len(r.names))
	for i, n := range r.names {
		out[i] = r.schemas[n]
	}
	return out
}
