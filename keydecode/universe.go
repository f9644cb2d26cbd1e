package keydecode

import (
	"github.com/erraggy/oasir/ir"
)

// Symbol is a dense index into a Universe.
type Symbol int

// NoSymbol marks a key that is not part of the universe.
const NoSymbol Symbol = -1

// Universe is a closed set of field names fixed at construction. It is
// never extended afterwards, so it is safe to share between goroutines.
type Universe struct {
	names []string
	index map[string]Symbol
}

// NewUniverse builds a universe from names. Symbols are assigned in
// first-seen order; duplicates and empty names are ignored.
func NewUniverse(names ...string) *Universe {
	u := &Universe{index: make(map[string]Symbol, len(names))}
	for _, n := range names {
		u.add(n)
	}
	return u
}

func (u *Universe) add(name string) {
	if name == "" {
		return
	}
	if _, ok := u.index[name]; ok {
		return
	}
	u.index[name] = Symbol(len(u.names))
	u.names = append(u.names, name)
}

// UniverseFromDocumentation collects every field name the documentation
// knows about: component properties, fields of inline objects at any
// depth, request body properties and parameter names.
func UniverseFromDocumentation(doc *ir.Documentation) *Universe {
	u := NewUniverse()
	if doc == nil {
		return u
	}
	for _, cs := range doc.Components.Components() {
		u.addSchema(cs)
	}
	for _, op := range doc.Operations {
		for _, p := range op.Arguments {
			u.add(p.Name)
		}
		if op.RequestBody != nil {
			u.addSchema(op.RequestBody.Schema)
		}
		u.addNode(op.ResponseType)
	}
	return u
}

func (u *Universe) addSchema(cs ir.ComponentSchema) {
	for _, p := range cs.Properties() {
		u.add(p.Name)
		u.addNode(p.Type)
	}
	u.addNode(cs.Alias)
}

func (u *Universe) addNode(n ir.Node) {
	ir.Walk(n, func(n ir.Node) bool {
		if o, ok := n.(ir.ObjectOf); ok {
			for _, f := range o.Fields {
				u.add(f.Name)
			}
		}
		return true
	})
}

// Lookup returns the symbol for name.
func (u *Universe) Lookup(name string) (Symbol, bool) {
	if u == nil {
		return NoSymbol, false
	}
	s, ok := u.index[name]
	if !ok {
		return NoSymbol, false
	}
	return s, true
}

// Name returns the field name of s.
func (u *Universe) Name(s Symbol) (string, bool) {
	if u == nil || s < 0 || int(s) >= len(u.names) {
		return "", false
	}
	return u.names[s], true
}

// Len returns the number of symbols.
func (u *Universe) Len() int {
	if u == nil {
		return 0
	}
	return len(u.names)
}

// Names returns the field names in symbol order.
func (u *Universe) Names() []string {
	if u == nil {
		return nil
	}
	out := make([]string, len(u.names))
	copy(out, u.names)
	return out
}
