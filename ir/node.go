package ir

import (
	"fmt"
	"strings"
)

// Kind names a Node variant.
type Kind string

const (
	KindScalar       Kind = "scalar"
	KindArray        Kind = "array"
	KindObject       Kind = "object"
	KindComponentRef Kind = "ref"
	KindOneOf        Kind = "oneOf"
)

// Scalar type names as they appear in OpenAPI "type" fields.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Node is a normalized schema type. It is a sealed interface: only the
// types in this package implement it.
type Node interface {
	// Kind reports which variant the node is.
	Kind() Kind
	// String renders the node in a compact, stable notation such as
	// "[]ref(Model)" or "{id: integer, tags: []string}".
	String() string

	node() // sealed
}

// Scalar is a leaf type named by its raw OpenAPI type string. The name is
// kept verbatim; mapping it to a target type is the emitter's job.
type Scalar struct {
	Name string
}

// ArrayOf is a list of Elem. Each level of array nesting in the source is
// exactly one ArrayOf.
type ArrayOf struct {
	Elem Node
}

// Field is one named member of an ObjectOf.
type Field struct {
	Name string
	Type Node
}

// ObjectOf is an anonymous record. Fields keep source order.
type ObjectOf struct {
	Fields []Field
}

// ComponentRef refers to a named component in the Registry.
type ComponentRef struct {
	Name string
}

// Variant is one alternative of a OneOf.
type Variant struct {
	Type Node
	// Example is the variant's example rendered as a string, or "".
	Example string
	// Default is the variant's own default value when HasDefault is set.
	Default    any
	HasDefault bool
}

// OneOf is a union of alternatives in source order.
type OneOf struct {
	Variants []Variant
}

func (Scalar) node()       {}
func (ArrayOf) node()      {}
func (ObjectOf) node()     {}
func (ComponentRef) node() {}
func (OneOf) node()        {}

func (Scalar) Kind() Kind       { return KindScalar }
func (ArrayOf) Kind() Kind      { return KindArray }
func (ObjectOf) Kind() Kind     { return KindObject }
func (ComponentRef) Kind() Kind { return KindComponentRef }
func (OneOf) Kind() Kind        { return KindOneOf }

func (s Scalar) String() string { return s.Name }

func (a ArrayOf) String() string {
	if a.Elem == nil {
		return "[]<nil>"
	}
	return "[]" + a.Elem.String()
}

func (o ObjectOf) String() string {
	parts := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		typ := "<nil>"
		if f.Type != nil {
			typ = f.Type.String()
		}
		parts[i] = f.Name + ": " + typ
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (c ComponentRef) String() string { return fmt.Sprintf("ref(%s)", c.Name) }

func (o OneOf) String() string {
	parts := make([]string, len(o.Variants))
	for i, v := range o.Variants {
		parts[i] = "<nil>"
		if v.Type != nil {
			parts[i] = v.Type.String()
		}
	}
	return "oneOf(" + strings.Join(parts, " | ") + ")"
}

// Field returns the field with the given name.
func (o ObjectOf) Field(name string) (Field, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Depth returns the number of ArrayOf wrappers around n's innermost
// non-array node.
func Depth(n Node) int {
	d := 0
	for {
		a, ok := n.(ArrayOf)
		if !ok {
			return d
		}
		d++
		n = a.Elem
	}
}

// Leaf strips every ArrayOf wrapper from n.
func Leaf(n Node) Node {
	for {
		a, ok := n.(ArrayOf)
		if !ok {
			return n
		}
		n = a.Elem
	}
}
