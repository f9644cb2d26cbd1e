package emitter

import (
	"strings"
)

// DeclKind names a Decl variant.
type DeclKind string

const (
	KindPrimitive DeclKind = "primitive"
	KindList      DeclKind = "list"
	KindMap       DeclKind = "map"
	KindRecord    DeclKind = "record"
	KindRef       DeclKind = "ref"
	KindUnion     DeclKind = "union"
	KindDynamic   DeclKind = "dynamic"
	KindUnknown   DeclKind = "unknown"
)

// Decl is a type declaration in the target type system. Like ir.Node it is
// sealed; a Printer turns it into source text.
type Decl interface {
	Kind() DeclKind
	// String renders the declaration in a compact notation such as
	// "list(ref(Model))" or "record{id: string, name?: string}".
	String() string

	decl()
}

// PrimitiveType is a target scalar type.
type PrimitiveType string

const (
	Float   PrimitiveType = "float"
	Integer PrimitiveType = "integer"
	Boolean PrimitiveType = "boolean"
	String  PrimitiveType = "string"
)

// Primitive is a scalar declaration.
type Primitive struct {
	Type PrimitiveType
}

// List is a homogeneous list of Elem.
type List struct {
	Elem Decl
}

// Map is a string-keyed map of Elem.
type Map struct {
	Elem Decl
}

// RecordField is one member of a Record.
type RecordField struct {
	// Name is the field name as it appears on the wire.
	Name     string
	Type     Decl
	Optional bool
	// Description and Example are carried through for doc comments.
	Description string
	Example     string
}

// Record is a structural record. An anonymous record appearing below the
// top level of a declaration is given a name by the Printer.
type Record struct {
	Fields []RecordField
}

// Ref refers to the declaration generated for a named component.
type Ref struct {
	Name string
}

// Union is a value that may be any of Variants.
type Union struct {
	Variants []Decl
}

// Dynamic is a value of any shape.
type Dynamic struct{}

// Unknown is the fallback for an IR node with no mapping. Reason says what
// could not be mapped.
type Unknown struct {
	Reason string
}

func (Primitive) decl() {}
func (List) decl()      {}
func (Map) decl()       {}
func (Record) decl()    {}
func (Ref) decl()       {}
func (Union) decl()     {}
func (Dynamic) decl()   {}
func (Unknown) decl()   {}

func (Primitive) Kind() DeclKind { return KindPrimitive }
func (List) Kind() DeclKind      { return KindList }
func (Map) Kind() DeclKind       { return KindMap }
func (Record) Kind() DeclKind    { return KindRecord }
func (Ref) Kind() DeclKind       { return KindRef }
func (Union) Kind() DeclKind     { return KindUnion }
func (Dynamic) Kind() DeclKind   { return KindDynamic }
func (Unknown) Kind() DeclKind   { return KindUnknown }

func (p Primitive) String() string { return string(p.Type) }
func (l List) String() string      { return "list(" + declString(l.Elem) + ")" }
func (m Map) String() string       { return "map(" + declString(m.Elem) + ")" }
func (r Ref) String() string       { return "ref(" + r.Name + ")" }
func (Dynamic) String() string     { return "dynamic" }
func (u Unknown) String() string   { return "unknown(" + u.Reason + ")" }

func (r Record) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		name := f.Name
		if f.Optional {
			name += "?"
		}
		parts[i] = name + ": " + declString(f.Type)
	}
	return "record{" + strings.Join(parts, ", ") + "}"
}

func (u Union) String() string {
	parts := make([]string, len(u.Variants))
	for i, v := range u.Variants {
		parts[i] = declString(v)
	}
	return "union(" + strings.Join(parts, " | ") + ")"
}

func declString(d Decl) string {
	if d == nil {
		return "<nil>"
	}
	return d.String()
}

// Declaration is a named top-level declaration.
type Declaration struct {
	// Name is the component name as it appears in the document.
	Name        string
	Description string
	Type        Decl
}
