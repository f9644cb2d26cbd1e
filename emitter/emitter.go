package emitter

import (
	"fmt"

	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/parser"
)

// Emitter maps IR nodes to declarations. It holds only configuration and is
// safe for concurrent use.
type Emitter struct {
	log parser.Logger
}

// New creates an Emitter.
func New(opts ...Option) (*Emitter, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("emitter: invalid options: %w", err)
		}
	}
	return &Emitter{log: parser.OrNop(cfg.logger)}, nil
}

// Emit maps node to a declaration using a no-op logger.
func Emit(node ir.Node) Decl {
	e, _ := New()
	return e.Emit(node)
}

// Emit maps node to a declaration. It never fails: a node with no mapping
// becomes Unknown and is logged at warn level.
func (e *Emitter) Emit(node ir.Node) Decl {
	return e.emit(node, "")
}

func (e *Emitter) emit(node ir.Node, path string) Decl {
	switch n := node.(type) {
	case ir.Scalar:
		return e.scalar(n, path)

	case ir.ArrayOf:
		return List{Elem: e.emit(n.Elem, path+"[]")}

	case ir.ObjectOf:
		rec := Record{Fields: make([]RecordField, len(n.Fields))}
		for i, f := range n.Fields {
			rec.Fields[i] = RecordField{Name: f.Name, Type: e.emit(f.Type, join(path, f.Name))}
		}
		return rec

	case ir.ComponentRef:
		return Ref{Name: n.Name}

	case ir.OneOf:
		u := Union{Variants: make([]Decl, len(n.Variants))}
		for i, v := range n.Variants {
			u.Variants[i] = e.emit(v.Type, fmt.Sprintf("%s|%d", path, i))
		}
		return u

	case nil:
		return e.unknown(path, "missing type")

	default:
		return e.unknown(path, fmt.Sprintf("unsupported node %T", node))
	}
}

func (e *Emitter) scalar(s ir.Scalar, path string) Decl {
	switch s.Name {
	case ir.TypeNumber:
		return Primitive{Type: Float}
	case ir.TypeInteger:
		return Primitive{Type: Integer}
	case ir.TypeBoolean:
		return Primitive{Type: Boolean}
	case ir.TypeString:
		return Primitive{Type: String}
	case ir.TypeArray:
		return List{Elem: Dynamic{}}
	case ir.TypeObject:
		return Map{Elem: Dynamic{}}
	default:
		return e.unknown(path, fmt.Sprintf("scalar type %q", s.Name))
	}
}

func (e *Emitter) unknown(path, reason string) Decl {
	e.log.Warn("emitting fallback type for unmappable node", "path", path, "reason", reason)
	return Unknown{Reason: reason}
}

// EmitComponent maps a component schema to a named declaration. Object
// components become a Record with required properties first; aliases map
// their aliased node.
func (e *Emitter) EmitComponent(cs ir.ComponentSchema) Declaration {
	d := Declaration{Name: cs.Name, Description: cs.Description}
	if cs.IsAlias() {
		d.Type = e.emit(cs.Alias, cs.Name)
		return d
	}
	d.Type = e.record(cs)
	return d
}

func (e *Emitter) record(cs ir.ComponentSchema) Record {
	props := cs.Properties()
	rec := Record{Fields: make([]RecordField, len(props))}
	for i, p := range props {
		rec.Fields[i] = RecordField{
			Name:        p.Name,
			Type:        e.emit(p.Type, join(cs.Name, p.Name)),
			Optional:    !p.Required,
			Description: p.Description,
			Example:     p.Example,
		}
	}
	return rec
}

// OperationDecl is an operation with its request and response types mapped.
type OperationDecl struct {
	Name        string
	OperationID string
	Summary     string
	Method      ir.Method
	Endpoint    string
	Group       string
	Deprecated  bool
	// Request is nil when the operation has no body, a Ref for a component
	// body, a Record for an inline object and the mapped node for any other
	// inline schema.
	Request  Decl
	Response Decl
}

// File is everything a Printer needs to render one source file.
type File struct {
	Components []Declaration
	Operations []OperationDecl
}

// EmitDocumentation maps every component, in registry order, and every
// operation, in document order.
func (e *Emitter) EmitDocumentation(doc *ir.Documentation) *File {
	f := &File{}
	if doc == nil {
		return f
	}
	for _, cs := range doc.Components.Components() {
		f.Components = append(f.Components, e.EmitComponent(cs))
	}
	for _, op := range doc.Operations {
		od := OperationDecl{
			Name:        op.Name,
			OperationID: op.OperationID,
			Summary:     op.Summary,
			Method:      op.Method,
			Endpoint:    op.Endpoint,
			Group:       op.Group,
			Deprecated:  op.Deprecated,
			Response:    e.emit(op.ResponseType, op.Name+".response"),
		}
		if rb := op.RequestBody; rb != nil {
			switch {
			case rb.Ref != "":
				od.Request = Ref{Name: rb.Ref}
			case rb.Schema.IsAlias():
				od.Request = e.emit(rb.Schema.Alias, op.Name+".request")
			default:
				od.Request = e.record(rb.Schema)
			}
		}
		f.Operations = append(f.Operations, od)
	}
	return f
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
