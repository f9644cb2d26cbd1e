package normalizer

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// Normalizer converts raw schemas into IR. It holds only configuration and
// is safe for concurrent use.
type Normalizer struct {
	schemaPrefix string
	maxDepth     int
	log          parser.Logger
}

// New creates a Normalizer. With no options it uses DefaultSchemaPrefix,
// DefaultMaxDepth and a no-op logger.
func New(opts ...Option) (*Normalizer, error) {
	cfg := &config{
		schemaPrefix: DefaultSchemaPrefix,
		maxDepth:     DefaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("normalizer: invalid options: %w", err)
		}
	}
	return &Normalizer{
		schemaPrefix: cfg.schemaPrefix,
		maxDepth:     cfg.maxDepth,
		log:          parser.OrNop(cfg.logger),
	}, nil
}

// Normalize converts raw into a Node using default settings.
func Normalize(raw any) (ir.Node, error) {
	n, _ := New()
	return n.Normalize(raw, "")
}

// SchemaPrefix returns the configured component $ref prefix.
func (n *Normalizer) SchemaPrefix() string {
	return n.schemaPrefix
}

// Normalize converts one raw schema into a Node. path locates raw in the
// document and is used only for error messages.
func (n *Normalizer) Normalize(raw any, path string) (ir.Node, error) {
	return n.normalize(raw, path, 0)
}

func (n *Normalizer) normalize(raw any, path string, depth int) (ir.Node, error) {
	if depth > n.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(n.maxDepth),
			Actual:       int64(depth),
			Path:         path,
		}
	}

	s, err := classify(raw, path)
	if err != nil {
		return nil, err
	}

	switch s.kind {
	case shapeRef:
		name, err := n.RefName(s.ref, path)
		if err != nil {
			return nil, err
		}
		return ir.ComponentRef{Name: name}, nil

	case shapeOneOf:
		return n.oneOf(s.variants, path, depth)

	case shapeObject:
		var fields []ir.Field
		var ferr error
		s.props.Range(func(name string, prop any) bool {
			var t ir.Node
			t, ferr = n.normalize(prop, join(path, "properties", name), depth+1)
			if ferr != nil {
				return false
			}
			fields = append(fields, ir.Field{Name: name, Type: t})
			return true
		})
		if ferr != nil {
			return nil, ferr
		}
		return ir.ObjectOf{Fields: fields}, nil

	case shapeArray:
		itemsPath := join(path, "items")
		items, err := classify(s.items, itemsPath)
		if err != nil {
			return nil, err
		}
		if items.kind == shapeEmpty {
			n.log.Debug("empty items schema normalized to opaque record", "path", itemsPath)
			return ir.ArrayOf{Elem: ir.ObjectOf{}}, nil
		}
		elem, err := n.normalize(s.items, itemsPath, depth+1)
		if err != nil {
			return nil, err
		}
		return ir.ArrayOf{Elem: elem}, nil

	case shapeScalar:
		return ir.Scalar{Name: s.typ}, nil

	default:
		return nil, &oaserrors.SchemaError{
			Path:    path,
			Shape:   parser.Describe(raw),
			Message: "schema declares neither type nor $ref",
		}
	}
}

func (n *Normalizer) oneOf(variants []any, path string, depth int) (ir.Node, error) {
	out := make([]ir.Variant, 0, len(variants))
	for i, raw := range variants {
		t, err := n.normalize(raw, fmt.Sprintf("%s.oneOf[%d]", path, i), depth+1)
		if err != nil {
			return nil, err
		}
		v := ir.Variant{Type: t}
		if m, ok := raw.(*parser.Map); ok {
			ex, _ := m.Get("example")
			v.Example = FormatExample(ex)
			if d, ok := m.Get("default"); ok {
				v.Default = parser.Plain(d)
				v.HasDefault = true
			}
		}
		out = append(out, v)
	}
	return ir.OneOf{Variants: out}, nil
}

// RefName strips the schema prefix from a $ref. References outside the
// component schemas, including external files, are reference errors.
func (n *Normalizer) RefName(ref, path string) (string, error) {
	name, ok := strings.CutPrefix(ref, n.schemaPrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", &oaserrors.ReferenceError{
			Ref:     ref,
			Path:    path,
			Message: fmt.Sprintf("expected a reference of the form %s<Name>", n.schemaPrefix),
		}
	}
	return name, nil
}

// join appends segments to a dotted path.
func join(path string, segments ...string) string {
	if path == "" {
		return strings.Join(segments, ".")
	}
	return path + "." + strings.Join(segments, ".")
}
