package normalizer

import (
	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// BuildProperty builds the descriptor for one property. The raw property
// may be a $ref, a oneOf, an array or object schema, or a bare scalar
// type; an empty schema is a SchemaError.
func (n *Normalizer) BuildProperty(name string, raw any, required bool, path string) (ir.Property, error) {
	s, err := classify(raw, path)
	if err != nil {
		return ir.Property{}, err
	}
	if s.kind == shapeEmpty {
		return ir.Property{}, &oaserrors.SchemaError{
			Path:    path,
			Shape:   parser.Describe(raw),
			Message: "property declares neither type, $ref nor oneOf",
		}
	}

	t, err := n.normalize(raw, path, 1)
	if err != nil {
		return ir.Property{}, err
	}
	ex, _ := s.node.Get("example")
	return ir.Property{
		Name:        name,
		Type:        t,
		Description: s.node.StringOr("description", ""),
		Example:     FormatExample(ex),
		Required:    required,
	}, nil
}

// BuildComponent builds the schema for one named component. Object schemas
// have their properties split by the "required" list; a missing list means
// nothing is required. Any other well-formed schema becomes an alias.
func (n *Normalizer) BuildComponent(name string, raw any, path string) (ir.ComponentSchema, error) {
	s, err := classify(raw, path)
	if err != nil {
		return ir.ComponentSchema{}, err
	}
	cs := ir.ComponentSchema{
		Name:        name,
		Description: s.node.StringOr("description", ""),
	}

	switch s.kind {
	case shapeObject:
		names, required, err := requiredSet(s.node, path)
		if err != nil {
			return ir.ComponentSchema{}, err
		}

		var perr error
		s.props.Range(func(prop string, raw any) bool {
			var p ir.Property
			p, perr = n.BuildProperty(prop, raw, required[prop], join(path, "properties", prop))
			if perr != nil {
				return false
			}
			if p.Required {
				cs.Required = append(cs.Required, p)
			} else {
				cs.Optional = append(cs.Optional, p)
			}
			return true
		})
		if perr != nil {
			return ir.ComponentSchema{}, perr
		}

		for _, r := range names {
			if !s.props.Has(r) {
				n.log.Debug("required name has no matching property", "component", name, "name", r)
			}
		}
		return cs, nil

	case shapeEmpty:
		return ir.ComponentSchema{}, &oaserrors.SchemaError{
			Path:    path,
			Shape:   parser.Describe(raw),
			Message: "component declares neither type nor $ref",
		}

	default:
		alias, err := n.normalize(raw, path, 0)
		if err != nil {
			return ir.ComponentSchema{}, err
		}
		cs.Alias = alias
		return cs, nil
	}
}

// requiredSet reads the "required" list in source order along with a
// membership set.
func requiredSet(m *parser.Map, path string) ([]string, map[string]bool, error) {
	v, ok := m.Get("required")
	if !ok || v == nil {
		return nil, map[string]bool{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, nil, &oaserrors.SchemaError{Path: join(path, "required"), Shape: parser.Describe(v), Message: "required must be a sequence of names"}
	}
	names := make([]string, 0, len(list))
	set := make(map[string]bool, len(list))
	for _, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, nil, &oaserrors.SchemaError{Path: join(path, "required"), Shape: parser.Describe(e), Message: "required entries must be strings"}
		}
		names = append(names, s)
		set[s] = true
	}
	return names, set, nil
}
