package normalizer

import (
	"fmt"

	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

type shapeKind int

const (
	// shapeEmpty has neither type, $ref, oneOf nor properties.
	shapeEmpty shapeKind = iota
	shapeRef
	shapeOneOf
	// shapeObject is an object with a properties mapping.
	shapeObject
	// shapeArray is an array with an items schema.
	shapeArray
	// shapeScalar is any other bare type, including "object" without
	// properties and "array" without items.
	shapeScalar
)

// shape is a raw schema node classified before any field access.
type shape struct {
	kind     shapeKind
	node     *parser.Map
	ref      string
	typ      string
	props    *parser.Map
	items    any
	variants []any
}

// unsupportedKeywords are composition keywords the IR cannot express.
var unsupportedKeywords = []string{"allOf", "anyOf", "not"}

func classify(raw any, path string) (shape, error) {
	m, ok := raw.(*parser.Map)
	if !ok {
		return shape{}, &oaserrors.SchemaError{Path: path, Shape: parser.Describe(raw), Message: "schema must be a mapping"}
	}
	fail := func(format string, args ...any) (shape, error) {
		return shape{}, &oaserrors.SchemaError{Path: path, Shape: parser.Describe(m), Message: fmt.Sprintf(format, args...)}
	}

	if v, ok := m.Get("$ref"); ok {
		ref, ok := v.(string)
		if !ok || ref == "" {
			return fail("$ref must be a non-empty string")
		}
		return shape{kind: shapeRef, node: m, ref: ref}, nil
	}

	if v, ok := m.Get("oneOf"); ok {
		variants, ok := v.([]any)
		if !ok || len(variants) == 0 {
			return fail("oneOf must be a non-empty sequence")
		}
		return shape{kind: shapeOneOf, node: m, variants: variants}, nil
	}

	for _, k := range unsupportedKeywords {
		if m.Has(k) {
			return fail("%s is not supported", k)
		}
	}

	typ, err := schemaType(m, path)
	if err != nil {
		return shape{}, err
	}
	props, hasProps := m.Get("properties")
	items, hasItems := m.Get("items")

	switch {
	case typ == ir.TypeObject || (typ == "" && hasProps):
		if hasItems {
			return fail("object schema must not declare items")
		}
		if !hasProps {
			return shape{kind: shapeScalar, node: m, typ: ir.TypeObject}, nil
		}
		if props == nil {
			// "properties:" with no value
			props = parser.NewMap()
		}
		pm, ok := props.(*parser.Map)
		if !ok {
			return fail("properties must be a mapping")
		}
		return shape{kind: shapeObject, node: m, typ: ir.TypeObject, props: pm}, nil

	case typ == ir.TypeArray:
		if hasProps {
			return fail("array schema must not declare properties")
		}
		if !hasItems {
			return shape{kind: shapeScalar, node: m, typ: ir.TypeArray}, nil
		}
		return shape{kind: shapeArray, node: m, typ: ir.TypeArray, items: items}, nil

	case typ != "":
		if hasItems || hasProps {
			return fail("%s schema must not declare items or properties", typ)
		}
		return shape{kind: shapeScalar, node: m, typ: typ}, nil

	default:
		if hasItems {
			return fail("items requires type array")
		}
		return shape{kind: shapeEmpty, node: m}, nil
	}
}

// schemaType returns the declared type, or "" when there is none. An
// OpenAPI 3.1 type list is accepted when exactly one entry is not "null".
func schemaType(m *parser.Map, path string) (string, error) {
	v, ok := m.Get("type")
	if !ok {
		return "", nil
	}
	fail := func(msg string) (string, error) {
		return "", &oaserrors.SchemaError{Path: path, Shape: parser.Describe(m), Message: msg}
	}

	switch t := v.(type) {
	case string:
		if t == "" {
			return fail("type must not be empty")
		}
		return t, nil
	case []any:
		var chosen string
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return fail("type list entries must be strings")
			}
			if s == "null" {
				continue
			}
			if chosen != "" {
				return fail("type list with more than one non-null entry")
			}
			chosen = s
		}
		if chosen == "" {
			return fail("type list has no non-null entry")
		}
		return chosen, nil
	default:
		return fail("type must be a string or a list of strings")
	}
}
