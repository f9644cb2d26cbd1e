package assembler

import (
	"fmt"

	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/normalizer"
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// BuildParameter builds one parameter descriptor. The type is taken from
// the parameter's schema: a scalar keeps its OpenAPI name, anything else is
// rendered in IR notation (e.g. "[]string"). The example comes from the
// schema, falling back to the parameter's own example.
func (a *Assembler) BuildParameter(raw any, path string) (ir.Parameter, error) {
	m, ok := raw.(*parser.Map)
	if !ok {
		return ir.Parameter{}, &oaserrors.SchemaError{Path: path, Shape: parser.Describe(raw), Message: "parameter must be a mapping"}
	}
	name, _ := m.GetString("name")
	if name == "" {
		return ir.Parameter{}, &oaserrors.SchemaError{Path: path, Shape: parser.Describe(m), Message: "parameter must have a name"}
	}
	in, _ := m.GetString("in")
	if in == "" {
		return ir.Parameter{}, &oaserrors.SchemaError{Path: path, Shape: parser.Describe(m), Message: "parameter must have a location (in)"}
	}

	schema, ok := m.Get("schema")
	if !ok {
		return ir.Parameter{}, &oaserrors.UnsupportedError{
			Path:    path,
			Feature: featureParameter,
			Detail:  "parameter " + name + " has no schema",
		}
	}
	t, err := a.norm.Normalize(schema, join(path, "schema"))
	if err != nil {
		return ir.Parameter{}, err
	}

	p := ir.Parameter{
		Name:     name,
		Location: in,
		Type:     t.String(),
		Required: m.GetBool("required"),
	}
	if sm, ok := schema.(*parser.Map); ok {
		ex, _ := sm.Get("example")
		p.Example = normalizer.FormatExample(ex)
	}
	if p.Example == "" {
		ex, _ := m.Get("example")
		p.Example = normalizer.FormatExample(ex)
	}
	return p, nil
}

// parameters merges path-level and operation-level parameters. Path-level
// parameters come first; an operation parameter with the same location and
// name replaces the path-level one in place.
func (a *Assembler) parameters(doc, item, op *parser.Map, itemPath, opPath string) ([]ir.Parameter, error) {
	var out []ir.Parameter
	index := make(map[string]int)

	add := func(owner *parser.Map, ownerPath string) error {
		v, ok := owner.Get("parameters")
		if !ok || v == nil {
			return nil
		}
		list, ok := v.([]any)
		if !ok {
			return &oaserrors.SchemaError{Path: join(ownerPath, "parameters"), Shape: parser.Describe(v), Message: "parameters must be a sequence"}
		}
		for i, raw := range list {
			ppath := fmt.Sprintf("%s.parameters[%d]", ownerPath, i)
			resolved, err := resolveLocal(doc, raw, "parameters", ppath)
			if err != nil {
				return err
			}
			p, err := a.BuildParameter(resolved, ppath)
			if err != nil {
				return err
			}
			key := p.Location + ":" + p.Name
			if at, dup := index[key]; dup {
				out[at] = p
				continue
			}
			index[key] = len(out)
			out = append(out, p)
		}
		return nil
	}

	if err := add(item, itemPath); err != nil {
		return nil, err
	}
	if err := add(op, opPath); err != nil {
		return nil, err
	}
	if out == nil {
		out = []ir.Parameter{}
	}
	return out, nil
}
