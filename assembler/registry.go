package assembler

import (
	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// BuildRegistry builds every component under components.schemas and
// checks that each reference inside them names a registered component.
func (a *Assembler) BuildRegistry(doc *parser.Map) (*ir.Registry, error) {
	var schemas *parser.Map
	if v, ok := doc.Lookup("components"); ok {
		raw, present := v.Get("schemas")
		if present && raw != nil {
			m, ok := raw.(*parser.Map)
			if !ok {
				return nil, &oaserrors.SchemaError{Path: "components.schemas", Shape: parser.Describe(raw), Message: "must be a mapping"}
			}
			schemas = m
		}
	}

	components := make([]ir.ComponentSchema, 0, schemas.Len())
	var err error
	schemas.Range(func(name string, raw any) bool {
		var cs ir.ComponentSchema
		cs, err = a.norm.BuildComponent(name, raw, "components.schemas."+name)
		if err != nil {
			return false
		}
		components = append(components, cs)
		return true
	})
	if err != nil {
		return nil, err
	}

	reg, err := ir.NewRegistry(components)
	if err != nil {
		return nil, err
	}
	if err := checkRefs(reg, a.norm.SchemaPrefix()); err != nil {
		return nil, err
	}

	a.log.Debug("built component registry", "components", reg.Len())
	return reg, nil
}

// checkRefs reports the first reference to a component that does not exist.
func checkRefs(reg *ir.Registry, prefix string) error {
	for _, cs := range reg.Components() {
		nodes := make([]ir.Node, 0, len(cs.Required)+len(cs.Optional)+1)
		if cs.Alias != nil {
			nodes = append(nodes, cs.Alias)
		}
		for _, p := range cs.Properties() {
			nodes = append(nodes, p.Type)
		}
		for _, n := range nodes {
			for _, name := range ir.Refs(n) {
				if !reg.Has(name) {
					return &oaserrors.ReferenceError{
						Ref:     prefix + name,
						Path:    "components.schemas." + cs.Name,
						Message: "component not found",
					}
				}
			}
		}
	}
	return nil
}
