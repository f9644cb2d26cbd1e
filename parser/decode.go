package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasir/oaserrors"
)

// maxAliasExpansions bounds alias dereferencing so that "billion laughs"
// style documents cannot blow up the tree.
const maxAliasExpansions = 10000

// UnmarshalMap decodes YAML or JSON bytes into an ordered generic tree.
// The document root must be a mapping.
func UnmarshalMap(data []byte) (*Map, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid YAML/JSON", Cause: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &oaserrors.ParseError{Message: "empty document"}
	}

	d := &nodeDecoder{}
	v, err := d.decode(root.Content[0])
	if err != nil {
		return nil, err
	}
	m, ok := v.(*Map)
	if !ok {
		doc := root.Content[0]
		return nil, &oaserrors.ParseError{
			Line:    doc.Line,
			Column:  doc.Column,
			Message: fmt.Sprintf("document root must be a mapping, got %s", Describe(v)),
		}
	}
	return m, nil
}

type nodeDecoder struct {
	aliases int
}

func (d *nodeDecoder) decode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.decode(n.Content[0])

	case yaml.MappingNode:
		return d.decodeMapping(n)

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.decode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, &oaserrors.ParseError{Line: n.Line, Column: n.Column, Message: "invalid scalar", Cause: err}
		}
		return v, nil

	case yaml.AliasNode:
		d.aliases++
		if d.aliases > maxAliasExpansions {
			return nil, &oaserrors.ParseError{
				Line:    n.Line,
				Column:  n.Column,
				Message: fmt.Sprintf("too many alias expansions (limit %d)", maxAliasExpansions),
			}
		}
		if n.Alias == nil {
			return nil, &oaserrors.ParseError{Line: n.Line, Column: n.Column, Message: "dangling alias"}
		}
		return d.decode(n.Alias)

	default:
		return nil, &oaserrors.ParseError{Line: n.Line, Column: n.Column, Message: fmt.Sprintf("unexpected node kind %v", n.Kind)}
	}
}

func (d *nodeDecoder) decodeMapping(n *yaml.Node) (*Map, error) {
	m := NewMap()
	var merges []*Map

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &oaserrors.ParseError{Line: keyNode.Line, Column: keyNode.Column, Message: "mapping keys must be scalars"}
		}

		v, err := d.decode(valNode)
		if err != nil {
			return nil, err
		}

		if keyNode.Tag == "!!merge" || (keyNode.Value == "<<" && keyNode.Style == 0) {
			switch src := v.(type) {
			case *Map:
				merges = append(merges, src)
			case []any:
				for _, e := range src {
					if sm, ok := e.(*Map); ok {
						merges = append(merges, sm)
					}
				}
			}
			continue
		}
		m.Set(keyNode.Value, v)
	}

	// Explicit keys win over merged ones.
	for _, src := range merges {
		src.Range(func(k string, v any) bool {
			if !m.Has(k) {
				m.Set(k, v)
			}
			return true
		})
	}
	return m, nil
}
