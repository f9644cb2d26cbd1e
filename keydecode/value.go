package keydecode

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Key is a decoded map key. Known keys carry their universe symbol;
// unknown keys carry NoSymbol and keep only their name.
type Key struct {
	Symbol Symbol
	Name   string
}

// Known reports whether the key resolved against the universe.
func (k Key) Known() bool {
	return k.Symbol != NoSymbol
}

func (k Key) String() string {
	if k.Known() {
		return k.Name
	}
	return "?" + k.Name
}

// Field is one entry of an Object.
type Field struct {
	Key   Key
	Value any
}

// Object is a decoded map. Fields keep the payload's order when it is
// known (ordered trees and JSON input) and sorted key order otherwise.
type Object struct {
	Fields []Field
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Fields)
}

// Get returns the value stored under name, known or not.
func (o *Object) Get(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	for _, f := range o.Fields {
		if f.Key.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// GetSymbol returns the value stored under a known key.
func (o *Object) GetSymbol(s Symbol) (any, bool) {
	if o == nil || s == NoSymbol {
		return nil, false
	}
	for _, f := range o.Fields {
		if f.Key.Symbol == s {
			return f.Value, true
		}
	}
	return nil, false
}

// Unknown returns the names of keys that did not resolve, in field order.
func (o *Object) Unknown() []string {
	if o == nil {
		return nil
	}
	var out []string
	for _, f := range o.Fields {
		if !f.Key.Known() {
			out = append(out, f.Key.Name)
		}
	}
	return out
}

// Plain converts the object back into plain Go values.
func (o *Object) Plain() map[string]any {
	if o == nil {
		return nil
	}
	out := make(map[string]any, len(o.Fields))
	for _, f := range o.Fields {
		out[f.Key.Name] = plain(f.Value)
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.Plain()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON writes the object with its keys in field order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(f.Key.Name)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", f.Key.Name, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the object as a mapping with its keys in field order.
func (o *Object) MarshalYAML() (any, error) {
	if o == nil {
		return nil, nil
	}
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range o.Fields {
		var v yaml.Node
		if err := v.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("key %q: %w", f.Key.Name, err)
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key.Name},
			&v,
		)
	}
	return n, nil
}
