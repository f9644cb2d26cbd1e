package assembler

import (
	"fmt"

	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// successStatus returns "200" when declared, otherwise the first 2xx status
// (including the "2XX" range) in source order.
func successStatus(responses *parser.Map) string {
	if responses.Has("200") {
		return "200"
	}
	for _, k := range responses.Keys() {
		if len(k) == 3 && k[0] == '2' {
			return k
		}
	}
	return ""
}

// responseType extracts the response type of an operation from the first
// content entry of its success response.
func (a *Assembler) responseType(doc *parser.Map, reg *ir.Registry, op *parser.Map, path string) (ir.Node, error) {
	rpath := join(path, "responses")
	responses, _ := op.GetMap("responses")
	status := successStatus(responses)
	if status == "" {
		return nil, &oaserrors.UnsupportedError{Path: rpath, Feature: featureResponse, Detail: "no success response"}
	}

	rpath = join(rpath, status)
	raw, _ := responses.Get(status)
	resolved, err := resolveLocal(doc, raw, "responses", rpath)
	if err != nil {
		return nil, err
	}
	resp, ok := resolved.(*parser.Map)
	if !ok {
		return nil, &oaserrors.SchemaError{Path: rpath, Shape: parser.Describe(resolved), Message: "response must be a mapping"}
	}

	content, _ := resp.GetMap("content")
	if content.Len() == 0 {
		return nil, &oaserrors.UnsupportedError{Path: rpath, Feature: featureResponse, Detail: fmt.Sprintf("response %s has no content", status)}
	}
	mediaType := content.Keys()[0]
	epath := join(rpath, "content", mediaType)
	entry, _ := content.GetMap(mediaType)
	schema, ok := entry.Get("schema")
	if !ok {
		return nil, &oaserrors.UnsupportedError{Path: epath, Feature: featureResponse, Detail: fmt.Sprintf("response %s has no schema", status)}
	}

	spath := join(epath, "schema")
	node, err := a.norm.Normalize(schema, spath)
	if err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case ir.Scalar:
		return n, nil
	case ir.ComponentRef:
		if !reg.Has(n.Name) {
			return nil, &oaserrors.ReferenceError{Ref: a.norm.SchemaPrefix() + n.Name, Path: spath, Message: "component not found"}
		}
		return n, nil
	}

	if !a.inlineResponses {
		return nil, &oaserrors.SchemaError{
			Path:    spath,
			Shape:   parser.Describe(schema),
			Message: "response schema must be a $ref or a bare scalar type; inline " + string(node.Kind()) + " responses are not enabled",
		}
	}
	for _, name := range ir.Refs(node) {
		if !reg.Has(name) {
			return nil, &oaserrors.ReferenceError{Ref: a.norm.SchemaPrefix() + name, Path: spath, Message: "component not found"}
		}
	}
	return node, nil
}
