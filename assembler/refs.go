package assembler

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// resolveLocal follows a "#/components/<section>/<name>" reference one hop.
// Values that are not references are returned unchanged.
func resolveLocal(doc *parser.Map, raw any, section, path string) (any, error) {
	m, ok := raw.(*parser.Map)
	if !ok {
		return raw, nil
	}
	ref, ok := m.GetString("$ref")
	if !ok {
		return raw, nil
	}

	prefix := "#/components/" + section + "/"
	name, ok := strings.CutPrefix(ref, prefix)
	if !ok || name == "" {
		return nil, &oaserrors.ReferenceError{
			Ref:     ref,
			Path:    path,
			Message: fmt.Sprintf("expected a reference of the form %s<Name>", prefix),
		}
	}
	if defs, ok := doc.Lookup("components", section); ok {
		if target, ok := defs.Get(name); ok {
			return target, nil
		}
	}
	return nil, &oaserrors.ReferenceError{Ref: ref, Path: path, Message: "target not found"}
}

// join appends segments to a dotted path.
func join(path string, segments ...string) string {
	return path + "." + strings.Join(segments, ".")
}
