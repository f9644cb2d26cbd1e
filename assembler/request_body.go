package assembler

import (
	"mime"
	"strings"

	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// IsJSONMediaType reports whether mediaType is application/json or a
// "+json" structured syntax type, ignoring parameters such as charset.
func IsJSONMediaType(mediaType string) bool {
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		base = strings.ToLower(strings.TrimSpace(strings.SplitN(mediaType, ";", 2)[0]))
	}
	return base == "application/json" || strings.HasSuffix(base, "+json")
}

// BuildRequestBody builds the descriptor for a request body. A nil raw
// value means the operation has no body and yields (nil, nil). A body with
// no JSON content type yields an *oaserrors.UnsupportedError, which callers
// treat as "drop the operation". A $ref schema must name a registered
// component; an inline schema is built in place.
func (a *Assembler) BuildRequestBody(raw any, reg *ir.Registry, path string) (*ir.RequestBody, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(*parser.Map)
	if !ok {
		return nil, &oaserrors.SchemaError{Path: path, Shape: parser.Describe(raw), Message: "request body must be a mapping"}
	}

	content, _ := m.GetMap("content")
	if content.Len() == 0 {
		return nil, &oaserrors.UnsupportedError{Path: path, Feature: featureBody, Detail: "request body has no content"}
	}

	mediaType, entry := a.selectJSON(content)
	if mediaType == "" {
		return nil, &oaserrors.UnsupportedError{
			Path:    join(path, "content"),
			Feature: "content type " + content.Keys()[0],
			Detail:  "only JSON request bodies are modeled",
		}
	}

	epath := join(path, "content", mediaType)
	em, ok := entry.(*parser.Map)
	if !ok {
		return nil, &oaserrors.SchemaError{Path: epath, Shape: parser.Describe(entry), Message: "media type must be a mapping"}
	}
	schema, ok := em.Get("schema")
	if !ok {
		return nil, &oaserrors.UnsupportedError{Path: epath, Feature: featureBody, Detail: "JSON request body has no schema"}
	}

	body := &ir.RequestBody{
		Required:    m.GetBool("required"),
		ContentType: mediaType,
	}
	spath := join(epath, "schema")
	if sm, ok := schema.(*parser.Map); ok && sm.Has("$ref") {
		ref, _ := sm.GetString("$ref")
		name, err := a.norm.RefName(ref, spath)
		if err != nil {
			return nil, err
		}
		cs, ok := reg.Lookup(name)
		if !ok {
			return nil, &oaserrors.ReferenceError{Ref: ref, Path: spath, Message: "component not found"}
		}
		body.Ref = name
		body.Schema = cs
		return body, nil
	}

	cs, err := a.norm.BuildComponent("", schema, spath)
	if err != nil {
		return nil, err
	}
	body.Schema = cs
	return body, nil
}

// selectJSON picks the configured media type when present, otherwise the
// first JSON media type in source order.
func (a *Assembler) selectJSON(content *parser.Map) (string, any) {
	if v, ok := content.Get(a.contentType); ok {
		return a.contentType, v
	}
	var (
		mediaType string
		entry     any
	)
	content.Range(func(k string, v any) bool {
		if IsJSONMediaType(k) {
			mediaType, entry = k, v
			return false
		}
		return true
	})
	return mediaType, entry
}
