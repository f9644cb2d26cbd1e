// Package keydecode decodes response payloads against a closed universe of
// known field names.
//
// The universe is built once, at generation time, from the assembled
// documentation. Every map key in a payload is looked up in it: known keys
// carry their dense [Symbol], and keys the documentation never mentioned
// (API drift) are kept by name with [NoSymbol]. Unknown keys never enter the
// universe, so untrusted input cannot grow it. Each unknown key is logged
// once per call at warn level and listed in [Result.UnknownKeys]; decoding
// carries on.
//
// # Quick Start
//
//	u := keydecode.UniverseFromDocumentation(doc)
//	d, _ := keydecode.NewDecoder(u, keydecode.WithLogger(logger))
//	res, err := d.DecodeJSON(body)
//	obj := res.Value.(*keydecode.Object)
//
// A Decoder holds no per-call state and may be shared by concurrent
// requests.
package keydecode
