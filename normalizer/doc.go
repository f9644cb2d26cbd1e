// Package normalizer converts raw schema nodes from a parsed OpenAPI
// document into [ir.Node] values, and builds property and component
// descriptors on top of that conversion.
//
// Every raw node is first classified into one of a closed set of shapes
// ($ref, oneOf, object, array, bare scalar, empty). Anything that fits none
// of them, or fits in contradictory ways, is reported as an
// *oaserrors.SchemaError carrying the dotted path of the offending node.
// The normalizer never guesses.
//
// # Quick Start
//
//	n, err := normalizer.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	schema, err := n.BuildComponent("Pet", raw, "components.schemas.Pet")
//
// # Arrays
//
// Each level of array nesting in the source produces exactly one
// [ir.ArrayOf]. An items schema with neither type nor $ref is an opaque
// record and normalizes to an empty [ir.ObjectOf]; the same empty schema in
// any other position is an error.
package normalizer
