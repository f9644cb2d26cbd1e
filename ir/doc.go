// Package ir defines the intermediate representation produced by assembling
// an OpenAPI document: a closed set of schema node shapes, the descriptors
// built from components and operations, and the immutable component
// [Registry] operations resolve against.
//
// [Node] is a sealed interface. Its implementations are [Scalar], [ArrayOf],
// [ObjectOf], [ComponentRef] and [OneOf]; callers switch on the concrete type:
//
//	switch n := node.(type) {
//	case ir.Scalar:
//		fmt.Println("scalar", n.Name)
//	case ir.ArrayOf:
//		fmt.Println("list of", n.Elem)
//	case ir.ComponentRef:
//		schema, _ := doc.Components.Lookup(n.Name)
//		fmt.Println(len(schema.Required), "required fields")
//	}
//
// All values are built once by the normalizer and assembler packages and are
// not modified afterwards. A [Documentation] is safe to share between
// goroutines.
package ir
