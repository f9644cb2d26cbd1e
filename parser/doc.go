// Package parser loads OpenAPI documents into an ordered generic tree.
//
// The rest of oasir never works with typed OpenAPI models: it classifies raw
// values by shape. The parser's only job is to turn YAML or JSON bytes into
// that tree without losing key order, because property order and operation
// order are visible in the generated output.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d schemas, %d operations\n",
//		result.Stats.SchemaCount, result.Stats.OperationCount)
//
// # Tree values
//
// Mappings decode to *[Map], sequences to []any, and scalars to string,
// int, float64, bool or nil. YAML aliases are expanded and merge keys ("<<")
// are applied, with explicit keys taking precedence.
//
// # Logging
//
// The [Logger] interface defined here is shared by every oasir package.
// [NopLogger] is the default; [NewSlogAdapter] wraps a *slog.Logger.
package parser
