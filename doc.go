// Package oasir turns OpenAPI descriptions into a normalized, language-agnostic
// intermediate representation (IR) of types and operations, and renders that IR
// into target-language type declarations.
//
// # Overview
//
// The pipeline is split into small packages, leaves first:
//
//   - parser: load a YAML or JSON document into an ordered generic tree
//   - normalizer: convert raw schemas into [ir.Node] values and build
//     property and component descriptors
//   - assembler: build the component registry, then every operation, and
//     package both into an [ir.Documentation]
//   - emitter: map IR nodes to type declarations and print Go source
//   - keydecode: decode response payloads against the closed set of field
//     names known to the IR
//
// Errors are typed (see package oaserrors). Malformed schemas abort the run;
// unsupported operations are skipped and reported as issues.
//
// # Quick Start
//
//	result, err := assembler.AssembleWithOptions(
//	    assembler.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, op := range result.Documentation.Operations {
//	    fmt.Println(op.Method, op.Endpoint, op.Name)
//	}
//
// Render Go types for the components:
//
//	em, _ := emitter.New()
//	printer, _ := emitter.NewPrinter(emitter.WithPackageName("petstore"))
//	src, err := printer.Print(em.EmitDocumentation(result.Documentation))
//
// # Command Line
//
// The oasir command (cmd/oasir) wraps the pipeline: "oasir inspect" summarizes
// a document, "oasir types" prints Go declarations, "oasir decode" checks a
// payload for unknown keys and "oasir mcp" serves the same operations as MCP
// tools over stdio. Defaults come from OASIR_* environment variables.
package oasir
