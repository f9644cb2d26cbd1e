// Package assembler builds an [ir.Documentation] from a parsed OpenAPI
// document in two phases: [Assembler.BuildRegistry] converts every component
// schema, and only then [Assembler.BuildOperations] builds GET and POST
// operations against the finished registry.
//
// # Quick Start
//
//	result, err := assembler.AssembleWithOptions(
//		assembler.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, op := range result.Documentation.Operations {
//		fmt.Println(op.Method, op.Endpoint, op.Name)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//
// # Skipped operations
//
// Operations the IR does not model are dropped and reported as issues
// rather than errors: DELETE and other methods, GET or POST entries missing
// operationId, summary, responses or tags, request bodies without a JSON
// content type, and success responses without content. Malformed schemas
// and dangling references are errors and stop assembly.
//
// # Response types
//
// By default a success response schema must be a $ref or a bare scalar
// type. [WithInlineResponses] accepts any schema the normalizer understands.
package assembler
