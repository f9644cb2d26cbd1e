// Package oaserrors provides structured error types for oasir.
//
// Import path: github.com/erraggy/oasir/oaserrors
//
// The types split into fatal build-time errors, which abort a generation run,
// and non-fatal signals, which cause a single operation to be skipped.
//
// # Error Types
//
//   - [ParseError]: the source document could not be loaded
//   - [SchemaError]: a raw schema matches no recognized shape (fatal)
//   - [ReferenceError]: a $ref names a component that does not exist (fatal)
//   - [UnsupportedError]: a recognized construct that is not modeled (non-fatal)
//   - [ResourceLimitError]: schema nesting exceeded the configured depth (fatal)
//   - [ConfigError]: invalid options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse], [ErrSchema], [ErrReference], [ErrUnsupported],
//     [ErrResourceLimit], [ErrConfig]
//
// # Usage
//
//	result, err := assembler.AssembleWithOptions(assembler.WithFilePath("api.yaml"))
//	if err != nil {
//	    var schemaErr *oaserrors.SchemaError
//	    if errors.As(err, &schemaErr) {
//	        log.Fatalf("fix the schema at %s", schemaErr.Path)
//	    }
//	}
package oaserrors
