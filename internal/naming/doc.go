// Package naming provides shared case conversion utilities for oasir packages.
//
// The assembler uses [ToSnakeCase] to normalize operation identifiers, and the
// emitter's Go printer uses [ToGoName] to turn component and property names
// into exported identifiers.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
