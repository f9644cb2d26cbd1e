// Package emitter maps IR nodes to type declarations and prints them as Go
// source.
//
// Emission has two independent stages. An [Emitter] turns [ir.Node] values
// into [Decl] values, a small tagged union of primitives, lists, maps,
// records, references and unions. A [Printer] turns those declarations into
// a formatted Go file.
//
// # Mapping
//
//	number   -> Primitive{Float}      -> float64
//	integer  -> Primitive{Integer}    -> int64
//	boolean  -> Primitive{Boolean}    -> bool
//	string   -> Primitive{String}     -> string
//	array    -> List{Dynamic}         -> []any
//	object   -> Map{Dynamic}          -> map[string]any
//	oneOf    -> Union                 -> any
//	$ref     -> Ref                   -> named type
//
// Emission is best effort. A node with no mapping becomes [Unknown], which
// prints as any, and is reported on the configured logger at warn level.
//
// # Quick Start
//
//	e, _ := emitter.New(emitter.WithLogger(logger))
//	file := e.EmitDocumentation(doc)
//
//	p, _ := emitter.NewPrinter(emitter.WithPackageName("openai"))
//	src, err := p.Print(file)
package emitter
