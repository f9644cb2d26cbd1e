package emitter_test

import (
	"fmt"

	"github.com/erraggy/oasir/emitter"
	"github.com/erraggy/oasir/ir"
)

func ExampleEmit() {
	node := ir.ArrayOf{Elem: ir.ObjectOf{Fields: []ir.Field{
		{Name: "index", Type: ir.Scalar{Name: "integer"}},
		{Name: "message", Type: ir.ComponentRef{Name: "ChatMessage"}},
	}}}
	fmt.Println(emitter.Emit(node))
	// Output: list(record{index: integer, message: ref(ChatMessage)})
}

func ExamplePrinter_Print() {
	file := &emitter.File{Components: []emitter.Declaration{{
		Name: "model",
		Type: emitter.Record{Fields: []emitter.RecordField{
			{Name: "id", Type: emitter.Primitive{Type: emitter.String}},
			{Name: "owned_by", Type: emitter.Primitive{Type: emitter.String}, Optional: true},
		}},
	}}}

	p, err := emitter.NewPrinter(emitter.WithOperations(false))
	if err != nil {
		fmt.Println(err)
		return
	}
	src, err := p.Print(file)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(src))
	// Output:
	// // Code generated by oasir. DO NOT EDIT.
	//
	// package api
	//
	// // Model is generated from components.schemas.model.
	// type Model struct {
	// 	Id      string  `json:"id"`
	// 	OwnedBy *string `json:"owned_by,omitempty"`
	// }
}
