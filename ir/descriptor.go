package ir

// Property describes one property of a component schema.
type Property struct {
	Name        string
	Type        Node
	Description string
	// Example is the property's example rendered as a string, or "".
	Example  string
	Required bool
}

// ComponentSchema is a component's properties split by requiredness.
// Every source property appears in exactly one of Required and Optional,
// each in source order.
type ComponentSchema struct {
	Name        string
	Description string
	Required    []Property
	Optional    []Property
	// Alias is set for components that are not object schemas, such as a
	// string enum or an array of references. Required and Optional are
	// empty in that case.
	Alias Node
}

// Properties returns all properties, required first.
func (c ComponentSchema) Properties() []Property {
	out := make([]Property, 0, len(c.Required)+len(c.Optional))
	out = append(out, c.Required...)
	return append(out, c.Optional...)
}

// IsAlias reports whether the component is a named non-object type.
func (c ComponentSchema) IsAlias() bool {
	return c.Alias != nil
}

// Parameter locations.
const (
	LocationQuery  = "query"
	LocationPath   = "path"
	LocationHeader = "header"
	LocationCookie = "cookie"
)

// Parameter describes one operation parameter.
type Parameter struct {
	Name     string
	Location string
	// Type is the raw scalar type of the parameter's schema.
	Type     string
	Example  string
	Required bool
}

// RequestBody describes a structured JSON request body.
type RequestBody struct {
	Required    bool
	ContentType string
	// Ref names the component the body refers to, or "" for an inline schema.
	Ref    string
	Schema ComponentSchema
}

// Method is an HTTP method the assembler models.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Operation describes one modeled API operation.
type Operation struct {
	Endpoint string
	// Name is the snake_case form of OperationID.
	Name        string
	OperationID string
	Summary     string
	Deprecated  bool
	Method      Method
	Arguments   []Parameter
	// RequestBody is nil when the operation has no body. GET operations
	// never have one.
	RequestBody  *RequestBody
	ResponseType Node
	// Group is the operation's first tag.
	Group string
}

// Documentation is the result of assembling a document: the component
// registry and the operations built against it.
type Documentation struct {
	Components *Registry
	Operations []Operation
}

// Groups returns the distinct operation groups in first-seen order.
func (d *Documentation) Groups() []string {
	seen := make(map[string]bool)
	var out []string
	for _, op := range d.Operations {
		if !seen[op.Group] {
			seen[op.Group] = true
			out = append(out, op.Group)
		}
	}
	return out
}

// Operation returns the operation with the given normalized name.
func (d *Documentation) Operation(name string) (Operation, bool) {
	for _, op := range d.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
