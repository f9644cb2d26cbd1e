package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oasir/internal/naming"
)

// maxDescriptionLength bounds a doc comment line taken from a description.
const maxDescriptionLength = 200

// Printer renders a File as Go source. Records below the top level are
// hoisted into named struct types, so every struct field fits on one line.
type Printer struct {
	cfg printerConfig
}

// NewPrinter creates a Printer.
func NewPrinter(opts ...PrinterOption) (*Printer, error) {
	cfg := defaultPrinterConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("emitter: invalid printer options: %w", err)
		}
	}
	return &Printer{cfg: *cfg}, nil
}

// Print renders f as a gofmt-formatted Go file.
func (p *Printer) Print(f *File) ([]byte, error) {
	if f == nil {
		f = &File{}
	}
	r := newRender(&p.cfg, f)
	data := r.file(f)
	out, err := executeTemplate("file.go.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("emitter: printing package %s: %w", p.cfg.packageName, err)
	}
	return out, nil
}

// nameTable hands out unique Go identifiers.
type nameTable map[string]bool

func (t nameTable) claim(name string) string {
	if !t[name] {
		t[name] = true
		return name
	}
	for i := 2; ; i++ {
		candidate := name + strconv.Itoa(i)
		if !t[candidate] {
			t[candidate] = true
			return candidate
		}
	}
}

type render struct {
	cfg       *printerConfig
	names     nameTable
	typeNames map[string]string
	types     []typeData

	// byValue maps each component to the components it holds by value.
	byValue map[string]map[string]bool
	// current is the component being rendered, "" for operations.
	current string
}

func newRender(cfg *printerConfig, f *File) *render {
	r := &render{
		cfg:       cfg,
		names:     nameTable{},
		typeNames: make(map[string]string, len(f.Components)),
	}
	if cfg.operations {
		r.names.claim("Operation")
		r.names.claim("Operations")
	}
	// Component names are claimed up front so hoisted types never take them.
	r.byValue = make(map[string]map[string]bool, len(f.Components))
	for _, d := range f.Components {
		r.typeNames[d.Name] = r.names.claim(naming.ToGoName(d.Name, "Component"))
		refs := map[string]bool{}
		r.valueRefs(d.Type, refs)
		r.byValue[d.Name] = refs
	}
	return r
}

// valueRefs adds to out every component d embeds without a pointer, slice
// or map in between, looking through inline records.
func (r *render) valueRefs(d Decl, out map[string]bool) {
	switch t := d.(type) {
	case Ref:
		out[t.Name] = true
	case Record:
		for _, f := range t.Fields {
			if f.Optional && r.cfg.pointers {
				continue
			}
			r.valueRefs(f.Type, out)
		}
	}
}

// reaches reports whether component from holds component to by value,
// directly or through other components.
func (r *render) reaches(from, to string) bool {
	seen := map[string]bool{}
	stack := []string{from}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if name == to {
			return true
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		for next := range r.byValue[name] {
			stack = append(stack, next)
		}
	}
	return false
}

func (r *render) file(f *File) *fileData {
	for _, d := range f.Components {
		r.component(d)
	}

	data := &fileData{
		PackageName:    r.cfg.packageName,
		WithOperations: r.cfg.operations,
	}
	if r.cfg.operations {
		for _, op := range f.Operations {
			data.Operations = append(data.Operations, r.operation(op))
		}
	}
	data.Types = r.types
	return data
}

func (r *render) component(d Declaration) {
	r.current = d.Name
	defer func() { r.current = "" }()
	name := r.typeNames[d.Name]
	doc := fmt.Sprintf("%s is generated from components.schemas.%s.", name, d.Name)
	if desc := cleanDescription(d.Description); desc != "" {
		doc = name + " " + desc
	}

	idx := r.reserve(name, doc)
	if rec, ok := d.Type.(Record); ok {
		r.types[idx].Source = r.structSource(name, rec)
		return
	}
	r.types[idx].Source = fmt.Sprintf("type %s %s", name, r.goType(d.Type, name, "is an item of "+name+"."))
}

// reserve appends a type slot before its source is rendered, so a type
// always precedes the types hoisted out of it.
func (r *render) reserve(name, doc string) int {
	r.types = append(r.types, typeData{Name: name, Doc: []string{doc}})
	return len(r.types) - 1
}

func (r *render) hoist(hint string, rec Record, suffix string) string {
	name := r.names.claim(hint)
	idx := r.reserve(name, name+" "+suffix)
	r.types[idx].Source = r.structSource(name, rec)
	return name
}

func (r *render) structSource(name string, rec Record) string {
	if len(rec.Fields) == 0 {
		return "type " + name + " struct{}"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", name)
	fields := nameTable{}
	prevDoc := false
	for i, f := range rec.Fields {
		goName := fields.claim(naming.ToGoName(f.Name, "Field"))
		typ := r.fieldType(f, name+goName, name)
		doc := fieldDoc(f)

		// Documented fields stand in their own paragraph.
		if i > 0 && (len(doc) > 0 || prevDoc) {
			b.WriteByte('\n')
		}
		for _, line := range doc {
			fmt.Fprintf(&b, "\t// %s\n", line)
		}
		tag := f.Name
		if f.Optional {
			tag += ",omitempty"
		}
		fmt.Fprintf(&b, "\t%s %s `json:%q`\n", goName, typ, tag)
		prevDoc = len(doc) > 0
	}
	b.WriteByte('}')
	return b.String()
}

func (r *render) fieldType(f RecordField, hint, owner string) string {
	typ := r.goType(f.Type, hint, "is an inline object in "+owner+".")
	switch t := f.Type.(type) {
	case Primitive, Record:
		if f.Optional && r.cfg.pointers {
			return "*" + typ
		}
	case Ref:
		// A struct cannot contain itself by value, directly or through
		// the components it embeds.
		if (f.Optional && r.cfg.pointers) || typ == owner ||
			(r.current != "" && r.reaches(t.Name, r.current)) {
			return "*" + typ
		}
	}
	return typ
}

// goType returns the Go type expression for d. Records are hoisted under
// hint with a doc comment ending in suffix.
func (r *render) goType(d Decl, hint, suffix string) string {
	switch t := d.(type) {
	case Primitive:
		switch t.Type {
		case Float:
			return "float64"
		case Integer:
			return "int64"
		case Boolean:
			return "bool"
		default:
			return "string"
		}
	case List:
		return "[]" + r.goType(t.Elem, hint+"Item", suffix)
	case Map:
		return "map[string]" + r.goType(t.Elem, hint+"Value", suffix)
	case Record:
		return r.hoist(hint, t, suffix)
	case Ref:
		if name, ok := r.typeNames[t.Name]; ok {
			return name
		}
		return naming.ToGoName(t.Name, "Component")
	default:
		// Union, Dynamic and Unknown
		return "any"
	}
}

func (r *render) operation(op OperationDecl) string {
	base := naming.ToGoName(op.Name, "Operation")
	parts := []string{
		"Name: " + strconv.Quote(op.Name),
		"Method: " + strconv.Quote(string(op.Method)),
		"Path: " + strconv.Quote(op.Endpoint),
	}
	if op.Group != "" {
		parts = append(parts, "Group: "+strconv.Quote(op.Group))
	}
	if op.Request != nil {
		req := r.goType(op.Request, base+"Request", "is the request body of "+op.OperationID+".")
		parts = append(parts, "Request: "+strconv.Quote(req))
	}
	resp := r.goType(op.Response, base+"Response", "is the response body of "+op.OperationID+".")
	parts = append(parts, "Response: "+strconv.Quote(resp))
	if op.Deprecated {
		parts = append(parts, "Deprecated: true")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func fieldDoc(f RecordField) []string {
	var doc []string
	if desc := cleanDescription(f.Description); desc != "" {
		doc = append(doc, desc)
	}
	if ex := cleanDescription(f.Example); ex != "" {
		doc = append(doc, "Example: "+ex)
	}
	if u, ok := f.Type.(Unknown); ok {
		doc = append(doc, "Fallback type: "+u.Reason+".")
	}
	return doc
}

// cleanDescription flattens s onto one line and truncates it at a rune
// boundary.
func cleanDescription(s string) string {
	s = strings.TrimSpace(strings.Join(strings.Fields(s), " "))
	if runes := []rune(s); len(runes) > maxDescriptionLength {
		s = string(runes[:maxDescriptionLength-3]) + "..."
	}
	return s
}
