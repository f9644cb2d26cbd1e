package emitter

import (
	"bytes"
	"embed"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// fileData is the input of file.go.tmpl.
type fileData struct {
	PackageName    string
	Types          []typeData
	WithOperations bool
	// Operations holds one Go composite literal per operation.
	Operations []string
}

// typeData is one top-level type declaration.
type typeData struct {
	Name   string
	Doc    []string
	Source string
}

// executeTemplate executes a template by name and formats the result,
// fixing up imports the way goimports does.
func executeTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return imports.Process("generated.go", buf.Bytes(), nil)
}
