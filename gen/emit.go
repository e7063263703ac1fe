package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

const runtimeImport = "github.com/Macs1324/envar"

// constructor is the data for one generated New<Type>() function.
type constructor struct {
	Record   string
	Bindings []Binding
}

var fileTemplate = template.Must(template.New("envar").Parse(`// Code generated by envargen. DO NOT EDIT.

package {{.Package}}

import (
	envar "{{.RuntimeImport}}"
)
{{range .Constructors}}
// New{{.Record}} builds a {{.Record}} from the process environment. It
// panics when a required variable is missing or any set variable fails to
// parse.
func New{{.Record}}() {{.Record}} {
	return {{.Record}}{
		{{- range .Bindings}}
		{{.Field}}: envar.{{.Helper}}({{printf "%q" .EnvVar}}),
		{{- end}}
	}
}
{{end}}`))

// Emit renders the generated source for a set of records and their resolved
// bindings, gofmt-formatted. Records and bindings are matched by index.
func Emit(pkg string, records []Record, bindings [][]Binding) ([]byte, error) {
	ctors := make([]constructor, len(records))
	for i, rec := range records {
		ctors[i] = constructor{Record: rec.Name, Bindings: bindings[i]}
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package       string
		RuntimeImport string
		Constructors  []constructor
	}{pkg, runtimeImport, ctors})
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}
