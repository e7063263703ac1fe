package gen

// Record describes one struct type selected for constructor generation.
// It exists only while the generator runs.
type Record struct {
	Name   string // struct type name
	Fields []Field
}

// Field is one struct field as declared in the source.
type Field struct {
	Name   string // field identifier
	Type   string // declared type, rendered (e.g. "uint16", "*bool", "decimal.Decimal")
	EnvTag string // value of the `env` tag, "" if absent
}

// Binding is the resolved association between a field and its environment
// variable.
type Binding struct {
	Field    string // field identifier
	EnvVar   string // environment variable name
	Type     string // declared type as written
	Optional bool   // pointer field; unset variable yields nil
	helper   string // envar helper base name, e.g. "Uint16"
}

// Helper returns the envar function the generated code calls for this
// binding: Must<T> for required fields, Opt<T> for optional ones.
func (b Binding) Helper() string {
	if b.Optional {
		return "Opt" + b.helper
	}
	return "Must" + b.helper
}
