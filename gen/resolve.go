package gen

import (
	"fmt"
	"strings"
)

// helpers maps a declared field type to the envar helper base name. The set
// is closed: generated code can only call readers that exist in the runtime
// package.
var helpers = map[string]string{
	"string":            "String",
	"bool":              "Bool",
	"int":               "Int",
	"int8":              "Int8",
	"int16":             "Int16",
	"int32":             "Int32",
	"int64":             "Int64",
	"uint":              "Uint",
	"uint8":             "Uint8",
	"uint16":            "Uint16",
	"uint32":            "Uint32",
	"uint64":            "Uint64",
	"float32":           "Float32",
	"float64":           "Float64",
	"time.Duration":     "Duration",
	"time.Time":         "Time",
	"url.URL":           "URL",
	"net.IP":            "IP",
	"mail.Address":      "MailAddress",
	"slog.Level":        "Level",
	"big.Int":           "BigInt",
	"uuid.UUID":         "UUID",
	"decimal.Decimal":   "Decimal",
	"resource.Quantity": "Quantity",
	"vm.Program":        "Program",
}

// Resolve derives the environment binding for every field of a record.
//
// The variable name is the env tag verbatim when present, otherwise the
// field name uppercased with no separator insertion (dbHost binds to DBHOST).
// A pointer field is optional and parses into the pointee type.
func Resolve(rec Record) ([]Binding, error) {
	bindings := make([]Binding, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		inner := f.Type
		optional := strings.HasPrefix(inner, "*")
		if optional {
			inner = strings.TrimPrefix(inner, "*")
		}

		helper, ok := helpers[inner]
		if !ok {
			return nil, fmt.Errorf("%s.%s: unsupported field type %s", rec.Name, f.Name, f.Type)
		}

		envVar := f.EnvTag
		if envVar == "" {
			envVar = strings.ToUpper(f.Name)
		}

		bindings = append(bindings, Binding{
			Field:    f.Name,
			EnvVar:   envVar,
			Type:     f.Type,
			Optional: optional,
			helper:   helper,
		})
	}
	return bindings, nil
}
