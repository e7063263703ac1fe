package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvNames(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		want  string
	}{
		// no tag: uppercase, no separator insertion
		{"lowercase", Field{Name: "port", Type: "int"}, "PORT"},
		{"camelCase keeps no underscore", Field{Name: "dbHost", Type: "string"}, "DBHOST"},
		{"exported", Field{Name: "Host", Type: "string"}, "HOST"},
		// explicit tag wins verbatim
		{"tag verbatim", Field{Name: "port", Type: "int", EnvTag: "DB_CONNECTION_PORT"}, "DB_CONNECTION_PORT"},
		{"tag not uppercased", Field{Name: "port", Type: "int", EnvTag: "db_port"}, "db_port"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bindings, err := Resolve(Record{Name: "Config", Fields: []Field{c.field}})
			require.NoError(t, err)
			assert.Equal(t, c.want, bindings[0].EnvVar)
		})
	}
}

func TestResolveOptional(t *testing.T) {
	rec := Record{Name: "Config", Fields: []Field{
		{Name: "host", Type: "string"},
		{Name: "debug", Type: "*bool"},
		{Name: "limit", Type: "*decimal.Decimal"},
	}}

	bindings, err := Resolve(rec)
	require.NoError(t, err)

	assert.False(t, bindings[0].Optional)
	assert.Equal(t, "MustString", bindings[0].Helper())

	assert.True(t, bindings[1].Optional)
	assert.Equal(t, "OptBool", bindings[1].Helper())

	assert.True(t, bindings[2].Optional)
	assert.Equal(t, "OptDecimal", bindings[2].Helper())
}

func TestResolveHelperTable(t *testing.T) {
	cases := map[string]string{
		"string":            "MustString",
		"bool":              "MustBool",
		"int":               "MustInt",
		"int64":             "MustInt64",
		"uint16":            "MustUint16",
		"float64":           "MustFloat64",
		"time.Duration":     "MustDuration",
		"time.Time":         "MustTime",
		"url.URL":           "MustURL",
		"net.IP":            "MustIP",
		"mail.Address":      "MustMailAddress",
		"slog.Level":        "MustLevel",
		"big.Int":           "MustBigInt",
		"uuid.UUID":         "MustUUID",
		"decimal.Decimal":   "MustDecimal",
		"resource.Quantity": "MustQuantity",
		"vm.Program":        "MustProgram",
	}
	for typ, helper := range cases {
		bindings, err := Resolve(Record{Name: "C", Fields: []Field{{Name: "f", Type: typ}}})
		require.NoError(t, err, typ)
		assert.Equal(t, helper, bindings[0].Helper(), typ)
	}
}

func TestResolveUnsupportedType(t *testing.T) {
	_, err := Resolve(Record{Name: "Config", Fields: []Field{
		{Name: "conn", Type: "sql.DB"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.conn")
	assert.Contains(t, err.Error(), "sql.DB")
}
