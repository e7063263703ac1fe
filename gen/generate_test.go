package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Setenv("DB_CONNECTION_PORT", "5432")
	t.Setenv("HOST", "localhost")

	path := writeSource(t, "config.go", `package demo

type Config struct {
	port  uint16 `+"`env:\"DB_CONNECTION_PORT\"`"+`
	host  string
	debug *bool
}
`)

	require.NoError(t, Generate(Options{File: path, Types: []string{"Config"}}))

	out, err := os.ReadFile(filepath.Join(filepath.Dir(path), "config_envar.go"))
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "Code generated by envargen. DO NOT EDIT.")
	assert.Contains(t, src, "package demo")
	assert.Contains(t, src, "func NewConfig() Config")
	assert.Contains(t, src, `envar.MustUint16("DB_CONNECTION_PORT")`)
	assert.Contains(t, src, `envar.MustString("HOST")`)
	assert.Contains(t, src, `envar.OptBool("DEBUG")`)

	// output must be valid Go
	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "config_envar.go", out, 0)
	assert.NoError(t, err)
}

func TestGenerateMissingRequiredVariable(t *testing.T) {
	t.Setenv("HOST", "localhost")

	path := writeSource(t, "config.go", `package demo

type Config struct {
	port uint16 `+"`env:\"DB_CONNECTION_PORT\"`"+`
	host string
}
`)

	err := Generate(Options{File: path, Types: []string{"Config"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_CONNECTION_PORT")
	assert.Contains(t, err.Error(), "not found")

	// nothing is written on failure
	_, statErr := os.Stat(filepath.Join(filepath.Dir(path), "config_envar.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateOptionalNeedsNoVariable(t *testing.T) {
	path := writeSource(t, "config.go", `package demo

type Config struct {
	debug   *bool
	timeout *time.Duration
}
`)

	require.NoError(t, Generate(Options{File: path, Types: []string{"Config"}}))
}

func TestGenerateDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.go")
	require.NoError(t, os.WriteFile(path, []byte(`package demo

type Config struct {
	token string `+"`env:\"ENVARGEN_TEST_DOTENV_TOKEN\"`"+`
}
`), 0o644))

	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("ENVARGEN_TEST_DOTENV_TOKEN=sekret\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ENVARGEN_TEST_DOTENV_TOKEN") })

	require.NoError(t, Generate(Options{File: path, Types: []string{"Config"}, Dotenv: dotenv}))

	out, err := os.ReadFile(filepath.Join(dir, "config_envar.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `envar.MustString("ENVARGEN_TEST_DOTENV_TOKEN")`)
}

func TestGenerateMissingDotenvIgnored(t *testing.T) {
	t.Setenv("NAME", "x")
	path := writeSource(t, "config.go", "package demo\n\ntype Config struct {\n\tname string\n}\n")

	require.NoError(t, Generate(Options{
		File:   path,
		Types:  []string{"Config"},
		Dotenv: filepath.Join(t.TempDir(), "no-such.env"),
	}))
}

func TestGenerateExplicitOutput(t *testing.T) {
	t.Setenv("NAME", "x")
	path := writeSource(t, "config.go", "package demo\n\ntype Config struct {\n\tname string\n}\n")
	out := filepath.Join(filepath.Dir(path), "custom.go")

	require.NoError(t, Generate(Options{File: path, Types: []string{"Config"}, Output: out}))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestGenerateMultipleTypes(t *testing.T) {
	t.Setenv("HOST", "h")
	t.Setenv("NAME", "n")

	path := writeSource(t, "config.go", `package demo

type Server struct {
	host string
}

type Client struct {
	name string
}
`)

	require.NoError(t, Generate(Options{File: path, Types: []string{"Server", "Client"}}))

	out, err := os.ReadFile(filepath.Join(filepath.Dir(path), "config_envar.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "func NewServer() Server")
	assert.Contains(t, string(out), "func NewClient() Client")
}

func TestGenerateNoTypes(t *testing.T) {
	err := Generate(Options{File: "config.go"})
	require.Error(t, err)
}

func TestBindings(t *testing.T) {
	path := writeSource(t, "config.go", `package demo

type Config struct {
	port   uint16 `+"`env:\"DB_CONNECTION_PORT\"`"+`
	dbHost string
	debug  *bool
}
`)

	byType, err := Bindings(path, []string{"Config"})
	require.NoError(t, err)

	b := byType["Config"]
	require.Len(t, b, 3)
	assert.Equal(t, "DB_CONNECTION_PORT", b[0].EnvVar)
	assert.Equal(t, "DBHOST", b[1].EnvVar)
	assert.Equal(t, "DEBUG", b[2].EnvVar)
	assert.True(t, b[2].Optional)
}
