package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Options controls one generator run.
type Options struct {
	// File is the Go source file declaring the target structs.
	File string
	// Types lists the struct type names to generate constructors for.
	Types []string
	// Output is the destination path. Empty means <file>_envar.go next to
	// the source file.
	Output string
	// Dotenv is a .env file loaded into the generator's environment before
	// the required-variable check. A missing file is ignored; empty
	// disables loading entirely.
	Dotenv string
}

// Generate parses the source file, resolves bindings for every requested
// type, verifies that each required field's variable is set in the current
// environment, and writes the generated constructors.
//
// The environment check runs at generation time on purpose: a build whose
// environment is missing a required variable fails before it produces a
// binary that would only panic later. The generated code re-checks at run
// time regardless.
func Generate(opts Options) error {
	if opts.File == "" {
		return fmt.Errorf("no source file given")
	}
	if len(opts.Types) == 0 {
		return fmt.Errorf("no types given")
	}

	if opts.Dotenv != "" {
		// Existing environment wins over .env values.
		_ = godotenv.Load(opts.Dotenv)
	}

	pkg, records, err := ParseFile(opts.File, opts.Types)
	if err != nil {
		return err
	}

	bindings := make([][]Binding, len(records))
	for i, rec := range records {
		b, err := Resolve(rec)
		if err != nil {
			return err
		}
		if err := checkRequired(rec.Name, b); err != nil {
			return err
		}
		bindings[i] = b
	}

	src, err := Emit(pkg, records, bindings)
	if err != nil {
		return err
	}

	out := opts.Output
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(opts.File), ".go")
		out = filepath.Join(filepath.Dir(opts.File), base+"_envar.go")
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

// checkRequired fails when a required field's variable is absent from the
// generating process's environment.
func checkRequired(record string, bindings []Binding) error {
	for _, b := range bindings {
		if b.Optional {
			continue
		}
		if _, ok := os.LookupEnv(b.EnvVar); !ok {
			return fmt.Errorf("environment variable %s not found (required by %s.%s)",
				b.EnvVar, record, b.Field)
		}
	}
	return nil
}

// Bindings resolves every requested type without generating code. The CLI
// uses it to print the binding table.
func Bindings(file string, types []string) (map[string][]Binding, error) {
	_, records, err := ParseFile(file, types)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]Binding, len(records))
	for _, rec := range records {
		b, err := Resolve(rec)
		if err != nil {
			return nil, err
		}
		out[rec.Name] = b
	}
	return out, nil
}
