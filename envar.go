package envar

import (
	"fmt"
	"os"
)

// must reads a required environment variable and parses it.
// Missing variable or parse failure halts the program.
func must[T any](name string, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(name)
	if !ok {
		panic("envar: environment variable " + name + " not found")
	}
	v, err := parse(raw)
	if err != nil {
		panic(fmt.Sprintf("envar: failed to parse environment variable %s: %v", name, err))
	}
	return v
}

// opt reads an optional environment variable. An unset variable yields nil;
// a set but unparsable value still halts the program.
func opt[T any](name string, parse func(string) (T, error)) *T {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		panic(fmt.Sprintf("envar: failed to parse environment variable %s: %v", name, err))
	}
	return &v
}
