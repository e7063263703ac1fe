// Command envargen generates environment-backed constructors for structs.
//
// It is meant to run under go generate:
//
//	//go:generate envargen -type Config
//
// The source file defaults to $GOFILE, so the directive above a struct
// declaration is usually all that is needed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/Macs1324/envar/gen"
)

var (
	typeNames = flag.String("type", "", "comma-separated list of struct type names; required")
	file      = flag.String("file", "", "source file to read; defaults to $GOFILE")
	output    = flag.String("output", "", "output file name; defaults to <file>_envar.go")
	dotenv    = flag.String("dotenv", ".env", "dotenv file loaded before the required-variable check; empty disables")
	list      = flag.Bool("list", false, "print resolved bindings instead of generating")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n\tenvargen -type T[,T...] [-file file.go] [-output out.go]\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("envargen: ")
	flag.Usage = usage
	flag.Parse()

	if *typeNames == "" {
		flag.Usage()
		os.Exit(2)
	}
	types := strings.Split(*typeNames, ",")

	src := *file
	if src == "" {
		// Set by go generate for the file containing the directive.
		src = os.Getenv("GOFILE")
	}
	if src == "" {
		log.Fatal("no source file: pass -file or run under go generate")
	}

	if *list {
		printBindings(src, types)
		return
	}

	err := gen.Generate(gen.Options{
		File:   src,
		Types:  types,
		Output: *output,
		Dotenv: *dotenv,
	})
	if err != nil {
		log.Fatal(err)
	}
}

func printBindings(src string, types []string) {
	byType, err := gen.Bindings(src, types)
	if err != nil {
		log.Fatal(err)
	}

	names := make([]string, 0, len(byType))
	for name := range byType {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Println(name)
		for _, b := range byType[name] {
			mode := "required"
			if b.Optional {
				mode = "optional"
			}
			fmt.Printf("\t%-20s %-16s %s (%s)\n", b.Field, b.Type, b.EnvVar, mode)
		}
	}
}
