package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"
)

// ParseFile reads one Go source file and extracts a Record for every
// requested struct type. It returns the file's package name and the records
// in declaration order.
func ParseFile(path string, types []string) (string, []Record, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return "", nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var records []Record
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			if !wanted[ts.Name.Name] {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return "", nil, fmt.Errorf("type %s is not a struct", ts.Name.Name)
			}
			rec, err := recordFromStruct(ts.Name.Name, st)
			if err != nil {
				return "", nil, err
			}
			records = append(records, rec)
			delete(wanted, ts.Name.Name)
		}
	}

	if len(wanted) > 0 {
		missing := make([]string, 0, len(wanted))
		for name := range wanted {
			missing = append(missing, name)
		}
		return "", nil, fmt.Errorf("type %s not found in %s", strings.Join(missing, ", "), path)
	}
	return file.Name.Name, records, nil
}

// recordFromStruct flattens a struct declaration into a Record. Embedded
// fields and multi-name declarations carrying an env tag are rejected.
func recordFromStruct(name string, st *ast.StructType) (Record, error) {
	rec := Record{Name: name}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return Record{}, fmt.Errorf("%s: embedded fields are not supported", name)
		}

		typeName, err := renderType(field.Type)
		if err != nil {
			return Record{}, fmt.Errorf("%s.%s: %w", name, field.Names[0].Name, err)
		}

		tag := envTag(field.Tag)
		if tag != "" && len(field.Names) > 1 {
			return Record{}, fmt.Errorf(
				"%s: env tag %q would bind %d fields to one variable; declare them separately",
				name, tag, len(field.Names))
		}

		for _, ident := range field.Names {
			rec.Fields = append(rec.Fields, Field{
				Name:   ident.Name,
				Type:   typeName,
				EnvTag: tag,
			})
		}
	}
	return rec, nil
}

// envTag extracts the env key from a struct tag literal.
func envTag(tag *ast.BasicLit) string {
	if tag == nil {
		return ""
	}
	return reflect.StructTag(strings.Trim(tag.Value, "`")).Get("env")
}

// renderType turns a field type expression back into source form. Only the
// shapes the binding table can serve are representable; anything else
// (slices, maps, funcs, nested pointers) is reported as unsupported.
func renderType(expr ast.Expr) (string, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name, nil
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return "", fmt.Errorf("unsupported type expression")
		}
		return pkg.Name + "." + t.Sel.Name, nil
	case *ast.StarExpr:
		inner, err := renderType(t.X)
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(inner, "*") {
			return "", fmt.Errorf("unsupported type **%s", strings.TrimPrefix(inner, "*"))
		}
		return "*" + inner, nil
	default:
		return "", fmt.Errorf("unsupported type expression %T", expr)
	}
}
