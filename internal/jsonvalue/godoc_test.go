package jsonvalue_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestExportedConstants_GoDocComments parses the package sources and
// requires every exported constant to have a doc comment of its own that
// starts with its name.
func TestExportedConstants_GoDocComments(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed to resolve current file path")
	}
	files, err := filepath.Glob(filepath.Join(filepath.Dir(thisFile), "*.go"))
	if err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()
	var checked int
	for _, path := range files {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("failed to parse %s: %v", filepath.Base(path), err)
		}
		for name, doc := range exportedConstDocs(f) {
			checked++
			if !strings.HasPrefix(doc, name+" ") {
				t.Errorf("%s: GoDoc for %s should start with its name, got %q",
					filepath.Base(path), name, strings.TrimSpace(doc))
			}
		}
	}
	if checked == 0 {
		t.Fatal("no exported constants found")
	}
}

// exportedConstDocs maps each exported constant in f to its own doc
// comment, or "" when it has none.
func exportedConstDocs(f *ast.File) map[string]string {
	docs := make(map[string]string)
	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.CONST {
			continue
		}
		for _, spec := range genDecl.Specs {
			valSpec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			var doc string
			switch {
			case valSpec.Doc != nil:
				doc = valSpec.Doc.Text()
			case genDecl.Doc != nil && len(genDecl.Specs) == 1:
				doc = genDecl.Doc.Text()
			}
			for _, name := range valSpec.Names {
				if name.IsExported() {
					docs[name.Name] = doc
				}
			}
		}
	}
	return docs
}
