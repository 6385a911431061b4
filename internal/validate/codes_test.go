package validate_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

var kebabCode = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// code is one constant declared in codes.go.
type code struct {
	value string
	doc   string
}

func parseCodes(t *testing.T) map[string]code {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed to resolve current file path")
	}
	codesFile := filepath.Join(filepath.Dir(thisFile), "codes.go")

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, codesFile, nil, parser.ParseComments)
	if err != nil {
		t.Fatalf("failed to parse codes.go: %v", err)
	}
	codes := extractCodes(t, f)
	if len(codes) == 0 {
		t.Fatal("no codes found in codes.go")
	}
	return codes
}

// TestCodes_KebabCaseAndUnique catches a code added with a typo or a
// copy-pasted value before it reaches a consumer's ignore list.
func TestCodes_KebabCaseAndUnique(t *testing.T) {
	seen := make(map[string]string)
	for name, c := range parseCodes(t) {
		if !kebabCode.MatchString(c.value) {
			t.Errorf("%s = %q is not kebab-case", name, c.value)
		}
		if other, dup := seen[c.value]; dup {
			t.Errorf("%s and %s share the code %q", name, other, c.value)
		}
		seen[c.value] = name
	}
}

// TestCodes_GoDocComments requires every code to carry its own doc comment
// naming it, so godoc explains each code a user may want to ignore.
func TestCodes_GoDocComments(t *testing.T) {
	for name, c := range parseCodes(t) {
		if !strings.HasPrefix(c.doc, name+" indicates ") {
			t.Errorf("GoDoc for %s should start with %q, got %q", name, name+" indicates ", strings.TrimSpace(c.doc))
		}
	}
}

// extractCodes walks the const declarations of f and returns each constant
// with its string value and its own doc comment.
func extractCodes(t *testing.T, f *ast.File) map[string]code {
	t.Helper()
	codes := make(map[string]code)
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
			if valSpec.Doc != nil {
				doc = valSpec.Doc.Text()
			}
			for i, name := range valSpec.Names {
				lit, ok := valSpec.Values[i].(*ast.BasicLit)
				if !ok || lit.Kind != token.STRING {
					t.Errorf("%s is not a string literal", name.Name)
					continue
				}
				value, err := strconv.Unquote(lit.Value)
				if err != nil {
					t.Errorf("%s: %v", name.Name, err)
					continue
				}
				codes[name.Name] = code{value: value, doc: doc}
			}
		}
	}
	return codes
}
