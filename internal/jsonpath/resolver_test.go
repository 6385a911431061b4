package jsonpath_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eykd/origami-lint/internal/jsonpath"
	"github.com/eykd/origami-lint/internal/jsonvalue"
	"github.com/eykd/origami-lint/internal/model"
)

const sampleDoc = `{
  "name": "o-test",
  "origamiVersion": 1,
  "ratio": 1.5e2,
  "nested": {
    "flag": true,
    "nothing": null,
    "list": [1, "two", {"deep": [false, "x\"y"]}]
  },
  "unicode": "héllo wörld",
  "empty": {},
  "none": []
}
`

func mustParse(t *testing.T, doc string) *jsonpath.Resolver {
	t.Helper()
	r, err := jsonpath.Parse(model.FileOrigami, []byte(doc))
	require.NoError(t, err)
	return r
}

// allPaths lists every path that exists in v, including the root.
func allPaths(v any, prefix []any) [][]any {
	out := [][]any{append([]any(nil), prefix...)}
	switch v := v.(type) {
	case []any:
		for i, item := range v {
			out = append(out, allPaths(item, append(prefix, i))...)
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, allPaths(v[k], append(prefix, k))...)
		}
	}
	return out
}

// index walks v directly, as the oracle for Resolve.
func index(v any, path []any) any {
	for _, seg := range path {
		switch k := seg.(type) {
		case int:
			v = v.([]any)[k]
		case string:
			v = v.(map[string]any)[k]
		}
	}
	return v
}

func TestResolve_ExistingPathsMatchValueAndSpan(t *testing.T) {
	r := mustParse(t, sampleDoc)
	raw := []byte(sampleDoc)

	for _, path := range allPaths(r.Root(), nil) {
		got, src := r.Resolve(path...)
		want := index(r.Root(), path)
		assert.Equal(t, want, got, "value at %v", path)

		require.NotNil(t, src.Start, "start at %v", path)
		require.NotNil(t, src.End, "end at %v", path)
		assert.Equal(t, model.FileOrigami, src.File)
		assert.True(t, src.Path.Equal(model.Path(path)), "path at %v", path)

		literal := raw[src.Start.Offset:src.End.Offset]
		reparsed, err := jsonvalue.Parse(literal)
		require.NoError(t, err, "span %q at %v", literal, path)
		assert.Equal(t, want, reparsed, "span at %v", path)
	}
}

func TestResolve_LineAndColumn(t *testing.T) {
	r := mustParse(t, sampleDoc)

	_, src := r.Resolve("name")
	assert.Equal(t, model.Position{Line: 2, Column: 11, Offset: 12}, *src.Start)
	assert.Equal(t, model.Position{Line: 2, Column: 19, Offset: 20}, *src.End)

	_, src = r.Resolve("nested", "list", 2, "deep", 0)
	assert.Equal(t, 8, src.Start.Line)
}

func TestResolve_MissingPaths(t *testing.T) {
	r := mustParse(t, sampleDoc)

	tests := []struct {
		name string
		path []any
	}{
		{"missing key", []any{"nope"}},
		{"missing nested key", []any{"nested", "nope"}},
		{"int on object", []any{"nested", 0}},
		{"string on array", []any{"nested", "list", "x"}},
		{"index out of range", []any{"nested", "list", 3}},
		{"negative index", []any{"nested", "list", -1}},
		{"descend into primitive", []any{"name", "x"}},
		{"descend into null", []any{"nested", "nothing", "x"}},
		{"descend into empty array", []any{"none", 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, src := r.Resolve(tc.path...)
			assert.True(t, jsonvalue.IsUndefined(got))
			assert.Nil(t, src.Start)
			assert.Nil(t, src.End)
			assert.False(t, src.Found())
			assert.True(t, src.Path.Equal(model.Path(tc.path)))
		})
	}
}

func TestResolve_NullIsFound(t *testing.T) {
	r := mustParse(t, sampleDoc)
	got, src := r.Resolve("nested", "nothing")
	assert.Nil(t, got)
	assert.True(t, src.Found())
	require.NotNil(t, src.Start)
}

func TestResolve_AgreesWithJSONPath(t *testing.T) {
	r := mustParse(t, sampleDoc)
	path := model.Path{"nested", "list", 1}
	got, _ := r.Resolve(path...)
	assert.Equal(t, path.Expr().First(r.Root()), got)
}

func TestResolve_BadSegmentTypePanics(t *testing.T) {
	r := mustParse(t, sampleDoc)
	assert.PanicsWithError(t,
		`jsonpath: origami.json $.name: syntax tree out of step with value tree: segment has type float64`,
		func() { r.Resolve("name", 1.5) },
	)
}

func TestResolve_DoesNotAliasCallerPath(t *testing.T) {
	r := mustParse(t, sampleDoc)
	path := []any{"nested", "flag"}
	_, src := r.Resolve(path...)
	path[1] = "changed"
	assert.Equal(t, "flag", src.Path[1])
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := jsonpath.Parse(model.FileBower, []byte(`{"name": }`))
	assert.Error(t, err)
}

func TestNew_SyntaxErrorFromText(t *testing.T) {
	_, err := jsonpath.New(model.FilePackage, []byte(`{"a": 1,}`), map[string]any{"a": int64(1)})
	assert.Error(t, err)
}

func TestKeys_DocumentOrder(t *testing.T) {
	r := mustParse(t, `{"zeta": 1, "alpha": {"b": 1, "a": 2}, "mid": []}`)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Keys())
	assert.Equal(t, []string{"b", "a"}, r.Keys("alpha"))
	assert.Nil(t, r.Keys("mid"))
	assert.Nil(t, r.Keys("missing"))
}

func TestKeys_NonNFCKeyResolves(t *testing.T) {
	decomposed := "e\u0301"
	r := mustParse(t, `{"a": 0, "`+decomposed+`": 1}`)

	keys := r.Keys()
	require.Equal(t, []string{"a", decomposed}, keys)

	val, src := r.Resolve(keys[1])
	assert.Equal(t, int64(1), val)
	assert.True(t, src.Found())
	require.NotNil(t, src.Start)
	assert.Equal(t, 1, src.Start.Line)

	composed, src := r.Resolve("\u00e9")
	assert.Equal(t, jsonvalue.Undefined, composed)
	assert.False(t, src.Found())
}
