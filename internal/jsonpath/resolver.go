// Package jsonpath resolves key paths in a JSON document to both the decoded
// value and the exact source span it was decoded from.
//
// The decoded value tree comes from ojg; the syntax tree is built
// independently from the same text by HCL's JSON parser, whose expressions
// carry line, column and byte ranges. Resolve walks both in one loop.
package jsonpath

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	hcljson "github.com/hashicorp/hcl/v2/json"
	"github.com/zclconf/go-cty/cty"

	"github.com/eykd/origami-lint/internal/jsonvalue"
	"github.com/eykd/origami-lint/internal/model"
)

// DesyncError reports that the value tree and the syntax tree disagree. It
// is an internal invariant violation and is raised as a panic.
type DesyncError struct {
	File   model.File
	Path   model.Path
	Reason string
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("jsonpath: %s %s: syntax tree out of step with value tree: %s", e.File, e.Path, e.Reason)
}

// Resolver answers path queries against one manifest.
type Resolver struct {
	file   model.File
	value  any
	syntax hcl.Expression
}

// New returns a resolver for raw, whose decoded form is parsed.
func New(file model.File, raw []byte, parsed any) (*Resolver, error) {
	expr, diags := hcljson.ParseExpression(raw, string(file))
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", file, diags)
	}
	return &Resolver{file: file, value: parsed, syntax: expr}, nil
}

// Parse decodes raw and returns a resolver for it.
func Parse(file model.File, raw []byte) (*Resolver, error) {
	v, err := jsonvalue.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return New(file, raw, v)
}

// File returns the manifest this resolver reads.
func (r *Resolver) File() model.File {
	return r.file
}

// Root returns the decoded document.
func (r *Resolver) Root() any {
	return r.value
}

// Resolve returns the value at path and its source. Each segment must be a
// string key or an int index. A path that does not exist resolves to
// jsonvalue.Undefined with a position-less source; that is not an error.
func (r *Resolver) Resolve(path ...any) (any, model.Source) {
	p := make(model.Path, len(path))
	copy(p, path)

	val, expr, ok := r.locate(p)
	if !ok {
		return r.notFound(p)
	}
	rng := expr.Range()
	return val, model.Source{
		File:  r.file,
		Path:  p,
		Start: position(rng.Start),
		End:   position(rng.End),
		Value: val,
	}
}

// Keys returns the keys of the object at path in document order, each once.
// It returns nil when path does not name an object.
func (r *Resolver) Keys(path ...any) []string {
	p := model.Path(path)
	val, expr, ok := r.locate(p)
	if !ok || !jsonvalue.IsObject(val) {
		return nil
	}
	pairs, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		panic(&DesyncError{File: r.file, Path: p, Reason: "object has no matching syntax node"})
	}
	decoded := decodedKeys(val.(map[string]any))
	seen := make(map[string]bool, len(pairs))
	keys := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		k, ok := keyString(kv.Key)
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, decoded[k]...)
	}
	return keys
}

// decodedKeys groups the keys of obj by their syntax-tree spelling. cty
// normalizes strings to NFC, so a key written in another normal form is
// spelled differently in the two trees; Keys must return the decoded one.
func decodedKeys(obj map[string]any) map[string][]string {
	byKey := make(map[string][]string, len(obj))
	for k := range obj {
		n := normalize(k)
		byKey[n] = append(byKey[n], k)
	}
	for _, ks := range byKey {
		slices.Sort(ks)
	}
	return byKey
}

// locate advances the value cursor and the syntax cursor together along p.
func (r *Resolver) locate(p model.Path) (any, hcl.Expression, bool) {
	val, expr := r.value, r.syntax
	for i, seg := range p {
		switch key := seg.(type) {
		case int:
			arr, ok := val.([]any)
			if !ok || key < 0 || key >= len(arr) {
				return nil, nil, false
			}
			items, diags := hcl.ExprList(expr)
			if diags.HasErrors() || len(items) != len(arr) {
				panic(&DesyncError{File: r.file, Path: p[:i+1], Reason: "array has no matching syntax node"})
			}
			val, expr = arr[key], items[key]
		case string:
			obj, ok := val.(map[string]any)
			if !ok {
				return nil, nil, false
			}
			next, ok := obj[key]
			if !ok {
				return nil, nil, false
			}
			pairs, diags := hcl.ExprMap(expr)
			if diags.HasErrors() {
				panic(&DesyncError{File: r.file, Path: p[:i+1], Reason: "object has no matching syntax node"})
			}
			prop := lastProperty(pairs, key)
			if prop == nil {
				panic(&DesyncError{File: r.file, Path: p[:i+1], Reason: "key missing from syntax tree"})
			}
			val, expr = next, prop
		default:
			panic(&DesyncError{File: r.file, Path: p[:i], Reason: fmt.Sprintf("segment has type %T", seg)})
		}
	}
	return val, expr, true
}

func (r *Resolver) notFound(p model.Path) (any, model.Source) {
	return jsonvalue.Undefined, model.Source{File: r.file, Path: p, Value: jsonvalue.Undefined}
}

// lastProperty returns the value expression of the last property named key,
// matching the decoder's last-wins handling of duplicate keys.
func lastProperty(pairs []hcl.KeyValuePair, key string) hcl.Expression {
	want := normalize(key)
	for i := len(pairs) - 1; i >= 0; i-- {
		if k, ok := keyString(pairs[i].Key); ok && k == want {
			return pairs[i].Value
		}
	}
	return nil
}

func keyString(expr hcl.Expression) (string, bool) {
	k, diags := expr.Value(nil)
	if diags.HasErrors() || k.IsNull() || !k.IsKnown() || k.Type() != cty.String {
		return "", false
	}
	return k.AsString(), true
}

// normalize spells s the way cty does.
func normalize(s string) string {
	return cty.StringVal(s).AsString()
}

func position(p hcl.Pos) *model.Position {
	return &model.Position{Line: p.Line, Column: p.Column, Offset: p.Byte}
}
