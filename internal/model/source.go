package model

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/jp"

	"github.com/eykd/origami-lint/internal/jsonvalue"
)

// File names one of the three manifests.
type File string

const (
	// FileOrigami is the primary manifest.
	FileOrigami File = "origami.json"
	// FileBower is the required secondary manifest.
	FileBower File = "bower.json"
	// FilePackage is the optional secondary manifest.
	FilePackage File = "package.json"
)

// Path is an ordered sequence of object keys (string) and array indices (int).
type Path []any

// Append returns a new path extended by segs; p is never modified.
func (p Path) Append(segs ...any) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

// Equal reports whether p and q hold the same segments.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Expr converts the path to a JSONPath expression rooted at $.
func (p Path) Expr() jp.Expr {
	x := jp.R()
	for _, seg := range p {
		switch s := seg.(type) {
		case string:
			x = x.C(s)
		case int:
			x = x.N(s)
		default:
			panic(fmt.Sprintf("model: path segment %v has type %T", seg, seg))
		}
	}
	return x
}

// String renders the path as JSONPath, e.g. $.demos[0].hidden.
func (p Path) String() string {
	return p.Expr().String()
}

// MarshalJSON writes an empty path as [] rather than null.
func (p Path) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]any(p))
}

// Position is a location in manifest text. Line and Column are 1-based;
// Offset is a 0-based byte offset.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// Source identifies exactly where a node originates. Start and End are nil
// when the path does not exist in the file; End is exclusive.
type Source struct {
	File  File      `json:"file"`
	Path  Path      `json:"path"`
	Start *Position `json:"start,omitempty"`
	End   *Position `json:"end,omitempty"`
	// Value is the JSON value found at Path, or jsonvalue.Undefined.
	Value any `json:"-"`
}

// Found reports whether the path resolved to a value.
func (s Source) Found() bool {
	return !jsonvalue.IsUndefined(s.Value)
}

// At returns a copy of s for a different path in the same file, without
// positions. It is used for diagnostics about keys that do not exist.
func (s Source) At(path Path) Source {
	return Source{File: s.File, Path: path, Value: jsonvalue.Undefined}
}

// MarshalJSON omits value when it is undefined and writes null for JSON null.
func (s Source) MarshalJSON() ([]byte, error) {
	type plain Source
	out := struct {
		plain
		Value *json.RawMessage `json:"value,omitempty"`
	}{plain: plain(s)}
	if !jsonvalue.IsUndefined(s.Value) {
		raw, err := json.Marshal(s.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal source value: %w", err)
		}
		msg := json.RawMessage(raw)
		out.Value = &msg
	}
	return json.Marshal(out)
}
