// Package jsonvalue provides type-narrowing predicates over decoded JSON
// values. Values are the plain Go shapes produced by ojg: nil, bool, int64,
// float64, json.Number, string, []any and map[string]any, plus the
// Undefined sentinel for a value that is not present at all.
package jsonvalue

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ohler55/ojg/oj"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks a value that is absent, as opposed to JSON null.
var Undefined any = undefined{}

// Kind classifies a JSON value.
type Kind uint8

const (
	// KindUndefined is the kind of Undefined and of any non-JSON Go value.
	KindUndefined Kind = iota
	// KindNull is JSON null.
	KindNull
	// KindBoolean is true or false.
	KindBoolean
	// KindNumber is any JSON number, integral or not.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object.
	KindObject
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBoolean:   "boolean",
	KindNumber:    "number",
	KindString:    "string",
	KindArray:     "array",
	KindObject:    "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KindOf returns the kind of v. Go values outside the JSON domain report
// KindUndefined.
func KindOf(v any) Kind {
	switch v.(type) {
	case undefined:
		return KindUndefined
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case int, int64, float64, json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindUndefined
	}
}

// IsUndefined reports whether v is absent. JSON null is not undefined.
func IsUndefined(v any) bool { return KindOf(v) == KindUndefined }

// IsNumber reports whether v is a JSON number.
func IsNumber(v any) bool { return KindOf(v) == KindNumber }

// IsArray reports whether v is a JSON array.
func IsArray(v any) bool { return KindOf(v) == KindArray }

// IsObject reports whether v is a JSON object.
func IsObject(v any) bool { return KindOf(v) == KindObject }

// AsInt returns v as an int64 when it is a number with no fractional part.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int64(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}

// Parse decodes raw JSON text into the value domain.
func Parse(raw []byte) (any, error) {
	v, err := oj.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}
