package jsonvalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eykd/origami-lint/internal/jsonvalue"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want jsonvalue.Kind
	}{
		{"undefined", jsonvalue.Undefined, jsonvalue.KindUndefined},
		{"null", nil, jsonvalue.KindNull},
		{"boolean", true, jsonvalue.KindBoolean},
		{"integer", int64(3), jsonvalue.KindNumber},
		{"float", 1.5, jsonvalue.KindNumber},
		{"string", "x", jsonvalue.KindString},
		{"array", []any{}, jsonvalue.KindArray},
		{"object", map[string]any{}, jsonvalue.KindObject},
		{"foreign type", struct{}{}, jsonvalue.KindUndefined},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, jsonvalue.KindOf(tc.in))
		})
	}
}

func TestUndefinedIsNotNull(t *testing.T) {
	assert.True(t, jsonvalue.IsUndefined(jsonvalue.Undefined))
	assert.False(t, jsonvalue.IsUndefined(nil))
	assert.Equal(t, jsonvalue.KindNull, jsonvalue.KindOf(nil))
}

func TestPredicates(t *testing.T) {
	assert.True(t, jsonvalue.IsNumber(int64(1)))
	assert.False(t, jsonvalue.IsNumber("1"))
	assert.True(t, jsonvalue.IsArray([]any{}))
	assert.False(t, jsonvalue.IsArray(map[string]any{}))
	assert.True(t, jsonvalue.IsObject(map[string]any{}))
	assert.False(t, jsonvalue.IsObject(nil))
}

func TestAsInt(t *testing.T) {
	n, ok := jsonvalue.AsInt(int64(1))
	assert.True(t, ok)
	assert.Equal(t, int64(1), n)

	n, ok = jsonvalue.AsInt(2.0)
	assert.True(t, ok)
	assert.Equal(t, int64(2), n)

	_, ok = jsonvalue.AsInt(2.5)
	assert.False(t, ok)

	_, ok = jsonvalue.AsInt("1")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	v, err := jsonvalue.Parse([]byte(`{"a": [1, "two", null, true]}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{int64(1), "two", nil, true}}, v)

	_, err = jsonvalue.Parse([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", jsonvalue.KindObject.String())
	text, err := jsonvalue.KindArray.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "array", string(text))
}
