package expect_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eykd/origami-lint/internal/expect"
	"github.com/eykd/origami-lint/internal/jsonvalue"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		in   expect.Expectation
		want string
	}{
		{
			name: "type of single kind",
			in:   expect.TypeOf{Expected: []jsonvalue.Kind{jsonvalue.KindString}, Received: int64(3)},
			want: "expected string, received number 3",
		},
		{
			name: "type of several kinds, absent",
			in: expect.TypeOf{
				Expected: []jsonvalue.Kind{jsonvalue.KindString, jsonvalue.KindArray, jsonvalue.KindObject},
				Received: jsonvalue.Undefined,
			},
			want: "expected string, array or object, received nothing",
		},
		{
			name: "type of received array",
			in:   expect.TypeOf{Expected: []jsonvalue.Kind{jsonvalue.KindString}, Received: []any{}},
			want: "expected string, received an array",
		},
		{
			name: "member of",
			in:   expect.MemberOf{Allowed: expect.Strings("a", "b"), Received: "c"},
			want: `expected one of "a", "b", received "c"`,
		},
		{
			name: "value of",
			in:   expect.ValueOf{Expected: 1, Received: int64(2)},
			want: "expected 1, received 2",
		},
		{
			name: "match",
			in:   expect.Match{Pattern: "^o-", Received: "x"},
			want: `expected a value matching /^o-/, received "x"`,
		},
		{
			name: "starts with",
			in:   expect.StartsWith{Prefix: "https://", Received: "http://x"},
			want: `expected a value starting with "https://", received "http://x"`,
		},
		{
			name: "file",
			in:   expect.File{Received: "main.js"},
			want: `expected "main.js" to be an existing file`,
		},
		{
			name: "url",
			in:   expect.URL{Received: "nope"},
			want: `expected an absolute http(s) url, received "nope"`,
		},
		{
			name: "message",
			in:   expect.Message{},
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, expect.Describe(tc.in))
		})
	}
}

func TestMarshalJSON_IncludesKindAndOmitsUndefined(t *testing.T) {
	raw, err := json.Marshal(expect.Expectation(expect.TypeOf{
		Expected: []jsonvalue.Kind{jsonvalue.KindBoolean},
		Received: jsonvalue.Undefined,
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"type-of","expected":["boolean"]}`, string(raw))

	raw, err = json.Marshal(expect.MemberOf{Allowed: expect.Strings("x"), Received: nil})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"member-of","allowed":["x"],"received":null}`, string(raw))

	raw, err = json.Marshal(expect.Message{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"message"}`, string(raw))
}
