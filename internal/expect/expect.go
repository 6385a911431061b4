// Package expect describes what a validator expected to find and what it
// received instead. Each Expectation carries enough data to render a message
// without looking anything else up.
package expect

import (
	"encoding/json"

	"github.com/eykd/origami-lint/internal/jsonvalue"
)

// Expectation is one of TypeOf, MemberOf, ValueOf, Match, StartsWith, File,
// URL or Message. The set is closed.
type Expectation interface {
	// Kind is the discriminator written to JSON.
	Kind() string
	isExpectation()
}

// TypeOf expects the value to be one of the given JSON kinds.
type TypeOf struct {
	Expected []jsonvalue.Kind
	Received any
}

// MemberOf expects the value to be one of an enumerated set.
type MemberOf struct {
	Allowed  []any
	Received any
}

// ValueOf expects one exact value.
type ValueOf struct {
	Expected any
	Received any
}

// Match expects a string matching Pattern.
type Match struct {
	Pattern  string
	Received any
}

// StartsWith expects a string beginning with Prefix.
type StartsWith struct {
	Prefix   string
	Received any
}

// File expects Received to name an existing regular file.
type File struct {
	Received any
}

// URL expects Received to parse as an absolute http(s) URL.
type URL struct {
	Received any
}

// Message carries no structured data; the diagnostic's own message is the
// whole explanation.
type Message struct{}

func (TypeOf) Kind() string     { return "type-of" }
func (MemberOf) Kind() string   { return "member-of" }
func (ValueOf) Kind() string    { return "value-of" }
func (Match) Kind() string      { return "match" }
func (StartsWith) Kind() string { return "starts-with" }
func (File) Kind() string       { return "file" }
func (URL) Kind() string        { return "url" }
func (Message) Kind() string    { return "message" }

func (TypeOf) isExpectation()     {}
func (MemberOf) isExpectation()   {}
func (ValueOf) isExpectation()    {}
func (Match) isExpectation()      {}
func (StartsWith) isExpectation() {}
func (File) isExpectation()       {}
func (URL) isExpectation()        {}
func (Message) isExpectation()    {}

// Strings adapts a string enumeration for MemberOf.Allowed.
func Strings(values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// received converts a value for JSON output. Undefined values are omitted.
func received(v any) *json.RawMessage {
	if jsonvalue.IsUndefined(v) {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	msg := json.RawMessage(raw)
	return &msg
}

func (e TypeOf) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string           `json:"kind"`
		Expected []jsonvalue.Kind `json:"expected"`
		Received *json.RawMessage `json:"received,omitempty"`
	}{e.Kind(), e.Expected, received(e.Received)})
}

func (e MemberOf) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string           `json:"kind"`
		Allowed  []any            `json:"allowed"`
		Received *json.RawMessage `json:"received,omitempty"`
	}{e.Kind(), e.Allowed, received(e.Received)})
}

func (e ValueOf) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string           `json:"kind"`
		Expected any              `json:"expected"`
		Received *json.RawMessage `json:"received,omitempty"`
	}{e.Kind(), e.Expected, received(e.Received)})
}

func (e Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string           `json:"kind"`
		Pattern  string           `json:"pattern"`
		Received *json.RawMessage `json:"received,omitempty"`
	}{e.Kind(), e.Pattern, received(e.Received)})
}

func (e StartsWith) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string           `json:"kind"`
		Prefix   string           `json:"prefix"`
		Received *json.RawMessage `json:"received,omitempty"`
	}{e.Kind(), e.Prefix, received(e.Received)})
}

func (e File) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string           `json:"kind"`
		Received *json.RawMessage `json:"received,omitempty"`
	}{e.Kind(), received(e.Received)})
}

func (e URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string           `json:"kind"`
		Received *json.RawMessage `json:"received,omitempty"`
	}{e.Kind(), received(e.Received)})
}

func (e Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
	}{e.Kind()})
}
