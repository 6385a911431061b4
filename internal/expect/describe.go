package expect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eykd/origami-lint/internal/jsonvalue"
)

// Describe renders e as a sentence fragment such as
// `expected string, received number 3`. Message expectations render as "".
func Describe(e Expectation) string {
	switch e := e.(type) {
	case TypeOf:
		names := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			names[i] = k.String()
		}
		return fmt.Sprintf("expected %s, received %s", orList(names), describeTyped(e.Received))
	case MemberOf:
		opts := make([]string, len(e.Allowed))
		for i, a := range e.Allowed {
			opts[i] = literal(a)
		}
		return fmt.Sprintf("expected one of %s, received %s", strings.Join(opts, ", "), describeValue(e.Received))
	case ValueOf:
		return fmt.Sprintf("expected %s, received %s", literal(e.Expected), describeValue(e.Received))
	case Match:
		return fmt.Sprintf("expected a value matching /%s/, received %s", e.Pattern, describeValue(e.Received))
	case StartsWith:
		return fmt.Sprintf("expected a value starting with %q, received %s", e.Prefix, describeValue(e.Received))
	case File:
		return fmt.Sprintf("expected %s to be an existing file", describeValue(e.Received))
	case URL:
		return fmt.Sprintf("expected an absolute http(s) url, received %s", describeValue(e.Received))
	case Message:
		return ""
	default:
		panic(fmt.Sprintf("expect: unknown expectation %T", e))
	}
}

func orList(items []string) string {
	switch len(items) {
	case 0:
		return "nothing"
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

func describeValue(v any) string {
	if jsonvalue.IsUndefined(v) {
		return "nothing"
	}
	return literal(v)
}

func describeTyped(v any) string {
	k := jsonvalue.KindOf(v)
	switch k {
	case jsonvalue.KindUndefined, jsonvalue.KindNull:
		return describeValue(v)
	case jsonvalue.KindArray, jsonvalue.KindObject:
		return "an " + k.String()
	}
	return k.String() + " " + literal(v)
}

func literal(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}
