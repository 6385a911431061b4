package model

import "encoding/json"

// Required holds a field that must be present and valid: either its node N
// or the Failure explaining why it is not. It is never Empty.
type Required[N Node] struct {
	value  N
	failed Failure
	ok     bool
}

// Ok wraps a successfully built node.
func Ok[N Node](n N) Required[N] {
	return Required[N]{value: n, ok: true}
}

// Fail wraps a failure. f must not be nil.
func Fail[N Node](f Failure) Required[N] {
	if f == nil {
		panic("model: Fail called with nil failure")
	}
	return Required[N]{failed: f}
}

// Get returns the node and true, or the zero N and false when the field
// failed.
func (r Required[N]) Get() (N, bool) {
	return r.value, r.ok
}

// Failure returns the failure, or nil when the field is valid.
func (r Required[N]) Failure() Failure {
	return r.failed
}

// Match calls exactly one of value or failed.
func (r Required[N]) Match(value func(N), failed func(Failure)) {
	if r.ok {
		value(r.value)
		return
	}
	failed(r.failed)
}

// Node returns whichever node the union holds.
func (r Required[N]) Node() Node {
	if r.ok {
		return r.value
	}
	if r.failed != nil {
		return r.failed
	}
	return nil
}

func (r Required[N]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Node())
}

type optionalState uint8

const (
	optionalUnset optionalState = iota
	optionalEmpty
	optionalValue
	optionalFailed
)

// Optional holds a field that may legitimately be absent: Empty, its node N,
// or a Failure.
type Optional[N Node] struct {
	value  N
	empty  *Empty
	failed Failure
	state  optionalState
}

// Some wraps a successfully built node.
func Some[N Node](n N) Optional[N] {
	return Optional[N]{value: n, state: optionalValue}
}

// None records that the field at src was absent.
func None[N Node](src Source) Optional[N] {
	return Optional[N]{empty: NewEmpty(src), state: optionalEmpty}
}

// Lift converts a Required result into an Optional one.
func Lift[N Node](r Required[N]) Optional[N] {
	if n, ok := r.Get(); ok {
		return Some(n)
	}
	return Optional[N]{failed: r.Failure(), state: optionalFailed}
}

// Refuse wraps a failure. f must not be nil.
func Refuse[N Node](f Failure) Optional[N] {
	if f == nil {
		panic("model: Refuse called with nil failure")
	}
	return Optional[N]{failed: f, state: optionalFailed}
}

// Get returns the node and true when the field is present and valid.
func (o Optional[N]) Get() (N, bool) {
	return o.value, o.state == optionalValue
}

// IsEmpty reports whether the field was absent.
func (o Optional[N]) IsEmpty() bool {
	return o.state == optionalEmpty
}

// Failure returns the failure, or nil when the field is empty or valid.
func (o Optional[N]) Failure() Failure {
	return o.failed
}

// Match calls exactly one of empty, value or failed.
func (o Optional[N]) Match(empty func(*Empty), value func(N), failed func(Failure)) {
	switch o.state {
	case optionalValue:
		value(o.value)
	case optionalFailed:
		failed(o.failed)
	default:
		empty(o.empty)
	}
}

// Node returns whichever node the union holds.
func (o Optional[N]) Node() Node {
	switch o.state {
	case optionalValue:
		return o.value
	case optionalFailed:
		return o.failed
	case optionalEmpty:
		return o.empty
	}
	return nil
}

func (o Optional[N]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Node())
}
