// Package model defines the diagnostic tree produced by manifest validation:
// value nodes, the Problems and Opinions attached to them, and the
// Required/Optional unions that force consumers to handle every outcome.
package model

import "fmt"

// NodeType tags every node in the tree. The set is closed.
type NodeType uint8

const (
	// NodeComponent is the root of a successfully parsed component.
	NodeComponent NodeType = iota
	// NodeProblem is a fatal finding that replaces a field.
	NodeProblem
	// NodeProblems groups several independent Problems for one field.
	NodeProblems
	// NodeOpinion is an advisory finding attached to a value node.
	NodeOpinion
	// NodeEmpty marks an optional field that is legitimately absent.
	NodeEmpty
	// NodeString is a string value.
	NodeString
	// NodeNumber is a numeric value.
	NodeNumber
	// NodeBoolean is a boolean value.
	NodeBoolean
	// NodeObject is an inline JSON object value.
	NodeObject
	// NodeList is an array of string values.
	NodeList
	// NodePath is a string naming a file in the component.
	NodePath
	// NodeBrands is the component's brand list.
	NodeBrands
	// NodeCategory is the origamiCategory value.
	NodeCategory
	// NodeStatus is the supportStatus value.
	NodeStatus
	// NodeKeywords is the keywords field in either accepted form.
	NodeKeywords
	// NodeCI is the map of CI services.
	NodeCI
	// NodeBrowserFeatures is the browserFeatures object.
	NodeBrowserFeatures
	// NodeDemosDefaults is the demosDefaults object.
	NodeDemosDefaults
	// NodeDemos is the demos array.
	NodeDemos
	// NodeDemo is one demos entry.
	NodeDemo
)

var nodeTypeNames = [...]string{
	NodeComponent:       "component",
	NodeProblem:         "problem",
	NodeProblems:        "problems",
	NodeOpinion:         "opinion",
	NodeEmpty:           "empty",
	NodeString:          "string",
	NodeNumber:          "number",
	NodeBoolean:         "boolean",
	NodeObject:          "object",
	NodeList:            "list",
	NodePath:            "path",
	NodeBrands:          "brands",
	NodeCategory:        "category",
	NodeStatus:          "status",
	NodeKeywords:        "keywords",
	NodeCI:              "ci",
	NodeBrowserFeatures: "browser-features",
	NodeDemosDefaults:   "demos-defaults",
	NodeDemos:           "demos",
	NodeDemo:            "demo",
}

// String returns the name used for the node type in JSON output.
func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", uint8(t))
}

// MarshalText encodes the node type by name.
func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Node is any element of the diagnostic tree.
type Node interface {
	Type() NodeType
	Source() Source
	// Opinions returns the advisory findings attached to this node.
	Opinions() []*Opinion
}

// Parent is a node with children, so generic traversal needs no per-type
// dispatch.
type Parent interface {
	Node
	Children() []Node
}

// Base carries the fields shared by every value node.
type Base struct {
	Kind NodeType   `json:"type"`
	Src  Source     `json:"source"`
	Ops  []*Opinion `json:"opinions,omitempty"`
}

func (b *Base) Type() NodeType       { return b.Kind }
func (b *Base) Source() Source       { return b.Src }
func (b *Base) Opinions() []*Opinion { return b.Ops }

// Opine attaches opinions to the node.
func (b *Base) Opine(ops ...*Opinion) {
	b.Ops = append(b.Ops, ops...)
}

// Value is a successfully parsed datum.
type Value[T any] struct {
	Base
	Value T `json:"value"`
}

// NewValue returns a value node of the given kind.
func NewValue[T any](kind NodeType, src Source, v T) *Value[T] {
	return &Value[T]{Base: Base{Kind: kind, Src: src}, Value: v}
}

// Empty records that an optional field was legitimately absent.
type Empty struct {
	Base
}

// NewEmpty returns an Empty node for src.
func NewEmpty(src Source) *Empty {
	return &Empty{Base: Base{Kind: NodeEmpty, Src: src}}
}

// List is an array of strings, each element its own node.
type List struct {
	Base
	Items []*Value[string] `json:"children"`
}

// NewList returns a list node of the given kind.
func NewList(kind NodeType, src Source, items []*Value[string]) *List {
	if items == nil {
		items = []*Value[string]{}
	}
	return &List{Base: Base{Kind: kind, Src: src}, Items: items}
}

// Children implements Parent.
func (l *List) Children() []Node {
	out := make([]Node, len(l.Items))
	for i, it := range l.Items {
		out[i] = it
	}
	return out
}

// Strings returns the list's values in order.
func (l *List) Strings() []string {
	out := make([]string, len(l.Items))
	for i, it := range l.Items {
		out[i] = it.Value
	}
	return out
}
