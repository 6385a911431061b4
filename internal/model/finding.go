package model

import (
	"encoding/json"

	"github.com/eykd/origami-lint/internal/expect"
)

// Code is a stable, machine-readable diagnostic identifier.
type Code string

// Severity classifies the impact of a finding.
type Severity string

const (
	// SeverityError marks a Problem: the field could not be parsed as specified.
	SeverityError Severity = "error"
	// SeverityWarning marks an Opinion: the field parsed but breaks a convention.
	SeverityWarning Severity = "warning"
)

// Information is what a Problem or Opinion reports.
type Information struct {
	Expectation expect.Expectation `json:"expectation"`
	Code        Code               `json:"code"`
	Message     string             `json:"message,omitempty"`
}

// Text renders the message followed by the described expectation.
func (i Information) Text() string {
	desc := expect.Describe(i.Expectation)
	switch {
	case i.Message == "":
		return desc
	case desc == "":
		return i.Message
	}
	return i.Message + ": " + desc
}

// Finding is a Problem or an Opinion.
type Finding interface {
	Node
	Severity() Severity
	Info() Information
}

// Failure is a Problem or Problems: the branch of Required and Optional that
// means the field is unusable.
type Failure interface {
	Node
	failure()
}

// Problem is a fatal, field-local validation failure. It never carries
// opinions.
type Problem struct {
	Src Source
	Information
}

// NewProblem returns a Problem for src.
func NewProblem(src Source, exp expect.Expectation, code Code, message string) *Problem {
	return &Problem{Src: src, Information: Information{Expectation: exp, Code: code, Message: message}}
}

func (p *Problem) Type() NodeType       { return NodeProblem }
func (p *Problem) Source() Source       { return p.Src }
func (p *Problem) Opinions() []*Opinion { return nil }
func (p *Problem) Severity() Severity   { return SeverityError }
func (p *Problem) Info() Information    { return p.Information }
func (p *Problem) failure()             {}

func (p *Problem) MarshalJSON() ([]byte, error) {
	return marshalFinding(p)
}

// Opinion is an advisory finding about a successfully parsed value.
type Opinion struct {
	Src Source
	Information
}

// NewOpinion returns an Opinion for src.
func NewOpinion(src Source, exp expect.Expectation, code Code, message string) *Opinion {
	return &Opinion{Src: src, Information: Information{Expectation: exp, Code: code, Message: message}}
}

func (o *Opinion) Type() NodeType       { return NodeOpinion }
func (o *Opinion) Source() Source       { return o.Src }
func (o *Opinion) Opinions() []*Opinion { return nil }
func (o *Opinion) Severity() Severity   { return SeverityWarning }
func (o *Opinion) Info() Information    { return o.Information }

func (o *Opinion) MarshalJSON() ([]byte, error) {
	return marshalFinding(o)
}

func marshalFinding(f Finding) ([]byte, error) {
	info := f.Info()
	return json.Marshal(struct {
		Type        NodeType           `json:"type"`
		Source      Source             `json:"source"`
		Code        Code               `json:"code"`
		Message     string             `json:"message,omitempty"`
		Expectation expect.Expectation `json:"expectation"`
	}{f.Type(), f.Source(), info.Code, info.Message, info.Expectation})
}

// Problems groups independent failures of one field.
type Problems struct {
	Src   Source     `json:"source"`
	Items []*Problem `json:"children"`
}

func (p *Problems) Type() NodeType       { return NodeProblems }
func (p *Problems) Source() Source       { return p.Src }
func (p *Problems) Opinions() []*Opinion { return nil }
func (p *Problems) failure()             {}

// Children implements Parent.
func (p *Problems) Children() []Node {
	out := make([]Node, len(p.Items))
	for i, it := range p.Items {
		out[i] = it
	}
	return out
}

func (p *Problems) MarshalJSON() ([]byte, error) {
	type plain Problems
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*plain
	}{NodeProblems, (*plain)(p)})
}

// Flatten expands failures into their individual problems.
func Flatten(fs ...Failure) []*Problem {
	var out []*Problem
	for _, f := range fs {
		switch f := f.(type) {
		case *Problem:
			out = append(out, f)
		case *Problems:
			out = append(out, f.Items...)
		}
	}
	return out
}

// Collect folds failures into one: nil when there are none, the Problem
// itself when there is exactly one, and a Problems node for src otherwise.
func Collect(src Source, fs ...Failure) Failure {
	items := Flatten(fs...)
	switch len(items) {
	case 0:
		return nil
	case 1:
		return items[0]
	}
	return &Problems{Src: src, Items: items}
}
