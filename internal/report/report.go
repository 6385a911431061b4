// Package report renders a validation result for people, for GitHub Actions
// and for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/eykd/origami-lint/internal/model"
)

// Format names an output renderer.
type Format string

const (
	// FormatHuman is styled terminal output.
	FormatHuman Format = "human"
	// FormatGitHub is GitHub Actions workflow commands, one per finding.
	FormatGitHub Format = "github"
	// FormatJSON is a JSON array of Diagnostic.
	FormatJSON Format = "json"
	// FormatModel is the whole diagnostic tree as JSON.
	FormatModel Format = "model"
)

// Formats lists every supported format.
var Formats = []Format{FormatHuman, FormatGitHub, FormatJSON, FormatModel}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		names := make([]string, len(Formats))
		for i, f := range Formats {
			names[i] = string(f)
		}
		return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(names, ", "))
	}
	return f, nil
}

// Diagnostic is one finding flattened for output. Line and Column are zero
// when the finding has no position.
type Diagnostic struct {
	Severity model.Severity `json:"severity"`
	Code     model.Code     `json:"code"`
	Message  string         `json:"message"`
	File     model.File     `json:"file"`
	Path     string         `json:"path"`
	Line     int            `json:"line,omitempty"`
	Column   int            `json:"column,omitempty"`
}

// Collect flattens the findings under root in traversal order, skipping
// those hide reports true for. hide may be nil.
func Collect(root model.Node, hide func(model.Finding) bool) []Diagnostic {
	out := []Diagnostic{}
	for f := range model.Findings(root) {
		if hide != nil && hide(f) {
			continue
		}
		src := f.Source()
		d := Diagnostic{
			Severity: f.Severity(),
			Code:     f.Info().Code,
			Message:  f.Info().Text(),
			File:     src.File,
			Path:     src.Path.String(),
		}
		if src.Start != nil {
			d.Line, d.Column = src.Start.Line, src.Start.Column
		}
		out = append(out, d)
	}
	return out
}

// Summary counts diagnostics by severity.
type Summary struct {
	Problems int
	Opinions int
}

// Summarize counts diags.
func Summarize(diags []Diagnostic) Summary {
	var s Summary
	for _, d := range diags {
		switch d.Severity {
		case model.SeverityError:
			s.Problems++
		case model.SeverityWarning:
			s.Opinions++
		}
	}
	return s
}

// Write renders diags, or root itself for FormatModel, to w.
func Write(w io.Writer, format Format, root model.Node, diags []Diagnostic) error {
	switch format {
	case FormatHuman:
		return writeHuman(w, diags)
	case FormatGitHub:
		return writeGitHub(w, diags)
	case FormatJSON:
		return json.NewEncoder(w).Encode(diags)
	case FormatModel:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	}
	return fmt.Errorf("unknown format %q", format)
}
