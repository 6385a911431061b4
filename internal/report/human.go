package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eykd/origami-lint/internal/model"
)

type humanStyles struct {
	problem  lipgloss.Style
	opinion  lipgloss.Style
	location lipgloss.Style
	code     lipgloss.Style
	ok       lipgloss.Style
}

// newHumanStyles binds styles to w, so colour is dropped when w is not a
// terminal.
func newHumanStyles(w io.Writer) humanStyles {
	r := lipgloss.NewRenderer(w)
	return humanStyles{
		problem:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		opinion:  r.NewStyle().Foreground(lipgloss.Color("11")),
		location: r.NewStyle().Foreground(lipgloss.Color("240")),
		code:     r.NewStyle().Faint(true),
		ok:       r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func writeHuman(w io.Writer, diags []Diagnostic) error {
	st := newHumanStyles(w)
	var b strings.Builder
	for _, d := range diags {
		sev := st.opinion.Render(string(d.Severity))
		if d.Severity == model.SeverityError {
			sev = st.problem.Render(string(d.Severity))
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			st.location.Render(location(d)),
			sev,
			Sanitize(d.Message),
			st.code.Render("("+string(d.Code)+")"),
		)
	}

	s := Summarize(diags)
	if s.Problems == 0 && s.Opinions == 0 {
		b.WriteString(st.ok.Render("no problems found") + "\n")
	} else {
		fmt.Fprintf(&b, "\n%s, %s\n", plural(s.Problems, "problem"), plural(s.Opinions, "opinion"))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// location renders file:line:column when the finding has a position and
// file path otherwise.
func location(d Diagnostic) string {
	if d.Line > 0 {
		return string(d.File) + ":" + strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Column)
	}
	return string(d.File) + " " + Sanitize(d.Path)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
