package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/eykd/origami-lint/internal/model"
)

var (
	githubData     = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	githubProperty = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
)

// writeGitHub emits one workflow command per diagnostic, e.g.
// ::error file=origami.json,line=2,col=18,title=origami-type-invalid::message
func writeGitHub(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		cmd := "warning"
		if d.Severity == model.SeverityError {
			cmd = "error"
		}
		props := []string{"file=" + githubProperty.Replace(string(d.File))}
		if d.Line > 0 {
			props = append(props, fmt.Sprintf("line=%d", d.Line), fmt.Sprintf("col=%d", d.Column))
		}
		props = append(props, "title="+githubProperty.Replace(string(d.Code)))

		msg := d.Message
		if d.Line == 0 {
			msg = d.Path + ": " + msg
		}
		if _, err := fmt.Fprintf(w, "::%s %s::%s\n", cmd, strings.Join(props, ","), githubData.Replace(msg)); err != nil {
			return err
		}
	}
	return nil
}
