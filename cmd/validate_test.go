package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Test double ────────────────────────────────────────────────────────────

// mockValidateIO serves in-memory filesystems keyed by directory. Unknown
// directories are empty.
type mockValidateIO struct {
	dirs   map[string]billy.Filesystem
	opened []string
}

func (m *mockValidateIO) Open(dir string) billy.Filesystem {
	m.opened = append(m.opened, dir)
	if fs, ok := m.dirs[dir]; ok {
		return fs
	}
	return memfs.New()
}

// ─── Test fixtures ──────────────────────────────────────────────────────────

const validOrigamiJSON = `{
  "description": "A test component",
  "origamiType": "component",
  "origamiVersion": 1,
  "origamiCategory": "components",
  "brands": ["master"],
  "support": "https://github.com/Financial-Times/o-test/issues",
  "supportStatus": "active",
  "supportContact": {"email": "origami.support@ft.com", "slack": "financialtimes/origami-support"}
}`

const validBowerJSON = `{"name": "o-test", "description": "A test component", "main": ["main.js", "main.scss"]}`

const validPackageJSON = `{"name": "@financial-times/o-test", "description": "A test component"}`

func componentFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for name, text := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(text), 0o644))
	}
	return fs
}

func validFiles() map[string]string {
	return map[string]string{
		"origami.json": validOrigamiJSON,
		"bower.json":   validBowerJSON,
		"package.json": validPackageJSON,
		"main.js":      "export default {};",
		"main.scss":    "@import 'src/scss/main';",
	}
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

func runValidate(t *testing.T, files map[string]string, args ...string) runResult {
	t.Helper()
	io := &mockValidateIO{dirs: map[string]billy.Filesystem{"/work/o-test": componentFS(t, files)}}
	return runValidateWith(t, io, args...)
}

func runValidateWith(t *testing.T, io *mockValidateIO, args ...string) runResult {
	t.Helper()
	cmd := newValidateCmdWithGetCWD(io, func() (string, error) { return "/work/o-test", nil })
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return runResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

// ─── Tests ──────────────────────────────────────────────────────────────────

func TestValidateCmd_ValidComponent(t *testing.T) {
	res := runValidate(t, validFiles())
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "no problems found")
}

func TestValidateCmd_ProblemFailsRun(t *testing.T) {
	files := validFiles()
	delete(files, "main.js")

	res := runValidate(t, files)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "1 problem(s)")
	assert.Contains(t, res.stdout, "referenced-missing-main-js")
}

func TestValidateCmd_MissingOrigamiJSON(t *testing.T) {
	files := validFiles()
	delete(files, "origami.json")

	res := runValidate(t, files, "--format", "json")
	require.Error(t, res.err)

	var diags []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &diags))
	require.Len(t, diags, 1)
	assert.Equal(t, "no-origami-json", diags[0]["code"])
	assert.Equal(t, "error", diags[0]["severity"])
}

func TestValidateCmd_Formats(t *testing.T) {
	files := validFiles()
	files["origami.json"] = strings.Replace(validOrigamiJSON, `"active"`, `"retired"`, 1)

	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{"human", func(t *testing.T, out string) {
			assert.Contains(t, out, "origami.json:8:")
			assert.Contains(t, out, "(status-invalid)")
			assert.Contains(t, out, "1 problem, 0 opinions")
		}},
		{"github", func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "::error file=origami.json,line=8,"), out)
			assert.Contains(t, out, "title=status-invalid::")
		}},
		{"json", func(t *testing.T, out string) {
			var diags []map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &diags))
			require.Len(t, diags, 1)
			assert.Equal(t, "$.supportStatus", diags[0]["path"])
			assert.EqualValues(t, 8, diags[0]["line"])
		}},
		{"model", func(t *testing.T, out string) {
			var tree map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &tree))
			assert.Equal(t, "component", tree["type"])
			assert.Equal(t, "problem", tree["status"].(map[string]any)["type"])
		}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			res := runValidate(t, files, "--format", tt.format)
			require.Error(t, res.err)
			tt.check(t, res.stdout)
		})
	}
}

func TestValidateCmd_UnknownFormat(t *testing.T) {
	res := runValidate(t, validFiles(), "--format", "xml")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "unknown format")
	assert.Empty(t, res.stdout)
}

func TestValidateCmd_OpinionsPassUnlessStrict(t *testing.T) {
	files := validFiles()
	delete(files, "package.json")

	res := runValidate(t, files)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "no-package-json")
	assert.Contains(t, res.stdout, "0 problems, 1 opinion")

	res = runValidate(t, files, "--strict")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "--strict")
}

func TestValidateCmd_ConfigFile(t *testing.T) {
	files := validFiles()
	delete(files, "package.json")
	files[".olint.yaml"] = "format: json\nstrict: true\nignore:\n  - no-package-json\n"

	res := runValidate(t, files)
	require.NoError(t, res.err)
	assert.JSONEq(t, "[]", res.stdout)
}

func TestValidateCmd_FlagsOverrideConfig(t *testing.T) {
	files := validFiles()
	delete(files, "package.json")
	files[".olint.yaml"] = "format: json\nstrict: true\n"

	res := runValidate(t, files, "--strict=false", "--format", "github")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "::warning file=package.json,title=no-package-json::"), res.stdout)
}

func TestValidateCmd_ConfigFlag(t *testing.T) {
	files := validFiles()
	delete(files, "package.json")
	io := &mockValidateIO{dirs: map[string]billy.Filesystem{
		"/work/o-test": componentFS(t, files),
		"/etc/olint":   componentFS(t, map[string]string{"ci.yaml": "ignore: [no-package-json]\n"}),
	}}

	res := runValidateWith(t, io, "--config", "/etc/olint/ci.yaml", "--strict")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "no problems found")
	assert.Contains(t, io.opened, "/etc/olint")
}

func TestValidateCmd_MissingConfigFlagIsAnError(t *testing.T) {
	res := runValidate(t, validFiles(), "--config", "missing.yaml")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "missing.yaml")
}

func TestValidateCmd_InvalidConfigFile(t *testing.T) {
	files := validFiles()
	files[".olint.yaml"] = "colour: red\n"

	res := runValidate(t, files)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "decode")
}

func TestValidateCmd_ProjectFlag(t *testing.T) {
	io := &mockValidateIO{dirs: map[string]billy.Filesystem{"/work/o-test/components/o-other": componentFS(t, validFiles())}}
	res := runValidateWith(t, io, "--project", "components/o-other")
	require.NoError(t, res.err)
	assert.Equal(t, "/work/o-test/components/o-other", io.opened[0])
}

func TestValidateCmd_GetwdFailure(t *testing.T) {
	cmd := newValidateCmdWithGetCWD(&mockValidateIO{}, func() (string, error) { return "", errors.New("no cwd") })
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "working directory")
}

func TestValidateCmd_VerboseLogsStages(t *testing.T) {
	res := runValidate(t, validFiles(), "--verbose")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, `"msg":"field validated"`)
	assert.Contains(t, res.stderr, `"field":"demos"`)
	assert.Contains(t, res.stderr, `"run":"`)

	quiet := runValidate(t, validFiles())
	assert.Empty(t, quiet.stderr)
}

func TestValidateCmd_VerboseCountsSuppressedOpinions(t *testing.T) {
	files := validFiles()
	delete(files, "package.json")
	files[".olint.yaml"] = "ignore: [no-package-json]\n"

	res := runValidate(t, files, "--verbose")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, `"msg":"validation finished"`)
	assert.Contains(t, res.stderr, `"opinions":0`)
	assert.Contains(t, res.stderr, `"suppressed":1`)
}
