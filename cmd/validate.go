package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eykd/origami-lint/internal/config"
	"github.com/eykd/origami-lint/internal/model"
	"github.com/eykd/origami-lint/internal/report"
	"github.com/eykd/origami-lint/internal/validate"
	"github.com/eykd/origami-lint/internal/workspace"
)

// ValidateIO handles filesystem access for the validate command.
type ValidateIO interface {
	// Open returns a filesystem rooted at dir.
	Open(dir string) billy.Filesystem
}

// settings are the effective options of one validate run: config file
// values overridden by any flag the user set.
type settings struct {
	format report.Format
	strict bool
	cfg    config.Config
}

// NewValidateCmd creates the validate subcommand using os.Getwd for the working directory.
func NewValidateCmd(io ValidateIO) *cobra.Command {
	return newValidateCmdWithGetCWD(io, os.Getwd)
}

// newValidateCmdWithGetCWD creates the validate subcommand with an injectable getwd function.
func newValidateCmdWithGetCWD(io ValidateIO, getwd func() (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validate an Origami component's origami.json, bower.json and package.json",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			verbose, _ := cmd.Flags().GetBool("verbose")

			dir, err := resolveProjectDir(project, getwd)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), verbose).
				With(zap.String("run", uuid.Must(uuid.NewV7()).String()))
			defer func() { _ = logger.Sync() }()

			fs := io.Open(dir)
			s, err := resolveSettings(cmd, io, fs, getwd)
			if err != nil {
				return err
			}
			ws := workspace.New(fs, workspace.WithLogger(logger))
			logger.Debug("validating component",
				zap.String("dir", ws.Root()),
				zap.String("format", string(s.format)),
				zap.Bool("strict", s.strict),
				zap.Strings("ignore", s.cfg.Ignore))

			manifests, err := ws.ReadManifests(cmd.Context())
			if err != nil {
				return fmt.Errorf("cannot read manifests in %s: %w", report.Sanitize(dir), err)
			}

			root := validate.Build(cmd.Context(), validate.Input{Manifests: manifests, Paths: ws},
				validate.WithLogger(logger)).Node()
			diags := report.Collect(root, s.cfg.Suppresses)
			if err := report.Write(cmd.OutOrStdout(), s.format, root, diags); err != nil {
				return fmt.Errorf("cannot write report: %w", err)
			}

			summary := report.Summarize(diags)
			_, opinions := model.Count(root)
			logger.Debug("validation finished",
				zap.Int("problems", summary.Problems),
				zap.Int("opinions", summary.Opinions),
				zap.Int("suppressed", opinions-summary.Opinions))

			switch {
			case model.HasProblems(root):
				return fmt.Errorf("component has %d problem(s)", summary.Problems)
			case s.strict && summary.Opinions > 0:
				return fmt.Errorf("component has %d opinion(s) and --strict is set", summary.Opinions)
			}
			return nil
		},
	}

	cmd.Flags().String("project", "", "component directory to validate (default: current directory)")
	cmd.Flags().String("format", string(report.FormatHuman), "output format: human, github, json or model")
	cmd.Flags().String("config", "", "configuration file (default: "+config.FileName+" in the component directory)")
	cmd.Flags().Bool("strict", false, "fail on opinions as well as problems")
	cmd.Flags().Bool("verbose", false, "log each validation stage to stderr")

	return cmd
}

// resolveSettings loads the configuration file and applies flag overrides.
// The default config file is optional; one named by --config is not.
func resolveSettings(cmd *cobra.Command, io ValidateIO, componentFS billy.Filesystem, getwd func() (string, error)) (settings, error) {
	var cfg config.Config
	var err error
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if !filepath.IsAbs(path) {
			cwd, werr := getwd()
			if werr != nil {
				return settings{}, fmt.Errorf("cannot determine working directory: %w", werr)
			}
			path = filepath.Join(cwd, path)
		}
		cfg, err = config.Load(io.Open(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return settings{}, err
		}
	} else {
		cfg, err = config.Load(componentFS, config.FileName)
		if err != nil && !errors.Is(err, config.ErrNotFound) {
			return settings{}, err
		}
	}

	format := cfg.Format
	if format == "" || cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return settings{}, err
	}

	strict := cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict, _ = cmd.Flags().GetBool("strict")
	}
	return settings{format: f, strict: strict, cfg: cfg}, nil
}

// osValidateIO implements ValidateIO on the host filesystem.
type osValidateIO struct{}

func newDefaultValidateIO() osValidateIO {
	return osValidateIO{}
}

// Open returns an osfs filesystem rooted at dir.
func (osValidateIO) Open(dir string) billy.Filesystem {
	return osfs.New(dir)
}
