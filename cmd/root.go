// Package cmd implements the olint CLI commands.
package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRootCmd creates the root olint command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "olint",
		Short:         "olint - validate Origami component manifests",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewValidateCmd(newDefaultValidateIO()))
	return root
}

// VersionString formats the build metadata reported by --version.
func VersionString(version, commit, buildDate string) string {
	return fmt.Sprintf("%s (%s, %s)", version, commit, buildDate)
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

// resolveProjectDir returns the component directory: project when set,
// made absolute against the working directory, otherwise the working
// directory itself.
func resolveProjectDir(project string, getwd func() (string, error)) (string, error) {
	if filepath.IsAbs(project) {
		return filepath.Clean(project), nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return filepath.Join(cwd, project), nil
}

// newLogger builds a production JSON logger writing to w, at debug level
// when verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(config.EncoderConfig), zapcore.AddSync(w), config.Level)
	return zap.New(core)
}
