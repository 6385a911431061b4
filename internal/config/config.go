// Package config loads the optional per-component .olint.yaml file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"

	"github.com/eykd/origami-lint/internal/model"
)

// FileName is the configuration file looked up in the component directory.
const FileName = ".olint.yaml"

// ErrNotFound is returned by Load when the configuration file does not exist.
var ErrNotFound = errors.New("config: file not found")

// Config is the decoded configuration file. Zero values mean "not set".
type Config struct {
	// Format selects the output renderer.
	Format string `yaml:"format"`
	// Strict makes opinions fail the run as well as problems.
	Strict bool `yaml:"strict"`
	// Ignore lists opinion codes to suppress.
	Ignore []string `yaml:"ignore"`
}

// Load reads and decodes name from fs. Unknown keys are an error; an empty
// file is a zero Config.
func Load(fs billy.Filesystem, name string) (Config, error) {
	f, err := fs.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Config{}, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	var c Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return c, nil
}

// Suppresses reports whether f is hidden by the ignore list. Problems are
// never suppressed.
func (c Config) Suppresses(f model.Finding) bool {
	if f.Severity() == model.SeverityError {
		return false
	}
	return slices.Contains(c.Ignore, string(f.Info().Code))
}
