// Package workspace gives validation its view of a component directory: the
// raw manifest texts and a classifier for asset paths. All access goes
// through a go-billy filesystem so tests can run against memfs.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eykd/origami-lint/internal/model"
)

// Kind classifies what a path names on disk.
type Kind uint8

const (
	// Unavailable means the path could not be inspected (missing, outside the
	// component, or the stat failed).
	Unavailable Kind = iota
	// File is a regular file.
	File
	// Directory is a directory.
	Directory
	// Other is anything else: sockets, devices, and so on.
	Other
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	case Other:
		return "other"
	default:
		return "unavailable"
	}
}

// Text is the raw content of one manifest.
type Text struct {
	File   model.File
	Raw    []byte
	Exists bool
}

// Manifests holds the three manifest texts of a component.
type Manifests struct {
	Origami Text
	Bower   Text
	Package Text
}

// Workspace is a component directory.
type Workspace struct {
	fs     billy.Filesystem
	logger *zap.Logger
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger used for read and stat tracing.
func WithLogger(l *zap.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.logger = l
		}
	}
}

// New returns a workspace over fs.
func New(fs billy.Filesystem, opts ...Option) *Workspace {
	w := &Workspace{fs: fs, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Root returns the directory the workspace is rooted at.
func (w *Workspace) Root() string {
	return w.fs.Root()
}

// ReadManifests reads origami.json, bower.json and package.json concurrently.
// A missing file is reported through Text.Exists, not as an error.
func (w *Workspace) ReadManifests(ctx context.Context) (Manifests, error) {
	var m Manifests
	g, ctx := errgroup.WithContext(ctx)
	for _, slot := range []struct {
		file model.File
		dst  *Text
	}{
		{model.FileOrigami, &m.Origami},
		{model.FileBower, &m.Bower},
		{model.FilePackage, &m.Package},
	} {
		g.Go(func() error {
			t, err := w.read(ctx, slot.file)
			if err != nil {
				return err
			}
			*slot.dst = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Manifests{}, err
	}
	return m, nil
}

func (w *Workspace) read(ctx context.Context, file model.File) (Text, error) {
	if err := ctx.Err(); err != nil {
		return Text{}, err
	}
	raw, err := util.ReadFile(w.fs, string(file))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			w.logger.Debug("manifest absent", zap.String("file", string(file)))
			return Text{File: file}, nil
		}
		return Text{}, fmt.Errorf("reading %s: %w", file, err)
	}
	w.logger.Debug("manifest read", zap.String("file", string(file)), zap.Int("bytes", len(raw)))
	return Text{File: file, Raw: raw, Exists: true}, nil
}

// Classify reports what path names, relative to the workspace root. Any
// failure, including cancellation, collapses to Unavailable.
func (w *Workspace) Classify(ctx context.Context, path string) Kind {
	if ctx.Err() != nil {
		return Unavailable
	}
	info, err := w.fs.Stat(path)
	if err != nil {
		w.logger.Debug("stat failed", zap.String("path", path), zap.Error(err))
		return Unavailable
	}
	var kind Kind
	switch {
	case info.Mode().IsRegular():
		kind = File
	case info.IsDir():
		kind = Directory
	default:
		kind = Other
	}
	w.logger.Debug("path classified", zap.String("path", path), zap.Stringer("kind", kind))
	return kind
}
