// Package validate turns the three manifests of an Origami component into a
// diagnostic tree. Every field has its own validator; Build runs them in
// field order and assembles the Component.
package validate

import (
	"context"

	"go.uber.org/zap"

	"github.com/eykd/origami-lint/internal/workspace"
)

// PathClassifier classifies paths relative to the component root.
// *workspace.Workspace satisfies it.
type PathClassifier interface {
	Classify(ctx context.Context, path string) workspace.Kind
}

// Input is everything a build reads.
type Input struct {
	Manifests workspace.Manifests
	// Paths may be nil, in which case every asset path is unavailable.
	Paths PathClassifier
}

// Option configures a build.
type Option func(*builder)

// WithLogger sets the logger that traces each field stage at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

type noPaths struct{}

func (noPaths) Classify(context.Context, string) workspace.Kind { return workspace.Unavailable }
