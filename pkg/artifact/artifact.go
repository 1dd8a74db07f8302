// Package artifact defines the contracts for the pre-trained model artifacts
// the pipeline consumes. Artifacts are opaque to the rest of the system: each
// model exposes a single predict operation over a fixed feature schema, and
// the scaler exposes a single transform. Artifacts are loaded once at startup
// and never mutated afterwards, so a Bundle is safe for concurrent reads.
package artifact

import (
	"context"
	"errors"

	"github.com/goliatone/go-wellness/pkg/feature"
)

// Model is one pre-trained predictive function. Predict accepts a vector
// matching Features exactly and returns one or more target values: a single
// score for the regression and classification models, a per-activity sequence
// (or a single broadcastable scalar) for the wellness model.
type Model interface {
	Name() string
	Features() feature.Schema
	Predict(v *feature.Vector) ([]float64, error)
}

// Scaler is the fitted feature-scaling transform applied to the wellness
// vector before prediction.
type Scaler interface {
	Features() feature.Schema
	Transform(v *feature.Vector) (*feature.Vector, error)
}

// Bundle holds the four models plus the scaler. It is assembled by a Loader
// during startup and treated as immutable afterwards.
type Bundle struct {
	Stress     Model
	Depression Model
	Burnout    Model
	Wellness   Model
	Scaler     Scaler
}

// Validate reports the first missing artifact. A partial bundle must never
// serve predictions.
func (b *Bundle) Validate() error {
	if b == nil {
		return errors.New("artifact: bundle is nil")
	}
	switch {
	case b.Stress == nil:
		return errors.New("artifact: stress model is missing")
	case b.Depression == nil:
		return errors.New("artifact: depression model is missing")
	case b.Burnout == nil:
		return errors.New("artifact: burnout model is missing")
	case b.Wellness == nil:
		return errors.New("artifact: wellness model is missing")
	case b.Scaler == nil:
		return errors.New("artifact: scaler is missing")
	}
	return nil
}

// Loader reads a Bundle from a Source. A missing or corrupt artifact fails
// the whole load; callers treat that as a fatal startup error.
type Loader interface {
	Load(ctx context.Context, source Source) (*Bundle, error)
}
