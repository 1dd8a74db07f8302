// Package pipeline runs the four-stage inference pass over a set of raw
// questionnaire answers: stress, depression and burnout scored independently,
// then wellness scored from the answers plus the raw depression and burnout
// outputs.
package pipeline

import (
	"context"
	"fmt"

	"github.com/goliatone/go-wellness/pkg/artifact"
	"github.com/goliatone/go-wellness/pkg/feature"
)

// Request carries the raw answers for one assessment.
type Request struct {
	Answers feature.RawAnswers
}

// Outcome holds the raw model outputs for one assessment, before any
// formatting or thresholding.
type Outcome struct {
	// Stress is the regression score on the 0 to 5 scale.
	Stress float64

	// Depression is the positive-class probability from the depression
	// classifier.
	Depression float64

	// Burnout is the positive-class probability from the burnout
	// classifier.
	Burnout float64

	// Wellness holds one recommendation score per activity, in model
	// output order.
	Wellness []float64
}

// Pipeline wires a loaded artifact bundle to the feature builder.
type Pipeline struct {
	bundle  *artifact.Bundle
	builder *feature.Builder
}

// Option mutates a Pipeline during construction.
type Option func(*Pipeline)

// WithBuilder replaces the default feature builder.
func WithBuilder(b *feature.Builder) Option {
	return func(p *Pipeline) {
		if b != nil {
			p.builder = b
		}
	}
}

// New creates a pipeline over a validated bundle.
func New(bundle *artifact.Bundle, opts ...Option) (*Pipeline, error) {
	if bundle == nil {
		return nil, fmt.Errorf("pipeline: nil bundle")
	}
	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	p := &Pipeline{
		bundle:  bundle,
		builder: feature.NewBuilder(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p, nil
}

// Run executes all four stages in order and returns the raw outcome. Failures
// surface as *InferenceError naming the stage that rejected its input or
// produced an unusable output.
func (p *Pipeline) Run(ctx context.Context, req Request) (out *Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = stageError("pipeline", fmt.Errorf("recovered: %v", r))
		}
	}()

	if req.Answers == nil {
		return nil, stageError("pipeline", fmt.Errorf("no answers provided"))
	}

	stress, err := p.runScalar(ctx, "stress", p.bundle.Stress, p.builder.Stress(req.Answers))
	if err != nil {
		return nil, err
	}
	depression, err := p.runScalar(ctx, "depression", p.bundle.Depression, p.builder.Depression(req.Answers))
	if err != nil {
		return nil, err
	}
	burnout, err := p.runScalar(ctx, "burnout", p.bundle.Burnout, p.builder.Burnout(req.Answers))
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, stageError("wellness", err)
	}
	vec := p.builder.Wellness(req.Answers, depression, burnout)
	scaled, err := p.bundle.Scaler.Transform(vec)
	if err != nil {
		return nil, stageInputError("scaler", vec, err)
	}
	wellness, err := p.bundle.Wellness.Predict(scaled)
	if err != nil {
		return nil, stageInputError("wellness", scaled, err)
	}
	if len(wellness) == 0 {
		return nil, &InferenceError{
			Stage: "wellness",
			Diag:  Diagnostic{Kind: fmt.Sprintf("%T", wellness), Len: 0},
			Err:   fmt.Errorf("model produced no outputs"),
		}
	}

	return &Outcome{
		Stress:     stress,
		Depression: depression,
		Burnout:    burnout,
		Wellness:   wellness,
	}, nil
}

func (p *Pipeline) runScalar(ctx context.Context, stage string, model artifact.Model, vec *feature.Vector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, stageError(stage, err)
	}
	scores, err := model.Predict(vec)
	if err != nil {
		return 0, stageInputError(stage, vec, err)
	}
	if len(scores) != 1 {
		return 0, &InferenceError{
			Stage: stage,
			Diag:  Diagnostic{Kind: fmt.Sprintf("%T", scores), Len: len(scores)},
			Err:   fmt.Errorf("expected a single output"),
		}
	}
	return scores[0], nil
}
