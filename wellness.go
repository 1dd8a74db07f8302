// Package wellness predicts mental-health survey outcomes: a stress score,
// depression and burnout risk flags, and per-activity wellness
// recommendations, rendered as text or HTML reports.
package wellness

import (
	"context"

	internalLoader "github.com/goliatone/go-wellness/internal/artifact/loader"
	"github.com/goliatone/go-wellness/pkg/artifact"
	"github.com/goliatone/go-wellness/pkg/assessment"
	"github.com/goliatone/go-wellness/pkg/feature"
	"github.com/goliatone/go-wellness/pkg/pipeline"
	"github.com/goliatone/go-wellness/pkg/report"
)

// RawAnswers is one questionnaire submission; alias exported via the root
// package for convenience.
type RawAnswers = feature.RawAnswers

// Report is a formatted assessment result.
type Report = report.Report

// Outcome holds the raw model outputs before formatting.
type Outcome = pipeline.Outcome

// Request describes one assessment run.
type Request = assessment.Request

// InferenceError reports a pipeline stage failure.
type InferenceError = pipeline.InferenceError

// New exposes the assessor constructor from the top-level module.
func New(options ...assessment.Option) *assessment.Assessor {
	return assessment.New(options...)
}

// NewLoader constructs the built-in artifact loader. The constructor lives
// here rather than in pkg/artifact to keep the contract package free of
// implementation imports.
func NewLoader(options ...artifact.LoaderOption) artifact.Loader {
	return internalLoader.New(artifact.NewLoaderOptions(options...))
}

// SourceFromDir identifies a directory of artifact documents.
func SourceFromDir(path string) artifact.Source {
	return artifact.SourceFromDir(path)
}

// SourceFromFS identifies artifact documents resolved through a loader's
// configured fs.FS.
func SourceFromFS(name string) artifact.Source {
	return artifact.SourceFromFS(name)
}

// Assess loads the artifacts, runs the four-stage pipeline on the answers,
// and renders the report with the named renderer. It is the simplest entry
// point for callers that just want output bytes.
func Assess(ctx context.Context, source artifact.Source, answers RawAnswers, rendererName string, options ...assessment.Option) ([]byte, error) {
	assessor := assessment.New(options...)
	return assessor.Generate(ctx, assessment.Request{
		Source:   source,
		Answers:  answers,
		Renderer: rendererName,
	})
}

// Evaluate loads the artifacts and returns the formatted report without
// rendering, for callers consuming results programmatically.
func Evaluate(ctx context.Context, source artifact.Source, answers RawAnswers, options ...assessment.Option) (*Report, *Outcome, error) {
	assessor := assessment.New(options...)
	return assessor.Evaluate(ctx, assessment.Request{
		Source:  source,
		Answers: answers,
	})
}
