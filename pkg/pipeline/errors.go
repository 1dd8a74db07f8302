package pipeline

import (
	"fmt"

	"github.com/goliatone/go-wellness/pkg/feature"
)

// Diagnostic captures the type and shape of the last value a failed stage
// handled, either the feature vector it rejected or the output it produced,
// so failures can be reported with the offending intermediate.
type Diagnostic struct {
	// Kind is the Go type description of the offending value.
	Kind string

	// Len is the number of outputs the stage produced, -1 when a length
	// does not apply.
	Len int
}

// InferenceError reports a failure in a named pipeline stage.
type InferenceError struct {
	// Stage is one of "stress", "depression", "burnout", "wellness" or
	// "scaler".
	Stage string

	// Diag describes the stage output that triggered the failure, when one
	// exists.
	Diag Diagnostic

	// Err is the underlying cause.
	Err error
}

func (e *InferenceError) Error() string {
	if e.Diag.Kind != "" {
		return fmt.Sprintf("pipeline: %s stage: %v (got %s, len %d)", e.Stage, e.Err, e.Diag.Kind, e.Diag.Len)
	}
	return fmt.Sprintf("pipeline: %s stage: %v", e.Stage, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

func stageError(stage string, err error) *InferenceError {
	return &InferenceError{Stage: stage, Err: err, Diag: Diagnostic{Len: -1}}
}

// stageInputError reports a stage failure together with the shape of the
// vector the stage was fed.
func stageInputError(stage string, vec *feature.Vector, err error) *InferenceError {
	diag := Diagnostic{Len: -1}
	if vec != nil {
		diag = Diagnostic{Kind: fmt.Sprintf("%T", vec), Len: vec.Len()}
	}
	return &InferenceError{Stage: stage, Diag: diag, Err: err}
}
