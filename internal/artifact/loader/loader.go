// Package loader reads model and scaler artifact documents from a directory
// or an fs.FS and assembles them into an artifact.Bundle.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-wellness/internal/artifact/predictor"
	"github.com/goliatone/go-wellness/pkg/artifact"
	"github.com/goliatone/go-wellness/pkg/feature"
)

// Model families accepted in artifact documents.
const (
	familyLinear      = "linear"
	familyLogistic    = "logistic"
	familyMultiOutput = "multioutput"
)

// Loader resolves artifact sources into bundles.
type Loader struct {
	opts artifact.LoaderOptions
}

var _ artifact.Loader = (*Loader)(nil)

// New creates a loader with the provided options already resolved.
func New(opts artifact.LoaderOptions) *Loader {
	return &Loader{opts: opts}
}

// Load reads every artifact named by the configured filenames from the source
// and returns the assembled bundle.
func (l *Loader) Load(ctx context.Context, src artifact.Source) (*artifact.Bundle, error) {
	if src == nil {
		return nil, fmt.Errorf("loader: nil source")
	}

	read, err := l.readerFor(src)
	if err != nil {
		return nil, err
	}

	names := l.opts.Filenames
	bundle := &artifact.Bundle{}

	stages := []struct {
		file  string
		stage string
		dst   *artifact.Model
	}{
		{names.Stress, "stress", &bundle.Stress},
		{names.Depression, "depression", &bundle.Depression},
		{names.Burnout, "burnout", &bundle.Burnout},
		{names.Wellness, "wellness", &bundle.Wellness},
	}

	for _, s := range stages {
		data, err := read(ctx, s.file)
		if err != nil {
			return nil, fmt.Errorf("loader: %s model: %w", s.stage, err)
		}
		model, err := decodeModel(data)
		if err != nil {
			return nil, fmt.Errorf("loader: %s model %q: %w", s.stage, s.file, err)
		}
		*s.dst = model
	}

	data, err := read(ctx, names.Scaler)
	if err != nil {
		return nil, fmt.Errorf("loader: scaler: %w", err)
	}
	scaler, err := decodeScaler(data)
	if err != nil {
		return nil, fmt.Errorf("loader: scaler %q: %w", names.Scaler, err)
	}
	bundle.Scaler = scaler

	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return bundle, nil
}

type readFunc func(ctx context.Context, name string) ([]byte, error)

func (l *Loader) readerFor(src artifact.Source) (readFunc, error) {
	switch src.Kind() {
	case artifact.SourceKindDir:
		dir := src.Location()
		return func(ctx context.Context, name string) ([]byte, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			return os.ReadFile(filepath.Join(dir, name))
		}, nil
	case artifact.SourceKindFS:
		fsys := l.opts.FileSystem
		if fsys == nil {
			return nil, fmt.Errorf("loader: filesystem source requires a file system, use WithFileSystem")
		}
		return func(ctx context.Context, name string) ([]byte, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			return fs.ReadFile(fsys, name)
		}, nil
	default:
		return nil, fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
}

// modelDocument is the on-disk shape shared by all model families. Single
// target families use intercept/coefficients, multioutput uses
// intercepts/coefficientRows.
type modelDocument struct {
	Name            string      `json:"name"`
	Family          string      `json:"family"`
	Features        []string    `json:"features"`
	Intercept       float64     `json:"intercept"`
	Coefficients    []float64   `json:"coefficients"`
	Intercepts      []float64   `json:"intercepts"`
	CoefficientRows [][]float64 `json:"coefficientRows"`
}

type scalerDocument struct {
	Features []string  `json:"features"`
	Mean     []float64 `json:"mean"`
	Scale    []float64 `json:"scale"`
}

func decodeModel(data []byte) (artifact.Model, error) {
	var doc modelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("document missing name")
	}
	schema := feature.Schema(doc.Features)

	switch doc.Family {
	case familyLinear:
		return predictor.NewLinear(doc.Name, schema, doc.Intercept, doc.Coefficients)
	case familyLogistic:
		return predictor.NewLogistic(doc.Name, schema, doc.Intercept, doc.Coefficients)
	case familyMultiOutput:
		return predictor.NewMultiOutput(doc.Name, schema, doc.Intercepts, doc.CoefficientRows)
	default:
		return nil, fmt.Errorf("unknown model family %q", doc.Family)
	}
}

func decodeScaler(data []byte) (artifact.Scaler, error) {
	var doc scalerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return predictor.NewStandardScaler(feature.Schema(doc.Features), doc.Mean, doc.Scale)
}
