// Package predictor implements the artifact contracts for the coefficient
// documents the training pipeline exports: ordinary linear regression, binary
// logistic regression, multi-target linear regression, and the fitted
// standard scaler.
package predictor

import (
	"fmt"
	"math"

	"github.com/goliatone/go-wellness/pkg/artifact"
	"github.com/goliatone/go-wellness/pkg/feature"
)

// Linear is a single-target linear regression model.
type Linear struct {
	name         string
	schema       feature.Schema
	intercept    float64
	coefficients []float64
}

// NewLinear constructs a linear model over the given schema.
func NewLinear(name string, schema feature.Schema, intercept float64, coefficients []float64) (*Linear, error) {
	if err := checkShape(name, schema, coefficients); err != nil {
		return nil, err
	}
	return &Linear{
		name:         name,
		schema:       append(feature.Schema(nil), schema...),
		intercept:    intercept,
		coefficients: append([]float64(nil), coefficients...),
	}, nil
}

func (m *Linear) Name() string             { return m.name }
func (m *Linear) Features() feature.Schema { return append(feature.Schema(nil), m.schema...) }

// Predict returns the single regression score.
func (m *Linear) Predict(v *feature.Vector) ([]float64, error) {
	if err := m.schema.Validate(v); err != nil {
		return nil, fmt.Errorf("predictor: %s: %w", m.name, err)
	}
	return []float64{dot(m.intercept, m.coefficients, v.Values())}, nil
}

// Logistic is a binary classifier returning the positive-class probability.
type Logistic struct {
	name         string
	schema       feature.Schema
	intercept    float64
	coefficients []float64
}

// NewLogistic constructs a logistic model over the given schema.
func NewLogistic(name string, schema feature.Schema, intercept float64, coefficients []float64) (*Logistic, error) {
	if err := checkShape(name, schema, coefficients); err != nil {
		return nil, err
	}
	return &Logistic{
		name:         name,
		schema:       append(feature.Schema(nil), schema...),
		intercept:    intercept,
		coefficients: append([]float64(nil), coefficients...),
	}, nil
}

func (m *Logistic) Name() string             { return m.name }
func (m *Logistic) Features() feature.Schema { return append(feature.Schema(nil), m.schema...) }

// Predict returns the probability of the positive class in [0, 1].
func (m *Logistic) Predict(v *feature.Vector) ([]float64, error) {
	if err := m.schema.Validate(v); err != nil {
		return nil, fmt.Errorf("predictor: %s: %w", m.name, err)
	}
	z := dot(m.intercept, m.coefficients, v.Values())
	return []float64{1 / (1 + math.Exp(-z))}, nil
}

// MultiOutput is a multi-target linear regression model: one coefficient row
// and intercept per target, all sharing the same input schema.
type MultiOutput struct {
	name       string
	schema     feature.Schema
	intercepts []float64
	rows       [][]float64
}

// NewMultiOutput constructs a multi-target model over the given schema.
func NewMultiOutput(name string, schema feature.Schema, intercepts []float64, rows [][]float64) (*MultiOutput, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("predictor: %s: no coefficient rows", name)
	}
	if len(intercepts) != len(rows) {
		return nil, fmt.Errorf("predictor: %s: %d intercepts for %d coefficient rows", name, len(intercepts), len(rows))
	}
	for i, row := range rows {
		if err := checkShape(name, schema, row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	copied := make([][]float64, len(rows))
	for i, row := range rows {
		copied[i] = append([]float64(nil), row...)
	}
	return &MultiOutput{
		name:       name,
		schema:     append(feature.Schema(nil), schema...),
		intercepts: append([]float64(nil), intercepts...),
		rows:       copied,
	}, nil
}

func (m *MultiOutput) Name() string             { return m.name }
func (m *MultiOutput) Features() feature.Schema { return append(feature.Schema(nil), m.schema...) }

// Predict returns one score per target, in row order.
func (m *MultiOutput) Predict(v *feature.Vector) ([]float64, error) {
	if err := m.schema.Validate(v); err != nil {
		return nil, fmt.Errorf("predictor: %s: %w", m.name, err)
	}
	values := v.Values()
	out := make([]float64, len(m.rows))
	for i, row := range m.rows {
		out[i] = dot(m.intercepts[i], row, values)
	}
	return out, nil
}

// StandardScaler applies the fitted (x - mean) / scale transform per feature.
type StandardScaler struct {
	schema feature.Schema
	mean   []float64
	scale  []float64
}

// NewStandardScaler constructs a scaler over the given schema.
func NewStandardScaler(schema feature.Schema, mean, scale []float64) (*StandardScaler, error) {
	if len(mean) != len(schema) || len(scale) != len(schema) {
		return nil, fmt.Errorf("predictor: scaler: %d mean / %d scale values for %d features", len(mean), len(scale), len(schema))
	}
	for i, s := range scale {
		if s == 0 {
			return nil, fmt.Errorf("predictor: scaler: zero scale for feature %q", schema[i])
		}
	}
	return &StandardScaler{
		schema: append(feature.Schema(nil), schema...),
		mean:   append([]float64(nil), mean...),
		scale:  append([]float64(nil), scale...),
	}, nil
}

func (s *StandardScaler) Features() feature.Schema { return append(feature.Schema(nil), s.schema...) }

// Transform returns a new vector with each feature standardized. The input is
// left untouched.
func (s *StandardScaler) Transform(v *feature.Vector) (*feature.Vector, error) {
	if err := s.schema.Validate(v); err != nil {
		return nil, fmt.Errorf("predictor: scaler: %w", err)
	}
	values := v.Values()
	out := feature.NewVector(len(s.schema))
	for i, name := range s.schema {
		out.Set(name, (values[i]-s.mean[i])/s.scale[i])
	}
	return out, nil
}

func checkShape(name string, schema feature.Schema, coefficients []float64) error {
	if len(schema) == 0 {
		return fmt.Errorf("predictor: %s: empty feature schema", name)
	}
	if len(coefficients) != len(schema) {
		return fmt.Errorf("predictor: %s: %d coefficients for %d features", name, len(coefficients), len(schema))
	}
	return nil
}

func dot(intercept float64, coefficients, values []float64) float64 {
	out := intercept
	for i, c := range coefficients {
		out += c * values[i]
	}
	return out
}

// Interface checks.
var (
	_ artifact.Model  = (*Linear)(nil)
	_ artifact.Model  = (*Logistic)(nil)
	_ artifact.Model  = (*MultiOutput)(nil)
	_ artifact.Scaler = (*StandardScaler)(nil)
)
