package predictor_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wellness/internal/artifact/predictor"
	"github.com/goliatone/go-wellness/pkg/feature"
)

func vectorOf(t *testing.T, pairs ...any) *feature.Vector {
	t.Helper()
	v := feature.NewVector(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		v.Set(pairs[i].(string), pairs[i+1].(float64))
	}
	return v
}

func TestLinearPredict(t *testing.T) {
	schema := feature.Schema{"age", "sleep_hours"}
	model, err := predictor.NewLinear("stress", schema, 0.5, []float64{0.0, 0.1})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	got, err := model.Predict(vectorOf(t, "age", 25.0, "sleep_hours", 7.0))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := []float64{1.2}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b float64) bool {
		return math.Abs(a-b) < 1e-9
	})); diff != "" {
		t.Fatalf("prediction mismatch (-want +got):\n%s", diff)
	}
}

func TestLinearRejectsSchemaMismatch(t *testing.T) {
	schema := feature.Schema{"age", "sleep_hours"}
	model, err := predictor.NewLinear("stress", schema, 0, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	if _, err := model.Predict(vectorOf(t, "sleep_hours", 7.0, "age", 25.0)); err == nil {
		t.Fatal("expected error for out-of-order features")
	}
	if _, err := model.Predict(vectorOf(t, "age", 25.0)); err == nil {
		t.Fatal("expected error for missing feature")
	}
}

func TestNewLinearShapeErrors(t *testing.T) {
	if _, err := predictor.NewLinear("stress", feature.Schema{"age"}, 0, []float64{1, 2}); err == nil {
		t.Fatal("expected error for coefficient count mismatch")
	}
	if _, err := predictor.NewLinear("stress", feature.Schema{}, 0, nil); err == nil {
		t.Fatal("expected error for empty schema")
	}
}

func TestLogisticPredict(t *testing.T) {
	schema := feature.Schema{"age"}
	model, err := predictor.NewLogistic("depression", schema, -1, []float64{0})
	if err != nil {
		t.Fatalf("NewLogistic: %v", err)
	}

	got, err := model.Predict(vectorOf(t, "age", 40.0))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := 1 / (1 + math.Exp(1))
	if math.Abs(got[0]-want) > 1e-9 {
		t.Fatalf("probability = %v, want %v", got[0], want)
	}
	if got[0] < 0 || got[0] > 1 {
		t.Fatalf("probability %v out of [0, 1]", got[0])
	}
}

func TestMultiOutputPredict(t *testing.T) {
	schema := feature.Schema{"age", "stress_level"}
	model, err := predictor.NewMultiOutput("wellness", schema,
		[]float64{3.0, 6.5, 0.2, 2.5},
		[][]float64{
			{0, 0},
			{0, 0},
			{0, 0},
			{0, 0.1},
		})
	if err != nil {
		t.Fatalf("NewMultiOutput: %v", err)
	}

	got, err := model.Predict(vectorOf(t, "age", 30.0, "stress_level", 2.0))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := []float64{3.0, 6.5, 0.2, 2.7}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b float64) bool {
		return math.Abs(a-b) < 1e-9
	})); diff != "" {
		t.Fatalf("predictions mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMultiOutputShapeErrors(t *testing.T) {
	schema := feature.Schema{"age"}

	if _, err := predictor.NewMultiOutput("wellness", schema, []float64{1}, nil); err == nil {
		t.Fatal("expected error for missing rows")
	}
	if _, err := predictor.NewMultiOutput("wellness", schema, []float64{1, 2}, [][]float64{{1}}); err == nil {
		t.Fatal("expected error for intercept count mismatch")
	}
	_, err := predictor.NewMultiOutput("wellness", schema, []float64{1, 2}, [][]float64{{1}, {1, 2}})
	if err == nil || !strings.Contains(err.Error(), "row 1") {
		t.Fatalf("expected row shape error, got %v", err)
	}
}

func TestStandardScalerTransform(t *testing.T) {
	schema := feature.Schema{"age", "stress_level"}
	scaler, err := predictor.NewStandardScaler(schema, []float64{30, 2}, []float64{10, 0.5})
	if err != nil {
		t.Fatalf("NewStandardScaler: %v", err)
	}

	in := vectorOf(t, "age", 40.0, "stress_level", 3.0)
	out, err := scaler.Transform(in)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if diff := cmp.Diff([]float64{1.0, 2.0}, out.Values()); diff != "" {
		t.Fatalf("scaled values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"age", "stress_level"}, out.Names()); diff != "" {
		t.Fatalf("scaled names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{40.0, 3.0}, in.Values()); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestNewStandardScalerRejectsZeroScale(t *testing.T) {
	_, err := predictor.NewStandardScaler(feature.Schema{"age"}, []float64{0}, []float64{0})
	if err == nil || !strings.Contains(err.Error(), "zero scale") {
		t.Fatalf("expected zero scale error, got %v", err)
	}
}
