// Package testsupport holds shared fixture helpers for the package tests.
package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// DeterministicArtifacts are hand-built model documents with known outputs:
// stress scores to intercept + 0.1 * sleep_hours, depression sits just below
// the risk threshold, burnout just above it, and the wellness targets exercise
// the clamp at both ends of the scale. The scaler is the identity transform.
var DeterministicArtifacts = map[string]string{
	"stress_model.json": `{
		"name": "stress",
		"family": "linear",
		"features": ["age", "sleep_hours", "work_hours", "exercise_freq", "screen_time", "social_activity", "diet_quality", "gender_Male", "gender_Other"],
		"intercept": 0.5,
		"coefficients": [0, 0.1, 0, 0, 0, 0, 0, 0, 0]
	}`,
	"depression_model.json": `{
		"name": "depression",
		"family": "logistic",
		"features": ["age", "sleep_quality", "stress_level", "social_support", "physical_activity", "gender_Male", "gender_Other", "family_history_Yes", "substance_use_Yes"],
		"intercept": -1,
		"coefficients": [0, 0, 0, 0, 0, 0, 0, 0, 0]
	}`,
	"burnout_model.json": `{
		"name": "burnout",
		"family": "logistic",
		"features": ["age", "work_hours", "overtime", "work_satisfaction", "stress_level", "sleep_hours", "mood_swings", "gender_Male", "gender_Other"],
		"intercept": 0.4,
		"coefficients": [0, 0, 0, 0, 0, 0, 0, 0, 0]
	}`,
	"wellness_model.json": `{
		"name": "wellness",
		"family": "multioutput",
		"features": ["age", "stress_level", "gender_Male", "gender_Other", "burnout_Yes", "depression_risk_Yes"],
		"intercepts": [3.0, 6.5, 0.2, 2.5],
		"coefficientRows": [
			[0, 0, 0, 0, 0, 0],
			[0, 0, 0, 0, 0, 0],
			[0, 0, 0, 0, 0, 0],
			[0, 0, 0, 0, 0, 0]
		]
	}`,
	"scaler.json": `{
		"features": ["age", "stress_level", "gender_Male", "gender_Other", "burnout_Yes", "depression_risk_Yes"],
		"mean": [0, 0, 0, 0, 0, 0],
		"scale": [1, 1, 1, 1, 1, 1]
	}`,
}

// WriteArtifactDir writes the deterministic artifact documents into a fresh
// temp directory and returns its path.
func WriteArtifactDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range DeterministicArtifacts {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write artifact %s: %v", name, err)
		}
	}
	return dir
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// WriteGolden writes arbitrary data as indented JSON to a golden file when
// UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
