package loader_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-wellness/internal/artifact/loader"
	"github.com/goliatone/go-wellness/pkg/artifact"
	"github.com/goliatone/go-wellness/pkg/feature"
)

var fixtureDocs = map[string]string{
	"stress_model.json": `{
		"name": "stress",
		"family": "linear",
		"features": ["age", "sleep_hours"],
		"intercept": 0.5,
		"coefficients": [0.0, 0.1]
	}`,
	"depression_model.json": `{
		"name": "depression",
		"family": "logistic",
		"features": ["age"],
		"intercept": -1,
		"coefficients": [0]
	}`,
	"burnout_model.json": `{
		"name": "burnout",
		"family": "logistic",
		"features": ["age"],
		"intercept": 0.4,
		"coefficients": [0]
	}`,
	"wellness_model.json": `{
		"name": "wellness",
		"family": "multioutput",
		"features": ["age", "stress_level"],
		"intercepts": [3.0, 6.5, 0.2, 2.5],
		"coefficientRows": [[0, 0], [0, 0], [0, 0], [0, 0]]
	}`,
	"scaler.json": `{
		"features": ["age", "stress_level"],
		"mean": [0, 0],
		"scale": [1, 1]
	}`,
}

func writeFixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range fixtureDocs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func fixtureFS() fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range fixtureDocs {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func defaultOptions(opts ...artifact.LoaderOption) artifact.LoaderOptions {
	return artifact.NewLoaderOptions(opts...)
}

func TestLoadFromDir(t *testing.T) {
	dir := writeFixtureDir(t)
	l := loader.New(defaultOptions())

	bundle, err := l.Load(context.Background(), artifact.SourceFromDir(dir))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := bundle.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	v := feature.NewVector(2)
	v.Set("age", 25)
	v.Set("sleep_hours", 7)
	got, err := bundle.Stress.Predict(v)
	if err != nil {
		t.Fatalf("stress Predict: %v", err)
	}
	if math.Abs(got[0]-1.2) > 1e-9 {
		t.Fatalf("stress score = %v, want 1.2", got[0])
	}
}

func TestLoadFromFS(t *testing.T) {
	l := loader.New(defaultOptions(artifact.WithFileSystem(fixtureFS())))

	bundle, err := l.Load(context.Background(), artifact.SourceFromFS("artifacts"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	v := feature.NewVector(1)
	v.Set("age", 40)
	got, err := bundle.Depression.Predict(v)
	if err != nil {
		t.Fatalf("depression Predict: %v", err)
	}
	want := 1 / (1 + math.Exp(1))
	if math.Abs(got[0]-want) > 1e-9 {
		t.Fatalf("depression probability = %v, want %v", got[0], want)
	}
}

func TestLoadFSSourceWithoutFileSystem(t *testing.T) {
	l := loader.New(defaultOptions())

	_, err := l.Load(context.Background(), artifact.SourceFromFS("artifacts"))
	if err == nil || !strings.Contains(err.Error(), "WithFileSystem") {
		t.Fatalf("expected filesystem requirement error, got %v", err)
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	fsys := fixtureFS()
	delete(fsys, "burnout_model.json")
	l := loader.New(defaultOptions(artifact.WithFileSystem(fsys)))

	_, err := l.Load(context.Background(), artifact.SourceFromFS("artifacts"))
	if err == nil || !strings.Contains(err.Error(), "burnout model") {
		t.Fatalf("expected burnout model error, got %v", err)
	}
}

func TestLoadCorruptDocument(t *testing.T) {
	fsys := fixtureFS()
	fsys["stress_model.json"] = &fstest.MapFile{Data: []byte("{not json")}
	l := loader.New(defaultOptions(artifact.WithFileSystem(fsys)))

	_, err := l.Load(context.Background(), artifact.SourceFromFS("artifacts"))
	if err == nil || !strings.Contains(err.Error(), "stress model") {
		t.Fatalf("expected stress parse error, got %v", err)
	}
}

func TestLoadUnknownFamily(t *testing.T) {
	fsys := fixtureFS()
	fsys["stress_model.json"] = &fstest.MapFile{Data: []byte(`{
		"name": "stress",
		"family": "forest",
		"features": ["age"],
		"coefficients": [1]
	}`)}
	l := loader.New(defaultOptions(artifact.WithFileSystem(fsys)))

	_, err := l.Load(context.Background(), artifact.SourceFromFS("artifacts"))
	if err == nil || !strings.Contains(err.Error(), "unknown model family") {
		t.Fatalf("expected family error, got %v", err)
	}
}

func TestLoadZeroScale(t *testing.T) {
	fsys := fixtureFS()
	fsys["scaler.json"] = &fstest.MapFile{Data: []byte(`{
		"features": ["age", "stress_level"],
		"mean": [0, 0],
		"scale": [1, 0]
	}`)}
	l := loader.New(defaultOptions(artifact.WithFileSystem(fsys)))

	_, err := l.Load(context.Background(), artifact.SourceFromFS("artifacts"))
	if err == nil || !strings.Contains(err.Error(), "zero scale") {
		t.Fatalf("expected zero scale error, got %v", err)
	}
}

func TestLoadCustomFilenames(t *testing.T) {
	fsys := fixtureFS()
	fsys["standardizer.json"] = fsys["scaler.json"]
	delete(fsys, "scaler.json")
	l := loader.New(defaultOptions(
		artifact.WithFileSystem(fsys),
		artifact.WithFilenames(artifact.Filenames{Scaler: "standardizer.json"}),
	))

	if _, err := l.Load(context.Background(), artifact.SourceFromFS("artifacts")); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := loader.New(defaultOptions(artifact.WithFileSystem(fixtureFS())))

	if _, err := l.Load(ctx, artifact.SourceFromFS("artifacts")); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
