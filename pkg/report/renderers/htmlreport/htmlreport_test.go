package htmlreport_test

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-wellness/pkg/feature"
	"github.com/goliatone/go-wellness/pkg/report"
	"github.com/goliatone/go-wellness/pkg/report/renderers/htmlreport"
)

func sampleReport() *report.Report {
	return &report.Report{
		StressScore:    1.2,
		StressDisplay:  "1.2/5",
		DepressionRisk: "No",
		BurnoutRisk:    "Yes",
		Recommendations: []report.Recommendation{
			{Activity: "Meditation", Score: 3.0},
			{Activity: "Therapy", Score: 5.0},
			{Activity: "Music Therapy", Score: 1.0},
			{Activity: "Relaxation Techniques", Score: 2.5},
		},
	}
}

func TestRenderContainsResults(t *testing.T) {
	r, err := htmlreport.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Render(context.Background(), sampleReport(), report.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Mental Health Assessment",
		"1.2/5",
		`class="flag-no"`,
		`class="flag-yes"`,
		"Meditation",
		"Relaxation Techniques",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderAppliesThemeTokens(t *testing.T) {
	r, err := htmlreport.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Render(context.Background(), sampleReport(), report.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:   "calm",
			Variant: "dark",
			Tokens: map[string]string{
				"color.text": "#e8e8f0",
			},
			CSSVars: map[string]string{
				"--color-danger": "#ff6b5e",
			},
		},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		`data-theme="calm"`,
		`data-theme-variant="dark"`,
		"--color-text: #e8e8f0;",
		"--color-danger: #ff6b5e;",
		":root {",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderOmitsThemeAttributesWithoutTheme(t *testing.T) {
	r, err := htmlreport.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Render(context.Background(), sampleReport(), report.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "data-theme=") {
		t.Fatalf("unexpected theme attribute:\n%s", out)
	}
}

func TestRenderSanitizesAnswers(t *testing.T) {
	r, err := htmlreport.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Render(context.Background(), sampleReport(), report.RenderOptions{
		Answers: feature.RawAnswers{
			"gender": `<script>alert("x")</script>Female`,
		},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(out)

	if strings.Contains(got, "<script>alert") {
		t.Fatalf("script tag survived sanitization:\n%s", got)
	}
	if !strings.Contains(got, "Female") {
		t.Fatalf("answer text dropped:\n%s", got)
	}
}

func TestRenderNilReport(t *testing.T) {
	r, err := htmlreport.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := r.Render(context.Background(), nil, report.RenderOptions{}); err == nil {
		t.Fatal("expected error for nil report")
	}
}
