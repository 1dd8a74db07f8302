// Package text renders assessment reports as plain text for terminal output.
package text

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-wellness/pkg/report"
	rendertemplate "github.com/goliatone/go-wellness/pkg/report/template"
	gotemplate "github.com/goliatone/go-wellness/pkg/report/template/gotemplate"
)

//go:embed templates/report.tpl
var templateFS embed.FS

const (
	templateName = "templates/report"
	defaultTitle = "Mental Health Assessment"
)

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithTemplateRenderer overrides the engine used to expand the report
// template.
func WithTemplateRenderer(engine rendertemplate.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.templates = engine
		}
	}
}

// Renderer renders reports through the embedded plain-text template.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ report.Renderer = (*Renderer)(nil)

// New constructs a text renderer backed by the embedded template.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(templateFS))
		if err != nil {
			return nil, fmt.Errorf("text renderer: create template engine: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

func (r *Renderer) Name() string        { return "text" }
func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render expands the report template. Submitted answers are echoed in sorted
// key order when the options carry them.
func (r *Renderer) Render(ctx context.Context, rep *report.Report, options report.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("text renderer: %w", err)
	}
	if rep == nil {
		return nil, fmt.Errorf("text renderer: report is nil")
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = defaultTitle
	}

	recommendations := make([]map[string]any, 0, len(rep.Recommendations))
	for _, rec := range rep.Recommendations {
		recommendations = append(recommendations, map[string]any{
			"activity": rec.Activity,
			"score":    rec.Score,
		})
	}

	data := map[string]any{
		"title":           title,
		"rule":            strings.Repeat("=", len(title)),
		"stress_display":  rep.StressDisplay,
		"depression_risk": rep.DepressionRisk,
		"burnout_risk":    rep.BurnoutRisk,
		"recommendations": recommendations,
		"answers":         answerEntries(options),
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("text renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

func answerEntries(options report.RenderOptions) []map[string]any {
	if len(options.Answers) == 0 {
		return nil
	}
	keys := make([]string, 0, len(options.Answers))
	for key := range options.Answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, map[string]any{
			"key":   key,
			"value": fmt.Sprintf("%v", options.Answers[key]),
		})
	}
	return entries
}
