// Package htmlreport renders assessment reports as themeable standalone HTML
// pages.
package htmlreport

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-wellness/pkg/report"
	rendertemplate "github.com/goliatone/go-wellness/pkg/report/template"
	gotemplate "github.com/goliatone/go-wellness/pkg/report/template/gotemplate"
)

//go:embed templates/page.tpl
var templateFS embed.FS

const (
	templateName = "templates/page"
	defaultTitle = "Mental Health Assessment"
)

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithTemplateRenderer overrides the engine used to expand the page template.
func WithTemplateRenderer(engine rendertemplate.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.templates = engine
		}
	}
}

// Renderer renders reports through the embedded HTML page template.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ report.Renderer = (*Renderer)(nil)

// New constructs an HTML renderer backed by the embedded page template.
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
			return nil, fmt.Errorf("html renderer: create template engine: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

func (r *Renderer) Name() string        { return "html" }
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render expands the page template. Theme tokens become CSS custom properties
// on :root, and echoed answers pass through a strict sanitizer before they
// reach the page.
func (r *Renderer) Render(ctx context.Context, rep *report.Report, options report.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}
	if rep == nil {
		return nil, fmt.Errorf("html renderer: report is nil")
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
		"stress_display":  rep.StressDisplay,
		"depression_risk": rep.DepressionRisk,
		"burnout_risk":    rep.BurnoutRisk,
		"recommendations": recommendations,
		"answers":         sanitizedAnswers(options),
		"theme":           buildThemeContext(options.Theme),
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

func sanitizedAnswers(options report.RenderOptions) []map[string]any {
	if len(options.Answers) == 0 {
		return nil
	}
	policy := answerSanitizer()

	keys := make([]string, 0, len(options.Answers))
	for key := range options.Answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		value := fmt.Sprintf("%v", options.Answers[key])
		entries = append(entries, map[string]any{
			"key":   strings.TrimSpace(policy.Sanitize(key)),
			"value": strings.TrimSpace(policy.Sanitize(value)),
		})
	}
	return entries
}

var (
	answerPolicyOnce sync.Once
	answerPolicy     *bluemonday.Policy
)

func answerSanitizer() *bluemonday.Policy {
	answerPolicyOnce.Do(func() {
		answerPolicy = bluemonday.StrictPolicy()
	})
	return answerPolicy
}

// themeContext is the shape the page template consumes.
type themeContext struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVars      map[string]string `json:"cssVars,omitempty"`
	CSSVarsStyle string            `json:"css_vars_style,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) map[string]any {
	ctx := themeContext{}
	if cfg != nil {
		ctx.Name = cfg.Theme
		ctx.Variant = cfg.Variant
		ctx.Tokens = copyStringMap(cfg.Tokens)
		ctx.CSSVars = copyStringMap(cfg.CSSVars)
	}
	vars := mergeTokenVars(ctx.Tokens, ctx.CSSVars)
	ctx.CSSVarsStyle = cssVarsStyle(vars)

	return map[string]any{
		"name":           ctx.Name,
		"variant":        ctx.Variant,
		"tokens":         ctx.Tokens,
		"css_vars":       ctx.CSSVars,
		"css_vars_style": ctx.CSSVarsStyle,
	}
}

// mergeTokenVars promotes theme tokens to CSS custom properties, with
// explicit CSS vars taking precedence.
func mergeTokenVars(tokens, cssVars map[string]string) map[string]string {
	if len(tokens) == 0 && len(cssVars) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens)+len(cssVars))
	for key, value := range tokens {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + strings.ReplaceAll(name, ".", "-")
		}
		out[name] = value
	}
	for key, value := range cssVars {
		out[key] = value
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
