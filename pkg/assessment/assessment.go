// Package assessment coordinates the full pass from raw answers to rendered
// report: artifact loading, the four-stage inference pipeline, result
// formatting, and renderer dispatch.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-wellness/internal/artifact/loader"
	"github.com/goliatone/go-wellness/pkg/artifact"
	"github.com/goliatone/go-wellness/pkg/feature"
	"github.com/goliatone/go-wellness/pkg/pipeline"
	"github.com/goliatone/go-wellness/pkg/report"
	"github.com/goliatone/go-wellness/pkg/report/renderers/htmlreport"
	"github.com/goliatone/go-wellness/pkg/report/renderers/text"
)

const defaultRendererName = "text"

// Option customises the assessor configuration.
type Option func(*Assessor)

// WithLoader injects a custom artifact loader.
func WithLoader(loader artifact.Loader) Option {
	return func(a *Assessor) {
		a.loader = loader
	}
}

// WithLoaderOptions configures the built-in loader. Ignored when WithLoader
// supplies a custom one.
func WithLoaderOptions(opts ...artifact.LoaderOption) Option {
	return func(a *Assessor) {
		a.loaderOpts = append(a.loaderOpts, opts...)
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *report.Registry) Option {
	return func(a *Assessor) {
		a.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(a *Assessor) {
		a.defaultRenderer = name
	}
}

// WithPipelineOptions forwards options to the inference pipeline.
func WithPipelineOptions(opts ...pipeline.Option) Option {
	return func(a *Assessor) {
		a.pipelineOpts = append(a.pipelineOpts, opts...)
	}
}

// WithThemeSelector passes a go-theme selector through so theme/variant
// choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(a *Assessor) {
		a.themeSelector = selector
	}
}

// Assessor coordinates the full pipeline from artifact source to rendered
// report. It applies sensible defaults (text renderer, built-in loader) while
// remaining open to dependency injection for advanced callers.
type Assessor struct {
	loader          artifact.Loader
	loaderOpts      []artifact.LoaderOption
	registry        *report.Registry
	defaultRenderer string
	pipelineOpts    []pipeline.Option
	themeSelector   theme.ThemeSelector
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Assessor applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Assessor {
	a := &Assessor{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	a.applyDefaults()
	return a
}

// Request describes the inputs required to run and render one assessment.
type Request struct {
	// Source identifies where the model artifacts live. Optional when Bundle
	// is supplied.
	Source artifact.Source

	// Bundle allows callers to bypass the loader when they already hold
	// loaded artifacts.
	Bundle *artifact.Bundle

	// Answers is the raw questionnaire submission.
	Answers feature.RawAnswers

	// Renderer names the renderer to use. If empty, the assessor falls back
	// to the configured default renderer.
	Renderer string

	// Title overrides the report heading.
	Title string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured.
	ThemeName    string
	ThemeVariant string

	// EchoAnswers includes the submitted answers in the rendered report.
	EchoAnswers bool
}

// Evaluate runs the pipeline and formats the result without rendering.
func (a *Assessor) Evaluate(ctx context.Context, req Request) (*report.Report, *pipeline.Outcome, error) {
	if ctx == nil {
		return nil, nil, errors.New("assessment: context is required")
	}
	if err := a.initialiseErr; err != nil {
		return nil, nil, err
	}

	bundle, err := a.resolveBundle(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	p, err := pipeline.New(bundle, a.pipelineOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("assessment: %w", err)
	}
	outcome, err := p.Run(ctx, pipeline.Request{Answers: req.Answers})
	if err != nil {
		return nil, nil, err
	}

	rep, err := report.Compose(outcome)
	if err != nil {
		return nil, nil, fmt.Errorf("assessment: %w", err)
	}
	return rep, outcome, nil
}

// Generate executes the loader, pipeline, formatter, renderer sequence and
// returns the rendered bytes.
func (a *Assessor) Generate(ctx context.Context, req Request) ([]byte, error) {
	rep, _, err := a.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := a.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := report.RenderOptions{Title: req.Title}
	if req.EchoAnswers {
		options.Answers = req.Answers
	}
	themeConfig, err := a.resolveTheme(req)
	if err != nil {
		return nil, err
	}
	options.Theme = themeConfig

	output, err := renderer.Render(ctx, rep, options)
	if err != nil {
		return nil, fmt.Errorf("assessment: render output: %w", err)
	}
	return output, nil
}

func (a *Assessor) resolveBundle(ctx context.Context, req Request) (*artifact.Bundle, error) {
	if req.Bundle != nil {
		return req.Bundle, nil
	}
	if req.Source == nil {
		return nil, errors.New("assessment: source or bundle is required")
	}
	bundle, err := a.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("assessment: load artifacts: %w", err)
	}
	return bundle, nil
}

func (a *Assessor) rendererFor(name string) (report.Renderer, error) {
	if a.registry == nil {
		return nil, errors.New("assessment: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = a.defaultRenderer
	}

	if target != "" {
		renderer, err := a.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("assessment: renderer %q: %w", name, err)
		}
	}

	names := a.registry.List()
	if len(names) == 0 {
		return nil, errors.New("assessment: no renderers registered")
	}
	renderer, err := a.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("assessment: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// resolveTheme turns a theme selection into renderer configuration. Variant
// tokens override the base manifest tokens, and every token doubles as a CSS
// custom property.
func (a *Assessor) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if a.themeSelector == nil || req.ThemeName == "" {
		return nil, nil
	}

	selection, err := a.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("assessment: select theme %q: %w", req.ThemeName, err)
	}
	if selection == nil {
		return nil, nil
	}

	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	if manifest := selection.Manifest; manifest != nil {
		tokens := make(map[string]string, len(manifest.Tokens))
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
		}
		cfg.Tokens = tokens

		cssVars := make(map[string]string, len(tokens))
		for key, value := range tokens {
			cssVars["--"+strings.ReplaceAll(key, ".", "-")] = value
		}
		cfg.CSSVars = cssVars
	}
	return cfg, nil
}

func (a *Assessor) applyDefaults() {
	if a.defaultsApplied {
		return
	}

	if a.loader == nil {
		a.loader = internalLoader.New(artifact.NewLoaderOptions(a.loaderOpts...))
	}
	if a.registry == nil {
		a.registry = report.NewRegistry()
		textRenderer, err := text.New()
		if err != nil {
			a.initialiseErr = fmt.Errorf("assessment: default renderer: %w", err)
		} else {
			a.registry.MustRegister(textRenderer)
		}
		htmlRenderer, err := htmlreport.New()
		if err != nil {
			a.initialiseErr = fmt.Errorf("assessment: html renderer: %w", err)
		} else {
			a.registry.MustRegister(htmlRenderer)
		}
	}
	if a.defaultRenderer == "" {
		a.defaultRenderer = defaultRendererName
	}

	a.defaultsApplied = true
}
