package report

import (
	"context"

	"github.com/goliatone/go-theme"

	"github.com/goliatone/go-wellness/pkg/feature"
)

// RenderOptions carries presentation inputs shared by all renderers.
type RenderOptions struct {
	// Title overrides the default report heading.
	Title string

	// Theme configures token and CSS variable injection for HTML output.
	// Text renderers ignore it.
	Theme *theme.RendererConfig

	// Answers, when set, lets renderers echo the submitted answers back
	// alongside the results.
	Answers feature.RawAnswers
}

// Renderer converts a composed report into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, rep *Report, options RenderOptions) ([]byte, error)
}
