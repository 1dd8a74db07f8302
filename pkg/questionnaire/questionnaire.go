// Package questionnaire exposes the assessment questions collectors walk when
// gathering answers. The question schema ships as an embedded OpenAPI
// document, with a sections overlay supplying grouping and display order.
package questionnaire

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-wellness/pkg/feature"
)

//go:embed assets/questionnaire.yaml
var questionnaireYAML []byte

//go:embed assets/sections.yaml
var sectionsYAML []byte

const submissionSchema = "AssessmentSubmission"

// Question describes a single prompt for a raw answer key.
type Question struct {
	// Key is the raw answer key the response is stored under.
	Key string

	// Prompt is the question shown to the respondent.
	Prompt string

	// Type is the OpenAPI type, "integer" or "string".
	Type string

	// Options holds the allowed values for choice questions.
	Options []string

	// Min and Max bound numeric answers when present.
	Min *float64
	Max *float64

	// Default is the pre-selected answer.
	Default any
}

// IsChoice reports whether the question restricts answers to a fixed set.
func (q Question) IsChoice() bool {
	return len(q.Options) > 0
}

// Section groups questions under a display heading.
type Section struct {
	Title     string
	Questions []Question
}

// Questionnaire is the full ordered set of assessment questions.
type Questionnaire struct {
	Title    string
	Sections []Section
}

// Questions returns every question in display order.
func (q *Questionnaire) Questions() []Question {
	var out []Question
	for _, section := range q.Sections {
		out = append(out, section.Questions...)
	}
	return out
}

// Defaults returns a full set of raw answers using each question's default.
func (q *Questionnaire) Defaults() feature.RawAnswers {
	answers := make(feature.RawAnswers)
	for _, question := range q.Questions() {
		answers[question.Key] = question.Default
	}
	return answers
}

type sectionsDocument struct {
	Sections []struct {
		Title     string   `yaml:"title"`
		Questions []string `yaml:"questions"`
	} `yaml:"sections"`
}

// Load parses the embedded question schema and sections overlay.
func Load(ctx context.Context) (*Questionnaire, error) {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	doc, err := loader.LoadFromData(questionnaireYAML)
	if err != nil {
		return nil, fmt.Errorf("questionnaire: load document: %w", err)
	}
	if doc.Components == nil || doc.Components.Schemas == nil {
		return nil, errors.New("questionnaire: document has no schemas")
	}
	ref, ok := doc.Components.Schemas[submissionSchema]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("questionnaire: schema %q not found", submissionSchema)
	}
	properties := ref.Value.Properties

	var overlay sectionsDocument
	if err := yaml.Unmarshal(sectionsYAML, &overlay); err != nil {
		return nil, fmt.Errorf("questionnaire: parse sections: %w", err)
	}
	if len(overlay.Sections) == 0 {
		return nil, errors.New("questionnaire: sections overlay is empty")
	}

	out := &Questionnaire{Sections: make([]Section, 0, len(overlay.Sections))}
	if doc.Info != nil {
		out.Title = doc.Info.Title
	}

	seen := make(map[string]struct{}, len(properties))
	for _, section := range overlay.Sections {
		built := Section{Title: section.Title}
		for _, key := range section.Questions {
			property, ok := properties[key]
			if !ok || property.Value == nil {
				return nil, fmt.Errorf("questionnaire: section %q references unknown question %q", section.Title, key)
			}
			seen[key] = struct{}{}
			built.Questions = append(built.Questions, buildQuestion(key, property.Value))
		}
		out.Sections = append(out.Sections, built)
	}

	for key := range properties {
		if _, ok := seen[key]; !ok {
			return nil, fmt.Errorf("questionnaire: question %q missing from sections overlay", key)
		}
	}

	return out, nil
}

func buildQuestion(key string, src *openapi3.Schema) Question {
	q := Question{
		Key:     key,
		Prompt:  src.Title,
		Type:    firstSchemaType(src.Type),
		Default: src.Default,
	}
	if q.Prompt == "" {
		q.Prompt = key
	}
	for _, value := range src.Enum {
		if s, ok := value.(string); ok {
			q.Options = append(q.Options, s)
		}
	}
	if src.Min != nil {
		value := *src.Min
		q.Min = &value
	}
	if src.Max != nil {
		value := *src.Max
		q.Max = &value
	}
	return q
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
