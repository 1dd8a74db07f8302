// Package tui collects questionnaire answers interactively on a terminal.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-wellness/pkg/feature"
	"github.com/goliatone/go-wellness/pkg/questionnaire"
)

// Option customises the collector configuration.
type Option func(*Collector)

// WithDriver replaces the default survey-backed prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// Collector walks a questionnaire section by section and gathers one raw
// answer per question.
type Collector struct {
	driver PromptDriver
}

// New constructs a Collector. Without options it prompts on the process
// terminal.
func New(opts ...Option) *Collector {
	c := &Collector{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.driver == nil {
		c.driver = newSurveyDriver()
	}
	return c
}

// Collect prompts for every question in display order. Numeric answers are
// validated against the question bounds before being accepted; choice answers
// always come from the question's option list.
func (c *Collector) Collect(ctx context.Context, q *questionnaire.Questionnaire) (feature.RawAnswers, error) {
	if q == nil {
		return nil, fmt.Errorf("tui: questionnaire is nil")
	}

	answers := make(feature.RawAnswers)
	for _, section := range q.Sections {
		if err := c.driver.Info(ctx, "\n"+section.Title); err != nil {
			return nil, err
		}
		for _, question := range section.Questions {
			value, err := c.ask(ctx, question)
			if err != nil {
				return nil, err
			}
			answers[question.Key] = value
		}
	}
	return answers, nil
}

func (c *Collector) ask(ctx context.Context, question questionnaire.Question) (any, error) {
	if question.IsChoice() {
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message:      question.Prompt,
			Options:      question.Options,
			DefaultIndex: defaultIndex(question),
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(question.Options) {
			return nil, fmt.Errorf("tui: %s: selection out of range", question.Key)
		}
		return question.Options[idx], nil
	}

	raw, err := c.driver.Input(ctx, InputConfig{
		Message:   question.Prompt,
		Default:   defaultText(question),
		Help:      boundsHelp(question),
		Validator: numericValidator(question),
	})
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("tui: %s: %w", question.Key, err)
	}
	return value, nil
}

func numericValidator(question questionnaire.Question) func(string) error {
	return func(raw string) error {
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if question.Min != nil && value < *question.Min {
			return fmt.Errorf("must be at least %g", *question.Min)
		}
		if question.Max != nil && value > *question.Max {
			return fmt.Errorf("must be at most %g", *question.Max)
		}
		return nil
	}
}

func defaultIndex(question questionnaire.Question) int {
	want, ok := question.Default.(string)
	if !ok {
		return 0
	}
	for i, option := range question.Options {
		if option == want {
			return i
		}
	}
	return 0
}

func defaultText(question questionnaire.Question) string {
	if question.Default == nil {
		return ""
	}
	switch v := question.Default.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func boundsHelp(question questionnaire.Question) string {
	switch {
	case question.Min != nil && question.Max != nil:
		return fmt.Sprintf("between %g and %g", *question.Min, *question.Max)
	case question.Min != nil:
		return fmt.Sprintf("at least %g", *question.Min)
	case question.Max != nil:
		return fmt.Sprintf("at most %g", *question.Max)
	default:
		return ""
	}
}
