package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-wellness/pkg/artifact"
	"github.com/goliatone/go-wellness/pkg/assessment"
	"github.com/goliatone/go-wellness/pkg/collectors/tui"
	"github.com/goliatone/go-wellness/pkg/feature"
	"github.com/goliatone/go-wellness/pkg/pipeline"
	"github.com/goliatone/go-wellness/pkg/questionnaire"
)

func main() {
	artifacts := flag.String("artifacts", "artifacts", "directory holding the model artifact documents")
	answersPath := flag.String("answers", "", "JSON file with questionnaire answers (defaults when empty)")
	interactive := flag.Bool("interactive", false, "collect answers on the terminal")
	renderer := flag.String("renderer", "text", "renderer to use (text, html)")
	output := flag.String("output", "", "output file (stdout if empty)")
	echo := flag.Bool("echo-answers", false, "include submitted answers in the report")
	flag.Parse()

	ctx := context.Background()

	answers, err := resolveAnswers(ctx, *answersPath, *interactive)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		log.Fatalf("Failed to gather answers: %v", err)
	}

	assessor := assessment.New()
	result, err := assessor.Generate(ctx, assessment.Request{
		Source:      artifact.SourceFromDir(*artifacts),
		Answers:     answers,
		Renderer:    *renderer,
		EchoAnswers: *echo,
	})
	if err != nil {
		var infErr *pipeline.InferenceError
		if errors.As(err, &infErr) {
			log.Fatalf("Inference failed in %s stage: %v", infErr.Stage, infErr.Err)
		}
		log.Fatalf("Failed to run assessment: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", *output)
	} else {
		fmt.Println(string(result))
	}
}

func resolveAnswers(ctx context.Context, path string, interactive bool) (feature.RawAnswers, error) {
	q, err := questionnaire.Load(ctx)
	if err != nil {
		return nil, err
	}

	if interactive {
		collector := tui.New()
		return collector.Collect(ctx, q)
	}

	answers := q.Defaults()
	if path == "" {
		return answers, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var overrides map[string]any
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for key, value := range overrides {
		answers[key] = value
	}
	return answers, nil
}
