package questionnaire_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wellness/pkg/feature"
	"github.com/goliatone/go-wellness/pkg/questionnaire"
)

func load(t *testing.T) *questionnaire.Questionnaire {
	t.Helper()
	q, err := questionnaire.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return q
}

func TestLoadSectionsInOrder(t *testing.T) {
	q := load(t)

	if q.Title != "Mental Health Wellness Predictor" {
		t.Fatalf("Title = %q", q.Title)
	}

	var titles []string
	for _, section := range q.Sections {
		titles = append(titles, section.Title)
	}
	want := []string{
		"Profile",
		"Lifestyle Factors",
		"Mental Health History",
		"Work-Related Factors",
		"Wellness Assessment",
	}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("section titles mismatch (-want +got):\n%s", diff)
	}

	if got := len(q.Questions()); got != 19 {
		t.Fatalf("got %d questions, want 19", got)
	}
}

func TestLoadChoiceQuestions(t *testing.T) {
	q := load(t)

	byKey := make(map[string]questionnaire.Question)
	for _, question := range q.Questions() {
		byKey[question.Key] = question
	}

	gender := byKey[feature.AnswerGender]
	if !gender.IsChoice() {
		t.Fatal("gender should be a choice question")
	}
	if diff := cmp.Diff([]string{"Male", "Female", "Other"}, gender.Options); diff != "" {
		t.Fatalf("gender options mismatch (-want +got):\n%s", diff)
	}

	for _, key := range []string{feature.AnswerFamilyHistory, feature.AnswerSubstanceUse} {
		question := byKey[key]
		if diff := cmp.Diff([]string{"No", "Yes"}, question.Options); diff != "" {
			t.Fatalf("%s options mismatch (-want +got):\n%s", key, diff)
		}
	}

	if byKey[feature.AnswerAge].IsChoice() {
		t.Fatal("age should not be a choice question")
	}
}

func TestLoadNumericBounds(t *testing.T) {
	q := load(t)

	for _, question := range q.Questions() {
		if question.Key == feature.AnswerAge {
			if question.Min == nil || *question.Min != 10 {
				t.Fatalf("age min = %v, want 10", question.Min)
			}
			if question.Max == nil || *question.Max != 100 {
				t.Fatalf("age max = %v, want 100", question.Max)
			}
			return
		}
	}
	t.Fatal("age question not found")
}

func TestDefaultsCoverEveryAnswerKey(t *testing.T) {
	q := load(t)
	defaults := q.Defaults()

	keys := []string{
		feature.AnswerAge,
		feature.AnswerGender,
		feature.AnswerSleepHours,
		feature.AnswerWorkHours,
		feature.AnswerExerciseFreq,
		feature.AnswerScreenTime,
		feature.AnswerSocialActivity,
		feature.AnswerDietQuality,
		feature.AnswerFamilyHistory,
		feature.AnswerSleepQuality,
		feature.AnswerStressLevelDepression,
		feature.AnswerSocialSupport,
		feature.AnswerPhysicalActivity,
		feature.AnswerSubstanceUse,
		feature.AnswerOvertime,
		feature.AnswerWorkSatisfaction,
		feature.AnswerMoodSwings,
		feature.AnswerStressLevelBurnout,
		feature.AnswerStressLevelWellness,
	}
	if len(defaults) != len(keys) {
		t.Fatalf("got %d defaults, want %d", len(defaults), len(keys))
	}
	for _, key := range keys {
		if _, ok := defaults[key]; !ok {
			t.Fatalf("defaults missing %q", key)
		}
	}

	if got := defaults[feature.AnswerGender]; got != "Male" {
		t.Fatalf("gender default = %v, want Male", got)
	}
	if got := defaults[feature.AnswerFamilyHistory]; got != "No" {
		t.Fatalf("family_history default = %v, want No", got)
	}
}
