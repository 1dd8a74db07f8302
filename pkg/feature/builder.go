package feature

import "github.com/goliatone/go-wellness/pkg/encode"

// RawAnswers is one survey submission as delivered by the form collaborator:
// loosely typed, possibly incomplete, possibly malformed. Keys follow the
// questionnaire field names.
type RawAnswers map[string]any

// Answer keys shared across the four models.
const (
	AnswerAge                   = "age"
	AnswerGender                = "gender"
	AnswerSleepHours            = "sleep_hours"
	AnswerWorkHours             = "work_hours"
	AnswerExerciseFreq          = "exercise_freq"
	AnswerScreenTime            = "screen_time"
	AnswerSocialActivity        = "social_activity"
	AnswerDietQuality           = "diet_quality"
	AnswerFamilyHistory         = "family_history"
	AnswerSleepQuality          = "sleep_quality"
	AnswerStressLevelDepression = "stress_level_depression"
	AnswerSocialSupport         = "social_support"
	AnswerPhysicalActivity      = "physical_activity"
	AnswerSubstanceUse          = "substance_use"
	AnswerOvertime              = "overtime"
	AnswerWorkSatisfaction      = "work_satisfaction"
	AnswerMoodSwings            = "mood_swings"
	AnswerStressLevelBurnout    = "stress_level_burnout"
	AnswerStressLevelWellness   = "stress_level_wellness"
)

// GenderLevels are the one-hot encoded gender columns. Female is the baseline
// category the models were trained against and deliberately has no column.
var GenderLevels = []string{"Male", "Other"}

// The four training-time schemas. Field names and order must match the model
// artifacts bit for bit.
var (
	StressSchema = Schema{
		"age", "sleep_hours", "work_hours", "exercise_freq", "screen_time",
		"social_activity", "diet_quality", "gender_Male", "gender_Other",
	}
	DepressionSchema = Schema{
		"age", "sleep_quality", "stress_level", "social_support",
		"physical_activity", "gender_Male", "gender_Other",
		"family_history_Yes", "substance_use_Yes",
	}
	BurnoutSchema = Schema{
		"age", "work_hours", "overtime", "work_satisfaction", "stress_level",
		"sleep_hours", "mood_swings", "gender_Male", "gender_Other",
	}
	WellnessSchema = Schema{
		"age", "stress_level", "gender_Male", "gender_Other",
		"burnout_Yes", "depression_risk_Yes",
	}
)

// Builder translates one raw submission into the four model-specific vectors.
// Malformed answers are coerced to defaults by pkg/encode rather than
// aborting construction.
type Builder struct{}

// NewBuilder returns a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Stress builds the stress model vector.
func (b *Builder) Stress(answers RawAnswers) *Vector {
	v := NewVector(len(StressSchema))
	v.Set("age", encode.Numeric(answers[AnswerAge], 0))
	v.Set("sleep_hours", encode.Numeric(answers[AnswerSleepHours], 0))
	v.Set("work_hours", encode.Numeric(answers[AnswerWorkHours], 0))
	v.Set("exercise_freq", encode.Numeric(answers[AnswerExerciseFreq], 0))
	v.Set("screen_time", encode.Numeric(answers[AnswerScreenTime], 0))
	v.Set("social_activity", encode.Numeric(answers[AnswerSocialActivity], 0))
	v.Set("diet_quality", encode.Numeric(answers[AnswerDietQuality], 0))
	b.setGender(v, answers)
	return v
}

// Depression builds the depression model vector.
func (b *Builder) Depression(answers RawAnswers) *Vector {
	v := NewVector(len(DepressionSchema))
	v.Set("age", encode.Numeric(answers[AnswerAge], 0))
	v.Set("sleep_quality", encode.Numeric(answers[AnswerSleepQuality], 0))
	v.Set("stress_level", encode.Numeric(answers[AnswerStressLevelDepression], 0))
	v.Set("social_support", encode.Numeric(answers[AnswerSocialSupport], 0))
	v.Set("physical_activity", encode.Numeric(answers[AnswerPhysicalActivity], 0))
	b.setGender(v, answers)
	v.Set("family_history_Yes", encode.Binary(answers[AnswerFamilyHistory]))
	v.Set("substance_use_Yes", encode.Binary(answers[AnswerSubstanceUse]))
	return v
}

// Burnout builds the burnout model vector.
func (b *Builder) Burnout(answers RawAnswers) *Vector {
	v := NewVector(len(BurnoutSchema))
	v.Set("age", encode.Numeric(answers[AnswerAge], 0))
	v.Set("work_hours", encode.Numeric(answers[AnswerWorkHours], 0))
	v.Set("overtime", encode.Numeric(answers[AnswerOvertime], 0))
	v.Set("work_satisfaction", encode.Numeric(answers[AnswerWorkSatisfaction], 0))
	v.Set("stress_level", encode.Numeric(answers[AnswerStressLevelBurnout], 0))
	v.Set("sleep_hours", encode.Numeric(answers[AnswerSleepHours], 0))
	v.Set("mood_swings", encode.Numeric(answers[AnswerMoodSwings], 0))
	b.setGender(v, answers)
	return v
}

// Wellness builds the wellness model vector. The depression and burnout
// arguments are the raw, unthresholded outputs of the earlier stages.
func (b *Builder) Wellness(answers RawAnswers, depression, burnout float64) *Vector {
	v := NewVector(len(WellnessSchema))
	v.Set("age", encode.Numeric(answers[AnswerAge], 0))
	v.Set("stress_level", encode.Numeric(answers[AnswerStressLevelWellness], 0))
	b.setGender(v, answers)
	v.Set("burnout_Yes", encode.Numeric(burnout, 0))
	v.Set("depression_risk_Yes", encode.Numeric(depression, 0))
	return v
}

func (b *Builder) setGender(v *Vector, answers RawAnswers) {
	for _, column := range encode.OneHot(answers[AnswerGender], GenderLevels, "gender") {
		v.Set(column.Name, column.Value)
	}
}
