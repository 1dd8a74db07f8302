// Package report turns raw pipeline outcomes into presentable assessment
// reports: a stress score on the five-point scale, yes/no risk flags, and a
// clamped recommendation score per wellness activity.
package report

import (
	"fmt"
	"math"

	"github.com/goliatone/go-wellness/pkg/pipeline"
)

// Activities lists the wellness activities in the order the model emits its
// recommendation scores.
var Activities = []string{"Meditation", "Therapy", "Music Therapy", "Relaxation Techniques"}

// RiskThreshold is the probability at and above which a risk flag reads Yes.
const RiskThreshold = 0.5

// Recommendation pairs a wellness activity with its score on the one-to-five
// scale.
type Recommendation struct {
	Activity string
	Score    float64
}

// Report is a fully formatted assessment result.
type Report struct {
	// StressScore is the raw regression output, kept for callers that need
	// the unrounded value.
	StressScore float64

	// StressDisplay renders the stress score as "N.N/5".
	StressDisplay string

	// DepressionRisk and BurnoutRisk are "Yes" or "No".
	DepressionRisk string
	BurnoutRisk    string

	// Recommendations holds one entry per activity that received a score.
	Recommendations []Recommendation
}

// Compose formats a pipeline outcome. A single wellness score broadcasts to
// every activity; otherwise scores pair with activities positionally and any
// surplus on either side is dropped.
func Compose(out *pipeline.Outcome) (*Report, error) {
	if out == nil {
		return nil, fmt.Errorf("report: nil outcome")
	}

	rep := &Report{
		StressScore:    out.Stress,
		StressDisplay:  fmt.Sprintf("%.1f/5", out.Stress),
		DepressionRisk: riskFlag(out.Depression),
		BurnoutRisk:    riskFlag(out.Burnout),
	}

	scores := out.Wellness
	if len(scores) == 1 {
		scores = broadcast(scores[0], len(Activities))
	}
	n := len(scores)
	if len(Activities) < n {
		n = len(Activities)
	}
	rep.Recommendations = make([]Recommendation, 0, n)
	for i := 0; i < n; i++ {
		rep.Recommendations = append(rep.Recommendations, Recommendation{
			Activity: Activities[i],
			Score:    clampScore(scores[i]),
		})
	}
	return rep, nil
}

func riskFlag(probability float64) string {
	if probability >= RiskThreshold {
		return "Yes"
	}
	return "No"
}

// clampScore confines a recommendation score to [1, 5] and rounds it to one
// decimal. NaN collapses to the scale floor; infinities clamp like any other
// out-of-range value.
func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 1.0
	}
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	return math.Round(v*10) / 10
}

func broadcast(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
