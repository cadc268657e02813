package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// AnalyzeRequest is the body accepted by POST /analyze-eat.
// TargetURL is treated as an opaque identifier and is not parsed.
type AnalyzeRequest struct {
	TargetURL string `json:"targetUrl"`
}

// Validate reports a FieldError when TargetURL is empty.
func (r AnalyzeRequest) Validate() error {
	if r.TargetURL == "" {
		return FieldError{Field: "targetUrl"}
	}
	return nil
}

// DimensionScore is one E-E-A-T dimension as returned by the model.
type DimensionScore struct {
	Score     *float64 `json:"score"`
	Reasoning *string  `json:"reasoning"`
}

// EATAnalysis is the shape the analyzer prompt asks the model to return.
// Fields are pointers so a missing key can be told apart from a zero value.
type EATAnalysis struct {
	Experience        *DimensionScore `json:"experience"`
	Expertise         *DimensionScore `json:"expertise"`
	Authoritativeness *DimensionScore `json:"authoritativeness"`
	Trustworthiness   *DimensionScore `json:"trustworthiness"`
	OverallScore      *float64        `json:"overallScore"`
	Recommendations   []string        `json:"recommendations"`
}

// Validate checks that every key requested by the analyzer prompt is present.
// It does not check that overallScore is the mean of the four scores.
func (a *EATAnalysis) Validate() error {
	var errs []error

	dimensions := []struct {
		name  string
		value *DimensionScore
	}{
		{"experience", a.Experience},
		{"expertise", a.Expertise},
		{"authoritativeness", a.Authoritativeness},
		{"trustworthiness", a.Trustworthiness},
	}
	for _, d := range dimensions {
		switch {
		case d.value == nil:
			errs = append(errs, fmt.Errorf("missing %s", d.name))
		case d.value.Score == nil:
			errs = append(errs, fmt.Errorf("missing %s.score", d.name))
		case d.value.Reasoning == nil:
			errs = append(errs, fmt.Errorf("missing %s.reasoning", d.name))
		}
	}

	if a.OverallScore == nil {
		errs = append(errs, errors.New("missing overallScore"))
	}
	if a.Recommendations == nil {
		errs = append(errs, errors.New("missing recommendations"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("analysis schema mismatch: %w", errors.Join(errs...))
	}
	return nil
}

// MeanScore returns the average of the four dimension scores.
// Dimensions without a score are skipped.
func (a *EATAnalysis) MeanScore() float64 {
	mean, _ := a.meanScore()
	return mean
}

func (a *EATAnalysis) meanScore() (float64, bool) {
	var sum float64
	var n int
	for _, d := range []*DimensionScore{a.Experience, a.Expertise, a.Authoritativeness, a.Trustworthiness} {
		if d != nil && d.Score != nil {
			sum += *d.Score
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// OverallDrifts reports whether overallScore differs from the mean of the
// dimension scores by more than tolerance. It is false when either is absent.
func (a *EATAnalysis) OverallDrifts(tolerance float64) bool {
	mean, ok := a.meanScore()
	if !ok || a.OverallScore == nil {
		return false
	}
	return math.Abs(*a.OverallScore-mean) > tolerance
}

// Summary returns a one-line description of the analysis for logs.
func (a *EATAnalysis) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mean=%.1f", a.MeanScore())
	if a.OverallScore != nil {
		fmt.Fprintf(&b, " overall=%.1f", *a.OverallScore)
	}
	fmt.Fprintf(&b, " recommendations=%d", len(a.Recommendations))
	return b.String()
}
