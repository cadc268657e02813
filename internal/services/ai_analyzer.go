package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rahul4469/gemini-relay/internal/models"
)

// AIAnalyzer scores a page against the E-E-A-T rubric using a Generator.
type AIAnalyzer struct {
	generator    Generator
	strictSchema bool
}

// NewAIAnalyzer creates an analyzer. With strictSchema set, results missing
// any of the requested keys are rejected instead of passed through.
func NewAIAnalyzer(generator Generator, strictSchema bool) *AIAnalyzer {
	return &AIAnalyzer{
		generator:    generator,
		strictSchema: strictSchema,
	}
}

// AnalysisResult holds the model output as returned to the caller and,
// when it decodes as an object, its typed form.
type AnalysisResult struct {
	Raw json.RawMessage
	// Analysis is nil when Raw is not a JSON object.
	Analysis *models.EATAnalysis
}

// Analyze asks the model to score targetURL and returns its JSON result.
// targetURL is embedded in the prompt as-is.
func (aa *AIAnalyzer) Analyze(ctx context.Context, targetURL string) (*AnalysisResult, error) {
	prompt := aa.createAnalysisPrompt(targetURL)

	text, err := aa.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstreamFailure, err)
	}

	raw, err := ParseAnalysis(text)
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{Raw: raw}
	analysis, err := decodeAnalysis(raw)
	if err == nil {
		result.Analysis = analysis
	}

	if aa.strictSchema {
		if err == nil {
			err = analysis.Validate()
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", models.ErrUpstreamFailure, err)
		}
	}

	return result, nil
}

// createAnalysisPrompt creates the E-E-A-T scoring prompt for targetURL.
// The JSON keys named here are the ones ParseAnalysis callers rely on.
func (aa *AIAnalyzer) createAnalysisPrompt(targetURL string) string {
	prompt := `You are an expert in Google's Search Quality Rater Guidelines.
		Analyze the content at the following URL for E-E-A-T:
		URL: ` + targetURL + `

		For each of the four dimensions below, give a score from 1 to 100
		and a short bulleted reasoning:
		  * Experience
		  * Expertise
		  * Authoritativeness
		  * Trustworthiness

		Then compute the overall score as the average of the four scores,
		and give exactly 3 actionable recommendations to improve E-E-A-T.

		Return the result as a single JSON object with exactly these keys:
		{
		  "experience": { "score": number, "reasoning": string },
		  "expertise": { "score": number, "reasoning": string },
		  "authoritativeness": { "score": number, "reasoning": string },
		  "trustworthiness": { "score": number, "reasoning": string },
		  "overallScore": number,
		  "recommendations": [string, string, string]
		}
		`

	return prompt
}

// ParseAnalysis strips markdown fence markers from text and decodes the
// remainder as JSON. If the remainder is not JSON but text holds a complete
// fenced block, the block body alone is tried.
func ParseAnalysis(text string) (json.RawMessage, error) {
	var result json.RawMessage
	err := json.Unmarshal([]byte(StripCodeFences(text)), &result)
	if err == nil {
		return result, nil
	}

	if body, ok := FencedBody(text); ok {
		if json.Unmarshal([]byte(body), &result) == nil {
			return result, nil
		}
	}

	return nil, &models.UnparsableResponseError{Raw: text, Err: err}
}

func decodeAnalysis(raw json.RawMessage) (*models.EATAnalysis, error) {
	var analysis models.EATAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, fmt.Errorf("analysis is not an object: %w", err)
	}
	return &analysis, nil
}
