package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/rahul4469/gemini-relay/internal/models"
	"github.com/rahul4469/gemini-relay/internal/services"
)

// overallScoreTolerance allows for the model rounding its average.
const overallScoreTolerance = 1.0

// AnalyzeController handles E-E-A-T analysis of a target URL.
type AnalyzeController struct {
	analyzer *services.AIAnalyzer
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(analyzer *services.AIAnalyzer) *AnalyzeController {
	return &AnalyzeController{
		analyzer: analyzer,
	}
}

// PostAnalyze handles POST /analyze-eat.
// Body: {"targetUrl": "..."}
// The parsed model output is returned as the response body unchanged.
func (c *AnalyzeController) PostAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, invalidInputStatus(err), invalidInputMessage(err))
		return
	}

	result, err := c.analyzer.Analyze(r.Context(), req.TargetURL)
	if err != nil {
		reqID := middleware.GetReqID(r.Context())

		var unparsable *models.UnparsableResponseError
		if errors.As(err, &unparsable) {
			log.Printf("[%s] Unparsable analysis for %s: %v\nraw response:\n%s", reqID, req.TargetURL, unparsable.Err, unparsable.Raw)
			writeError(w, http.StatusInternalServerError, "Failed to parse analysis from Gemini")
			return
		}

		log.Printf("[%s] Analysis failed for %s: %v", reqID, req.TargetURL, err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze content with Gemini")
		return
	}

	// overallScore is requested as the mean but never enforced
	if result.Analysis != nil && result.Analysis.OverallDrifts(overallScoreTolerance) {
		log.Printf("[%s] overallScore drifts from mean for %s: %s", middleware.GetReqID(r.Context()), req.TargetURL, result.Analysis.Summary())
	}

	writeJSON(w, http.StatusOK, result.Raw)
}
