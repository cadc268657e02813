package controllers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/rahul4469/gemini-relay/internal/models"
	"github.com/rahul4469/gemini-relay/internal/services"
)

// GeminiController relays free-text prompts to the generative model.
type GeminiController struct {
	generator services.Generator
}

// NewGeminiController creates a new GeminiController.
func NewGeminiController(generator services.Generator) *GeminiController {
	return &GeminiController{
		generator: generator,
	}
}

// PostGenerate handles POST /gemini.
// Body: {"prompt": "..."}
func (c *GeminiController) PostGenerate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, invalidInputStatus(err), invalidInputMessage(err))
		return
	}

	text, err := c.generator.Generate(r.Context(), req.Prompt)
	if err != nil {
		log.Printf("[%s] Error in /gemini endpoint: %v", middleware.GetReqID(r.Context()), err)
		writeError(w, http.StatusInternalServerError, "Failed to generate content from Gemini")
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{GeneratedText: text})
}
