package models

// GenerateRequest is the body accepted by POST /gemini.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// Validate reports a FieldError when Prompt is empty.
// Whitespace-only prompts are forwarded unchanged.
func (r GenerateRequest) Validate() error {
	if r.Prompt == "" {
		return FieldError{Field: "prompt"}
	}
	return nil
}

// GenerateResponse wraps the generated text returned to the caller.
type GenerateResponse struct {
	GeneratedText string `json:"generatedText"`
}

// ErrorResponse is the body of every 4xx and 5xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
