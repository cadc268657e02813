package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/rahul4469/gemini-relay/internal/models"
)

// validator is implemented by every request body type.
type validator interface {
	Validate() error
}

// decodeRequest reads a JSON body into dst and validates it.
// The body must hold a single JSON value; anything after it is rejected.
// An empty body decodes as the zero value so the field check reports it.
// Every failure wraps models.ErrInvalidInput.
func decodeRequest(r *http.Request, dst validator) error {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		return bodyError(err)
	default:
		var trailing json.RawMessage
		if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
			if err == nil {
				err = errors.New("unexpected data after JSON value")
			}
			return bodyError(err)
		}
	}
	return dst.Validate()
}

func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: request body exceeds %d bytes: %w", models.ErrInvalidInput, maxBytesErr.Limit, err)
	}
	return fmt.Errorf("%w: malformed JSON body: %w", models.ErrInvalidInput, err)
}

// invalidInputStatus maps a decodeRequest error to a 4xx status.
func invalidInputStatus(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// invalidInputMessage returns the short message shown to the caller.
func invalidInputMessage(err error) string {
	var fieldErr models.FieldError
	if errors.As(err, &fieldErr) {
		return requiredMessage(fieldErr.Field)
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return "Request body too large"
	}
	return "Invalid request body"
}

func requiredMessage(field string) string {
	switch field {
	case "prompt":
		return "Prompt is required"
	case "targetUrl":
		return "Target URL is required"
	default:
		return fmt.Sprintf("%s is required", field)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
