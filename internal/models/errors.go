package models

import (
	"errors"
	"fmt"
)

// Request related errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Generative capability related errors
var (
	ErrUpstreamFailure = errors.New("upstream failure")
	ErrEmptyResponse   = errors.New("no candidates in generative response")
)

// Startup related errors
var (
	ErrStartupConfigurationMissing = errors.New("startup configuration missing")
)

// FieldError reports a required request field that was absent or empty.
type FieldError struct {
	Field string
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s is required", fe.Field)
}

func (fe FieldError) Unwrap() error {
	return ErrInvalidInput
}

// UnparsableResponseError is returned when generated text could not be decoded
// as JSON after sanitization. Raw holds the text as received.
type UnparsableResponseError struct {
	Raw string
	Err error
}

func (ue *UnparsableResponseError) Error() string {
	return fmt.Sprintf("unparsable generative response: %v", ue.Err)
}

func (ue *UnparsableResponseError) Unwrap() []error {
	return []error{ErrUpstreamFailure, ue.Err}
}
