package models

import (
	"errors"
	"fmt"
)

// Common application errors
var (
	ErrItemNotFound = errors.New("found item not found")
)

// ValidationError reports bad or missing request input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConfigurationError reports a missing required external-service credential.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// UpstreamError reports a failed item-store query. It wraps the underlying
// store error.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
