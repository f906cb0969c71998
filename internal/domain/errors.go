package domain

import (
	"context"
	"errors"
	"fmt"
)

// GenericErrorMessage is shown for every provider or transport failure.
// Provider error text is logged but never shown to the user.
const GenericErrorMessage = "Failed to fetch activities. Please try again."

// ValidationError reports an input field below the minimum length
type ValidationError struct {
	Field string
	Min   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be at least %d characters", e.Field, e.Min)
}

// UserMessage is the text shown in the error state
func (e *ValidationError) UserMessage() string {
	if e.Field == FieldLocation {
		return fmt.Sprintf("Please enter at least %d characters for location", e.Min)
	}
	return fmt.Sprintf("Please enter at least %d characters for your search", e.Min)
}

// TransportError covers network failures, non-2xx statuses and undecodable bodies.
// StatusCode is 0 when no response was received.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("search request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError is a well-formed response with success=false
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return "search provider reported failure"
	}
	return "search provider reported failure: " + e.Message
}

// FailureKind classifies why a search ended in the error state
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureValidation
	FailureTransport
	FailureProvider
	FailureCanceled
)

func (k FailureKind) String() string {
	switch k {
	case FailureValidation:
		return "validation"
	case FailureTransport:
		return "transport"
	case FailureProvider:
		return "provider"
	case FailureCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// ClassifyFailure maps an error chain onto a FailureKind
func ClassifyFailure(err error) FailureKind {
	var (
		verr *ValidationError
		perr *ProviderError
	)
	switch {
	case err == nil:
		return FailureUnknown
	case errors.As(err, &verr):
		return FailureValidation
	case errors.As(err, &perr):
		return FailureProvider
	case errors.Is(err, context.Canceled):
		return FailureCanceled
	default:
		// anything else reached the network layer
		return FailureTransport
	}
}
