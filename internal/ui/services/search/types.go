package search

import (
	"context"
	"time"

	"activityfinder/internal/domain"
)

// Status is the request lifecycle state
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State holds the request state shown by the UI
type State struct {
	Status          Status
	Activities      []domain.Activity
	ErrorMessage    string
	HasSearchedOnce bool
}

// Policy decides which responses may update State
type Policy int

const (
	// LastResolvedWins applies every response in completion order.
	// A slow older request can overwrite a newer one.
	LastResolvedWins Policy = iota
	// LatestDispatchWins applies only the response of the most recent
	// dispatch and cancels superseded requests.
	LatestDispatchWins
)

func (p Policy) String() string {
	if p == LatestDispatchWins {
		return "latest-dispatch-wins"
	}
	return "last-resolved-wins"
}

// Options tunes the orchestrator
type Options struct {
	Policy Policy
	// QueueWhileLoading holds a filter change made during Loading and
	// dispatches it once the in-flight request resolves.
	QueueWhileLoading bool
	// FilterDebounce coalesces filter changes within the window into one dispatch. Zero disables it.
	FilterDebounce time.Duration
	// RequestTimeout bounds each provider call. Zero means no timeout.
	RequestTimeout time.Duration
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		Policy:            LastResolvedWins,
		QueueWhileLoading: true,
	}
}

// Provider performs one search round-trip
type Provider interface {
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Activity, error)
}

// ProviderFunc adapts a function to Provider
type ProviderFunc func(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Activity, error)

func (f ProviderFunc) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Activity, error) {
	return f(ctx, criteria)
}

// ResultMsg carries a provider response back to the Update loop
type ResultMsg struct {
	Seq        uint64
	Criteria   domain.SearchCriteria
	Activities []domain.Activity
	Err        error
}

// DebounceMsg fires when a filter debounce window elapses
type DebounceMsg struct {
	ID uint64
}
