package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchDispatched     EventType = "SearchDispatched"
	EventSearchSucceeded      EventType = "SearchSucceeded"
	EventSearchFailed         EventType = "SearchFailed"
	EventSearchDiscarded      EventType = "SearchDiscarded"
	EventFiltersChanged       EventType = "FiltersChanged"
	EventQuickSearchRequested EventType = "QuickSearchRequested"
	EventActivitySelected     EventType = "ActivitySelected"
	EventDetailClosed         EventType = "DetailClosed"
	EventSelectionRejected    EventType = "SelectionRejected"
	EventError                EventType = "Error"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchDispatchedEvent is emitted when a request is handed to the provider
type SearchDispatchedEvent struct {
	Seq      uint64
	Criteria SearchCriteria
}

func (e SearchDispatchedEvent) Type() EventType { return EventSearchDispatched }

// SearchSucceededEvent is emitted when a response is applied
type SearchSucceededEvent struct {
	Seq   uint64
	Count int
}

func (e SearchSucceededEvent) Type() EventType { return EventSearchSucceeded }

// SearchFailedEvent is emitted when validation or the request fails.
// Seq is 0 for validation failures, which never dispatch.
type SearchFailedEvent struct {
	Seq     uint64
	Kind    FailureKind
	Message string
	Err     error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchDiscardedEvent is emitted when a superseded response is dropped
type SearchDiscardedEvent struct {
	Seq    uint64
	Newest uint64
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// FiltersChangedEvent is emitted whenever the filter set changes
type FiltersChangedEvent struct {
	Filters FilterSet
}

func (e FiltersChangedEvent) Type() EventType { return EventFiltersChanged }

// QuickSearchRequestedEvent is emitted when a preset is run
type QuickSearchRequestedEvent struct {
	Query    string
	Location string
}

func (e QuickSearchRequestedEvent) Type() EventType { return EventQuickSearchRequested }

// ActivitySelectedEvent is emitted when the detail view opens
type ActivitySelectedEvent struct {
	ActivityID string
}

func (e ActivitySelectedEvent) Type() EventType { return EventActivitySelected }

// DetailClosedEvent is emitted when the detail view closes
type DetailClosedEvent struct {
	ActivityID string
}

func (e DetailClosedEvent) Type() EventType { return EventDetailClosed }

// SelectionRejectedEvent is emitted when an activity outside the current results is selected
type SelectionRejectedEvent struct {
	ActivityID string
}

func (e SelectionRejectedEvent) Type() EventType { return EventSelectionRejected }

// ErrorEvent is emitted when an error occurs outside the search lifecycle
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
