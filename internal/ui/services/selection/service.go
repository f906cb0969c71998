package selection

import (
	"activityfinder/internal/domain"
	"activityfinder/internal/ui/services/events"
)

// Service governs the single open activity
type Service struct {
	state     *State
	bus       events.EventBus
	resultsFn func() []domain.Activity // Function to get the current results
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   events.OrNull(bus),
	}
}

// SetResultsFunction sets the function returning the current results.
// Once set, Select only accepts activities present in those results.
func (s *Service) SetResultsFunction(fn func() []domain.Activity) {
	s.resultsFn = fn
}

// Select opens the detail view for activity. It returns false, leaving the
// state untouched, when the activity is not part of the current results.
func (s *Service) Select(activity domain.Activity) bool {
	if s.resultsFn != nil && !domain.ContainsActivity(s.resultsFn(), activity.ID) {
		s.bus.Publish(domain.SelectionRejectedEvent{ActivityID: activity.ID})
		return false
	}

	a := activity
	s.state.Activity = &a
	s.state.IsOpen = true

	s.bus.Publish(domain.ActivitySelectedEvent{ActivityID: activity.ID})
	return true
}

// Close hides the detail view and keeps the activity reference
func (s *Service) Close() {
	if !s.state.IsOpen {
		return
	}
	s.state.IsOpen = false

	id := ""
	if s.state.Activity != nil {
		id = s.state.Activity.ID
	}
	s.bus.Publish(domain.DetailClosedEvent{ActivityID: id})
}

// Reconcile closes the detail view when the open activity is no longer in results
func (s *Service) Reconcile(results []domain.Activity) {
	if !s.state.IsOpen || s.state.Activity == nil {
		return
	}
	if !domain.ContainsActivity(results, s.state.Activity.ID) {
		s.Close()
	}
}

// Current returns the open activity
func (s *Service) Current() (domain.Activity, bool) {
	if !s.state.IsOpen || s.state.Activity == nil {
		return domain.Activity{}, false
	}
	return *s.state.Activity, true
}

// IsOpen reports whether the detail view is shown
func (s *Service) IsOpen() bool {
	return s.state.IsOpen
}

// State returns a copy of the selection state
func (s *Service) State() State {
	st := *s.state
	if st.Activity != nil {
		a := *st.Activity
		st.Activity = &a
	}
	return st
}
