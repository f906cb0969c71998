package filters

import (
	tea "github.com/charmbracelet/bubbletea"

	"activityfinder/internal/domain"
	"activityfinder/internal/ui/services/events"
)

// Service composes the filter set and holds the quick-search presets.
// It never talks to the network: changes are handed to the change function
// and presets to the quick search function.
type Service struct {
	filters       domain.FilterSet
	presets       []Preset
	bus           events.EventBus
	changeFn      func(domain.FilterSet) tea.Cmd
	quickSearchFn func(query, location string) tea.Cmd
}

// NewService creates a new filter service. A nil presets slice selects DefaultPresets.
func NewService(bus events.EventBus, presets []Preset) *Service {
	if presets == nil {
		presets = DefaultPresets()
	}
	p := make([]Preset, len(presets))
	copy(p, presets)
	return &Service{
		presets: p,
		bus:     events.OrNull(bus),
	}
}

// SetChangeFunction sets the function receiving every new filter set
func (s *Service) SetChangeFunction(fn func(domain.FilterSet) tea.Cmd) {
	s.changeFn = fn
}

// SetQuickSearchFunction sets the function that runs a preset
func (s *Service) SetQuickSearchFunction(fn func(query, location string) tea.Cmd) {
	s.quickSearchFn = fn
}

// ToggleCategory flips a category's membership
func (s *Service) ToggleCategory(id domain.CategoryID) tea.Cmd {
	return s.apply(s.filters.ToggleCategory(id))
}

// SetTimeFilter replaces the time window; TimeAny clears it
func (s *Service) SetTimeFilter(id domain.TimeFilterID) tea.Cmd {
	return s.apply(s.filters.WithTimeFilter(id))
}

// Clear resets to no categories and any time
func (s *Service) Clear() tea.Cmd {
	return s.apply(s.filters.Cleared())
}

// Filters returns the current filter set
func (s *Service) Filters() domain.FilterSet {
	return s.filters
}

// ActiveCount returns the number of active filters
func (s *Service) ActiveCount() int {
	return s.filters.ActiveCount()
}

// Presets returns the quick-search presets
func (s *Service) Presets() []Preset {
	out := make([]Preset, len(s.presets))
	copy(out, s.presets)
	return out
}

// RunPreset runs preset i with whatever filters are currently set.
// Out-of-range indexes are ignored.
func (s *Service) RunPreset(i int) tea.Cmd {
	if i < 0 || i >= len(s.presets) || s.quickSearchFn == nil {
		return nil
	}
	p := s.presets[i]
	return s.quickSearchFn(p.Query, p.Location)
}

func (s *Service) apply(next domain.FilterSet) tea.Cmd {
	if next.Equal(s.filters) {
		return nil
	}
	s.filters = next
	s.bus.Publish(domain.FiltersChangedEvent{Filters: next})

	if s.changeFn == nil {
		return nil
	}
	return s.changeFn(next)
}
