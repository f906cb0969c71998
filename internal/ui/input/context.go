package input

import (
	"activityfinder/internal/domain"
	"activityfinder/internal/ui/services/filters"
	"activityfinder/internal/ui/services/navigation"
	"activityfinder/internal/ui/services/search"
	"activityfinder/internal/ui/services/selection"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Search     *search.Service
	Filters    *filters.Service
	Selection  *selection.Service
	Navigation *navigation.Service
}

// CurrentIndex returns the card under the cursor
func (c *ModelContext) CurrentIndex() int {
	return c.Navigation.Cursor()
}

// ResultCount returns the number of activities shown
func (c *ModelContext) ResultCount() int {
	return len(c.Search.Activities())
}

// IsLoading reports whether a search is running
func (c *ModelContext) IsLoading() bool {
	return c.Search.State().Status == search.StatusLoading
}

// HasSearched reports whether any search was dispatched
func (c *ModelContext) HasSearched() bool {
	return c.Search.State().HasSearchedOnce
}

// HasError reports whether the last search failed
func (c *ModelContext) HasError() bool {
	return c.Search.State().Status == search.StatusError
}

// CanSubmit reports whether the form accepts a submission
func (c *ModelContext) CanSubmit() bool {
	return !c.IsLoading() && !c.Search.Current().IsBlank()
}

// HasActiveFilters reports whether any filter is set
func (c *ModelContext) HasActiveFilters() bool {
	return c.Filters.ActiveCount() > 0
}

// PresetCount returns the number of quick searches
func (c *ModelContext) PresetCount() int {
	return len(c.Filters.Presets())
}

// DetailOpen reports whether the detail view is shown
func (c *ModelContext) DetailOpen() bool {
	return c.Selection.IsOpen()
}

// CurrentLink returns the link of the open activity
func (c *ModelContext) CurrentLink() string {
	a, ok := c.Selection.Current()
	if !ok {
		return ""
	}
	return a.Link
}

// ActivityAt returns the activity at index
func (c *ModelContext) ActivityAt(index int) (domain.Activity, bool) {
	activities := c.Search.Activities()
	if index < 0 || index >= len(activities) {
		return domain.Activity{}, false
	}
	return activities[index], true
}
