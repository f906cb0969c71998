package types

import "activityfinder/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Form actions
type UpdateFormAction struct {
	Field string
	Text  string
}

func (a UpdateFormAction) Type() string { return "update_form" }

type FocusFieldAction struct {
	Field string
}

func (a FocusFieldAction) Type() string { return "focus_field" }

// Search actions
type SubmitSearchAction struct{}

func (a SubmitSearchAction) Type() string { return "submit_search" }

type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type QuickSearchAction struct {
	Index int // preset index
}

func (a QuickSearchAction) Type() string { return "quick_search" }

// Filter actions
type ToggleCategoryAction struct {
	Category domain.CategoryID
}

func (a ToggleCategoryAction) Type() string { return "toggle_category" }

type SetTimeFilterAction struct {
	TimeFilter domain.TimeFilterID
}

func (a SetTimeFilterAction) Type() string { return "set_time_filter" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type FilterCursorAction struct {
	Index int
}

func (a FilterCursorAction) Type() string { return "filter_cursor" }

// Detail actions
type OpenDetailAction struct {
	Index int // -1 for current
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

type OpenLinkAction struct{}

func (a OpenLinkAction) Type() string { return "open_link" }

type CopyLinkAction struct{}

func (a CopyLinkAction) Type() string { return "copy_link" }

type ShowDescriptionAction struct{}

func (a ShowDescriptionAction) Type() string { return "show_description" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
