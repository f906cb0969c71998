package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeForm Mode = iota
	ModeBrowse
	ModeFilters
	ModeDetail
)

// String returns the mode name shown in the status line
func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "search"
	case ModeBrowse:
		return "browse"
	case ModeFilters:
		return "filters"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Form fields
const (
	FieldQuery    = "query"
	FieldLocation = "location"
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	ResultCount() int
	IsLoading() bool
	HasSearched() bool
	HasError() bool
	// CanSubmit reports whether the search form accepts a submission:
	// nothing is loading and neither field is blank.
	CanSubmit() bool
	HasActiveFilters() bool
	PresetCount() int
	DetailOpen() bool
	CurrentLink() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
