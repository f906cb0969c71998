package state

// AppState contains the view-only application state. Search, filter and
// selection state live in their services.
type AppState struct {
	Width         int
	Height        int
	StatusMessage string // status bar message
	StatusIsError bool
	ShowHelp      bool
	FilterCursor  int  // highlighted row in the filter panel
	InPagerMode   bool // rendering paused while the description pager runs
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus shows an informational message in the status bar
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message in the status bar
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus empties the status bar
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
