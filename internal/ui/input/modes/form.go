package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"activityfinder/internal/ui/input/types"
)

// FormMode edits the "what" and "where" fields of the search form
type FormMode struct {
	query    *textinput.Model
	location *textinput.Model
	focused  string
}

func NewFormMode(query, location *textinput.Model) *FormMode {
	return &FormMode{
		query:    query,
		location: location,
		focused:  types.FieldQuery,
	}
}

func (m *FormMode) Name() string {
	return "search"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	m.applyFocus()
	return []types.Action{types.FocusFieldAction{Field: m.focused}}
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	m.query.Blur()
	m.location.Blur()
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "tab", "shift+tab", "up", "down":
		m.toggleFocus()
		return []types.Action{types.FocusFieldAction{Field: m.focused}}, true

	case "enter":
		if !ctx.CanSubmit() {
			if ctx.IsLoading() {
				return []types.Action{types.StatusAction{Message: "A search is already running"}}, true
			}
			return []types.Action{types.StatusAction{Message: "Tell us what and where to search"}}, true
		}
		return []types.Action{
			types.SubmitSearchAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true

	case "esc":
		if ctx.HasSearched() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
		}
		return nil, true

	case "ctrl+f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilters}}, true

	default:
		// Let the main handler update the focused text input
		return nil, false
	}
}

// Focused returns the name of the focused field
func (m *FormMode) Focused() string {
	return m.focused
}

// FocusedInput returns the text input receiving keystrokes
func (m *FormMode) FocusedInput() *textinput.Model {
	if m.focused == types.FieldLocation {
		return m.location
	}
	return m.query
}

// Focus moves the cursor to field
func (m *FormMode) Focus(field string) {
	if field != types.FieldQuery && field != types.FieldLocation {
		return
	}
	m.focused = field
	m.applyFocus()
}

func (m *FormMode) toggleFocus() {
	if m.focused == types.FieldQuery {
		m.focused = types.FieldLocation
	} else {
		m.focused = types.FieldQuery
	}
	m.applyFocus()
}

func (m *FormMode) applyFocus() {
	if m.focused == types.FieldLocation {
		m.query.Blur()
		m.location.Focus()
		return
	}
	m.location.Blur()
	m.query.Focus()
}
