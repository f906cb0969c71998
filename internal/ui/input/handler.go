package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"activityfinder/internal/ui/input/modes"
	"activityfinder/internal/ui/input/types"
)

// Input limits for the search form
const (
	queryCharLimit    = 120
	locationCharLimit = 80
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	query       *textinput.Model
	location    *textinput.Model
	form        *modes.FormMode
	filters     *modes.FiltersMode
}

func New() *Handler {
	q := textinput.New()
	q.Placeholder = "What are you looking for? (concerts, food festivals, tech meetups...)"
	q.CharLimit = queryCharLimit
	q.Prompt = ""

	l := textinput.New()
	l.Placeholder = "Where? (New York, San Francisco...)"
	l.CharLimit = locationCharLimit
	l.Prompt = ""

	h := &Handler{
		currentMode: types.ModeForm,
		query:       &q,
		location:    &l,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.form = modes.NewFormMode(h.query, h.location)
	h.filters = modes.NewFiltersMode()

	// Register all mode handlers
	h.modes[types.ModeForm] = h.form
	h.modes[types.ModeBrowse] = modes.NewBrowseMode()
	h.modes[types.ModeFilters] = h.filters
	h.modes[types.ModeDetail] = modes.NewDetailMode()

	h.form.Focus(types.FieldQuery)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unhandled keys in the form go to the focused field
	if h.isTextMode(h.currentMode) && !consumed {
		ti := h.form.FocusedInput()
		var textCmd tea.Cmd
		*ti, textCmd = ti.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateFormAction{Field: h.form.Focused(), Text: ti.Value()})
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ChangeMode switches modes from outside a key press, for example when a
// result closes the detail view
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

// QueryInput returns the "what" field
func (h *Handler) QueryInput() *textinput.Model {
	return h.query
}

// LocationInput returns the "where" field
func (h *Handler) LocationInput() *textinput.Model {
	return h.location
}

// FocusedField returns the focused form field
func (h *Handler) FocusedField() string {
	return h.form.Focused()
}

// FilterCursor returns the highlighted filter row
func (h *Handler) FilterCursor() int {
	return h.filters.Cursor()
}

// SetFormValues fills the search form, used when a preset runs
func (h *Handler) SetFormValues(query, location string) {
	h.query.SetValue(query)
	h.location.SetValue(location)
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		ti := h.form.FocusedInput()
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		return cmd
	}
	return nil
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeForm
}
