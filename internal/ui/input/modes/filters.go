package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"activityfinder/internal/domain"
	"activityfinder/internal/ui/input/types"
)

// FilterItem is one row of the filter panel: either a category or a time window
type FilterItem struct {
	Category   domain.CategoryID
	TimeFilter domain.TimeFilterID
	IsTime     bool
	Label      string
	Icon       string
}

// FilterItems returns the filter panel rows: categories first, then time windows
func FilterItems() []FilterItem {
	items := make([]FilterItem, 0, 13)
	for _, c := range domain.Categories() {
		items = append(items, FilterItem{Category: c.ID, Label: c.Label, Icon: c.Icon})
	}
	items = append(items, FilterItem{TimeFilter: domain.TimeAny, IsTime: true, Label: domain.TimeAny.Label()})
	for _, tf := range domain.TimeFilters() {
		items = append(items, FilterItem{TimeFilter: tf.ID, IsTime: true, Label: tf.Label})
	}
	return items
}

// FiltersMode moves a cursor over the filter panel
type FiltersMode struct {
	items  []FilterItem
	cursor int
}

func NewFiltersMode() *FiltersMode {
	return &FiltersMode{items: FilterItems()}
}

func (m *FiltersMode) Name() string {
	return "filters"
}

func (m *FiltersMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FilterCursorAction{Index: m.cursor}}
}

func (m *FiltersMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// Cursor returns the highlighted row
func (m *FiltersMode) Cursor() int {
	return m.cursor
}

func (m *FiltersMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "up", "k":
		return m.move(-1), true

	case "down", "j":
		return m.move(1), true

	case "home", "g":
		return m.move(-len(m.items)), true

	case "end", "G":
		return m.move(len(m.items)), true

	case " ", "enter":
		item := m.items[m.cursor]
		if item.IsTime {
			return []types.Action{types.SetTimeFilterAction{TimeFilter: item.TimeFilter}}, true
		}
		return []types.Action{types.ToggleCategoryAction{Category: item.Category}}, true

	case "c":
		if ctx.HasActiveFilters() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case "esc", "f", "q", "ctrl+f":
		if ctx.HasSearched() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeForm}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, true
}

func (m *FiltersMode) move(delta int) []types.Action {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	return []types.Action{types.FilterCursorAction{Index: m.cursor}}
}
