package modes

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"activityfinder/internal/ui/input/types"
)

type BrowseMode struct{}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return navigate(ctx, "up")

	case tea.KeyDown:
		return navigate(ctx, "down")

	case tea.KeyPgUp:
		return navigate(ctx, "pageup")

	case tea.KeyPgDown:
		return navigate(ctx, "pagedown")

	case tea.KeyHome:
		return navigate(ctx, "home")

	case tea.KeyEnd:
		return navigate(ctx, "end")

	case tea.KeyEnter:
		if ctx.ResultCount() > 0 {
			return []types.Action{types.OpenDetailAction{Index: -1}}, true
		}
		return nil, false
	}

	switch key := msg.String(); key {
	case "j":
		return navigate(ctx, "down")

	case "k":
		return navigate(ctx, "up")

	case "g":
		return navigate(ctx, "home")

	case "G":
		return navigate(ctx, "end")

	case "/", "i", "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeForm}}, true

	case "f", "ctrl+f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilters}}, true

	case "c":
		if ctx.HasActiveFilters() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case "r":
		if ctx.HasSearched() && !ctx.IsLoading() {
			return []types.Action{types.RetryAction{}}, true
		}
		return nil, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		if n <= ctx.PresetCount() {
			return []types.Action{types.QuickSearchAction{Index: n - 1}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

func navigate(ctx types.Context, direction string) ([]types.Action, bool) {
	if ctx.ResultCount() == 0 {
		return nil, true
	}
	return []types.Action{types.NavigateAction{Direction: direction}}, true
}
