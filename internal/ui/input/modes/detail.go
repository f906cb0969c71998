package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"activityfinder/internal/ui/input/types"
)

// DetailMode handles keys while an activity is open
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q", "enter", "backspace":
		return []types.Action{
			types.CloseDetailAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true

	case "o":
		if ctx.CurrentLink() == "" {
			return []types.Action{types.StatusAction{Message: "This event has no link"}}, true
		}
		return []types.Action{types.OpenLinkAction{}}, true

	case "y":
		if ctx.CurrentLink() == "" {
			return []types.Action{types.StatusAction{Message: "This event has no link"}}, true
		}
		return []types.Action{types.CopyLinkAction{}}, true

	case "p", "d":
		return []types.Action{types.ShowDescriptionAction{}}, true
	}

	return nil, true
}
