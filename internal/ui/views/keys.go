package views

import (
	"github.com/charmbracelet/bubbles/key"

	"activityfinder/internal/ui/input/types"
)

// KeyMap documents the key bindings of every mode. Input handling lives in
// the input modes; these bindings only feed the help views.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Page        key.Binding
	Ends        key.Binding
	Open        key.Binding
	Search      key.Binding
	Filters     key.Binding
	Clear       key.Binding
	Retry       key.Binding
	QuickSearch key.Binding
	NextField   key.Binding
	Submit      key.Binding
	Back        key.Binding
	Toggle      key.Binding
	OpenLink    key.Binding
	CopyLink    key.Binding
	Description key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the bindings handled by the input modes
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Page:        key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		Ends:        key.NewBinding(key.WithKeys("home", "end", "g", "G"), key.WithHelp("g/G", "top/bottom")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:      key.NewBinding(key.WithKeys("/", "i", "s"), key.WithHelp("/", "edit search")),
		Filters:     key.NewBinding(key.WithKeys("f", "ctrl+f"), key.WithHelp("f", "filters")),
		Clear:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Retry:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "search again")),
		QuickSearch: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "quick search")),
		NextField:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "find my next adventure")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		OpenLink:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "get tickets")),
		CopyLink:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "share link")),
		Description: key.NewBinding(key.WithKeys("p", "d"), key.WithHelp("p", "full description")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ModeHelp adapts the key map to help.KeyMap for one input mode
type ModeHelp struct {
	Keys KeyMap
	Mode types.Mode
}

// ShortHelp returns the bindings shown in the footer
func (h ModeHelp) ShortHelp() []key.Binding {
	k := h.Keys
	switch h.Mode {
	case types.ModeForm:
		return []key.Binding{k.NextField, k.Submit, k.Filters, k.Back}
	case types.ModeFilters:
		return []key.Binding{k.Up, k.Down, k.Toggle, k.Clear, k.Back}
	case types.ModeDetail:
		return []key.Binding{k.OpenLink, k.CopyLink, k.Description, k.Back}
	default:
		return []key.Binding{k.Up, k.Down, k.Open, k.Search, k.Filters, k.Help, k.Quit}
	}
}

// FullHelp returns every binding grouped by mode
func (h ModeHelp) FullHelp() [][]key.Binding {
	k := h.Keys
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.Ends, k.Open},
		{k.Search, k.NextField, k.Submit, k.QuickSearch, k.Retry},
		{k.Filters, k.Toggle, k.Clear, k.Back},
		{k.OpenLink, k.CopyLink, k.Description, k.Help, k.Quit},
	}
}
