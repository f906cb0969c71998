package views

import (
	"github.com/charmbracelet/lipgloss"

	"activityfinder/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Dim           lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	Button        lipgloss.Style
	ButtonOff     lipgloss.Style
	Badge         lipgloss.Style
	Filter        lipgloss.Style
	Header        lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardTitle     lipgloss.Style
	Skeleton      lipgloss.Style
	Meta          lipgloss.Style
	Source        lipgloss.Style
	DetailBox     lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	SelectionBg   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(7),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Width(7),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("99")).
			Padding(0, 2),
		ButtonOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("237")).
			Padding(0, 2),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("203")).
			Padding(0, 1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("238")).
			PaddingLeft(1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("99")).
			PaddingLeft(1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Skeleton:  lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

// CategoryColor returns the accent color for a category badge
func CategoryColor(category string) string {
	id, ok := domain.ParseCategory(category)
	if !ok {
		return "245"
	}
	switch id {
	case domain.CategoryMusic:
		return "170" // pink
	case domain.CategoryFood:
		return "214" // orange
	case domain.CategoryTech:
		return "39" // blue
	case domain.CategoryArt:
		return "141" // purple
	case domain.CategoryFitness:
		return "78" // green
	default:
		return "51" // cyan
	}
}
