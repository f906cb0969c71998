package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"activityfinder/internal/domain"
)

// CardHeight is the number of lines one card takes, including the gap below it
const CardHeight = 5

// CardRenderer renders activity cards and their loading placeholders
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// RenderCard renders one activity as a four line card
func (cr *CardRenderer) RenderCard(a domain.Activity, selected bool, width int) string {
	inner := width - 2 // border and padding
	if inner < 20 {
		inner = 20
	}

	icon := domain.CategoryID(a.Category).Icon()
	category := ""
	if a.Category != "" {
		category = lipgloss.NewStyle().
			Foreground(lipgloss.Color(CategoryColor(a.Category))).
			Render(domain.CategoryID(a.Category).Label())
	}

	title := a.Title
	if title == "" {
		title = "Untitled event"
	}
	if icon != "" {
		title = icon + " " + title
	}
	titleWidth := inner - lipgloss.Width(category) - 2
	titleLine := cr.styles.CardTitle.Render(Truncate(title, titleWidth))
	if category != "" {
		gap := inner - lipgloss.Width(titleLine) - lipgloss.Width(category)
		if gap < 1 {
			gap = 1
		}
		titleLine += strings.Repeat(" ", gap) + category
	}

	meta := "📅 " + When(a, false)
	if a.Location != "" {
		meta += "   📍 " + a.Location
	}

	source := ""
	if a.Source != "" {
		source = "via " + a.Source
	}

	lines := []string{
		titleLine,
		cr.styles.Meta.Render(Truncate(meta, inner)),
		cr.styles.Dim.Render(Summary(a.Description, inner)),
		cr.styles.Source.Render(Truncate(source, inner)),
	}

	style := cr.styles.Card
	if selected {
		style = cr.styles.CardSelected
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderSkeleton renders a grey placeholder card
func (cr *CardRenderer) RenderSkeleton(width int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	bar := func(ratio float64) string {
		return cr.styles.Skeleton.Render(strings.Repeat("▆", int(float64(inner)*ratio)))
	}
	lines := []string{bar(0.6), bar(0.4), bar(0.9), bar(0.2)}
	return cr.styles.Card.Render(strings.Join(lines, "\n"))
}
