package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"activityfinder/internal/domain"
)

// detailDescriptionLines caps the description shown inside the popup
const detailDescriptionLines = 8

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup on the screen
func (pr *PopupRenderer) RenderPopupOverlay(popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styledPopup
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styledPopup)
}

// RenderDetail renders the detail view body for an activity
func (pr *PopupRenderer) RenderDetail(a domain.Activity, width int, showImage bool) string {
	inner := width - 10 // popup border, padding and screen margin
	if inner > 90 {
		inner = 90
	}
	if inner < 30 {
		inner = 30
	}

	var b strings.Builder

	title := a.Title
	if title == "" {
		title = "Untitled event"
	}
	b.WriteString(pr.styles.Title.Render(Truncate(title, inner)))
	b.WriteString("\n")
	if a.Category != "" {
		cat := domain.CategoryID(a.Category)
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(CategoryColor(a.Category))).
			Render(cat.Icon() + " " + cat.Label()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			pr.styles.Label.Width(10).Render(label),
			pr.styles.Meta.Render(Truncate(value, inner-11))))
	}
	row("Date", FormatDate(a.Date, true))
	row("Time", FormatTime(a.Time))
	row("Location", a.Location)
	row("Source", a.Source)
	if showImage {
		row("Image", ImageURL(a))
	}
	row("Tickets", a.Link)
	b.WriteString("\n")

	wrapped := lipgloss.NewStyle().Width(inner).Render(PlainDescription(a.Description))
	lines := strings.Split(wrapped, "\n")
	if len(lines) > detailDescriptionLines {
		lines = append(lines[:detailDescriptionLines], pr.styles.Scroll.Render("… press p for the full description"))
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString(pr.styles.Help.Render("o get tickets • y share link • p full description • esc close"))

	return b.String()
}

// RenderDescriptionPlain renders the text shown in the description pager
func RenderDescriptionPlain(a domain.Activity) string {
	var b strings.Builder
	b.WriteString(a.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", lipgloss.Width(a.Title)))
	b.WriteString("\n\n")
	b.WriteString(When(a, true))
	if a.Location != "" {
		b.WriteString("\n")
		b.WriteString(a.Location)
	}
	b.WriteString("\n\n")
	b.WriteString(PlainDescription(a.Description))
	b.WriteString("\n")
	if a.Link != "" {
		b.WriteString("\n")
		b.WriteString(a.Link)
		b.WriteString("\n")
	}
	return b.String()
}
