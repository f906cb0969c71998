package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"activityfinder/internal/domain"
	"activityfinder/internal/ui/input/modes"
	"activityfinder/internal/ui/input/types"
	"activityfinder/internal/ui/services/filters"
	"activityfinder/internal/ui/services/search"
)

// chromeHeight is the number of lines used by everything except the cards
const chromeHeight = 17

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Mode           types.Mode
	QueryInput     string
	LocationInput  string
	FocusedField   string
	CanSubmit      bool
	Search         search.State
	Filters        domain.FilterSet
	FilterCursor   int
	Presets        []filters.Preset
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Detail         *domain.Activity
	StatusMessage  string
	StatusIsError  bool
	ShowHelp       bool
	HelpModel      help.Model
	Keys           KeyMap
	Spinner        string
	SkeletonCount  int
	ShowImages     bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// CardsPerScreen returns how many cards fit in a terminal of the given height
func CardsPerScreen(height int) int {
	n := (height - chromeHeight) / CardHeight
	if n < 1 {
		return 1
	}
	return n
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Detail != nil {
		body := r.popupRender.RenderDetail(*state.Detail, state.Width, state.ShowImages)
		return r.popupRender.RenderPopupOverlay(body, state.Height, state.Width, r.styles.DetailBox)
	}

	if state.ShowHelp {
		hm := state.HelpModel
		hm.ShowAll = true
		body := r.styles.Title.Render("Keys") + "\n\n" + hm.View(ModeHelp{Keys: state.Keys, Mode: state.Mode}) +
			"\n\n" + r.styles.Help.Render("press ? to close")
		return r.popupRender.RenderPopupOverlay(body, state.Height, state.Width, r.styles.InfoBox)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(r.styles.Subtitle.Render("From concerts and workshops to festivals and meetups, find your next great experience"))
	content.WriteString("\n\n")
	content.WriteString(r.renderForm(state))
	content.WriteString("\n")
	content.WriteString(r.renderPresets(state))
	content.WriteString("\n")

	if state.Mode == types.ModeFilters {
		content.WriteString(r.renderFilterPanel(state))
	} else {
		if summary := r.renderFilterSummary(state); summary != "" {
			content.WriteString(summary)
			content.WriteString("\n")
		}
		content.WriteString(r.renderResults(state))
	}

	footer := r.renderFooter(state)

	// Push the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - lipgloss.Height(footer); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("✨ Activity Finder")

	var right []string
	if state.Search.Status == search.StatusLoading {
		right = append(right, r.styles.StatusLoading.Render(state.Spinner+" Searching"))
	}
	if n := state.Filters.ActiveCount(); n > 0 {
		right = append(right, r.styles.Badge.Render(fmt.Sprintf("%d", n))+" "+r.styles.Filter.Render(filterWord(n)))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + rightContent
}

func filterWord(n int) string {
	if n == 1 {
		return "filter"
	}
	return "filters"
}

func (r *Renderer) renderForm(state ViewState) string {
	label := func(field, text string) string {
		if state.Mode == types.ModeForm && state.FocusedField == field {
			return r.styles.FocusedLabel.Render(text)
		}
		return r.styles.Label.Render(text)
	}

	var b strings.Builder
	b.WriteString(label(types.FieldQuery, "What"))
	b.WriteString(state.QueryInput)
	b.WriteString("\n")
	b.WriteString(label(types.FieldLocation, "Where"))
	b.WriteString(state.LocationInput)
	b.WriteString("\n")

	button := "Find My Next Adventure"
	if state.Search.Status == search.StatusLoading {
		button = "Searching..."
	}
	if state.CanSubmit && state.Mode == types.ModeForm {
		b.WriteString(r.styles.Button.Render(button))
	} else {
		b.WriteString(r.styles.ButtonOff.Render(button))
	}
	return b.String()
}

func (r *Renderer) renderPresets(state ViewState) string {
	if len(state.Presets) == 0 {
		return ""
	}
	parts := make([]string, 0, len(state.Presets))
	for i, p := range state.Presets {
		if i >= 9 {
			break
		}
		parts = append(parts, fmt.Sprintf("%s %s %s",
			r.styles.Highlight.Render(fmt.Sprintf("%d", i+1)),
			p.Category.Icon(),
			p.Label()))
	}
	line := r.styles.Dim.Render("Quick: ") + strings.Join(parts, "  ")
	if state.Width > 4 {
		return lipgloss.NewStyle().MaxWidth(state.Width - 4).Render(line)
	}
	return line
}

func (r *Renderer) renderFilterSummary(state ViewState) string {
	f := state.Filters
	if f.IsEmpty() {
		return ""
	}
	var parts []string
	for _, c := range f.Categories() {
		parts = append(parts, c.Label())
	}
	if f.HasTimeFilter() {
		parts = append(parts, f.TimeFilter().Label())
	}
	return r.styles.Filter.Render("Filters: "+strings.Join(parts, ", ")) +
		r.styles.Dim.Render("  (c clear all)")
}

func (r *Renderer) renderFilterPanel(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Filter Events"))
	if state.Filters.ActiveCount() > 0 {
		b.WriteString("  ")
		b.WriteString(r.styles.Badge.Render(fmt.Sprintf("%d", state.Filters.ActiveCount())))
		b.WriteString(r.styles.Dim.Render("  c clear all"))
	}
	b.WriteString("\n")

	items := modes.FilterItems()
	for i, item := range items {
		if i == 0 {
			b.WriteString(r.styles.Dim.Render("Categories"))
			b.WriteString("\n")
		}
		if item.IsTime && (i == 0 || !items[i-1].IsTime) {
			b.WriteString(r.styles.Dim.Render("When"))
			b.WriteString("\n")
		}

		var mark string
		if item.IsTime {
			mark = "( )"
			if state.Filters.TimeFilter() == item.TimeFilter {
				mark = "(•)"
			}
		} else {
			mark = "[ ]"
			if state.Filters.Has(item.Category) {
				mark = "[x]"
			}
		}

		label := item.Label
		if item.Icon != "" {
			label = item.Icon + " " + label
		}
		line := fmt.Sprintf("  %s %s", mark, label)
		if i == state.FilterCursor {
			line = r.styles.Highlight.Render("▸" + line[1:])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (r *Renderer) renderResults(state ViewState) string {
	st := state.Search
	width := state.Width - 4
	if width <= 0 {
		width = 76
	}

	var b strings.Builder
	switch st.Status {
	case search.StatusLoading:
		b.WriteString(r.styles.Header.Render(state.Spinner + " " + LoadingHeading))
		b.WriteString("\n")
		n := state.SkeletonCount
		if n > state.ViewportHeight {
			n = state.ViewportHeight
		}
		for i := 0; i < n; i++ {
			b.WriteString(r.cardRender.RenderSkeleton(width))
			b.WriteString("\n\n")
		}
		return strings.TrimSuffix(b.String(), "\n\n")

	case search.StatusError:
		b.WriteString(r.styles.Header.Render(ErrorHeading))
		b.WriteString("\n")
		b.WriteString(r.styles.StatusError.Render(st.ErrorMessage))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Press r to try again"))
		return b.String()

	case search.StatusSuccess:
		if len(st.Activities) == 0 {
			b.WriteString(r.styles.Header.Render("🔍 " + EmptyHeading))
			b.WriteString("\n")
			b.WriteString(r.styles.Dim.Render(EmptyHint))
			b.WriteString("\n")
			b.WriteString(r.styles.Dim.Render("Press r to search again"))
			return b.String()
		}
		b.WriteString(r.styles.Header.Render(ResultsHeading(len(st.Activities))))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(ResultsSubheading))
		b.WriteString("\n")
		b.WriteString(r.renderCards(state, width))
		return b.String()

	default:
		b.WriteString(r.styles.Header.Render("Discover Amazing Activities"))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Type what you are looking for and where, or pick a quick search."))
		return b.String()
	}
}

func (r *Renderer) renderCards(state ViewState, width int) string {
	activities := state.Search.Activities
	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}

	start := state.ViewportOffset
	if start < 0 || start >= len(activities) {
		start = 0
	}
	end := start + height
	if end > len(activities) {
		end = len(activities)
	}

	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		selected := i == state.Cursor && state.Mode == types.ModeBrowse
		lines = append(lines, r.cardRender.RenderCard(activities[i], selected, width), "")
	}
	if below := len(activities) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return strings.TrimSuffix(strings.Join(lines, "\n"), "\n")
}

func (r *Renderer) renderFooter(state ViewState) string {
	var b strings.Builder
	if state.StatusMessage != "" {
		if state.StatusIsError {
			b.WriteString(r.styles.StatusError.Render(state.StatusMessage))
		} else {
			b.WriteString(r.styles.StatusSuccess.Render(state.StatusMessage))
		}
		b.WriteString("\n")
	}
	b.WriteString(state.HelpModel.View(ModeHelp{Keys: state.Keys, Mode: state.Mode}))
	return b.String()
}
