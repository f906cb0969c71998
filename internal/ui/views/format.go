package views

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"activityfinder/internal/domain"
)

// FallbackImageURL is shown for activities without an image
const FallbackImageURL = "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=600&h=400&fit=crop"

// Result area headings
const (
	LoadingHeading    = "Discovering perfect events for you..."
	ErrorHeading      = "Oops! Something went wrong"
	EmptyHeading      = "No events found in your area"
	EmptyHint         = "Don't worry! Try expanding your search or exploring different activities"
	ResultsSubheading = "Ready to create unforgettable memories? Choose your adventure below"
	NoDescription     = "No description available"
	DateTBD           = "Date TBD"
)

var (
	tagRE   = regexp.MustCompile(`<[^>]*>`)
	clockRE = regexp.MustCompile(`^\d{2}:\d{2}$`)
	spaceRE = regexp.MustCompile(`\s+`)
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04:05Z07:00",
	"15:04Z07:00",
	"3:04 PM",
	"3:04PM",
	"3PM",
	"3 PM",
	"15:04",
}

// ResultsHeading returns the result count heading
func ResultsHeading(count int) string {
	if count == 1 {
		return "1 Amazing Event Found"
	}
	return fmt.Sprintf("%d Amazing Events Found", count)
}

// FormatDate renders a date for a card, or in the long form for the detail view.
// Values that cannot be parsed are shown verbatim.
func FormatDate(value string, long bool) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return DateTBD
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if long {
			return t.Format("Monday, January 2, 2006")
		}
		return t.Format("Jan 2, 2006")
	}
	return value
}

// FormatTime renders a start time as HH:MM. HH:MM input passes through and
// values that cannot be parsed are shown verbatim.
func FormatTime(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || clockRE.MatchString(value) {
		return value
	}
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, strings.ToUpper(value))
		if err == nil {
			return t.Format("15:04")
		}
	}
	return value
}

// PlainDescription strips markup from a provider description
func PlainDescription(description string) string {
	plain := html.UnescapeString(tagRE.ReplaceAllString(description, ""))
	plain = strings.TrimSpace(plain)
	if plain == "" {
		return NoDescription
	}
	return plain
}

// Summary returns the description collapsed onto one line
func Summary(description string, width int) string {
	return Truncate(spaceRE.ReplaceAllString(PlainDescription(description), " "), width)
}

// ImageURL returns the activity image or the fallback
func ImageURL(a domain.Activity) string {
	if strings.TrimSpace(a.Image) == "" {
		return FallbackImageURL
	}
	return a.Image
}

// Truncate shortens s to width terminal cells
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// When renders the date and, if present, the time of an activity
func When(a domain.Activity, long bool) string {
	date := FormatDate(a.Date, long)
	if t := FormatTime(a.Time); t != "" {
		return date + " · " + t
	}
	return date
}
