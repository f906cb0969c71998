package domain

// CategoryID identifies one of the fixed activity categories
type CategoryID string

const (
	CategoryMusic   CategoryID = "music"
	CategoryFood    CategoryID = "food"
	CategoryTech    CategoryID = "tech"
	CategoryArt     CategoryID = "art"
	CategoryFitness CategoryID = "fitness"
	CategorySocial  CategoryID = "social"
)

// Category describes how a category is presented
type Category struct {
	ID    CategoryID
	Label string
	Icon  string
}

// categoryCatalog is also the canonical ordering used by FilterSet
var categoryCatalog = []Category{
	{ID: CategoryMusic, Label: "Music & Concerts", Icon: "♫"},
	{ID: CategoryFood, Label: "Food & Drink", Icon: "🍴"},
	{ID: CategoryTech, Label: "Tech & Business", Icon: "⌨"},
	{ID: CategoryArt, Label: "Arts & Culture", Icon: "🎨"},
	{ID: CategoryFitness, Label: "Health & Fitness", Icon: "💪"},
	{ID: CategorySocial, Label: "Social & Networking", Icon: "👥"},
}

// Categories returns the category catalog in display order
func Categories() []Category {
	out := make([]Category, len(categoryCatalog))
	copy(out, categoryCatalog)
	return out
}

// ParseCategory converts a raw identifier into a known CategoryID
func ParseCategory(s string) (CategoryID, bool) {
	id := CategoryID(s)
	return id, categoryIndex(id) >= 0
}

// Label returns the display label, or the raw identifier for unknown categories
func (c CategoryID) Label() string {
	if i := categoryIndex(c); i >= 0 {
		return categoryCatalog[i].Label
	}
	return string(c)
}

// Icon returns the display icon for the category
func (c CategoryID) Icon() string {
	if i := categoryIndex(c); i >= 0 {
		return categoryCatalog[i].Icon
	}
	return "•"
}

func categoryIndex(id CategoryID) int {
	for i, c := range categoryCatalog {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// TimeFilterID identifies a time window. The zero value means "any time".
type TimeFilterID string

const (
	TimeAny         TimeFilterID = ""
	TimeToday       TimeFilterID = "today"
	TimeTomorrow    TimeFilterID = "tomorrow"
	TimeThisWeek    TimeFilterID = "this-week"
	TimeThisWeekend TimeFilterID = "this-weekend"
	TimeNextWeek    TimeFilterID = "next-week"
	TimeThisMonth   TimeFilterID = "this-month"
)

// TimeFilter describes how a time window is presented
type TimeFilter struct {
	ID    TimeFilterID
	Label string
}

var timeFilterCatalog = []TimeFilter{
	{ID: TimeToday, Label: "Today"},
	{ID: TimeTomorrow, Label: "Tomorrow"},
	{ID: TimeThisWeek, Label: "This Week"},
	{ID: TimeThisWeekend, Label: "This Weekend"},
	{ID: TimeNextWeek, Label: "Next Week"},
	{ID: TimeThisMonth, Label: "This Month"},
}

// TimeFilters returns the selectable time windows, excluding "any time"
func TimeFilters() []TimeFilter {
	out := make([]TimeFilter, len(timeFilterCatalog))
	copy(out, timeFilterCatalog)
	return out
}

// ParseTimeFilter converts a raw identifier into a TimeFilterID.
// The empty string parses to TimeAny.
func ParseTimeFilter(s string) (TimeFilterID, bool) {
	id := TimeFilterID(s)
	if id == TimeAny {
		return TimeAny, true
	}
	for _, tf := range timeFilterCatalog {
		if tf.ID == id {
			return id, true
		}
	}
	return TimeAny, false
}

// Label returns the display label for the time window
func (t TimeFilterID) Label() string {
	if t == TimeAny {
		return "Any time"
	}
	for _, tf := range timeFilterCatalog {
		if tf.ID == t {
			return tf.Label
		}
	}
	return string(t)
}
