package domain

// Activity is a single search hit as returned by the search provider.
// The payload is opaque apart from ID, which identifies the activity.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link"`
}

// ContainsActivity reports whether an activity with the given ID is present in list
func ContainsActivity(list []Activity, id string) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}
