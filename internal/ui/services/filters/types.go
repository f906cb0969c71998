package filters

import "activityfinder/internal/domain"

// Preset is a canned quick search
type Preset struct {
	Query    string
	Location string
	// Category only picks the icon shown next to the preset
	Category domain.CategoryID
}

// Label renders the preset as "query in location"
func (p Preset) Label() string {
	return p.Query + " in " + p.Location
}

// DefaultPresets returns the built-in quick searches
func DefaultPresets() []Preset {
	return []Preset{
		{Query: "live music", Location: "New York", Category: domain.CategoryMusic},
		{Query: "food festival", Location: "San Francisco", Category: domain.CategoryFood},
		{Query: "tech meetup", Location: "Seattle", Category: domain.CategoryTech},
		{Query: "art gallery", Location: "Los Angeles", Category: domain.CategoryArt},
	}
}
