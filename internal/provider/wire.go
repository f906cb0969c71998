package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"activityfinder/internal/domain"
)

// SearchPath is appended to the configured endpoint
const SearchPath = "/api/activities/search"

type searchRequest struct {
	Query    string        `json:"query"`
	Location string        `json:"location"`
	Filters  filterPayload `json:"filters"`
}

type filterPayload struct {
	Categories []string `json:"categories"`
	TimeFilter *string  `json:"timeFilter"`
}

type searchResponse struct {
	Success    bool           `json:"success"`
	Activities []wireActivity `json:"activities"`
	Total      int            `json:"total"`
	Error      string         `json:"error"`
}

// wireActivity accepts ids sent as strings or numbers
type wireActivity struct {
	ID          flexibleID `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Category    string     `json:"category"`
	Source      string     `json:"source"`
	Image       string     `json:"image"`
	Link        string     `json:"link"`
}

type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("activity id must be a string or number: %w", err)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*id = flexibleID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = flexibleID(n.String())
	return nil
}

func newSearchRequest(c domain.SearchCriteria) searchRequest {
	c = c.Normalized()

	cats := make([]string, 0, len(c.Filters.Categories()))
	for _, id := range c.Filters.Categories() {
		cats = append(cats, string(id))
	}

	var tf *string
	if c.Filters.HasTimeFilter() {
		s := string(c.Filters.TimeFilter())
		tf = &s
	}

	return searchRequest{
		Query:    c.Query,
		Location: c.Location,
		Filters: filterPayload{
			Categories: cats,
			TimeFilter: tf,
		},
	}
}

func (w wireActivity) toDomain() domain.Activity {
	return domain.Activity{
		ID:          string(w.ID),
		Title:       w.Title,
		Description: w.Description,
		Location:    w.Location,
		Date:        w.Date,
		Time:        w.Time,
		Category:    w.Category,
		Source:      w.Source,
		Image:       w.Image,
		Link:        w.Link,
	}
}
