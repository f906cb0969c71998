//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// searchRequest mirrors the body the binary posts to the provider
type searchRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
	Filters  struct {
		Categories []string `json:"categories"`
		TimeFilter *string  `json:"timeFilter"`
	} `json:"filters"`
}

// fakeProvider is an in-process search endpoint the binary talks to over loopback
type fakeProvider struct {
	*httptest.Server

	mu       sync.Mutex
	requests []searchRequest
	status   int
	body     any
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	fp := &fakeProvider{
		status: http.StatusOK,
		body: map[string]any{
			"success": true,
			"total":   2,
			"activities": []map[string]any{
				{
					"id":          1,
					"title":       "Jazz Night at Blue Note",
					"description": "<p>Live <b>jazz</b> all night</p>",
					"location":    "Blue Note, NYC",
					"date":        "2026-10-17",
					"time":        "20:00",
					"category":    "music",
					"source":      "Eventbrite",
					"link":        "https://example.com/jazz",
				},
				{
					"id":       "abc",
					"title":    "Street Food Market",
					"location": "Brooklyn",
					"date":     "2026-10-18",
					"category": "food",
					"source":   "Meetup",
				},
			},
		},
	}
	fp.Server = httptest.NewServer(http.HandlerFunc(fp.handle))
	t.Cleanup(fp.Close)
	return fp
}

func (fp *fakeProvider) handle(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	fp.mu.Lock()
	fp.requests = append(fp.requests, req)
	status, body := fp.status, fp.body
	fp.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Fail makes every following search answer with a provider error
func (fp *fakeProvider) Fail(message string) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.status = http.StatusInternalServerError
	fp.body = map[string]any{"success": false, "error": message}
}

// Requests returns a copy of the searches received so far
func (fp *fakeProvider) Requests() []searchRequest {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	out := make([]searchRequest, len(fp.requests))
	copy(out, fp.requests)
	return out
}

// RequestCount returns how many searches were received
func (fp *fakeProvider) RequestCount() int {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return len(fp.requests)
}
