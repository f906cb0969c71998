package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"activityfinder/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/", opts...)
	require.NoError(t, err)
	return c
}

func TestSearchSendsRequestContract(t *testing.T) {
	var got map[string]any
	var headers http.Header
	var path string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		path = r.URL.Path
		headers = r.Header.Clone()
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"activities":[],"total":0}`))
	})

	criteria := domain.SearchCriteria{
		Query:    "  jazz ",
		Location: " NYC\t",
		Filters:  domain.NewFilterSet([]domain.CategoryID{domain.CategoryArt, domain.CategoryMusic}, domain.TimeThisWeekend),
	}
	acts, err := c.Search(context.Background(), criteria)
	require.NoError(t, err)
	assert.NotNil(t, acts)
	assert.Empty(t, acts)

	assert.Equal(t, SearchPath, path)
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	_, err = uuid.Parse(headers.Get("X-Request-ID"))
	assert.NoError(t, err, "request id should be a uuid")

	assert.Equal(t, "jazz", got["query"])
	assert.Equal(t, "NYC", got["location"])
	filters, ok := got["filters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"music", "art"}, filters["categories"])
	assert.Equal(t, "this-weekend", filters["timeFilter"])
}

func TestSearchEmptyFiltersEncoding(t *testing.T) {
	var raw string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		raw = string(body)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	acts, err := c.Search(context.Background(), domain.SearchCriteria{Query: "food", Location: "SF"})
	require.NoError(t, err)
	assert.NotNil(t, acts, "missing activities decode to an empty slice")
	assert.JSONEq(t, `{"query":"food","location":"SF","filters":{"categories":[],"timeFilter":null}}`, raw)
}

func TestSearchDecodesActivities(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"success": true,
			"total": 2,
			"activities": [
				{"id": 42, "title": "Jazz Night", "location": "Blue Note", "date": "2025-06-01", "time": "20:00",
				 "category": "music", "source": "eventbrite", "link": "https://example.com/42"},
				{"id": "abc", "title": "Gallery Walk", "description": "Open studios", "category": "art"}
			]
		}`))
	})

	acts, err := c.Search(context.Background(), domain.SearchCriteria{Query: "jazz", Location: "NYC"})
	require.NoError(t, err)
	require.Len(t, acts, 2)

	assert.Equal(t, domain.Activity{
		ID:       "42",
		Title:    "Jazz Night",
		Location: "Blue Note",
		Date:     "2025-06-01",
		Time:     "20:00",
		Category: "music",
		Source:   "eventbrite",
		Link:     "https://example.com/42",
	}, acts[0])
	assert.Equal(t, "abc", acts[1].ID)
	assert.Equal(t, "Open studios", acts[1].Description)
}

func TestSearchFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   domain.FailureKind
		code   int
	}{
		{"server error", http.StatusInternalServerError, `{"success":false,"error":"db down"}`, domain.FailureTransport, 500},
		{"bad request plain body", http.StatusBadRequest, `nope`, domain.FailureTransport, 400},
		{"success false", http.StatusOK, `{"success":false,"error":"geocoding failed"}`, domain.FailureProvider, 0},
		{"malformed json", http.StatusOK, `{"success":tru`, domain.FailureTransport, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			acts, err := c.Search(context.Background(), domain.SearchCriteria{Query: "jazz", Location: "NYC"})
			require.Error(t, err)
			assert.Nil(t, acts)
			assert.Equal(t, tt.kind, domain.ClassifyFailure(err))

			var terr *domain.TransportError
			if tt.kind == domain.FailureTransport {
				require.ErrorAs(t, err, &terr)
				assert.Equal(t, tt.code, terr.StatusCode)
			}
		})
	}
}

func TestSearchProviderErrorKeepsMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"upstream quota"}`))
	})

	_, err := c.Search(context.Background(), domain.SearchCriteria{Query: "jazz", Location: "NYC"})
	var perr *domain.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "upstream quota", perr.Message)
}

func TestSearchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	require.NoError(t, err)

	_, err = c.Search(context.Background(), domain.SearchCriteria{Query: "jazz", Location: "NYC"})
	var terr *domain.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 0, terr.StatusCode)
}

func TestSearchHonorsContext(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Search(ctx, domain.SearchCriteria{Query: "jazz", Location: "NYC"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSearchRateLimited(t *testing.T) {
	var calls atomic.Int32
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"success":true,"activities":[]}`))
	}, WithRateLimiter(limiter))

	criteria := domain.SearchCriteria{Query: "jazz", Location: "NYC"}
	_, err := c.Search(context.Background(), criteria)
	require.NoError(t, err)

	// The second request cannot get a token before the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Search(ctx, criteria)
	require.Error(t, err)
	assert.Equal(t, domain.FailureTransport, domain.ClassifyFailure(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewClientValidatesEndpoint(t *testing.T) {
	for _, bad := range []string{"", "localhost:3000", "ftp://example.com", "http://"} {
		_, err := NewClient(bad)
		assert.Error(t, err, bad)
	}

	c, err := NewClient("https://api.example.com/base/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/base/api/activities/search", c.Endpoint())
}

func TestNewLimiter(t *testing.T) {
	assert.Equal(t, rate.Inf, NewLimiter(0, 0).Limit())
	assert.Equal(t, 1, NewLimiter(0, 0).Burst())

	l := NewLimiter(2.5, 4)
	assert.Equal(t, rate.Limit(2.5), l.Limit())
	assert.Equal(t, 4, l.Burst())
}
