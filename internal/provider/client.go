package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"activityfinder/internal/domain"
)

// maxBodySize bounds how much of a response is read
const maxBodySize = 8 << 20

// Client talks to the remote activity search endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.SugaredLogger
}

// Option configures Client
type Option func(*Client)

// WithHTTPClient overrides the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimiter paces outgoing requests. A nil limiter disables pacing.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewLimiter builds a limiter from requests per second. rps <= 0 means unlimited.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if burst < 1 {
		burst = 1
	}
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, burst)
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// NewClient creates a client for endpoint, which must be an absolute http(s) URL
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: must be an absolute http(s) URL", endpoint)
	}

	c := &Client{
		endpoint:   strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the full search URL
func (c *Client) Endpoint() string {
	return c.endpoint + SearchPath
}

// Search posts criteria to the provider and returns its activities.
// Failures are *domain.TransportError or *domain.ProviderError.
func (c *Client) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Activity, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &domain.TransportError{Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	body, err := json.Marshal(newSearchRequest(criteria))
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := c.logger.With("request_id", requestID)
	log.Debugw("sending search request", "url", req.URL.String(), "filters", criteria.Filters.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var payload searchResponse
	decodeErr := json.Unmarshal(data, &payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && payload.Error != "" {
			log.Warnw("search provider returned error status", "status", resp.StatusCode, "error", payload.Error)
		} else {
			log.Warnw("search provider returned error status", "status", resp.StatusCode)
		}
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if decodeErr != nil {
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", decodeErr)}
	}

	if !payload.Success {
		log.Warnw("search provider reported failure", "error", payload.Error)
		return nil, &domain.ProviderError{Message: payload.Error}
	}

	activities := make([]domain.Activity, 0, len(payload.Activities))
	for _, a := range payload.Activities {
		activities = append(activities, a.toDomain())
	}

	log.Infow("search completed", "count", len(activities), "total", payload.Total)
	return activities, nil
}
