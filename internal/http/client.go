package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/handiism/artic-table/internal/metrics"
)

// DefaultUserAgent identifies artic-table to the catalog.
const DefaultUserAgent = "artic-table (https://github.com/handiism/artic-table)"

// Client wraps HTTP operations with catalog-specific configuration.
//
// Client provides:
//   - User-Agent and AIC-User-Agent headers, as the catalog asks clients to send
//   - Timeout handling
//   - JSON decoding of response bodies
//   - Request metrics
//
// Example usage:
//
//	client := NewClient(DefaultUserAgent, 30*time.Second)
//
//	var resp dto.ArtworksResponse
//	err := client.GetJSON(ctx, "https://api.artic.edu/api/v1/artworks?page=1", &resp)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// A zero timeout disables it, leaving ctx as the only way to abandon a
// request.
func NewClient(userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 2xx (a *StatusError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("AIC-User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// GetJSON performs a GET request and decodes the JSON body into v.
//
// Example:
//
//	var page dto.ArtworksResponse
//	if err := client.GetJSON(ctx, url, &page); err != nil {
//	    return err
//	}
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
