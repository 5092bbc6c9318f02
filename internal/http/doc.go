// Package http provides an HTTP client configured for the museum catalog API.
//
// The Client in this package handles:
//   - User-Agent headers the catalog asks clients to send
//   - JSON response decoding
//   - Timeout handling
//   - Prometheus request metrics
//
// # Basic Usage
//
//	client := http.NewClient(http.DefaultUserAgent, 30*time.Second)
//
//	var resp dto.ArtworksResponse
//	err := client.GetJSON(ctx, "https://api.artic.edu/api/v1/artworks?page=1&limit=12", &resp)
//
// # Errors
//
// Non-2xx answers are reported as *StatusError so callers can inspect the
// status code with errors.As. Transport errors are returned unchanged.
package http
