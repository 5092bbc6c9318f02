package artic

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/handiism/artic-table/internal/artic/dto"
	"github.com/handiism/artic-table/internal/http"
	"github.com/handiism/artic-table/internal/logging"
	"github.com/handiism/artic-table/internal/model"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public catalog endpoint.
const DefaultBaseURL = "https://api.artic.edu/api/v1"

// Fields is the projection requested for every artwork.
var Fields = []string{
	"id",
	"title",
	"place_of_origin",
	"artist_display",
	"inscriptions",
	"date_start",
	"date_end",
}

var (
	// ErrFetchFailed wraps every transport, status or decoding failure.
	ErrFetchFailed = errors.New("fetch artworks failed")

	// ErrInvalidRequest is returned for a page or limit below 1.
	ErrInvalidRequest = errors.New("invalid page request")
)

// Fetcher turns (page, limit) requests into normalized pages.
//
// Fetcher holds no state besides its HTTP client and never retries.
type Fetcher struct {
	client  *http.Client
	baseURL string
	logger  zerolog.Logger
}

// NewFetcher creates a Fetcher for the catalog at baseURL.
func NewFetcher(client *http.Client, baseURL string) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fetcher{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logging.NewLogger("artic"),
	}
}

// FetchPage requests the 1-based page at the given page size.
//
// The returned page echoes page as CurrentPage and holds at most limit
// rows. Any failure is wrapped in ErrFetchFailed.
func (f *Fetcher) FetchPage(ctx context.Context, page, limit int) (*model.Page, error) {
	if page < 1 || limit < 1 {
		return nil, fmt.Errorf("%w: page=%d limit=%d", ErrInvalidRequest, page, limit)
	}

	reqURL := f.pageURL(page, limit)
	f.logger.Debug().Int("page", page).Int("limit", limit).Msg("Fetching page")

	var resp dto.ArtworksResponse
	if err := f.client.GetJSON(ctx, reqURL, &resp); err != nil {
		f.logger.Warn().Err(err).Int("page", page).Int("limit", limit).Msg("Page fetch failed")
		return nil, fmt.Errorf("%w: page %d: %w", ErrFetchFailed, page, err)
	}

	p := resp.ToPage(page, limit)
	if len(p.Rows) > limit {
		p.Rows = p.Rows[:limit]
	}

	f.logger.Debug().
		Int("page", page).
		Int("rows", len(p.Rows)).
		Int("total", p.Total).
		Msg("Page fetched")

	return p, nil
}

func (f *Fetcher) pageURL(page, limit int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("fields", strings.Join(Fields, ","))
	return f.baseURL + "/artworks?" + q.Encode()
}
