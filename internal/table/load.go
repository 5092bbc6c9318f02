package table

import (
	"context"

	"github.com/handiism/artic-table/internal/metrics"
	"github.com/handiism/artic-table/internal/model"
)

// LoadRequest identifies one load cycle.
type LoadRequest struct {
	Generation uint64

	// Page is 1-based, as the catalog expects.
	Page  int
	Limit int
}

// LoadResult is the outcome of a LoadRequest.
type LoadResult struct {
	Request LoadRequest
	Page    *model.Page
	Err     error
}

// BeginLoad starts a load cycle for the current page and size. Any load
// still in flight becomes stale.
func (c *Controller) BeginLoad() LoadRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = true
	c.generation++

	req := LoadRequest{
		Generation: c.generation,
		Page:       c.page + 1,
		Limit:      c.rowsPerPage,
	}
	c.logger.Debug().
		Uint64("generation", req.Generation).
		Int("page", req.Page).
		Int("rows_per_page", req.Limit).
		Msg("Fetching page")
	return req
}

// Load fetches the page of req. It does not touch controller state and may
// run on any goroutine.
func (c *Controller) Load(ctx context.Context, req LoadRequest) LoadResult {
	page, err := c.fetcher.FetchPage(ctx, req.Page, req.Limit)
	return LoadResult{Request: req, Page: page, Err: err}
}

// ApplyLoad commits res if it belongs to the latest load cycle and reports
// whether it did.
//
// On success rows and total are replaced. On failure they keep their prior
// values and one error notification is emitted. Either way loading ends.
func (c *Controller) ApplyLoad(res LoadResult) bool {
	c.mu.Lock()

	if res.Request.Generation != c.generation {
		current := c.generation
		c.mu.Unlock()
		metrics.StaleResponsesTotal.Inc()
		c.logger.Debug().
			Uint64("generation", res.Request.Generation).
			Uint64("current", current).
			Int("page", res.Request.Page).
			Msg("Discarding stale page")
		return false
	}

	c.loading = false

	if res.Err != nil {
		c.mu.Unlock()
		metrics.FetchFailuresTotal.WithLabelValues("page").Inc()
		c.logger.Error().
			Err(res.Err).
			Int("page", res.Request.Page).
			Int("rows_per_page", res.Request.Limit).
			Msg("Page load failed")
		c.notify(Notification{Level: LevelError, Summary: "Error", Detail: detailLoadFailed})
		return true
	}

	c.rows = res.Page.Rows
	c.totalRecords = res.Page.Total
	c.mu.Unlock()

	c.logger.Info().
		Int("page", res.Request.Page).
		Int("rows", len(res.Page.Rows)).
		Int("total", res.Page.Total).
		Msg("Page loaded")
	return true
}

// Reload runs a full load cycle for the current page and returns the
// fetch error, if any, after it has been reported.
func (c *Controller) Reload(ctx context.Context) error {
	res := c.Load(ctx, c.BeginLoad())
	c.ApplyLoad(res)
	return res.Err
}
