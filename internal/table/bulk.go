package table

import (
	"context"

	"github.com/handiism/artic-table/internal/metrics"
	"github.com/handiism/artic-table/internal/model"
)

// BulkPlan fixes the parameters of one bulk selection.
type BulkPlan struct {
	// Target is the number of identifiers wanted.
	Target int

	// PerPage is the page size for every fetch of the operation, taken
	// from the controller when the plan was made.
	PerPage int

	// Total bounds the scan to the records known to exist.
	Total int
}

// BulkResult is the outcome of a bulk selection.
type BulkResult struct {
	Plan BulkPlan

	// IDs holds the gathered identifiers in catalog order.
	IDs []int

	// PagesFetched counts the pages consumed, failed fetches excluded.
	PagesFetched int

	// Err is the fetch error that stopped the scan early, if any.
	Err error
}

// PlanBulkSelect snapshots the page size and total for selecting the first
// n records. It reports false for n <= 0, in which case nothing should
// happen.
func (c *Controller) PlanBulkSelect(n int) (BulkPlan, bool) {
	if n <= 0 {
		return BulkPlan{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return BulkPlan{Target: n, PerPage: c.rowsPerPage, Total: c.totalRecords}, true
}

// RunBulkSelect fetches pages 1, 2, ... one at a time until plan.Target
// identifiers are gathered or the next page would start past plan.Total.
// A failed fetch stops the scan and is returned in the result with the
// identifiers gathered so far. It does not touch controller state.
func (c *Controller) RunBulkSelect(ctx context.Context, plan BulkPlan) BulkResult {
	res := BulkResult{Plan: plan}
	if plan.Target <= 0 || plan.PerPage <= 0 {
		return res
	}

	res.IDs = make([]int, 0, min(plan.Target, plan.Total))
	for cursor := 1; len(res.IDs) < plan.Target && (cursor-1)*plan.PerPage < plan.Total; cursor++ {
		page, err := c.fetcher.FetchPage(ctx, cursor, plan.PerPage)
		if err != nil {
			res.Err = err
			c.logger.Error().
				Err(err).
				Int("page", cursor).
				Int("gathered", len(res.IDs)).
				Int("target", plan.Target).
				Msg("Bulk selection fetch failed")
			break
		}
		res.PagesFetched++
		metrics.BulkSelectPagesTotal.Inc()

		for _, r := range page.Rows {
			if len(res.IDs) >= plan.Target {
				break
			}
			res.IDs = append(res.IDs, r.ID)
		}
	}

	c.logger.Info().
		Int("target", plan.Target).
		Int("selected", len(res.IDs)).
		Int("pages", res.PagesFetched).
		Msg("Bulk selection finished")
	return res
}

// CommitBulkSelect replaces the whole selection with res.IDs. When the scan
// stopped on an error, one error notification is emitted as well.
func (c *Controller) CommitBulkSelect(res BulkResult) {
	c.mu.Lock()
	c.selected = model.NewSelection(res.IDs...)
	c.mu.Unlock()

	if res.Err != nil {
		metrics.FetchFailuresTotal.WithLabelValues("bulk_select").Inc()
		c.notify(Notification{Level: LevelError, Summary: "Error", Detail: detailBulkFailed})
	}
}

// SelectFirstN plans, runs and commits a bulk selection of the first n
// records. It reports false, without fetching, for n <= 0.
func (c *Controller) SelectFirstN(ctx context.Context, n int) (BulkResult, bool) {
	plan, ok := c.PlanBulkSelect(n)
	if !ok {
		return BulkResult{}, false
	}
	res := c.RunBulkSelect(ctx, plan)
	c.CommitBulkSelect(res)
	return res, true
}
