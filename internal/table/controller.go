package table

import (
	"context"
	"sync"

	"github.com/handiism/artic-table/internal/logging"
	"github.com/handiism/artic-table/internal/model"
	"github.com/rs/zerolog"
)

// DefaultRowsPerPage is the page size used when none is configured.
const DefaultRowsPerPage = 12

// Fetcher returns one 1-based page of artworks.
type Fetcher interface {
	FetchPage(ctx context.Context, page, limit int) (*model.Page, error)
}

// Level indicates the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notification is a transient message for the user.
type Notification struct {
	Level   Level
	Summary string
	Detail  string
}

const (
	detailLoadFailed = "Failed to fetch artworks."
	detailBulkFailed = "Failed to fetch artworks for selection."
)

// State is a snapshot of the controller state.
type State struct {
	// Page is 0-based.
	Page         int
	RowsPerPage  int
	TotalRecords int
	Rows         []model.Artwork
	Loading      bool
	Selected     int
}

// PageCount returns the number of pages at the current page size.
func (s State) PageCount() int {
	if s.RowsPerPage <= 0 {
		return 0
	}
	return (s.TotalRecords + s.RowsPerPage - 1) / s.RowsPerPage
}

// First returns the 0-based offset of the first row on the current page.
func (s State) First() int {
	return s.Page * s.RowsPerPage
}

// Controller owns the table state and the mutation entry points.
//
// Controller is safe for concurrent use, though the view calls it from a
// single goroutine; network calls never hold the lock.
type Controller struct {
	fetcher  Fetcher
	onNotify func(Notification)
	logger   zerolog.Logger

	mu           sync.Mutex
	page         int
	rowsPerPage  int
	totalRecords int
	rows         []model.Artwork
	loading      bool
	selected     *model.Selection
	generation   uint64
}

// NewController creates a Controller on page 0.
//
// onNotify receives user-facing notifications and may be nil.
func NewController(fetcher Fetcher, rowsPerPage int, onNotify func(Notification)) *Controller {
	if rowsPerPage <= 0 {
		rowsPerPage = DefaultRowsPerPage
	}
	return &Controller{
		fetcher:     fetcher,
		onNotify:    onNotify,
		logger:      logging.NewLogger("table"),
		rowsPerPage: rowsPerPage,
		selected:    model.NewSelection(),
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Page:         c.page,
		RowsPerPage:  c.rowsPerPage,
		TotalRecords: c.totalRecords,
		Rows:         append([]model.Artwork(nil), c.rows...),
		Loading:      c.loading,
		Selected:     c.selected.Len(),
	}
}

// SetPage moves to the 0-based page p. Once the total is known p is
// clamped to the last page. It reports whether the page changed; the
// caller starts a load when it did.
func (c *Controller) SetPage(p int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p < 0 {
		p = 0
	}
	if c.totalRecords > 0 {
		last := (c.totalRecords+c.rowsPerPage-1)/c.rowsPerPage - 1
		if p > last {
			p = last
		}
	}
	if p == c.page {
		return false
	}
	c.page = p
	return true
}

// SetRowsPerPage changes the page size, keeping the first visible row on
// screen. It reports whether the size changed.
func (c *Controller) SetRowsPerPage(n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n <= 0 || n == c.rowsPerPage {
		return false
	}
	first := c.page * c.rowsPerPage
	c.rowsPerPage = n
	c.page = first / n
	return true
}

func (c *Controller) notify(n Notification) {
	if c.onNotify != nil {
		c.onNotify(n)
	}
}
