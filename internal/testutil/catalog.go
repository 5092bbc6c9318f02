// Package testutil provides a fake artwork catalog server for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// FirstID is the identifier of the first record served by FakeCatalog.
// Record i (0-based) has identifier FirstID+i.
const FirstID = 1000

// CatalogRequest records one request received by FakeCatalog.
type CatalogRequest struct {
	Page   int
	Limit  int
	Fields string
}

// FakeCatalog serves GET /artworks over a fixed number of records.
//
// Records are generated: every third record has a null place_of_origin and
// every fourth omits inscriptions entirely, so normalization can be
// observed.
type FakeCatalog struct {
	server *httptest.Server
	total  int

	mu       sync.Mutex
	requests []CatalogRequest
	failures map[int]int
	gates    map[int]chan struct{}
}

// NewFakeCatalog starts a server holding total records.
func NewFakeCatalog(total int) *FakeCatalog {
	fc := &FakeCatalog{
		total:    total,
		failures: make(map[int]int),
		gates:    make(map[int]chan struct{}),
	}
	fc.server = httptest.NewServer(http.HandlerFunc(fc.handle))
	return fc
}

// URL returns the base URL to pass to the fetcher.
func (fc *FakeCatalog) URL() string {
	return fc.server.URL
}

// Close shuts the server down.
func (fc *FakeCatalog) Close() {
	fc.mu.Lock()
	for page, gate := range fc.gates {
		close(gate)
		delete(fc.gates, page)
	}
	fc.mu.Unlock()
	fc.server.Close()
}

// Requests returns the requests received so far.
func (fc *FakeCatalog) Requests() []CatalogRequest {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]CatalogRequest(nil), fc.requests...)
}

// Pages returns the page numbers requested so far, in arrival order.
func (fc *FakeCatalog) Pages() []int {
	reqs := fc.Requests()
	pages := make([]int, len(reqs))
	for i, r := range reqs {
		pages[i] = r.Page
	}
	return pages
}

// ResetRequests forgets recorded requests.
func (fc *FakeCatalog) ResetRequests() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.requests = nil
}

// FailPage makes requests for page answer with status.
func (fc *FakeCatalog) FailPage(page, status int) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.failures[page] = status
}

// BlockPage holds requests for page until the returned release func is
// called. Requests already recorded are unaffected.
func (fc *FakeCatalog) BlockPage(page int) (release func()) {
	gate := make(chan struct{})
	fc.mu.Lock()
	fc.gates[page] = gate
	fc.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			fc.mu.Lock()
			if fc.gates[page] == gate {
				delete(fc.gates, page)
				close(gate)
			}
			fc.mu.Unlock()
		})
	}
}

// ID returns the identifier of record index (0-based).
func ID(index int) int {
	return FirstID + index
}

func (fc *FakeCatalog) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/artworks" {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	page := atoiDefault(q.Get("page"), 1)
	limit := atoiDefault(q.Get("limit"), 12)

	fc.mu.Lock()
	fc.requests = append(fc.requests, CatalogRequest{Page: page, Limit: limit, Fields: q.Get("fields")})
	status, failing := fc.failures[page]
	gate := fc.gates[page]
	fc.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if failing {
		http.Error(w, http.StatusText(status), status)
		return
	}

	start := (page - 1) * limit
	end := min(start+limit, fc.total)
	data := make([]map[string]any, 0, max(end-start, 0))
	for i := start; i < end; i++ {
		data = append(data, record(i))
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (fc.total + limit - 1) / limit
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": data,
		"pagination": map[string]any{
			"total":        fc.total,
			"total_pages":  totalPages,
			"current_page": page,
			"limit":        limit,
		},
	})
}

func record(i int) map[string]any {
	rec := map[string]any{
		"id":              ID(i),
		"title":           fmt.Sprintf("Artwork %d", i+1),
		"place_of_origin": "Chicago",
		"artist_display":  fmt.Sprintf("Artist %d\nAmerican, 1900–1980", i+1),
		"inscriptions":    "signed lower right",
		"date_start":      1900 + i,
		"date_end":        1901 + i,
	}
	if i%3 == 2 {
		rec["place_of_origin"] = nil
	}
	if i%4 == 3 {
		delete(rec, "inscriptions")
	}
	return rec
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
