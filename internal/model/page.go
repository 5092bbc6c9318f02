package model

// Page is one page of catalog records plus the pagination metadata the
// catalog reported alongside it.
//
// Pages are never cached: a new Page replaces the previous one on every
// navigation.
type Page struct {
	// Rows holds the records in catalog order. len(Rows) <= Limit.
	Rows []Artwork

	// Total is the number of records in the whole catalog.
	Total int

	// TotalPages is the number of pages at the effective Limit.
	TotalPages int

	// CurrentPage is the 1-based page that was requested.
	CurrentPage int

	// Limit is the effective page size.
	Limit int
}

// IDs returns the record identifiers in page order.
func (p *Page) IDs() []int {
	ids := make([]int, len(p.Rows))
	for i, r := range p.Rows {
		ids[i] = r.ID
	}
	return ids
}
