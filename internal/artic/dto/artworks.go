package dto

import "github.com/handiism/artic-table/internal/model"

// ArtworksResponse is the body of GET /artworks.
type ArtworksResponse struct {
	Data       []ArtworkData  `json:"data"`
	Pagination PaginationData `json:"pagination"`
}

// PaginationData is the pagination envelope of a list response.
type PaginationData struct {
	Total       int `json:"total"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	Limit       int `json:"limit"`
}

// ArtworkData is one artwork as projected by the fields parameter.
//
// The catalog sends null for unknown values and drops fields it has no data
// for; both decode to nil here.
type ArtworkData struct {
	ID            int     `json:"id"`
	Title         *string `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay *string `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
}

// ToArtwork converts ArtworkData to a model.Artwork.
func (d *ArtworkData) ToArtwork() model.Artwork {
	return model.Artwork{
		ID:            d.ID,
		Title:         d.Title,
		PlaceOfOrigin: d.PlaceOfOrigin,
		ArtistDisplay: d.ArtistDisplay,
		Inscriptions:  d.Inscriptions,
		DateStart:     d.DateStart,
		DateEnd:       d.DateEnd,
	}
}

// ToPage converts the response to a model.Page.
//
// requestedPage is echoed as CurrentPage. requestedLimit is used when the
// response carries no limit of its own.
func (r *ArtworksResponse) ToPage(requestedPage, requestedLimit int) *model.Page {
	rows := make([]model.Artwork, len(r.Data))
	for i := range r.Data {
		rows[i] = r.Data[i].ToArtwork()
	}

	limit := r.Pagination.Limit
	if limit <= 0 {
		limit = requestedLimit
	}

	return &model.Page{
		Rows:        rows,
		Total:       r.Pagination.Total,
		TotalPages:  r.Pagination.TotalPages,
		CurrentPage: requestedPage,
		Limit:       limit,
	}
}
