package dto

import (
	"encoding/json"
	"testing"
)

func TestArtworksResponse_Decode(t *testing.T) {
	body := `{
		"pagination": {"total": 129884, "total_pages": 10824, "current_page": 2, "limit": 12},
		"data": [
			{"id": 4, "title": "Priest and Boy", "place_of_origin": null, "artist_display": "Lawrence Carmichael Earle\nAmerican, 1845-1921", "date_start": 1880, "date_end": null},
			{"id": 9, "title": null}
		]
	}`

	var resp ArtworksResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	page := resp.ToPage(2, 12)

	if page.Total != 129884 || page.TotalPages != 10824 || page.Limit != 12 || page.CurrentPage != 2 {
		t.Errorf("pagination = %+v", page)
	}
	if len(page.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(page.Rows))
	}

	first := page.Rows[0]
	if first.ID != 4 || first.Title == nil || *first.Title != "Priest and Boy" {
		t.Errorf("first row = %+v", first)
	}
	if first.PlaceOfOrigin != nil {
		t.Error("null place_of_origin should be nil")
	}
	if first.Inscriptions != nil {
		t.Error("missing inscriptions should be nil")
	}
	if first.DateStart == nil || *first.DateStart != 1880 {
		t.Error("date_start should be 1880")
	}
	if first.DateEnd != nil {
		t.Error("null date_end should be nil")
	}

	second := page.Rows[1]
	if second.Title != nil || second.ArtistDisplay != nil || second.DateStart != nil {
		t.Errorf("second row should only carry an id: %+v", second)
	}
}

func TestArtworksResponse_ToPage_EchoesRequestedPage(t *testing.T) {
	resp := ArtworksResponse{Pagination: PaginationData{CurrentPage: 9, Limit: 0}}

	page := resp.ToPage(3, 24)
	if page.CurrentPage != 3 {
		t.Errorf("CurrentPage = %d, want 3", page.CurrentPage)
	}
	if page.Limit != 24 {
		t.Errorf("Limit = %d, want 24", page.Limit)
	}
	if page.Rows == nil || len(page.Rows) != 0 {
		t.Errorf("Rows = %v, want empty non-nil", page.Rows)
	}
}
