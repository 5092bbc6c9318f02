package model

import (
	"strconv"
	"strings"
)

// Absent is rendered in place of a field the catalog did not provide.
const Absent = "—"

// Artwork is one record of the museum catalog.
//
// Every optional field is a pointer: nil means the catalog explicitly had no
// value (null) or omitted the field. The decision is made once, when the
// wire record is converted, so callers never need to distinguish "missing"
// from "empty" themselves.
//
// Example:
//
//	a := model.Artwork{ID: 27992, Title: model.Ptr("A Sunday on La Grande Jatte")}
//	fmt.Println(a.Cells()) // [A Sunday on La Grande Jatte — — — — —]
type Artwork struct {
	// ID is the catalog primary key.
	ID int

	Title         *string
	PlaceOfOrigin *string
	ArtistDisplay *string
	Inscriptions  *string

	// DateStart and DateEnd are years; negative values are BCE.
	DateStart *int
	DateEnd   *int
}

// Columns lists the table headers in display order.
var Columns = []string{
	"Title",
	"Place of Origin",
	"Artist Display",
	"Inscriptions",
	"Date Start",
	"Date End",
}

// Cells returns the display text of each column, aligned with Columns.
func (a Artwork) Cells() []string {
	return []string{
		Text(a.Title),
		Text(a.PlaceOfOrigin),
		Text(a.ArtistDisplay),
		Text(a.Inscriptions),
		Year(a.DateStart),
		Year(a.DateEnd),
	}
}

// Text renders an optional string on a single line.
func Text(s *string) string {
	if s == nil {
		return Absent
	}
	return strings.Join(strings.Fields(*s), " ")
}

// Year renders an optional year.
func Year(y *int) string {
	if y == nil {
		return Absent
	}
	return strconv.Itoa(*y)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
