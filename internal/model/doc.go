// Package model defines the core data structures used throughout
// the artic-table application.
//
// # Artwork
//
// Artwork is one catalog record. Optional fields are pointers and a nil
// pointer is the explicit absent marker:
//
//	a := model.Artwork{ID: 1, Title: model.Ptr("Nighthawks"), DateStart: model.Ptr(1942)}
//	fmt.Println(model.Text(a.PlaceOfOrigin)) // "—"
//
// # Page
//
// Page is one page of records with the pagination metadata the catalog
// returned for it.
//
// # Selection
//
// Selection is the set of selected artwork identifiers. It outlives pages:
//
//	sel := model.NewSelection()
//	sel.Add(27992)
//	sel.Has(27992) // true
package model
