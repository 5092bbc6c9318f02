// Package table owns the state of the artwork table: the current page, the
// page size, the loaded rows and the selection that spans pages.
//
// # Loading Pages
//
// A load is split in three steps so that the slow part can run off the UI
// goroutine:
//
//	req := ctrl.BeginLoad()          // loading = true, new generation
//	res := ctrl.Load(ctx, req)       // network only, no state touched
//	ctrl.ApplyLoad(res)              // commits unless a newer load started
//
// Every BeginLoad increments a generation counter and ApplyLoad drops any
// result whose generation is not the latest, so a slow response for an old
// page can never overwrite a newer one. Reload runs all three steps
// synchronously.
//
// # Selection
//
// The selection is a set of artwork identifiers that survives navigation.
// The view reports which visible rows are checked and ReconcilePage folds
// that into the global set without touching rows on other pages.
//
// # Bulk Selection
//
// SelectFirstN selects the first N records of the catalog, fetching pages
// one after another until N identifiers are gathered or the catalog is
// exhausted, then replaces the selection with the result:
//
//	res, ok := ctrl.SelectFirstN(ctx, 25)
//
// # Notifications
//
// Failures are logged and reported once through the callback passed to
// NewController; they are never returned to the view as panics or
// propagated further.
package table
