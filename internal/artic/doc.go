// Package artic fetches pages of artworks from the Art Institute of Chicago
// public API.
//
// # Fetching a Page
//
//	client := http.NewClient(http.DefaultUserAgent, 30*time.Second)
//	fetcher := artic.NewFetcher(client, artic.DefaultBaseURL)
//
//	page, err := fetcher.FetchPage(ctx, 1, 12)
//	if err != nil {
//	    // errors.Is(err, artic.ErrFetchFailed)
//	}
//	for _, a := range page.Rows {
//	    fmt.Println(a.ID, model.Text(a.Title))
//	}
//
// # Wire Format
//
// GET {base}/artworks?page={p}&limit={n}&fields=... answers with
//
//	{"data": [...], "pagination": {"total", "total_pages", "current_page", "limit"}}
//
// Pages are 1-based on the wire. Only the fields listed in Fields are
// requested. Optional values are normalized to nil pointers in package dto.
package artic
