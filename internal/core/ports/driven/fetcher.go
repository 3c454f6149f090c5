package driven

import "context"

// SearchFetcher retrieves raw search results from the remote API.
// Implemented by the eCFR connector.
type SearchFetcher interface {
	// FetchRaw performs one search request and returns the raw response
	// body. perPage controls the page size sent to the API; values < 1
	// fall back to the connector default. Network failures and
	// non-success statuses return an error; no retries are attempted.
	FetchRaw(ctx context.Context, perPage int) ([]byte, error)
}
