package driven

import (
	"context"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

// SearchResultParser turns a raw search response body into a SearchResult.
// Implemented by the eCFR normaliser.
type SearchResultParser interface {
	// Parse decodes the body and normalises every result item.
	// A body that is not valid JSON fails with domain.ErrParse; a
	// malformed individual item never aborts the parse (the item is kept
	// with sentinel field values).
	Parse(ctx context.Context, body []byte) (*domain.SearchResult, error)
}
