package ecfr

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regsnap-cli/internal/logger"
)

// Ensure Parser implements the interface.
var _ driven.SearchResultParser = (*Parser)(nil)

// Parser decodes eCFR search responses into the canonical SearchResult.
type Parser struct{}

// NewParser creates a new search-result parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the response body and normalises every result item.
// Only a body that is not valid JSON fails; individual items are
// normalised best-effort and always kept. The total count comes from
// total_count, then count, defaulting to zero.
func (p *Parser) Parse(_ context.Context, body []byte) (*domain.SearchResult, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	root := domain.RawItem(payload)
	result := &domain.SearchResult{
		Documents: []domain.Document{},
	}

	if total, ok := root.GetInt("total_count"); ok {
		result.TotalResults = total
	} else if total, ok := root.GetInt("count"); ok {
		result.TotalResults = total
	}

	items, ok := root.GetArray("results")
	if !ok {
		// A response without a results array is an empty page, not an
		// error.
		logger.Debug("search response carried no results array")
		return result, nil
	}

	for _, raw := range items {
		var item domain.RawItem
		if obj, ok := raw.(map[string]any); ok {
			item = domain.RawItem(obj)
		}
		// Non-object entries normalise to a sentinel-filled document so
		// the item count matches the response.
		result.Documents = append(result.Documents, NormaliseItem(item))
	}

	logger.Debug("parsed %d of %d reported results", len(result.Documents), result.TotalResults)
	return result, nil
}
