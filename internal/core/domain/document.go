package domain

import "time"

// Sentinel values for fields the search API did not resolve.
const (
	// UnknownAgency is used when no agency name could be resolved.
	UnknownAgency = "Unknown Agency"

	// UnknownType is used when no document type could be resolved.
	UnknownType = "Unknown"
)

// Document is the canonical representation of one search-result item
// after normalisation. Fields that could not be resolved from the raw
// payload carry their zero value or sentinel.
type Document struct {
	// DocumentNumber is the identifier assigned by the source system.
	DocumentNumber string `json:"document_number"`

	// Title is the best-effort human-readable label.
	Title string `json:"title"`

	// AgencyName is resolved via the agency heuristic.
	// Never empty; defaults to UnknownAgency.
	AgencyName string `json:"agency_name"`

	// Type is the document type. Defaults to UnknownType.
	Type string `json:"type"`

	// PublicationDate is the publication or effective date, if parseable.
	PublicationDate *time.Time `json:"publication_date,omitempty"`

	// Citation is the CFR citation, built from hierarchy headings when
	// available.
	Citation string `json:"citation"`

	// URL is the canonical link to the document, if present.
	URL string `json:"url,omitempty"`
}

// SearchResult is the parsed form of one search API response.
type SearchResult struct {
	// TotalResults is the server-reported total match count.
	// Zero when the payload carries no usable count field.
	TotalResults int `json:"total_results"`

	// Documents holds the normalised items in API response order.
	Documents []Document `json:"results"`
}
