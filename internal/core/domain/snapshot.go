package domain

import "time"

// HistoryCapPerAgency is the maximum number of historical entries
// retained per agency. Oldest entries beyond the cap are dropped.
const HistoryCapPerAgency = 100

// AgencyStatistics is one per-agency aggregate computed from a snapshot.
type AgencyStatistics struct {
	// AgencyName is the grouping key.
	AgencyName string `json:"agency_name"`

	// DocumentCount is the number of documents in the group.
	DocumentCount int `json:"document_count"`

	// Checksum is the lowercase hex SHA-256 of the group's canonical
	// serialisation. Identical groups produce identical checksums, so it
	// doubles as a cheap change-detection fingerprint.
	Checksum string `json:"checksum"`

	// LastUpdated is when the statistics were computed.
	LastUpdated time.Time `json:"last_updated"`
}

// HistoricalChange records one per-agency document count at fetch time.
type HistoricalChange struct {
	AgencyName    string    `json:"agency_name"`
	Date          time.Time `json:"date"`
	DocumentCount int       `json:"document_count"`
}

// Snapshot is the full persisted state produced by one fetch.
// It replaces the previously persisted snapshot wholesale.
type Snapshot struct {
	// ID identifies the fetch that produced this snapshot.
	ID string `json:"id"`

	// FetchedAt is when the snapshot was saved.
	FetchedAt time.Time `json:"fetched_at"`

	// Documents in API response order.
	Documents []Document `json:"documents"`

	// Statistics sorted descending by document count, recomputed in full
	// on every save.
	Statistics []AgencyStatistics `json:"statistics"`
}

// IsPlaceholderAgency reports whether name is one of the placeholder
// values left behind by earlier unresolved agency names: the sentinels
// "Unknown" and "Unknown Agency", and the small integer category codes
// "1" through "10".
func IsPlaceholderAgency(name string) bool {
	switch name {
	case "Unknown", UnknownAgency,
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "10":
		return true
	}
	return false
}
