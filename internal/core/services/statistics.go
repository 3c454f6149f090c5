package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

// ComputeStatistics groups documents by agency name and produces one
// AgencyStatistics per distinct agency, sorted descending by document
// count. The sort is stable, so ties keep first-occurrence order among
// the documents.
//
// The checksum is SHA-256 over the canonical JSON serialisation of the
// group's documents in the order they were encountered, hex-encoded
// lowercase. It is a pure function of document content: identical groups
// always produce identical checksums.
func ComputeStatistics(docs []domain.Document, now time.Time) []domain.AgencyStatistics {
	groups := make(map[string][]domain.Document)
	var order []string

	for _, doc := range docs {
		key := doc.AgencyName
		if key == "" {
			key = "Unknown"
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], doc)
	}

	stats := make([]domain.AgencyStatistics, 0, len(order))
	for _, agency := range order {
		group := groups[agency]
		stats = append(stats, domain.AgencyStatistics{
			AgencyName:    agency,
			DocumentCount: len(group),
			Checksum:      groupChecksum(group),
			LastUpdated:   now,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].DocumentCount > stats[j].DocumentCount
	})

	return stats
}

// groupChecksum serialises the group to canonical bytes and hashes them.
// encoding/json emits struct fields in declaration order, so the output
// is deterministic across platforms and locales.
func groupChecksum(group []domain.Document) string {
	payload, err := json.Marshal(group)
	if err != nil {
		// Document contains only marshallable field types; this path is
		// unreachable in practice.
		payload = nil
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
