package services

import (
	"sort"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

// historyChanges derives one HistoricalChange per agency from a
// snapshot's statistics, dated at the snapshot's fetch time.
func historyChanges(snapshot *domain.Snapshot) []domain.HistoricalChange {
	changes := make([]domain.HistoricalChange, 0, len(snapshot.Statistics))
	for _, stat := range snapshot.Statistics {
		changes = append(changes, domain.HistoricalChange{
			AgencyName:    stat.AgencyName,
			Date:          snapshot.FetchedAt,
			DocumentCount: stat.DocumentCount,
		})
	}
	return changes
}

// mergeHistory appends additions to the existing log, caps each agency
// at the HistoryCapPerAgency most recent entries, and returns the merged
// log sorted ascending by date. Ties within an agency keep stable input
// order, which makes the pruning deterministic.
func mergeHistory(existing, additions []domain.HistoricalChange) []domain.HistoricalChange {
	combined := make([]domain.HistoricalChange, 0, len(existing)+len(additions))
	combined = append(combined, existing...)
	combined = append(combined, additions...)

	byAgency := make(map[string][]domain.HistoricalChange)
	var order []string
	for _, entry := range combined {
		if _, seen := byAgency[entry.AgencyName]; !seen {
			order = append(order, entry.AgencyName)
		}
		byAgency[entry.AgencyName] = append(byAgency[entry.AgencyName], entry)
	}

	merged := make([]domain.HistoricalChange, 0, len(combined))
	for _, agency := range order {
		entries := byAgency[agency]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Date.After(entries[j].Date)
		})
		if len(entries) > domain.HistoryCapPerAgency {
			entries = entries[:domain.HistoryCapPerAgency]
		}
		merged = append(merged, entries...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

// cleanupHistory drops entries whose agency name is a placeholder and
// returns the kept entries sorted ascending by date, plus the number of
// entries removed.
func cleanupHistory(entries []domain.HistoricalChange) ([]domain.HistoricalChange, int) {
	kept := make([]domain.HistoricalChange, 0, len(entries))
	for _, entry := range entries {
		if domain.IsPlaceholderAgency(entry.AgencyName) {
			continue
		}
		kept = append(kept, entry)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})
	return kept, len(entries) - len(kept)
}
