package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-agency statistics from the current snapshot",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if snapshotService == nil {
		return errors.New("snapshot service not configured")
	}

	stats, err := snapshotService.Statistics(context.Background())
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}

	if statsJSON {
		return outputJSON(cmd, stats)
	}
	return outputStatsTable(cmd, stats)
}

func outputStatsTable(cmd *cobra.Command, stats []domain.AgencyStatistics) error {
	if len(stats) == 0 {
		cmd.Println("No snapshot yet. Run 'regsnap fetch' first.")
		return nil
	}

	cmd.Printf("%-50s %10s  %s\n", "AGENCY", "DOCUMENTS", "CHECKSUM")
	for _, stat := range stats {
		cmd.Printf("%-50s %10d  %s\n", truncate(stat.AgencyName, 50), stat.DocumentCount, stat.Checksum[:12])
	}
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
