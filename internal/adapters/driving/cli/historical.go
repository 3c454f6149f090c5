package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historicalJSON bool

var historicalCmd = &cobra.Command{
	Use:   "historical",
	Short: "Show the historical series of per-agency counts",
	Args:  cobra.NoArgs,
	RunE:  runHistorical,
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove placeholder agencies from the historical series",
	Long: `Removes historical entries whose agency name is a placeholder left by
earlier unresolved lookups ("Unknown", "Unknown Agency" and the numeric
category codes "1" through "10"). The log is only rewritten if entries
were actually removed.`,
	Args: cobra.NoArgs,
	RunE: runCleanup,
}

func init() {
	historicalCmd.Flags().BoolVar(&historicalJSON, "json", false, "output the series as JSON")
	rootCmd.AddCommand(historicalCmd)
	rootCmd.AddCommand(cleanupCmd)
}

func runHistorical(cmd *cobra.Command, _ []string) error {
	if snapshotService == nil {
		return errors.New("snapshot service not configured")
	}

	entries, err := snapshotService.Historical(context.Background())
	if err != nil {
		return fmt.Errorf("load historical: %w", err)
	}

	if historicalJSON {
		return outputJSON(cmd, entries)
	}

	if len(entries) == 0 {
		cmd.Println("No historical data yet.")
		return nil
	}
	for _, entry := range entries {
		cmd.Printf("%s  %-50s %6d\n",
			entry.Date.Format("2006-01-02 15:04"), truncate(entry.AgencyName, 50), entry.DocumentCount)
	}
	return nil
}

func runCleanup(cmd *cobra.Command, _ []string) error {
	if snapshotService == nil {
		return errors.New("snapshot service not configured")
	}

	if err := snapshotService.Cleanup(context.Background()); err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}
	cmd.Println("Historical cleanup complete.")
	return nil
}
