package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fetchPerPage int

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch search results and save a new snapshot",
	Long: `Fetches one page of search results from the eCFR API, normalises the
documents, recomputes per-agency statistics and replaces the current
snapshot. Per-agency counts are appended to the historical series.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&fetchPerPage, "per-page", 0, "page size requested from the API (default from config)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if snapshotService == nil {
		return errors.New("snapshot service not configured")
	}

	snapshot, err := snapshotService.Refresh(context.Background(), fetchPerPage)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	cmd.Printf("Snapshot saved: %d documents across %d agencies (fetched %s)\n",
		len(snapshot.Documents), len(snapshot.Statistics),
		snapshot.FetchedAt.Format("2006-01-02 15:04:05"))
	return nil
}
