package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsJSON bool

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List documents in the current snapshot",
	Args:  cobra.NoArgs,
	RunE:  runDocuments,
}

func init() {
	documentsCmd.Flags().BoolVar(&documentsJSON, "json", false, "output documents as JSON")
	rootCmd.AddCommand(documentsCmd)
}

func runDocuments(cmd *cobra.Command, _ []string) error {
	if snapshotService == nil {
		return errors.New("snapshot service not configured")
	}

	snapshot, err := snapshotService.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snapshot == nil {
		cmd.Println("No snapshot yet. Run 'regsnap fetch' first.")
		return nil
	}

	if documentsJSON {
		return outputJSON(cmd, snapshot.Documents)
	}

	for i, doc := range snapshot.Documents {
		title := doc.Title
		if title == "" {
			title = doc.DocumentNumber
		}
		cmd.Printf("  [%d] %s\n", i+1, title)
		cmd.Printf("      Agency: %s  Type: %s\n", doc.AgencyName, doc.Type)
		if doc.Citation != "" {
			cmd.Printf("      Citation: %s\n", doc.Citation)
		}
	}
	cmd.Printf("\n%d documents (snapshot of %s)\n", len(snapshot.Documents), snapshot.FetchedAt.Format("2006-01-02 15:04:05"))
	return nil
}
