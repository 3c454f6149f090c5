package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regsnap-cli/internal/adapters/driving/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read API over HTTP",
	Long: `Starts an HTTP server exposing the snapshot read endpoints
(/api/documents, /api/statistics, /api/historical) plus refresh and
cleanup triggers. The server runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if snapshotService == nil {
		return errors.New("snapshot service not configured")
	}

	server := httpapi.NewServer(snapshotService)
	cmd.Printf("Listening on %s\n", serveAddr)
	return server.ListenAndServe(cmd.Context(), serveAddr)
}
