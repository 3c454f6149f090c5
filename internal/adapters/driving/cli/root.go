// Package cli wires the cobra command tree over the snapshot service.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/regsnap-cli/internal/adapters/driven/config/file"
	storagefile "github.com/custodia-labs/regsnap-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/regsnap-cli/internal/connectors/ecfr"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/regsnap-cli/internal/core/services"
	ecfrnorm "github.com/custodia-labs/regsnap-cli/internal/normalisers/ecfr"
	"github.com/custodia-labs/regsnap-cli/internal/logger"
)

var (
	flagVerbose   bool
	flagConfigDir string
	flagDataDir   string

	// snapshotService is wired in initServices and consumed by the
	// subcommands. Tests inject their own implementation.
	snapshotService driving.SnapshotService
)

var rootCmd = &cobra.Command{
	Use:   "regsnap",
	Short: "Snapshot and track eCFR search results per agency",
	Long: `regsnap fetches regulatory-document search results from the eCFR
public API, normalises them into a canonical document model, computes
per-agency statistics with content checksums, and keeps a capped
historical series of per-agency counts on disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		// Help and version need no wiring.
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.regsnap)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.regsnap/data)")
}

// initServices builds the production wiring: TOML config, eCFR client,
// normaliser, file-backed stores, snapshot service.
func initServices() error {
	if snapshotService != nil {
		return nil
	}

	configStore, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = settings.DataDir
	}

	snapshotStore, err := storagefile.NewSnapshotStore(dataDir)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	historyStore, err := storagefile.NewHistoryStore(dataDir)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}

	snapshotService = services.NewSnapshotService(
		ecfr.NewClient(settings),
		ecfrnorm.NewParser(),
		snapshotStore,
		historyStore,
	)
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
