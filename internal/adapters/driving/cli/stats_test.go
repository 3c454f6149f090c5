package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

func TestStatsCmd_Use(t *testing.T) {
	assert.Equal(t, "stats", statsCmd.Use)
}

func TestStatsCmd_Short(t *testing.T) {
	assert.Equal(t, "Show per-agency statistics from the current snapshot", statsCmd.Short)
}

func TestStatsCmd_HasJSONFlag(t *testing.T) {
	flag := statsCmd.Flags().Lookup("json")
	require.NotNil(t, flag, "json flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestStatsCmd_Executes(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "AGENCY")
	assert.Contains(t, buf.String(), "Federal Reserve System")
	// Checksums are abbreviated in table output.
	assert.Contains(t, buf.String(), "aabbccddeeff")
	assert.NotContains(t, buf.String(), "aabbccddeeff00112233")
}

func TestStatsCmd_JSONOutput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		statsJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"agency_name"`)
	assert.Contains(t, buf.String(), `"document_count"`)
	assert.Contains(t, buf.String(), `"checksum"`)
}

func TestStatsCmd_EmptyStatistics(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	mock.stats = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No snapshot yet")
}

func TestStatsCmd_ServiceError(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	mock.err = errors.New("store unavailable")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load statistics")
}

func TestStatsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := snapshotService
	snapshotService = nil
	defer func() {
		snapshotService = oldService
	}()

	err := runStats(rootCmd, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot service not configured")
}

func TestOutputStatsTable_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputStatsTable(rootCmd, []domain.AgencyStatistics{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No snapshot yet")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "much too …", truncate("much too long for ten", 10))
}
