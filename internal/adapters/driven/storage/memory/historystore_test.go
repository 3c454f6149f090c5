package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

func TestHistoryStore_SaveLoad(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	want := []domain.HistoricalChange{
		{AgencyName: "Treasury", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), DocumentCount: 2},
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHistoryStore_LoadBeforeSave(t *testing.T) {
	store := NewHistoryStore()

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_EmptyWriteCounts(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, nil))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryStore_LoadReturnsCopy(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []domain.HistoricalChange{
		{AgencyName: "Treasury", DocumentCount: 1},
	}))

	first, err := store.Load(ctx)
	require.NoError(t, err)
	first[0].AgencyName = "mutated"

	second, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Treasury", second[0].AgencyName)
}

func TestHistoryStore_ForcedErrors(t *testing.T) {
	store := NewHistoryStore()
	store.SaveErr = domain.ErrStorageWrite
	store.LoadErr = domain.ErrStorageRead

	err := store.Save(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrStorageWrite)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageRead)
}
