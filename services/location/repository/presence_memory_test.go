package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func presence(id string, lat, lng float64, ts time.Time) models.DriverPresence {
	return models.DriverPresence{
		DriverID:    id,
		Location:    models.Coordinates{Latitude: lat, Longitude: lng},
		VehicleType: "sedan",
		IsAvailable: true,
		LastUpdated: ts,
	}
}

func TestMemoryPresenceStore_UpsertGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPresenceStore()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	got, err := store.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Upsert(ctx, presence("d1", 13.08, 80.27, now)))
	require.NoError(t, store.Upsert(ctx, presence("d1", 13.09, 80.28, now.Add(time.Second))))

	got, err = store.Get(ctx, "d1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 13.09, got.Location.Latitude)
	assert.Equal(t, now.Add(time.Second), got.LastUpdated)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryPresenceStore_TimestampNeverMovesBack(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPresenceStore()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Upsert(ctx, presence("d1", 13.08, 80.27, now)))
	require.NoError(t, store.Upsert(ctx, presence("d1", 13.10, 80.30, now.Add(-time.Minute))))

	got, err := store.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, now, got.LastUpdated)
	assert.Equal(t, 13.10, got.Location.Latitude)
}

func TestMemoryPresenceStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPresenceStore()
	now := time.Now()
	require.NoError(t, store.Upsert(ctx, presence("d1", 13.08, 80.27, now)))
	require.NoError(t, store.Upsert(ctx, presence("d2", 13.05, 80.25, now)))

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 2)

	snap[0].IsAvailable = false
	got, err := store.Get(ctx, snap[0].DriverID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
}

func TestMemoryPresenceStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPresenceStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Upsert(ctx, presence(fmt.Sprintf("d%d", i%5), 13.0, 80.0, time.Now()))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.Snapshot(ctx)
		}()
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
