package location

import (
	"context"

	"github.com/piresc/cabdispatch/internal/pkg/models"
)

// PresenceStore holds the latest presence record per driver. Last write wins.
type PresenceStore interface {
	Upsert(ctx context.Context, presence models.DriverPresence) error
	// Get returns nil, nil when the driver never reported
	Get(ctx context.Context, driverID string) (*models.DriverPresence, error)
	// Snapshot returns a copy of every record, safe to scan without holding the store
	Snapshot(ctx context.Context) ([]models.DriverPresence, error)
	Count(ctx context.Context) (int, error)
}

// GeoIndexedStore is implemented by stores that can pre-filter candidates by position.
// Candidates may include records outside the radius; callers apply the exact distance check.
type GeoIndexedStore interface {
	PresenceStore
	Candidates(ctx context.Context, point models.Coordinates, radiusKm float64) ([]models.DriverPresence, error)
}

// GeofenceRepo is the in-memory geofence registry, iterated in registration order
type GeofenceRepo interface {
	Register(g models.Geofence) error
	Get(id string) (*models.Geofence, bool)
	List() []models.Geofence
}

// GeofenceSource loads geofence definitions at startup
type GeofenceSource interface {
	Name() string
	Load(ctx context.Context) ([]models.Geofence, error)
}
