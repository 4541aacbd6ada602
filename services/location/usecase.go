package location

import (
	"context"

	"github.com/piresc/cabdispatch/internal/pkg/models"
)

// LocationUC is the driver presence and supply query surface
type LocationUC interface {
	// UpdateDriverLocation upserts a driver's presence with a server timestamp and publishes it
	UpdateDriverLocation(ctx context.Context, sub models.LocationSubmission) (*models.DriverPresence, error)
	// GetDriverLocation returns nil when the driver never reported
	GetDriverLocation(ctx context.Context, driverID string) (*models.DriverPresence, error)
	NearbyDrivers(ctx context.Context, point models.Coordinates, radiusKm float64, vehicleType string) ([]models.NearbyDriver, error)
	DriverDensity(ctx context.Context, point models.Coordinates, radiusKm float64) (*models.DriverDensity, error)
	HeatMap(ctx context.Context, bounds models.Bounds, gridSize int) ([]models.HeatMapPoint, error)
}

// GeofenceUC answers geofence membership, surge and pickup guidance queries
type GeofenceUC interface {
	ListActive(ctx context.Context) []models.Geofence
	// FindContaining returns the first active geofence containing point in registration order, or nil
	FindContaining(ctx context.Context, point models.Coordinates) (*models.Geofence, error)
	Nearby(ctx context.Context, point models.Coordinates, radiusKm float64) ([]models.Geofence, error)
	SurgeMultiplierFor(ctx context.Context, point models.Coordinates) (float64, error)
	// PickupPointsFor returns an empty list for unknown geofences
	PickupPointsFor(ctx context.Context, geofenceID string) []models.PickupPoint
	CheckPoint(ctx context.Context, point models.Coordinates) (*models.GeofenceCheck, error)
}
