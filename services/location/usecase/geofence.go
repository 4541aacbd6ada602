package usecase

import (
	"context"
	"math"

	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/internal/pkg/observability"
	"github.com/piresc/cabdispatch/internal/utils"
	"github.com/piresc/cabdispatch/services/location"
)

// GeofenceUC implements location.GeofenceUC over the geofence registry
type GeofenceUC struct {
	repo   location.GeofenceRepo
	tracer observability.Tracer
}

// NewGeofenceUC creates the geofence matcher
func NewGeofenceUC(repo location.GeofenceRepo, tracer observability.Tracer) *GeofenceUC {
	if tracer == nil {
		tracer = observability.NewNoOpTracer()
	}
	return &GeofenceUC{repo: repo, tracer: tracer}
}

// ListActive returns active geofences in registration order
func (uc *GeofenceUC) ListActive(ctx context.Context) []models.Geofence {
	all := uc.repo.List()
	out := make([]models.Geofence, 0, len(all))
	for _, g := range all {
		if g.IsActive {
			out = append(out, g)
		}
	}
	return out
}

// FindContaining returns the first active geofence whose circle contains point.
// Overlapping zones resolve by registration order, not by distance.
func (uc *GeofenceUC) FindContaining(ctx context.Context, point models.Coordinates) (*models.Geofence, error) {
	_, end := uc.tracer.StartSegment(ctx, observability.UseCaseSegment("FindContaining"))
	defer end()

	if err := point.Validate(); err != nil {
		return nil, err
	}
	for _, g := range uc.ListActive(ctx) {
		if utils.DistanceMeters(point, g.Center) <= g.RadiusMeters {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

// Nearby returns active geofences whose extent overlaps the search circle
func (uc *GeofenceUC) Nearby(ctx context.Context, point models.Coordinates, radiusKm float64) ([]models.Geofence, error) {
	_, end := uc.tracer.StartSegment(ctx, observability.UseCaseSegment("NearbyGeofences"))
	defer end()

	if err := point.Validate(); err != nil {
		return nil, err
	}
	if radiusKm < 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return nil, models.ErrInvalidRadius
	}

	out := []models.Geofence{}
	for _, g := range uc.ListActive(ctx) {
		if utils.DistanceMeters(point, g.Center) <= radiusKm*1000+g.RadiusMeters {
			out = append(out, g)
		}
	}
	return out, nil
}

// SurgeMultiplierFor returns the containing geofence's multiplier, 1.0 outside every zone
func (uc *GeofenceUC) SurgeMultiplierFor(ctx context.Context, point models.Coordinates) (float64, error) {
	g, err := uc.FindContaining(ctx, point)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return constants.DefaultSurgeMultiplier, nil
	}
	return g.SurgeMultiplier, nil
}

// PickupPointsFor returns the pickup points of a geofence, empty when unknown
func (uc *GeofenceUC) PickupPointsFor(ctx context.Context, geofenceID string) []models.PickupPoint {
	g, ok := uc.repo.Get(geofenceID)
	if !ok || g.PickupPoints == nil {
		return []models.PickupPoint{}
	}
	return g.PickupPoints
}

// CheckPoint reports containment together with pickup guidance and the current surge
func (uc *GeofenceUC) CheckPoint(ctx context.Context, point models.Coordinates) (*models.GeofenceCheck, error) {
	g, err := uc.FindContaining(ctx, point)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return &models.GeofenceCheck{
			IsInGeofence:    false,
			PickupPoints:    []models.PickupPoint{},
			SurgeMultiplier: constants.DefaultSurgeMultiplier,
		}, nil
	}
	return &models.GeofenceCheck{
		IsInGeofence:    true,
		Geofence:        g,
		PickupPoints:    g.PickupPoints,
		SurgeMultiplier: g.SurgeMultiplier,
	}, nil
}
