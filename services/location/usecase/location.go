package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/internal/pkg/observability"
	"github.com/piresc/cabdispatch/internal/utils"
	"github.com/piresc/cabdispatch/services/location"
)

// minHeadingDistanceMeters is the smallest move for which a missing heading is derived from the previous fix
const minHeadingDistanceMeters = 5.0

// LocationUC implements location.LocationUC over an injected presence store
type LocationUC struct {
	store  location.PresenceStore
	gw     location.LocationGW
	cfg    models.LocationConfig
	tracer observability.Tracer
	now    models.Clock
}

// NewLocationUC creates the presence and supply query use case. gw may be nil when no
// message bus is configured; clock defaults to models.Now.
func NewLocationUC(store location.PresenceStore, gw location.LocationGW, cfg models.LocationConfig, tracer observability.Tracer, clock models.Clock) *LocationUC {
	if tracer == nil {
		tracer = observability.NewNoOpTracer()
	}
	if clock == nil {
		clock = models.Now
	}
	if cfg.MaxHeatMapGridSize <= 0 {
		cfg.MaxHeatMapGridSize = constants.MaxHeatMapGrid
	}
	return &LocationUC{store: store, gw: gw, cfg: cfg, tracer: tracer, now: clock}
}

// UpdateDriverLocation upserts the driver's presence stamped with server time.
// Vehicle type and availability carry over from the previous record when not submitted.
func (uc *LocationUC) UpdateDriverLocation(ctx context.Context, sub models.LocationSubmission) (*models.DriverPresence, error) {
	ctx, end := uc.tracer.StartSegment(ctx, observability.UseCaseSegment("UpdateDriverLocation"))
	defer end()

	if sub.DriverID == "" {
		return nil, fmt.Errorf("%w: driverId", models.ErrMissingField)
	}
	point := sub.Coordinates()
	if err := point.Validate(); err != nil {
		return nil, err
	}

	prev, err := uc.store.Get(ctx, sub.DriverID)
	if err != nil {
		return nil, fmt.Errorf("failed to read previous presence: %w", err)
	}

	presence := models.DriverPresence{
		DriverID:    sub.DriverID,
		Location:    point,
		VehicleType: sub.VehicleType,
		IsAvailable: true,
		LastUpdated: uc.now(),
		Heading:     sub.Heading,
		Speed:       sub.Speed,
		TripID:      sub.TripID,
		Geohash:     utils.EncodeLocation(point, constants.GeohashPrecision),
	}
	if prev != nil {
		if presence.VehicleType == "" {
			presence.VehicleType = prev.VehicleType
		}
		presence.IsAvailable = prev.IsAvailable
		if presence.Heading == nil && utils.DistanceMeters(prev.Location, point) >= minHeadingDistanceMeters {
			heading := utils.BearingDegrees(prev.Location, point)
			presence.Heading = &heading
		}
	}
	if sub.IsAvailable != nil {
		presence.IsAvailable = *sub.IsAvailable
	}

	if err := uc.store.Upsert(ctx, presence); err != nil {
		return nil, fmt.Errorf("failed to store presence: %w", err)
	}

	uc.publish(ctx, presence)
	return &presence, nil
}

// publish is best effort; a failed publish never fails the update
func (uc *LocationUC) publish(ctx context.Context, p models.DriverPresence) {
	if uc.gw == nil {
		return
	}
	event := models.DriverLocationEvent{
		DriverID:    p.DriverID,
		TripID:      p.TripID,
		Latitude:    p.Location.Latitude,
		Longitude:   p.Location.Longitude,
		Heading:     p.Heading,
		Speed:       p.Speed,
		VehicleType: p.VehicleType,
		IsAvailable: p.IsAvailable,
		Timestamp:   p.LastUpdated,
	}
	if err := uc.gw.PublishDriverLocation(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish driver location",
			logger.DriverID(p.DriverID),
			logger.Err(err))
	}
}

// GetDriverLocation returns the last known presence, or nil when the driver never reported
func (uc *LocationUC) GetDriverLocation(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	ctx, end := uc.tracer.StartSegment(ctx, observability.UseCaseSegment("GetDriverLocation"))
	defer end()

	if driverID == "" {
		return nil, nil
	}
	return uc.store.Get(ctx, driverID)
}

// NearbyDrivers returns fresh, available drivers within radiusKm of point, nearest first
func (uc *LocationUC) NearbyDrivers(ctx context.Context, point models.Coordinates, radiusKm float64, vehicleType string) ([]models.NearbyDriver, error) {
	ctx, end := uc.tracer.StartSegment(ctx, observability.UseCaseSegment("NearbyDrivers"))
	defer end()

	if err := point.Validate(); err != nil {
		return nil, err
	}
	if err := uc.validateRadius(radiusKm); err != nil {
		return nil, err
	}

	candidates, err := uc.candidates(ctx, point, radiusKm)
	if err != nil {
		return nil, err
	}

	out := filterNearby(candidates, point, radiusKm, vehicleType, uc.now())
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceMeters < out[j].DistanceMeters
	})
	return out, nil
}

func (uc *LocationUC) candidates(ctx context.Context, point models.Coordinates, radiusKm float64) ([]models.DriverPresence, error) {
	if indexed, ok := uc.store.(location.GeoIndexedStore); ok {
		segCtx, end := uc.tracer.StartSegment(ctx, observability.RepositorySegment("presence", "Candidates"))
		defer end()
		list, err := indexed.Candidates(segCtx, point, radiusKm)
		if err != nil {
			return nil, fmt.Errorf("failed to query presence index: %w", err)
		}
		return list, nil
	}
	segCtx, end := uc.tracer.StartSegment(ctx, observability.RepositorySegment("presence", "Snapshot"))
	defer end()
	list, err := uc.store.Snapshot(segCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot presence: %w", err)
	}
	return list, nil
}

// DriverDensity summarises supply around point. Total is the whole store, not the radius.
func (uc *LocationUC) DriverDensity(ctx context.Context, point models.Coordinates, radiusKm float64) (*models.DriverDensity, error) {
	nearby, err := uc.NearbyDrivers(ctx, point, radiusKm, "")
	if err != nil {
		return nil, err
	}

	total, err := uc.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count presence: %w", err)
	}

	density := &models.DriverDensity{
		Total:         total,
		Available:     len(nearby),
		ByVehicleType: make(map[string]int),
	}
	for _, d := range nearby {
		density.ByVehicleType[d.VehicleType]++
	}
	return density, nil
}

// HeatMap samples a gridSize x gridSize lattice of cell centers inside bounds and emits
// only cells with at least one nearby driver. A non-positive gridSize uses the default.
func (uc *LocationUC) HeatMap(ctx context.Context, bounds models.Bounds, gridSize int) ([]models.HeatMapPoint, error) {
	ctx, end := uc.tracer.StartSegment(ctx, observability.UseCaseSegment("HeatMap"))
	defer end()

	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if gridSize <= 0 {
		gridSize = constants.DefaultHeatMapGrid
	}
	if gridSize > uc.cfg.MaxHeatMapGridSize {
		return nil, fmt.Errorf("%w: gridSize must not exceed %d", models.ErrInvalidBounds, uc.cfg.MaxHeatMapGridSize)
	}

	snapshot, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot presence: %w", err)
	}
	now := uc.now()
	eligible := snapshot[:0]
	for _, p := range snapshot {
		if isEligible(p, "", now) {
			eligible = append(eligible, p)
		}
	}

	latStep := (bounds.North - bounds.South) / float64(gridSize)
	lngStep := (bounds.East - bounds.West) / float64(gridSize)
	radiusMeters := constants.HeatMapCellRadiusKm * 1000

	points := []models.HeatMapPoint{}
	for i := 0; i < gridSize; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lat := bounds.South + (float64(i)+0.5)*latStep
		for j := 0; j < gridSize; j++ {
			center := models.Coordinates{Latitude: lat, Longitude: bounds.West + (float64(j)+0.5)*lngStep}
			count := 0
			for _, p := range eligible {
				if utils.DistanceMeters(center, p.Location) <= radiusMeters {
					count++
				}
			}
			if count == 0 {
				continue
			}
			points = append(points, models.HeatMapPoint{
				Lat:       center.Latitude,
				Lng:       center.Longitude,
				Intensity: math.Min(1, float64(count)/constants.HeatMapSaturation),
				Geohash:   utils.EncodeLocation(center, constants.GeohashPrecision),
			})
		}
	}
	return points, nil
}

func (uc *LocationUC) validateRadius(radiusKm float64) error {
	if radiusKm <= 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return fmt.Errorf("%w: radius must be positive", models.ErrInvalidRadius)
	}
	if uc.cfg.MaxSearchRadiusKm > 0 && radiusKm > uc.cfg.MaxSearchRadiusKm {
		return fmt.Errorf("%w: radius must not exceed %g km", models.ErrInvalidRadius, uc.cfg.MaxSearchRadiusKm)
	}
	return nil
}

// isEligible applies the staleness, availability and vehicle filters
func isEligible(p models.DriverPresence, vehicleType string, now time.Time) bool {
	if now.Sub(p.LastUpdated) > constants.DriverStaleAfter {
		return false
	}
	if !p.IsAvailable {
		return false
	}
	return vehicleType == "" || p.VehicleType == vehicleType
}

func filterNearby(candidates []models.DriverPresence, point models.Coordinates, radiusKm float64, vehicleType string, now time.Time) []models.NearbyDriver {
	radiusMeters := radiusKm * 1000
	out := []models.NearbyDriver{}
	for _, p := range candidates {
		if !isEligible(p, vehicleType, now) {
			continue
		}
		d := utils.DistanceMeters(point, p.Location)
		if d > radiusMeters {
			continue
		}
		out = append(out, models.NearbyDriver{DriverPresence: p, DistanceMeters: d})
	}
	return out
}
