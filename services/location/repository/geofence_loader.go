package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/services/location"
	"github.com/spf13/viper"
)

type pickupPointEntry struct {
	ID           string             `mapstructure:"id"`
	Name         string             `mapstructure:"name"`
	Location     models.Coordinates `mapstructure:"location"`
	Instructions string             `mapstructure:"instructions"`
}

type constraintsEntry struct {
	AllowedVehicleTypes []string `mapstructure:"allowed_vehicle_types"`
	MaxWaitMinutes      int      `mapstructure:"max_wait_minutes"`
	OperatingHours      string   `mapstructure:"operating_hours"`
}

type geofenceEntry struct {
	ID                  string             `mapstructure:"id"`
	Name                string             `mapstructure:"name"`
	Type                string             `mapstructure:"type"`
	Center              models.Coordinates `mapstructure:"center"`
	RadiusMeters        float64            `mapstructure:"radius_meters"`
	SurgeMultiplier     float64            `mapstructure:"surge_multiplier"`
	PickupPoints        []pickupPointEntry `mapstructure:"pickup_points"`
	SpecialInstructions string             `mapstructure:"special_instructions"`
	Constraints         *constraintsEntry  `mapstructure:"constraints"`
	IsActive            *bool              `mapstructure:"is_active"`
}

func (e geofenceEntry) toModel() models.Geofence {
	g := models.Geofence{
		ID:                  e.ID,
		Name:                e.Name,
		Type:                models.GeofenceType(e.Type),
		Center:              e.Center,
		RadiusMeters:        e.RadiusMeters,
		SurgeMultiplier:     e.SurgeMultiplier,
		SpecialInstructions: e.SpecialInstructions,
		IsActive:            e.IsActive == nil || *e.IsActive,
		PickupPoints:        make([]models.PickupPoint, 0, len(e.PickupPoints)),
	}
	for _, p := range e.PickupPoints {
		g.PickupPoints = append(g.PickupPoints, models.PickupPoint{
			ID:           p.ID,
			Name:         p.Name,
			Location:     p.Location,
			Instructions: p.Instructions,
		})
	}
	if e.Constraints != nil {
		g.Constraints = &models.GeofenceConstraints{
			AllowedVehicleTypes: e.Constraints.AllowedVehicleTypes,
			MaxWaitMinutes:      e.Constraints.MaxWaitMinutes,
			OperatingHours:      e.Constraints.OperatingHours,
		}
	}
	return g
}

type fileGeofenceSource struct {
	path string
}

// NewFileGeofenceSource reads geofences from a YAML or JSON file under the "geofences" key.
// Entries without is_active are active.
func NewFileGeofenceSource(path string) location.GeofenceSource {
	return &fileGeofenceSource{path: path}
}

func (s *fileGeofenceSource) Name() string { return "file:" + s.path }

func (s *fileGeofenceSource) Load(ctx context.Context) ([]models.Geofence, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read geofence file: %w", err)
	}

	var entries []geofenceEntry
	if err := v.UnmarshalKey("geofences", &entries); err != nil {
		return nil, fmt.Errorf("failed to decode geofence file: %w", err)
	}

	out := make([]models.Geofence, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.toModel())
	}
	return out, nil
}

type geofenceRow struct {
	ID                  string         `db:"id"`
	Name                string         `db:"name"`
	Type                string         `db:"type"`
	CenterLat           float64        `db:"center_lat"`
	CenterLng           float64        `db:"center_lng"`
	RadiusMeters        float64        `db:"radius_meters"`
	SurgeMultiplier     float64        `db:"surge_multiplier"`
	SpecialInstructions sql.NullString `db:"special_instructions"`
	AllowedVehicleTypes sql.NullString `db:"allowed_vehicle_types"`
	MaxWaitMinutes      sql.NullInt64  `db:"max_wait_minutes"`
	OperatingHours      sql.NullString `db:"operating_hours"`
	IsActive            bool           `db:"is_active"`
}

type pickupPointRow struct {
	ID           string         `db:"id"`
	GeofenceID   string         `db:"geofence_id"`
	Name         string         `db:"name"`
	Lat          float64        `db:"lat"`
	Lng          float64        `db:"lng"`
	Instructions sql.NullString `db:"instructions"`
}

const (
	selectGeofencesQuery = `
		SELECT id, name, type, center_lat, center_lng, radius_meters, surge_multiplier,
		       special_instructions, allowed_vehicle_types, max_wait_minutes, operating_hours, is_active
		FROM geofences
		ORDER BY created_at, id`

	selectPickupPointsQuery = `
		SELECT id, geofence_id, name, lat, lng, instructions
		FROM geofence_pickup_points
		ORDER BY geofence_id, id`
)

type postgresGeofenceSource struct {
	db *sqlx.DB
}

// NewPostgresGeofenceSource reads the geofences and geofence_pickup_points tables
func NewPostgresGeofenceSource(db *sqlx.DB) location.GeofenceSource {
	return &postgresGeofenceSource{db: db}
}

func (s *postgresGeofenceSource) Name() string { return "postgres" }

func (s *postgresGeofenceSource) Load(ctx context.Context) ([]models.Geofence, error) {
	var rows []geofenceRow
	if err := s.db.SelectContext(ctx, &rows, selectGeofencesQuery); err != nil {
		return nil, fmt.Errorf("failed to query geofences: %w", err)
	}

	var points []pickupPointRow
	if err := s.db.SelectContext(ctx, &points, selectPickupPointsQuery); err != nil {
		return nil, fmt.Errorf("failed to query pickup points: %w", err)
	}

	byGeofence := make(map[string][]models.PickupPoint)
	for _, p := range points {
		byGeofence[p.GeofenceID] = append(byGeofence[p.GeofenceID], models.PickupPoint{
			ID:           p.ID,
			Name:         p.Name,
			Location:     models.Coordinates{Latitude: p.Lat, Longitude: p.Lng},
			Instructions: p.Instructions.String,
		})
	}

	out := make([]models.Geofence, 0, len(rows))
	for _, r := range rows {
		g := models.Geofence{
			ID:                  r.ID,
			Name:                r.Name,
			Type:                models.GeofenceType(r.Type),
			Center:              models.Coordinates{Latitude: r.CenterLat, Longitude: r.CenterLng},
			RadiusMeters:        r.RadiusMeters,
			SurgeMultiplier:     r.SurgeMultiplier,
			SpecialInstructions: r.SpecialInstructions.String,
			IsActive:            r.IsActive,
			PickupPoints:        byGeofence[r.ID],
		}
		if r.AllowedVehicleTypes.Valid || r.MaxWaitMinutes.Valid || r.OperatingHours.Valid {
			g.Constraints = &models.GeofenceConstraints{
				AllowedVehicleTypes: splitList(r.AllowedVehicleTypes.String),
				MaxWaitMinutes:      int(r.MaxWaitMinutes.Int64),
				OperatingHours:      r.OperatingHours.String,
			}
		}
		out = append(out, g)
	}
	return out, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
