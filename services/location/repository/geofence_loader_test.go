package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geofenceYAML = `
geofences:
  - id: tidel-park
    name: TIDEL Park
    type: custom
    center:
      latitude: 12.9897
      longitude: 80.2488
    radius_meters: 350
    surge_multiplier: 1.15
    special_instructions: Use the service road
    constraints:
      allowed_vehicle_types: [sedan, suv]
      max_wait_minutes: 10
      operating_hours: "07:00-23:00"
    pickup_points:
      - id: tidel-gate-1
        name: Gate 1
        location:
          latitude: 12.9893
          longitude: 80.2481
        instructions: Near security desk
  - id: closed-zone
    name: Closed
    center:
      latitude: 13.0
      longitude: 80.2
    radius_meters: 100
    is_active: false
`

func TestFileGeofenceSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geofences.yaml")
	require.NoError(t, os.WriteFile(path, []byte(geofenceYAML), 0o600))

	src := NewFileGeofenceSource(path)
	assert.Equal(t, "file:"+path, src.Name())

	fences, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, fences, 2)

	tidel := fences[0]
	assert.Equal(t, "tidel-park", tidel.ID)
	assert.Equal(t, models.GeofenceCustom, tidel.Type)
	assert.Equal(t, models.Coordinates{Latitude: 12.9897, Longitude: 80.2488}, tidel.Center)
	assert.Equal(t, 350.0, tidel.RadiusMeters)
	assert.Equal(t, 1.15, tidel.SurgeMultiplier)
	assert.True(t, tidel.IsActive)
	require.Len(t, tidel.PickupPoints, 1)
	assert.Equal(t, "Near security desk", tidel.PickupPoints[0].Instructions)
	require.NotNil(t, tidel.Constraints)
	assert.Equal(t, []string{"sedan", "suv"}, tidel.Constraints.AllowedVehicleTypes)
	assert.Equal(t, 10, tidel.Constraints.MaxWaitMinutes)

	assert.False(t, fences[1].IsActive)
	assert.Empty(t, fences[1].PickupPoints)

	repo := NewGeofenceRegistry()
	_, err = LoadGeofences(context.Background(), repo, src)
	require.NoError(t, err)
	closed, ok := repo.Get("closed-zone")
	require.True(t, ok)
	assert.Equal(t, 1.0, closed.SurgeMultiplier)
}

func TestFileGeofenceSource_MissingFile(t *testing.T) {
	_, err := NewFileGeofenceSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	assert.Error(t, err)
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostgresGeofenceSource_Load(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM geofences")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "type", "center_lat", "center_lng", "radius_meters", "surge_multiplier",
			"special_instructions", "allowed_vehicle_types", "max_wait_minutes", "operating_hours", "is_active",
		}).
			AddRow("chennai-airport", "Chennai Airport", "airport", 12.9941, 80.1709, 2000.0, 1.2,
				"Wait in holding area", "sedan, suv", int64(20), "00:00-24:00", true).
			AddRow("egmore", "Egmore", "railway_station", 13.0780, 80.2609, 400.0, 1.1,
				nil, nil, nil, nil, true))

	mock.ExpectQuery(regexp.QuoteMeta("FROM geofence_pickup_points")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "geofence_id", "name", "lat", "lng", "instructions"}).
			AddRow("p1", "chennai-airport", "Arrivals", 12.9951, 80.1693, "Level 1").
			AddRow("p2", "chennai-airport", "Departures", 12.9930, 80.1700, nil))

	fences, err := NewPostgresGeofenceSource(db).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, fences, 2)

	airport := fences[0]
	assert.Equal(t, models.GeofenceAirport, airport.Type)
	assert.Equal(t, 1.2, airport.SurgeMultiplier)
	assert.Equal(t, "Wait in holding area", airport.SpecialInstructions)
	require.Len(t, airport.PickupPoints, 2)
	assert.Equal(t, "Level 1", airport.PickupPoints[0].Instructions)
	assert.Equal(t, "", airport.PickupPoints[1].Instructions)
	require.NotNil(t, airport.Constraints)
	assert.Equal(t, []string{"sedan", "suv"}, airport.Constraints.AllowedVehicleTypes)
	assert.Equal(t, 20, airport.Constraints.MaxWaitMinutes)

	assert.Nil(t, fences[1].Constraints)
	assert.Empty(t, fences[1].PickupPoints)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGeofenceSource_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM geofences")).WillReturnError(errors.New("relation does not exist"))

	_, err := NewPostgresGeofenceSource(db).Load(context.Background())
	assert.ErrorContains(t, err, "failed to query geofences")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGeofenceSource_PickupQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM geofences")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM geofence_pickup_points")).
		WillReturnError(errors.New("timeout"))

	_, err := NewPostgresGeofenceSource(db).Load(context.Background())
	assert.ErrorContains(t, err, "failed to query pickup points")
}
