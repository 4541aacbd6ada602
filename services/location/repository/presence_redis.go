package repository

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/database"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/services/location"
)

// geoPadding widens the geo index query so the exact haversine filter applied by callers
// is never cut short by Redis using a slightly different earth radius
const geoPadding = 1.01

// maxGeoLatitude is the polar limit of the Redis geo index
const maxGeoLatitude = 85.05112878

func geoIndexable(c models.Coordinates) bool {
	return math.Abs(c.Latitude) < maxGeoLatitude
}

type redisPresenceStore struct {
	redisClient *database.RedisClient
}

// NewRedisPresenceStore creates a presence store shared by every instance through Redis
func NewRedisPresenceStore(redisClient *database.RedisClient) location.GeoIndexedStore {
	return &redisPresenceStore{redisClient: redisClient}
}

func (r *redisPresenceStore) Upsert(ctx context.Context, presence models.DriverPresence) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, presence.DriverID)

	prev, err := r.Get(ctx, presence.DriverID)
	if err != nil {
		return err
	}
	if prev != nil && presence.LastUpdated.Before(prev.LastUpdated) {
		presence.LastUpdated = prev.LastUpdated
	}

	pipe := r.redisClient.GetClient().TxPipeline()
	pipe.HSet(ctx, key, encodePresence(presence))
	pipe.SAdd(ctx, constants.KeyDriverPresenceSet, presence.DriverID)
	if geoIndexable(presence.Location) {
		pipe.GeoAdd(ctx, constants.KeyDriverGeo, &redis.GeoLocation{
			Name:      presence.DriverID,
			Longitude: presence.Location.Longitude,
			Latitude:  presence.Location.Latitude,
		})
		pipe.SRem(ctx, constants.KeyDriverUnindexed, presence.DriverID)
	} else {
		pipe.ZRem(ctx, constants.KeyDriverGeo, presence.DriverID)
		pipe.SAdd(ctx, constants.KeyDriverUnindexed, presence.DriverID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store driver presence: %w", err)
	}
	return nil
}

func (r *redisPresenceStore) Get(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	values, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverPresence, driverID))
	if err != nil {
		return nil, fmt.Errorf("failed to get driver presence: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	presence, err := decodePresence(driverID, values)
	if err != nil {
		return nil, err
	}
	return &presence, nil
}

func (r *redisPresenceStore) Snapshot(ctx context.Context) ([]models.DriverPresence, error) {
	ids, err := r.redisClient.SMembers(ctx, constants.KeyDriverPresenceSet)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return r.load(ctx, ids)
}

func (r *redisPresenceStore) Count(ctx context.Context) (int, error) {
	n, err := r.redisClient.SCard(ctx, constants.KeyDriverPresenceSet)
	if err != nil {
		return 0, fmt.Errorf("failed to count drivers: %w", err)
	}
	return int(n), nil
}

// Candidates returns the drivers the geo index places within radiusKm of point,
// plus every driver outside the index's latitude range
func (r *redisPresenceStore) Candidates(ctx context.Context, point models.Coordinates, radiusKm float64) ([]models.DriverPresence, error) {
	if !geoIndexable(point) {
		return r.Snapshot(ctx)
	}

	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, point.Longitude, point.Latitude, radiusKm*geoPadding, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query driver positions: %w", err)
	}
	unindexed, err := r.redisClient.SMembers(ctx, constants.KeyDriverUnindexed)
	if err != nil {
		return nil, fmt.Errorf("failed to list unindexed drivers: %w", err)
	}

	seen := make(map[string]struct{}, len(locations)+len(unindexed))
	ids := make([]string, 0, len(locations)+len(unindexed))
	for _, loc := range locations {
		seen[loc.Name] = struct{}{}
		ids = append(ids, loc.Name)
	}
	for _, id := range unindexed {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return r.load(ctx, ids)
}

// load fetches presence hashes in one pipeline round trip
func (r *redisPresenceStore) load(ctx context.Context, ids []string) ([]models.DriverPresence, error) {
	if len(ids) == 0 {
		return []models.DriverPresence{}, nil
	}

	pipe := r.redisClient.GetClient().Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverPresence, id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to load driver presence: %w", err)
	}

	out := make([]models.DriverPresence, 0, len(ids))
	for i, cmd := range cmds {
		values := cmd.Val()
		if len(values) == 0 {
			continue
		}
		presence, err := decodePresence(ids[i], values)
		if err != nil {
			return nil, err
		}
		out = append(out, presence)
	}
	return out, nil
}

func encodePresence(p models.DriverPresence) map[string]interface{} {
	values := map[string]interface{}{
		constants.FieldLatitude:    strconv.FormatFloat(p.Location.Latitude, 'f', -1, 64),
		constants.FieldLongitude:   strconv.FormatFloat(p.Location.Longitude, 'f', -1, 64),
		constants.FieldVehicleType: p.VehicleType,
		constants.FieldIsAvailable: strconv.FormatBool(p.IsAvailable),
		constants.FieldLastUpdated: strconv.FormatInt(p.LastUpdated.UnixNano(), 10),
		constants.FieldTripID:      p.TripID,
		constants.FieldGeohash:     p.Geohash,
		constants.FieldHeading:     "",
		constants.FieldSpeed:       "",
	}
	if p.Heading != nil {
		values[constants.FieldHeading] = strconv.FormatFloat(*p.Heading, 'f', -1, 64)
	}
	if p.Speed != nil {
		values[constants.FieldSpeed] = strconv.FormatFloat(*p.Speed, 'f', -1, 64)
	}
	return values
}

func decodePresence(driverID string, values map[string]string) (models.DriverPresence, error) {
	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return models.DriverPresence{}, fmt.Errorf("invalid latitude for driver %s: %w", driverID, err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return models.DriverPresence{}, fmt.Errorf("invalid longitude for driver %s: %w", driverID, err)
	}
	ts, err := strconv.ParseInt(values[constants.FieldLastUpdated], 10, 64)
	if err != nil {
		return models.DriverPresence{}, fmt.Errorf("invalid timestamp for driver %s: %w", driverID, err)
	}
	available, _ := strconv.ParseBool(values[constants.FieldIsAvailable])

	return models.DriverPresence{
		DriverID:    driverID,
		Location:    models.Coordinates{Latitude: lat, Longitude: lng},
		VehicleType: values[constants.FieldVehicleType],
		IsAvailable: available,
		LastUpdated: time.Unix(0, ts).UTC(),
		Heading:     optionalFloat(values[constants.FieldHeading]),
		Speed:       optionalFloat(values[constants.FieldSpeed]),
		TripID:      values[constants.FieldTripID],
		Geohash:     values[constants.FieldGeohash],
	}, nil
}

func optionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
