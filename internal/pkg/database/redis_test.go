package database

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, client.Ping(context.Background()))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	assert.Error(t, client.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HashOps(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()
	key := "driver:presence:d1"

	mock.ExpectHSet(key, "vehicle_type", "sedan", "is_available", "1").SetVal(2)
	mock.ExpectHGetAll(key).SetVal(map[string]string{"vehicle_type": "sedan", "is_available": "1"})
	mock.ExpectHGetAll("driver:presence:missing").SetVal(map[string]string{})

	assert.NoError(t, client.HSet(ctx, key, "vehicle_type", "sedan", "is_available", "1"))

	fields, err := client.HGetAll(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, "sedan", fields["vehicle_type"])

	empty, err := client.HGetAll(ctx, "driver:presence:missing")
	assert.NoError(t, err)
	assert.Empty(t, empty)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SetOps(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()
	key := "drivers:presence"

	mock.ExpectSAdd(key, "d1").SetVal(1)
	mock.ExpectSMembers(key).SetVal([]string{"d1", "d2"})
	mock.ExpectSCard(key).SetVal(2)
	mock.ExpectSAdd(key, "d3").SetErr(errors.New("READONLY"))

	assert.NoError(t, client.SAdd(ctx, key, "d1"))

	members, err := client.SMembers(ctx, key)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"d1", "d2"}, members)

	n, err := client.SCard(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	assert.Error(t, client.SAdd(ctx, key, "d3"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAdd(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGeoAdd("drivers:locations", &redis.GeoLocation{
		Longitude: 80.1709,
		Latitude:  12.9941,
		Name:      "driver-1",
	}).SetVal(1)

	err := client.GeoAdd(context.Background(), "drivers:locations", 80.1709, 12.9941, "driver-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRadius(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	expected := []redis.GeoLocation{
		{Name: "driver-1", Longitude: 80.171, Latitude: 12.994, Dist: 0.1},
		{Name: "driver-2", Longitude: 80.18, Latitude: 12.99, Dist: 1.2},
	}
	query := &redis.GeoRadiusQuery{Radius: 5, Unit: "km", WithCoord: true, WithDist: true, Sort: "ASC"}

	mock.ExpectGeoRadius("drivers:locations", 80.1709, 12.9941, query).SetVal(expected)
	mock.ExpectGeoRadius("drivers:locations", 0, 0, query).SetErr(redis.Nil)

	locations, err := client.GeoRadius(context.Background(), "drivers:locations", 80.1709, 12.9941, 5, "km")
	assert.NoError(t, err)
	assert.Equal(t, expected, locations)

	locations, err = client.GeoRadius(context.Background(), "drivers:locations", 0, 0, 5, "km")
	assert.Error(t, err)
	assert.Nil(t, locations)

	assert.NoError(t, mock.ExpectationsWereMet())
}
