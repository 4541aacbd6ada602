package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/piresc/cabdispatch/internal/pkg/circuitbreaker"
	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	subject string
	payload []byte
	err     error
}

func (p *recordingPublisher) PublishJSON(subject string, v interface{}) error {
	if p.err != nil {
		return p.err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.subject = subject
	p.payload = data
	return nil
}

func TestPublishDriverLocation(t *testing.T) {
	pub := &recordingPublisher{}
	gw := NewLocationGW(pub, nil)

	event := models.DriverLocationEvent{
		DriverID:    "driver-1",
		TripID:      "trip-9",
		Latitude:    12.9941,
		Longitude:   80.1709,
		IsAvailable: true,
		Timestamp:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, gw.PublishDriverLocation(context.Background(), event))
	assert.Equal(t, constants.SubjectLocationUpdate, pub.subject)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(pub.payload, &decoded))
	assert.Equal(t, "driver-1", decoded["driver_id"])
	assert.Equal(t, "trip-9", decoded["trip_id"])
	assert.Equal(t, 12.9941, decoded["latitude"])
	assert.Equal(t, true, decoded["is_available"])
	assert.NotContains(t, decoded, "heading")
}

func TestPublishDriverLocation_Error(t *testing.T) {
	gw := NewLocationGW(&recordingPublisher{err: errors.New("nats: connection closed")}, nil)

	err := gw.PublishDriverLocation(context.Background(), models.DriverLocationEvent{DriverID: "driver-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish driver location")
}

func TestPublishDriverLocation_BreakerOpens(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("nats: connection closed")}
	breaker := circuitbreaker.New(circuitbreaker.Config{Name: "location-publish", FailureThreshold: 2, Timeout: time.Minute})
	gw := NewLocationGW(pub, breaker)

	for i := 0; i < 2; i++ {
		require.Error(t, gw.PublishDriverLocation(context.Background(), models.DriverLocationEvent{DriverID: "driver-1"}))
	}
	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())

	pub.err = nil
	err := gw.PublishDriverLocation(context.Background(), models.DriverLocationEvent{DriverID: "driver-1"})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Empty(t, pub.subject)
}
