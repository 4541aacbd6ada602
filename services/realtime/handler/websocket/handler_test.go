package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	gorilla "github.com/gorilla/websocket"
	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/jwt"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	wspkg "github.com/piresc/cabdispatch/internal/pkg/websocket"
	"github.com/piresc/cabdispatch/services/location"
	"github.com/piresc/cabdispatch/services/location/mocks"
	"github.com/piresc/cabdispatch/services/location/repository"
	"github.com/piresc/cabdispatch/services/location/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	mu     sync.Mutex
	frames []models.WSMessage
}

func (r *recordingTransport) WriteMessage(messageType int, data []byte) error {
	if messageType != gorilla.TextMessage {
		return nil
	}
	var msg models.WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, msg)
	return nil
}

func (r *recordingTransport) Close() error { return nil }

func (r *recordingTransport) find(event string) (models.WSMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.frames {
		if f.Event == event {
			return f, true
		}
	}
	return models.WSMessage{}, false
}

// waitFor blocks until a frame with the given event has been written
func (r *recordingTransport) waitFor(t *testing.T, event string) models.WSMessage {
	t.Helper()
	var frame models.WSMessage
	require.Eventually(t, func() bool {
		var ok bool
		frame, ok = r.find(event)
		return ok
	}, time.Second, 5*time.Millisecond, "no %q frame", event)
	return frame
}

type fixture struct {
	gateway *wspkg.Gateway
	store   location.PresenceStore
	handler *Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gateway := wspkg.NewGateway(
		jwt.NewHMACVerifier(models.JWTConfig{Secret: "router-secret"}),
		models.GatewayConfig{WriteTimeout: time.Second, SendBufferSize: 16},
	)
	store := repository.NewMemoryPresenceStore()
	locationUC := usecase.NewLocationUC(store, nil, models.LocationConfig{MaxHeatMapGridSize: 100}, nil, nil)
	t.Cleanup(func() { _ = gateway.Shutdown(context.Background()) })
	return &fixture{gateway: gateway, store: store, handler: NewHandler(gateway, locationUC, nil)}
}

func (f *fixture) connect(t *testing.T, userID, role string) (*wspkg.Session, *recordingTransport) {
	t.Helper()
	tr := &recordingTransport{}
	s, err := f.gateway.Register(models.Identity{UserID: userID, Role: role}, tr)
	require.NoError(t, err)
	return s, tr
}

func (f *fixture) send(s *wspkg.Session, event string, data interface{}) {
	raw, _ := json.Marshal(data)
	frame, _ := json.Marshal(models.WSMessage{Event: event, Data: raw})
	f.handler.HandleMessage(context.Background(), s, frame)
}

func readData(t *testing.T, frame models.WSMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(frame.Data, v))
}

func TestHandleMessage_TripJoinAndLeave(t *testing.T) {
	f := newFixture(t)
	s, tr := f.connect(t, "c1", constants.RoleCustomer)

	f.send(s, constants.EventTripJoin, map[string]string{"tripId": "t1"})
	var joined models.TripJoinAck
	readData(t, tr.waitFor(t, "trip:join:ack"), &joined)
	assert.True(t, joined.Success)
	assert.Equal(t, "trip:t1", joined.Room)
	assert.Equal(t, 1, f.gateway.RoomSize("trip:t1"))

	f.send(s, constants.EventTripLeave, map[string]string{"tripId": "t1"})
	var left models.WSAck
	readData(t, tr.waitFor(t, "trip:leave:ack"), &left)
	assert.True(t, left.Success)
	assert.Equal(t, 0, f.gateway.RoomSize("trip:t1"))
}

func TestHandleMessage_DriverLocationBroadcastsToTrip(t *testing.T) {
	f := newFixture(t)
	driver, driverTr := f.connect(t, "d1", constants.RoleDriver)
	customer, customerTr := f.connect(t, "c1", constants.RoleCustomer)

	f.send(customer, constants.EventTripJoin, map[string]string{"tripId": "t1"})
	customerTr.waitFor(t, "trip:join:ack")

	f.send(driver, constants.EventDriverLocation, map[string]interface{}{
		"tripId":  "t1",
		"lat":     12.9941,
		"lng":     80.1709,
		"heading": 90,
	})

	var ack models.WSAck
	readData(t, driverTr.waitFor(t, "driver:location:ack"), &ack)
	assert.True(t, ack.Success)

	var update models.DriverLocationUpdate
	readData(t, customerTr.waitFor(t, constants.EventDriverLocationUpdate), &update)
	assert.Equal(t, "d1", update.DriverID)
	assert.Equal(t, "t1", update.TripID)
	assert.Equal(t, 12.9941, update.Lat)
	require.NotNil(t, update.Heading)
	assert.Equal(t, 90.0, *update.Heading)
	assert.NotZero(t, update.Timestamp)

	stored, err := f.store.Get(context.Background(), "d1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsAvailable)
	assert.Equal(t, "", stored.VehicleType)
}

func TestHandleMessage_DriverLocationWithoutTripDoesNotBroadcast(t *testing.T) {
	f := newFixture(t)
	driver, driverTr := f.connect(t, "d1", constants.RoleDriver)
	watcher, watcherTr := f.connect(t, "c1", constants.RoleCustomer)
	f.gateway.JoinTrip(watcher, "")

	f.send(driver, constants.EventDriverLocation, map[string]interface{}{"lat": 13.0, "lng": 80.2})
	driverTr.waitFor(t, "driver:location:ack")

	_, ok := watcherTr.find(constants.EventDriverLocationUpdate)
	assert.False(t, ok)
}

func TestHandleMessage_CustomerLocationPushRejected(t *testing.T) {
	f := newFixture(t)
	s, tr := f.connect(t, "c1", constants.RoleCustomer)

	f.send(s, constants.EventDriverLocation, map[string]interface{}{"tripId": "t1", "lat": 13.0, "lng": 80.2})

	var ack models.WSAck
	readData(t, tr.waitFor(t, "driver:location:ack"), &ack)
	assert.False(t, ack.Success)
	assert.NotEmpty(t, ack.Error)

	stored, err := f.store.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Nil(t, stored)
	count, err := f.store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHandleMessage_DriverCannotSpoofIdentity(t *testing.T) {
	f := newFixture(t)
	s, tr := f.connect(t, "d1", constants.RoleDriver)

	f.send(s, constants.EventDriverLocation, map[string]interface{}{"driverId": "d2", "lat": 13.0, "lng": 80.2})
	tr.waitFor(t, "driver:location:ack")

	other, err := f.store.Get(context.Background(), "d2")
	require.NoError(t, err)
	assert.Nil(t, other)
	own, err := f.store.Get(context.Background(), "d1")
	require.NoError(t, err)
	assert.NotNil(t, own)
}

func TestHandleMessage_InvalidCoordinates(t *testing.T) {
	f := newFixture(t)
	s, tr := f.connect(t, "d1", constants.RoleDriver)

	f.send(s, constants.EventDriverLocation, map[string]interface{}{"lat": 123.0, "lng": 80.2})

	var ack models.WSAck
	readData(t, tr.waitFor(t, "driver:location:ack"), &ack)
	assert.False(t, ack.Success)
	assert.Contains(t, ack.Error, "invalid coordinates")
}

func TestHandleMessage_DriverLocationGet(t *testing.T) {
	f := newFixture(t)
	driver, driverTr := f.connect(t, "d1", constants.RoleDriver)
	customer, customerTr := f.connect(t, "c1", constants.RoleCustomer)

	f.send(customer, constants.EventDriverLocationGet, map[string]string{"driverId": "d1"})
	frame := customerTr.waitFor(t, "driver:location:get:ack")
	assert.JSONEq(t, `{"success":true,"location":null}`, string(frame.Data))

	f.send(driver, constants.EventDriverLocation, map[string]interface{}{"lat": 13.0, "lng": 80.2})
	driverTr.waitFor(t, "driver:location:ack")

	f.send(driver, constants.EventDriverLocationGet, map[string]string{"driverId": "d1"})
	var ack models.DriverLocationAck
	readData(t, driverTr.waitFor(t, "driver:location:get:ack"), &ack)
	assert.True(t, ack.Success)
	require.NotNil(t, ack.Location)
	assert.Equal(t, 13.0, ack.Location.Location.Latitude)
}

func TestHandleMessage_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		frame     string
		wantEvent string
		wantCode  string
	}{
		{name: "not json", frame: `hello`, wantEvent: constants.EventError, wantCode: constants.ErrorInvalidFormat},
		{name: "missing event", frame: `{"data":{}}`, wantEvent: constants.EventError, wantCode: constants.ErrorInvalidFormat},
		{name: "unknown event", frame: `{"event":"trip:teleport","data":{}}`, wantEvent: constants.EventError, wantCode: constants.ErrorUnknownEvent},
		{name: "missing trip id", frame: `{"event":"trip:join","data":{}}`, wantEvent: "trip:join:ack"},
		{name: "wrong payload type", frame: `{"event":"driver:location","data":{"lat":"north"}}`, wantEvent: "driver:location:ack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			s, tr := f.connect(t, "d1", constants.RoleDriver)

			f.handler.HandleMessage(context.Background(), s, []byte(tt.frame))
			frame := tr.waitFor(t, tt.wantEvent)

			if tt.wantCode != "" {
				var errFrame models.WSErrorMessage
				readData(t, frame, &errFrame)
				assert.Equal(t, tt.wantCode, errFrame.Code)
			} else {
				var ack models.WSAck
				readData(t, frame, &ack)
				assert.False(t, ack.Success)
			}
			assert.True(t, f.gateway.IsUserOnline("d1"))
		})
	}
}

func TestHandleMessage_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locationUC := mocks.NewMockLocationUC(ctrl)
	locationUC.EXPECT().UpdateDriverLocation(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	f := newFixture(t)
	f.handler = NewHandler(f.gateway, locationUC, nil)
	s, tr := f.connect(t, "d1", constants.RoleDriver)

	f.send(s, constants.EventDriverLocation, map[string]interface{}{"tripId": "t1", "lat": 13.0, "lng": 80.2})

	var ack models.WSAck
	readData(t, tr.waitFor(t, "driver:location:ack"), &ack)
	assert.False(t, ack.Success)
	assert.Equal(t, "Operation failed", ack.Error)
}
