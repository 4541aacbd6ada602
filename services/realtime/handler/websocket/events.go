package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/models"
)

var (
	ErrInvalidFormat  = errors.New("message must be a JSON object with an event name")
	ErrUnknownEvent   = errors.New("unknown event")
	ErrInvalidPayload = errors.New("invalid event payload")
)

// InboundEvent is a decoded client message. Only the types in this file implement it.
type InboundEvent interface {
	Event() string
	validate() error
}

// TripJoin subscribes the socket to a trip room
type TripJoin struct {
	TripID string `json:"tripId"`
}

// TripLeave unsubscribes the socket from a trip room
type TripLeave struct {
	TripID string `json:"tripId"`
}

// DriverLocationPush is a live location report from a driver socket
type DriverLocationPush struct {
	TripID  string   `json:"tripId"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Heading *float64 `json:"heading,omitempty"`
	Speed   *float64 `json:"speed,omitempty"`
}

// DriverLocationQuery asks for a driver's last known presence
type DriverLocationQuery struct {
	DriverID string `json:"driverId"`
}

func (TripJoin) Event() string            { return constants.EventTripJoin }
func (TripLeave) Event() string           { return constants.EventTripLeave }
func (DriverLocationPush) Event() string  { return constants.EventDriverLocation }
func (DriverLocationQuery) Event() string { return constants.EventDriverLocationGet }

func (e TripJoin) validate() error {
	if e.TripID == "" {
		return fmt.Errorf("%w: tripId is required", ErrInvalidPayload)
	}
	return nil
}

func (e TripLeave) validate() error {
	if e.TripID == "" {
		return fmt.Errorf("%w: tripId is required", ErrInvalidPayload)
	}
	return nil
}

func (e DriverLocationPush) validate() error {
	if e.Lat == nil || e.Lng == nil {
		return fmt.Errorf("%w: lat and lng are required", ErrInvalidPayload)
	}
	return nil
}

func (e DriverLocationQuery) validate() error {
	if e.DriverID == "" {
		return fmt.Errorf("%w: driverId is required", ErrInvalidPayload)
	}
	return nil
}

// Submission converts the push into a presence update for driverID
func (e DriverLocationPush) Submission(driverID string) models.LocationSubmission {
	return models.LocationSubmission{
		DriverID:  driverID,
		TripID:    e.TripID,
		Latitude:  *e.Lat,
		Longitude: *e.Lng,
		Heading:   e.Heading,
		Speed:     e.Speed,
	}
}

// DecodeInbound parses an {"event", "data"} frame into its typed event.
// The event name is returned whenever the envelope itself parsed, even on error.
func DecodeInbound(raw []byte) (string, InboundEvent, error) {
	var msg models.WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Event == "" {
		return "", nil, ErrInvalidFormat
	}

	var event InboundEvent
	switch msg.Event {
	case constants.EventTripJoin:
		e := TripJoin{}
		if err := decodeData(msg.Data, &e); err != nil {
			return msg.Event, nil, err
		}
		event = e
	case constants.EventTripLeave:
		e := TripLeave{}
		if err := decodeData(msg.Data, &e); err != nil {
			return msg.Event, nil, err
		}
		event = e
	case constants.EventDriverLocation:
		e := DriverLocationPush{}
		if err := decodeData(msg.Data, &e); err != nil {
			return msg.Event, nil, err
		}
		event = e
	case constants.EventDriverLocationGet:
		e := DriverLocationQuery{}
		if err := decodeData(msg.Data, &e); err != nil {
			return msg.Event, nil, err
		}
		event = e
	default:
		return msg.Event, nil, fmt.Errorf("%w: %s", ErrUnknownEvent, msg.Event)
	}

	if err := event.validate(); err != nil {
		return msg.Event, nil, err
	}
	return msg.Event, event, nil
}

func decodeData(data json.RawMessage, v interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("%w: data is required", ErrInvalidPayload)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
