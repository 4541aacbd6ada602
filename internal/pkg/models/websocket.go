package models

import (
	"encoding/json"
	"time"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	ID    string          `json:"id,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WSAck acknowledges an inbound event. Exactly one ack is sent per handled event.
type WSAck struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// TripJoinAck answers trip:join
type TripJoinAck struct {
	Success bool   `json:"success"`
	Room    string `json:"room"`
}

// DriverLocationAck answers driver:location:get. Location is null when the driver never reported.
type DriverLocationAck struct {
	Success  bool            `json:"success"`
	Location *DriverPresence `json:"location"`
}

// DriverLocationUpdate is broadcast to a trip room when its driver moves
type DriverLocationUpdate struct {
	DriverID  string   `json:"driverId"`
	TripID    string   `json:"tripId"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Heading   *float64 `json:"heading,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// TripStatusUpdate is pushed to a trip room when the trip changes state
type TripStatusUpdate struct {
	TripID    string                 `json:"tripId"`
	Status    string                 `json:"status"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// DriverInfo describes the driver assigned to a trip
type DriverInfo struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	VehicleType   string       `json:"vehicleType,omitempty"`
	VehicleNumber string       `json:"vehicleNumber,omitempty"`
	Rating        float64      `json:"rating,omitempty"`
	Location      *Coordinates `json:"location,omitempty"`
}

// DriverAssigned is pushed to a trip room once a driver accepts the trip
type DriverAssigned struct {
	TripID     string     `json:"tripId"`
	CustomerID string     `json:"customerId,omitempty"`
	Driver     DriverInfo `json:"driver"`
	Timestamp  time.Time  `json:"timestamp"`
}

// PaymentUpdate is pushed to a user when a payment changes state
type PaymentUpdate struct {
	PaymentID string    `json:"paymentId"`
	UserID    string    `json:"userId,omitempty"`
	TripID    string    `json:"tripId,omitempty"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Notification is a generic user-facing notification
type Notification struct {
	Type      string                 `json:"type"`
	Title     string                 `json:"title,omitempty"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// UserNotificationEvent targets a notification at one user over the message bus
type UserNotificationEvent struct {
	UserID string `json:"userId"`
	Notification
}

// UserPresence reports whether a user currently holds live sockets
type UserPresence struct {
	UserID  string `json:"userId"`
	Online  bool   `json:"online"`
	Sockets int    `json:"sockets"`
}

// Identity is the authenticated principal behind a socket or request
type Identity struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
