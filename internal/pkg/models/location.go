package models

import (
	"fmt"
	"math"
	"time"
)

// Coordinates is a WGS84 point in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude" db:"latitude" mapstructure:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude" mapstructure:"longitude"`
}

// Validate checks that the point lies within the valid latitude/longitude ranges
func (c Coordinates) Validate() error {
	if !isFinite(c.Latitude) || !isFinite(c.Longitude) {
		return fmt.Errorf("%w: latitude and longitude must be finite numbers", ErrInvalidCoordinates)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidCoordinates)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidCoordinates)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DriverPresence is the last known state reported by a driver
type DriverPresence struct {
	DriverID    string      `json:"driverId"`
	Location    Coordinates `json:"location"`
	VehicleType string      `json:"vehicleType"`
	IsAvailable bool        `json:"isAvailable"`
	LastUpdated time.Time   `json:"lastUpdated"`
	Heading     *float64    `json:"heading,omitempty"`
	Speed       *float64    `json:"speed,omitempty"`
	TripID      string      `json:"tripId,omitempty"`
	Geohash     string      `json:"geohash,omitempty"`
}

// NearbyDriver is a presence record annotated with its distance to the query point
type NearbyDriver struct {
	DriverPresence
	DistanceMeters float64 `json:"distanceMeters"`
}

// LocationSubmission is a location push coming from a socket or the HTTP fallback
type LocationSubmission struct {
	DriverID    string   `json:"driverId"`
	TripID      string   `json:"tripId,omitempty"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lng"`
	VehicleType string   `json:"vehicleType,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
	Heading     *float64 `json:"heading,omitempty"`
	Speed       *float64 `json:"speed,omitempty"`
}

// Coordinates returns the submitted point
func (s LocationSubmission) Coordinates() Coordinates {
	return Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}

// DriverLocationEvent is published to the message bus for every accepted location push
type DriverLocationEvent struct {
	DriverID    string    `json:"driver_id"`
	TripID      string    `json:"trip_id,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Heading     *float64  `json:"heading,omitempty"`
	Speed       *float64  `json:"speed,omitempty"`
	VehicleType string    `json:"vehicle_type,omitempty"`
	IsAvailable bool      `json:"is_available"`
	Timestamp   time.Time `json:"timestamp"`
}

// Bounds is a latitude/longitude bounding box
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Validate rejects inverted or out-of-range boxes. Boxes crossing the antimeridian are not supported.
func (b Bounds) Validate() error {
	corners := []Coordinates{{Latitude: b.North, Longitude: b.East}, {Latitude: b.South, Longitude: b.West}}
	for _, c := range corners {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBounds, err)
		}
	}
	if b.North <= b.South {
		return fmt.Errorf("%w: north must be greater than south", ErrInvalidBounds)
	}
	if b.East <= b.West {
		return fmt.Errorf("%w: east must be greater than west", ErrInvalidBounds)
	}
	return nil
}

// HeatMapPoint is one non-empty cell of a driver heat map
type HeatMapPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
	Geohash   string  `json:"geohash,omitempty"`
}

// DriverDensity summarises supply around a point.
// Total is the size of the whole presence store, not the count within the radius.
type DriverDensity struct {
	Total         int            `json:"total"`
	Available     int            `json:"available"`
	ByVehicleType map[string]int `json:"byVehicleType"`
}
