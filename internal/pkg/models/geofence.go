package models

import "fmt"

// GeofenceType classifies a geofenced zone
type GeofenceType string

const (
	GeofenceAirport        GeofenceType = "airport"
	GeofenceRailwayStation GeofenceType = "railway_station"
	GeofenceBusStand       GeofenceType = "bus_stand"
	GeofenceMall           GeofenceType = "mall"
	GeofenceHospital       GeofenceType = "hospital"
	GeofenceCustom         GeofenceType = "custom"
)

// Valid reports whether t is one of the known geofence types
func (t GeofenceType) Valid() bool {
	switch t {
	case GeofenceAirport, GeofenceRailwayStation, GeofenceBusStand, GeofenceMall, GeofenceHospital, GeofenceCustom:
		return true
	}
	return false
}

// PickupPoint is a designated pickup spot inside a geofence
type PickupPoint struct {
	ID           string      `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Location     Coordinates `json:"location"`
	Instructions string      `json:"instructions,omitempty" db:"instructions"`
}

// GeofenceConstraints are operating constraints attached to a zone. They are exposed to clients, not enforced.
type GeofenceConstraints struct {
	AllowedVehicleTypes []string `json:"allowedVehicleTypes,omitempty"`
	MaxWaitMinutes      int      `json:"maxWaitMinutes,omitempty"`
	OperatingHours      string   `json:"operatingHours,omitempty"`
}

// Geofence is a named circular zone
type Geofence struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Type                GeofenceType         `json:"type"`
	Center              Coordinates          `json:"center"`
	RadiusMeters        float64              `json:"radiusMeters"`
	SurgeMultiplier     float64              `json:"surgeMultiplier"`
	PickupPoints        []PickupPoint        `json:"pickupPoints"`
	SpecialInstructions string               `json:"specialInstructions,omitempty"`
	Constraints         *GeofenceConstraints `json:"constraints,omitempty"`
	IsActive            bool                 `json:"isActive"`
}

// Validate checks the structural invariants of a geofence
func (g Geofence) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidGeofence)
	}
	if g.RadiusMeters <= 0 {
		return fmt.Errorf("%w: %s: radius must be positive", ErrInvalidGeofence, g.ID)
	}
	if g.SurgeMultiplier < 0 {
		return fmt.Errorf("%w: %s: surge multiplier must not be negative", ErrInvalidGeofence, g.ID)
	}
	if g.Type != "" && !g.Type.Valid() {
		return fmt.Errorf("%w: %s: unknown type %q", ErrInvalidGeofence, g.ID, g.Type)
	}
	if err := g.Center.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidGeofence, g.ID, err)
	}
	return nil
}

// GeofenceCheck is the answer to "is this point inside a zone"
type GeofenceCheck struct {
	IsInGeofence    bool          `json:"isInGeofence"`
	Geofence        *Geofence     `json:"geofence"`
	PickupPoints    []PickupPoint `json:"pickupPoints"`
	SurgeMultiplier float64       `json:"surgeMultiplier"`
}
