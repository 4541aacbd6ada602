package models

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidBounds      = errors.New("invalid bounds")
	ErrInvalidRadius      = errors.New("invalid radius")
	ErrInvalidGeofence    = errors.New("invalid geofence")
	ErrDuplicateGeofence  = errors.New("duplicate geofence")
	ErrForbiddenRole      = errors.New("role not allowed")
	ErrMissingField       = errors.New("missing required field")
)
