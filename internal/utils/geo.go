package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/cabdispatch/internal/pkg/models"
)

const (
	earthRadiusMeters = 6371000.0
	earthRadiusKm     = 6371.0
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// centralAngle returns the haversine central angle in radians between two points
func centralAngle(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceMeters returns the great-circle distance between a and b in meters.
// Accuracy near the poles and the antimeridian is not guaranteed.
func DistanceMeters(a, b models.Coordinates) float64 {
	return earthRadiusMeters * centralAngle(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	return earthRadiusKm * centralAngle(point1.Latitude, point1.Longitude, point2.Latitude, point2.Longitude)
}

// BearingDegrees returns the initial bearing from a to b, in degrees clockwise from north within [0, 360)
func BearingDegrees(a, b models.Coordinates) float64 {
	phi1 := a.Latitude * math.Pi / 180.0
	phi2 := b.Latitude * math.Pi / 180.0
	dLambda := (b.Longitude - a.Longitude) * math.Pi / 180.0

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	theta := math.Atan2(y, x) * 180.0 / math.Pi
	return math.Mod(theta+360.0, 360.0)
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to the coordinates of its cell center
func DecodeGeohash(hash string) models.Coordinates {
	lat, lng := geohash.DecodeCenter(hash)
	return models.Coordinates{Latitude: lat, Longitude: lng}
}

// GeoPointFromCoordinates converts Coordinates to a GeoPoint
func GeoPointFromCoordinates(c models.Coordinates) GeoPoint {
	return GeoPoint{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}
