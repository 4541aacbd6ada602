package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/utils"
	"github.com/piresc/cabdispatch/services/location"
)

// GeofenceHandler handles HTTP requests for geofence queries
type GeofenceHandler struct {
	geofenceUC    location.GeofenceUC
	defaultRadius float64
}

// NewGeofenceHandler creates a new geofence HTTP handler
func NewGeofenceHandler(geofenceUC location.GeofenceUC, defaultRadiusKm float64) *GeofenceHandler {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = constants.DefaultSearchRadiusKm
	}
	return &GeofenceHandler{
		geofenceUC:    geofenceUC,
		defaultRadius: defaultRadiusKm,
	}
}

// ListGeofences returns every active geofence
func (h *GeofenceHandler) ListGeofences(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Geofences retrieved", h.geofenceUC.ListActive(c.Request().Context()))
}

// NearbyGeofences returns active geofences overlapping the search circle
func (h *GeofenceHandler) NearbyGeofences(c echo.Context) error {
	point, err := utils.QueryCoordinates(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	radius, err := utils.QueryFloatDefault(c, "radius", h.defaultRadius)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	fences, err := h.geofenceUC.Nearby(c.Request().Context(), point, radius)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby geofences retrieved", fences)
}

// CheckPoint reports whether lat/lng is inside a geofence
func (h *GeofenceHandler) CheckPoint(c echo.Context) error {
	point, err := utils.QueryCoordinates(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	check, err := h.geofenceUC.CheckPoint(c.Request().Context(), point)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Geofence check completed", check)
}

// GetPickupPoints returns a geofence's pickup points, empty when the geofence is unknown
func (h *GeofenceHandler) GetPickupPoints(c echo.Context) error {
	points := h.geofenceUC.PickupPointsFor(c.Request().Context(), c.Param("id"))
	return utils.SuccessResponse(c, http.StatusOK, "Pickup points retrieved", points)
}
