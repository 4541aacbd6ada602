package http

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/middleware"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/internal/utils"
	"github.com/piresc/cabdispatch/services/location"
)

// LocationHandler handles HTTP requests for driver presence queries
type LocationHandler struct {
	locationUC    location.LocationUC
	defaultRadius float64
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC, cfg models.LocationConfig) *LocationHandler {
	radius := cfg.DefaultSearchRadiusKm
	if radius <= 0 {
		radius = constants.DefaultSearchRadiusKm
	}
	return &LocationHandler{
		locationUC:    locationUC,
		defaultRadius: radius,
	}
}

type locationUpdateRequest struct {
	DriverID    string   `json:"driverId"`
	TripID      string   `json:"tripId"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	VehicleType string   `json:"vehicleType"`
	IsAvailable *bool    `json:"isAvailable"`
	Heading     *float64 `json:"heading"`
	Speed       *float64 `json:"speed"`
}

// UpdateLocation is the HTTP fallback for driver location pushes.
// Drivers may only report for themselves; admins may report for anyone.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid token claims")
	}

	var req locationUpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind location update", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.Lat == nil || req.Lng == nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}
	if req.DriverID == "" {
		req.DriverID = identity.UserID
	}

	switch identity.Role {
	case constants.RoleAdmin:
	case constants.RoleDriver:
		if req.DriverID != identity.UserID {
			return utils.ForbiddenResponse(c, "drivers may only update their own location")
		}
	default:
		return utils.ForbiddenResponse(c, "only drivers may update locations")
	}

	presence, err := h.locationUC.UpdateDriverLocation(c.Request().Context(), models.LocationSubmission{
		DriverID:    req.DriverID,
		TripID:      req.TripID,
		Latitude:    *req.Lat,
		Longitude:   *req.Lng,
		VehicleType: req.VehicleType,
		IsAvailable: req.IsAvailable,
		Heading:     req.Heading,
		Speed:       req.Speed,
	})
	if err != nil {
		logger.Error("Failed to update driver location",
			logger.DriverID(req.DriverID),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err)
	}

	middleware.AddAttribute(c, "driver_id", req.DriverID)
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", presence)
}

// GetDriverLocation returns a driver's last known presence
func (h *LocationHandler) GetDriverLocation(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver id is required")
	}

	presence, err := h.locationUC.GetDriverLocation(c.Request().Context(), driverID)
	if err != nil {
		logger.Error("Failed to get driver location",
			logger.DriverID(driverID),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err)
	}
	if presence == nil {
		// a driver who never reported is an empty result, data is null
		return c.JSON(http.StatusOK, utils.Response{
			Success: true,
			Message: "No location reported for driver",
			Data:    json.RawMessage("null"),
		})
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver location retrieved", presence)
}

// FindNearbyDrivers lists fresh, available drivers around lat/lng
func (h *LocationHandler) FindNearbyDrivers(c echo.Context) error {
	point, err := utils.QueryCoordinates(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	radius, err := utils.QueryFloatDefault(c, "radius", h.defaultRadius)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	drivers, err := h.locationUC.NearbyDrivers(c.Request().Context(), point, radius, c.QueryParam("vehicleType"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", drivers)
}

// GetDriverDensity summarises supply around lat/lng
func (h *LocationHandler) GetDriverDensity(c echo.Context) error {
	point, err := utils.QueryCoordinates(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	radius, err := utils.QueryFloatDefault(c, "radius", h.defaultRadius)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	density, err := h.locationUC.DriverDensity(c.Request().Context(), point, radius)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver density retrieved", density)
}

// GetHeatMap samples driver supply over a bounding box
func (h *LocationHandler) GetHeatMap(c echo.Context) error {
	var bounds models.Bounds
	edges := []struct {
		name string
		dst  *float64
	}{
		{"north", &bounds.North},
		{"south", &bounds.South},
		{"east", &bounds.East},
		{"west", &bounds.West},
	}
	for _, edge := range edges {
		v, err := utils.QueryFloat(c, edge.name)
		if err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
		*edge.dst = v
	}

	gridSize, err := utils.QueryIntDefault(c, "gridSize", constants.DefaultHeatMapGrid)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	points, err := h.locationUC.HeatMap(c.Request().Context(), bounds, gridSize)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Heat map generated", points)
}
