package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabdispatch/internal/pkg/middleware"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/services/location"
	httpHandler "github.com/piresc/cabdispatch/services/location/handler/http"
)

// HTTPHandler combines the query handlers of the location service
type HTTPHandler struct {
	locationHTTP *httpHandler.LocationHandler
	geofenceHTTP *httpHandler.GeofenceHandler
	cfg          *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(locationUC location.LocationUC, geofenceUC location.GeofenceUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC, cfg.Location),
		geofenceHTTP: httpHandler.NewGeofenceHandler(geofenceUC, cfg.Location.DefaultSearchRadiusKm),
		cfg:          cfg,
	}
}

// RegisterRoutes registers the JWT protected query API. redisClient may be nil,
// in which case location pushes are not rate limited.
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo, redisClient *redis.Client) {
	api := e.Group("/api/v1", middleware.JWTAuth(h.cfg.JWT), middleware.RequireIdentity())

	// Geofence routes
	api.GET("/geofences", h.geofenceHTTP.ListGeofences)
	api.GET("/geofences/nearby", h.geofenceHTTP.NearbyGeofences)
	api.GET("/geofences/check", h.geofenceHTTP.CheckPoint)
	api.GET("/geofences/:id/pickup-points", h.geofenceHTTP.GetPickupPoints)

	// Driver routes
	api.GET("/drivers/nearby", h.locationHTTP.FindNearbyDrivers)
	api.GET("/drivers/density", h.locationHTTP.GetDriverDensity)
	api.GET("/drivers/:id/location", h.locationHTTP.GetDriverLocation)
	api.GET("/heatmap", h.locationHTTP.GetHeatMap)

	var updateMiddleware []echo.MiddlewareFunc
	if redisClient != nil && h.cfg.RateLimit.Limit > 0 {
		updateMiddleware = append(updateMiddleware,
			middleware.UserRateLimiter(h.cfg.RateLimit.Limit, h.cfg.RateLimit.Period, redisClient))
	}
	api.POST("/location/update", h.locationHTTP.UpdateLocation, updateMiddleware...)
}
