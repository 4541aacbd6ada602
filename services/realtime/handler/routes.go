package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabdispatch/internal/pkg/middleware"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/internal/pkg/observability"
	wspkg "github.com/piresc/cabdispatch/internal/pkg/websocket"
	"github.com/piresc/cabdispatch/services/location"
	"github.com/piresc/cabdispatch/services/realtime"
	httpHandler "github.com/piresc/cabdispatch/services/realtime/handler/http"
	wsHandler "github.com/piresc/cabdispatch/services/realtime/handler/websocket"
)

// Handler combines the websocket and internal HTTP surfaces of the realtime service
type Handler struct {
	gateway      *wspkg.Gateway
	wsHandler    *wsHandler.Handler
	internalHTTP *httpHandler.InternalHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	gateway *wspkg.Gateway,
	locationUC location.LocationUC,
	notifier realtime.NotifierUC,
	cfg *models.Config,
	tracer observability.Tracer,
) *Handler {
	return &Handler{
		gateway:      gateway,
		wsHandler:    wsHandler.NewHandler(gateway, locationUC, tracer),
		internalHTTP: httpHandler.NewInternalHandler(notifier),
		cfg:          cfg,
	}
}

// HandleWebSocket authenticates and upgrades a client connection
func (h *Handler) HandleWebSocket(c echo.Context) error {
	return h.gateway.HandleConnection(c, h.wsHandler.HandleMessage)
}

// RegisterRoutes registers the websocket endpoint and the internal emission API
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.HandleWebSocket)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.APIKeyAuth(h.cfg.APIKeys))

	internal.POST("/trips/:id/status", h.internalHTTP.TripStatus)
	internal.POST("/trips/:id/driver-assigned", h.internalHTTP.DriverAssigned)
	internal.POST("/users/:id/payment", h.internalHTTP.PaymentUpdate)
	internal.POST("/users/:id/notify", h.internalHTTP.Notify)
	internal.POST("/users/:id/events", h.internalHTTP.UserEvent)
	internal.GET("/users/:id/online", h.internalHTTP.UserOnline)
}
