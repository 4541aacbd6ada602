package http

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/middleware"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/internal/utils"
	"github.com/piresc/cabdispatch/services/realtime"
)

// InternalHandler exposes server-initiated emissions to other services
type InternalHandler struct {
	notifier realtime.NotifierUC
}

// NewInternalHandler creates a new internal emission handler
func NewInternalHandler(notifier realtime.NotifierUC) *InternalHandler {
	return &InternalHandler{notifier: notifier}
}

type emissionResult struct {
	Delivered int `json:"delivered"`
}

type userEventRequest struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// TripStatus pushes a trip status change to the trip room
func (h *InternalHandler) TripStatus(c echo.Context) error {
	var update models.TripStatusUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	update.TripID = c.Param("id")
	middleware.SetTripID(c, update.TripID)

	delivered, err := h.notifier.EmitTripStatusUpdate(c.Request().Context(), update)
	return h.respond(c, delivered, err)
}

// DriverAssigned announces the assigned driver to the trip room and the customer
func (h *InternalHandler) DriverAssigned(c echo.Context) error {
	var assigned models.DriverAssigned
	if err := c.Bind(&assigned); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	assigned.TripID = c.Param("id")
	middleware.SetTripID(c, assigned.TripID)

	delivered, err := h.notifier.EmitDriverAssigned(c.Request().Context(), assigned)
	return h.respond(c, delivered, err)
}

// PaymentUpdate pushes a payment change to its owner
func (h *InternalHandler) PaymentUpdate(c echo.Context) error {
	var payment models.PaymentUpdate
	if err := c.Bind(&payment); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	userID := c.Param("id")
	payment.UserID = userID

	delivered, err := h.notifier.EmitPaymentUpdate(c.Request().Context(), userID, payment)
	return h.respond(c, delivered, err)
}

// Notify sends a notification to every socket of a user
func (h *InternalHandler) Notify(c echo.Context) error {
	var notification models.Notification
	if err := c.Bind(&notification); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	delivered, err := h.notifier.EmitNotification(c.Request().Context(), c.Param("id"), notification)
	return h.respond(c, delivered, err)
}

// UserEvent sends an arbitrary event to every socket of a user
func (h *InternalHandler) UserEvent(c echo.Context) error {
	var req userEventRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	var payload interface{}
	if len(req.Payload) > 0 {
		payload = req.Payload
	}
	delivered, err := h.notifier.EmitToUser(c.Request().Context(), c.Param("id"), req.Event, payload)
	return h.respond(c, delivered, err)
}

// UserOnline reports whether a user holds live sockets
func (h *InternalHandler) UserOnline(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "User presence retrieved", h.notifier.Presence(c.Param("id")))
}

func (h *InternalHandler) respond(c echo.Context, delivered int, err error) error {
	if err != nil {
		logger.Warn("Internal emission rejected",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Event emitted", emissionResult{Delivered: delivered})
}
