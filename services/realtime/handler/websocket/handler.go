package websocket

import (
	"context"
	"errors"

	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/internal/pkg/observability"
	wspkg "github.com/piresc/cabdispatch/internal/pkg/websocket"
	"github.com/piresc/cabdispatch/services/location"
)

// SessionGateway is the part of the websocket gateway the event router drives
type SessionGateway interface {
	JoinTrip(s *wspkg.Session, tripID string) string
	LeaveTrip(s *wspkg.Session, tripID string)
	BroadcastToRoom(room, event string, data interface{}) int
	Send(s *wspkg.Session, event string, data interface{}) error
	SendError(s *wspkg.Session, code, message string)
	SendCategorizedError(s *wspkg.Session, err error, code string, severity constants.ErrorSeverity)
}

// Handler routes inbound websocket events
type Handler struct {
	gateway    SessionGateway
	locationUC location.LocationUC
	tracer     observability.Tracer
}

// NewHandler creates the inbound event router
func NewHandler(gateway SessionGateway, locationUC location.LocationUC, tracer observability.Tracer) *Handler {
	if tracer == nil {
		tracer = observability.NewNoOpTracer()
	}
	return &Handler{
		gateway:    gateway,
		locationUC: locationUC,
		tracer:     tracer,
	}
}

// HandleMessage handles one inbound frame to completion. It matches websocket.MessageHandler.
func (h *Handler) HandleMessage(ctx context.Context, s *wspkg.Session, data []byte) {
	name, event, err := DecodeInbound(data)
	if err != nil {
		h.rejectFrame(s, name, err)
		return
	}

	ctx, txn := h.tracer.StartTransaction(ctx, "WebSocket/"+name)
	defer txn.End()
	txn.AddAttribute("user_id", s.UserID)

	switch e := event.(type) {
	case TripJoin:
		h.handleTripJoin(s, e)
	case TripLeave:
		h.handleTripLeave(s, e)
	case DriverLocationPush:
		if err := h.handleDriverLocation(ctx, s, e); err != nil {
			txn.NoticeError(err)
		}
	case DriverLocationQuery:
		if err := h.handleDriverLocationQuery(ctx, s, e); err != nil {
			txn.NoticeError(err)
		}
	}
}

// rejectFrame answers a frame that could not be decoded. A known event with a bad
// payload gets a failed ack; anything else gets an error frame.
func (h *Handler) rejectFrame(s *wspkg.Session, name string, err error) {
	switch {
	case errors.Is(err, ErrInvalidPayload):
		h.ack(s, name, models.WSAck{Success: false, Error: err.Error()})
	case errors.Is(err, ErrUnknownEvent):
		h.gateway.SendCategorizedError(s, err, constants.ErrorUnknownEvent, constants.ErrorSeverityClient)
	default:
		h.gateway.SendCategorizedError(s, err, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	}
}

func (h *Handler) handleTripJoin(s *wspkg.Session, e TripJoin) {
	room := h.gateway.JoinTrip(s, e.TripID)
	logger.Debug("Socket joined trip room",
		logger.SocketID(s.ID),
		logger.TripID(e.TripID))
	h.ack(s, e.Event(), models.TripJoinAck{Success: true, Room: room})
}

func (h *Handler) handleTripLeave(s *wspkg.Session, e TripLeave) {
	h.gateway.LeaveTrip(s, e.TripID)
	h.ack(s, e.Event(), models.WSAck{Success: true})
}

// handleDriverLocation accepts pushes from driver sockets only and always keys
// the presence record by the session's own user id.
func (h *Handler) handleDriverLocation(ctx context.Context, s *wspkg.Session, e DriverLocationPush) error {
	if s.Role != constants.RoleDriver {
		logger.Warn("Rejected location push from non-driver socket",
			logger.SocketID(s.ID),
			logger.UserID(s.UserID),
			logger.String("role", s.Role))
		h.ack(s, e.Event(), models.WSAck{Success: false, Error: models.ErrForbiddenRole.Error()})
		return nil
	}

	presence, err := h.locationUC.UpdateDriverLocation(ctx, e.Submission(s.UserID))
	if err != nil {
		msg := err.Error()
		if !isClientError(err) {
			logger.ErrorCtx(ctx, "Failed to update driver location",
				logger.DriverID(s.UserID),
				logger.Err(err))
			msg = "Operation failed"
		}
		h.ack(s, e.Event(), models.WSAck{Success: false, Error: msg})
		return err
	}

	if e.TripID != "" {
		h.gateway.BroadcastToRoom(constants.TripRoom(e.TripID), constants.EventDriverLocationUpdate, models.DriverLocationUpdate{
			DriverID:  presence.DriverID,
			TripID:    e.TripID,
			Lat:       presence.Location.Latitude,
			Lng:       presence.Location.Longitude,
			Heading:   presence.Heading,
			Speed:     presence.Speed,
			Timestamp: models.UnixMillis(presence.LastUpdated),
		})
	}
	h.ack(s, e.Event(), models.WSAck{Success: true})
	return nil
}

func (h *Handler) handleDriverLocationQuery(ctx context.Context, s *wspkg.Session, e DriverLocationQuery) error {
	presence, err := h.locationUC.GetDriverLocation(ctx, e.DriverID)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to get driver location",
			logger.DriverID(e.DriverID),
			logger.Err(err))
		h.ack(s, e.Event(), models.WSAck{Success: false, Error: "Operation failed"})
		return err
	}
	h.ack(s, e.Event(), models.DriverLocationAck{Success: true, Location: presence})
	return nil
}

func (h *Handler) ack(s *wspkg.Session, event string, payload interface{}) {
	if err := h.gateway.Send(s, event+constants.AckSuffix, payload); err != nil {
		logger.Debug("Failed to send websocket ack",
			logger.SocketID(s.ID),
			logger.String("event", event),
			logger.Err(err))
	}
}

func isClientError(err error) bool {
	return errors.Is(err, models.ErrInvalidCoordinates) || errors.Is(err, models.ErrMissingField)
}
