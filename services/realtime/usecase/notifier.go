package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/internal/pkg/observability"
	"github.com/piresc/cabdispatch/services/realtime"
)

// Notifier implements realtime.NotifierUC on top of a Broadcaster
type Notifier struct {
	broadcaster realtime.Broadcaster
	tracer      observability.Tracer
	now         models.Clock
}

// NewNotifier creates the server-initiated emission use case. clock defaults to models.Now.
func NewNotifier(broadcaster realtime.Broadcaster, tracer observability.Tracer, clock models.Clock) *Notifier {
	if tracer == nil {
		tracer = observability.NewNoOpTracer()
	}
	if clock == nil {
		clock = models.Now
	}
	return &Notifier{broadcaster: broadcaster, tracer: tracer, now: clock}
}

// EmitTripStatusUpdate pushes a status change to everyone in the trip room
func (n *Notifier) EmitTripStatusUpdate(ctx context.Context, update models.TripStatusUpdate) (int, error) {
	_, end := n.tracer.StartSegment(ctx, observability.UseCaseSegment("EmitTripStatusUpdate"))
	defer end()

	if update.TripID == "" {
		return 0, fmt.Errorf("%w: tripId", models.ErrMissingField)
	}
	if update.Status == "" {
		return 0, fmt.Errorf("%w: status", models.ErrMissingField)
	}
	if update.Timestamp.IsZero() {
		update.Timestamp = n.now()
	}

	delivered := n.broadcaster.BroadcastToRoom(constants.TripRoom(update.TripID), constants.EventTripStatusUpdate, update)
	logger.DebugCtx(ctx, "Trip status update emitted",
		logger.TripID(update.TripID),
		logger.String("status", update.Status),
		logger.Int("delivered", delivered))
	return delivered, nil
}

// EmitToUser pushes an arbitrary event to every socket of a user
func (n *Notifier) EmitToUser(ctx context.Context, userID, event string, payload interface{}) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: userId", models.ErrMissingField)
	}
	if event == "" {
		return 0, fmt.Errorf("%w: event", models.ErrMissingField)
	}
	return n.broadcaster.EmitToUser(userID, event, payload), nil
}

// EmitDriverAssigned pushes the assignment to the trip room, then tells the customer
func (n *Notifier) EmitDriverAssigned(ctx context.Context, assigned models.DriverAssigned) (int, error) {
	_, end := n.tracer.StartSegment(ctx, observability.UseCaseSegment("EmitDriverAssigned"))
	defer end()

	if assigned.TripID == "" {
		return 0, fmt.Errorf("%w: tripId", models.ErrMissingField)
	}
	if assigned.Timestamp.IsZero() {
		assigned.Timestamp = n.now()
	}

	delivered := n.broadcaster.BroadcastToRoom(constants.TripRoom(assigned.TripID), constants.EventTripDriverAssigned, assigned)
	if assigned.CustomerID == "" {
		return delivered, nil
	}

	driverName := assigned.Driver.Name
	if driverName == "" {
		driverName = "Your driver"
	}
	delivered += n.broadcaster.EmitToUser(assigned.CustomerID, constants.EventNotification, models.Notification{
		Type:    constants.NotificationDriverAssigned,
		Title:   "Driver assigned",
		Message: fmt.Sprintf("%s is on the way", driverName),
		Data: map[string]interface{}{
			"tripId":   assigned.TripID,
			"driverId": assigned.Driver.ID,
		},
		Timestamp: assigned.Timestamp,
	})
	return delivered, nil
}

// EmitPaymentUpdate pushes a payment change to its owner
func (n *Notifier) EmitPaymentUpdate(ctx context.Context, userID string, payment models.PaymentUpdate) (int, error) {
	_, end := n.tracer.StartSegment(ctx, observability.UseCaseSegment("EmitPaymentUpdate"))
	defer end()

	if userID == "" {
		return 0, fmt.Errorf("%w: userId", models.ErrMissingField)
	}
	if payment.Timestamp.IsZero() {
		payment.Timestamp = n.now()
	}

	delivered := n.broadcaster.EmitToUser(userID, constants.EventPaymentUpdate, payment)
	if payment.Status != constants.PaymentStatusCompleted {
		return delivered, nil
	}

	delivered += n.broadcaster.EmitToUser(userID, constants.EventNotification, models.Notification{
		Type:    constants.NotificationPaymentSuccess,
		Title:   "Payment successful",
		Message: "Your payment has been processed",
		Data: map[string]interface{}{
			"paymentId": payment.PaymentID,
			"tripId":    payment.TripID,
			"amount":    payment.Amount,
		},
		Timestamp: payment.Timestamp,
	})
	return delivered, nil
}

// EmitNotification pushes a notification to every socket of a user
func (n *Notifier) EmitNotification(ctx context.Context, userID string, notification models.Notification) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: userId", models.ErrMissingField)
	}
	if notification.Type == "" || notification.Message == "" {
		return 0, fmt.Errorf("%w: notification type and message", models.ErrMissingField)
	}
	if notification.Timestamp.IsZero() {
		notification.Timestamp = n.now()
	}
	return n.broadcaster.EmitToUser(userID, constants.EventNotification, notification), nil
}

// Presence reports how many live sockets a user holds
func (n *Notifier) Presence(userID string) models.UserPresence {
	sockets := n.broadcaster.UserSocketCount(userID)
	return models.UserPresence{UserID: userID, Online: sockets > 0, Sockets: sockets}
}
