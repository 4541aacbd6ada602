package realtime

import (
	"context"

	"github.com/piresc/cabdispatch/internal/pkg/models"
)

// Broadcaster is the emission side of the websocket gateway
type Broadcaster interface {
	// BroadcastToRoom returns how many sessions accepted the event
	BroadcastToRoom(room, event string, data interface{}) int
	EmitToUser(userID, event string, data interface{}) int
	IsUserOnline(userID string) bool
	UserSocketCount(userID string) int
}

// NotifierUC pushes server-initiated events to connected clients.
// Every emission is best effort and returns the number of sockets reached.
type NotifierUC interface {
	EmitTripStatusUpdate(ctx context.Context, update models.TripStatusUpdate) (int, error)
	EmitToUser(ctx context.Context, userID, event string, payload interface{}) (int, error)
	// EmitDriverAssigned notifies the trip room and sends the customer a driver_assigned notification
	EmitDriverAssigned(ctx context.Context, assigned models.DriverAssigned) (int, error)
	// EmitPaymentUpdate also sends a payment_success notification for completed payments
	EmitPaymentUpdate(ctx context.Context, userID string, payment models.PaymentUpdate) (int, error)
	EmitNotification(ctx context.Context, userID string, notification models.Notification) (int, error)
	Presence(userID string) models.UserPresence
}
