package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/cabdispatch/internal/pkg/constants"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	natspkg "github.com/piresc/cabdispatch/internal/pkg/nats"
	"github.com/piresc/cabdispatch/internal/pkg/observability"
	"github.com/piresc/cabdispatch/services/realtime"
)

// Subscriber is satisfied by *natspkg.Client
type Subscriber interface {
	QueueSubscribe(subject, queueGroup string, handler natspkg.MessageHandler) error
}

// RealtimeHandler bridges bus events to websocket emissions
type RealtimeHandler struct {
	notifier   realtime.NotifierUC
	subscriber Subscriber
	queueGroup string
	tracer     observability.Tracer
}

// NewRealtimeHandler creates a new realtime NATS handler
func NewRealtimeHandler(notifier realtime.NotifierUC, subscriber Subscriber, queueGroup string, tracer observability.Tracer) *RealtimeHandler {
	if queueGroup == "" {
		queueGroup = constants.DefaultRealtimeQueueGroup
	}
	if tracer == nil {
		tracer = observability.NewNoOpTracer()
	}
	return &RealtimeHandler{
		notifier:   notifier,
		subscriber: subscriber,
		queueGroup: queueGroup,
		tracer:     tracer,
	}
}

// InitNATSConsumers subscribes to every emission subject
func (h *RealtimeHandler) InitNATSConsumers() error {
	consumers := []struct {
		subject string
		handler natspkg.MessageHandler
	}{
		{constants.SubjectTripStatusUpdate, h.handleTripStatusUpdate},
		{constants.SubjectTripDriverAssigned, h.handleDriverAssigned},
		{constants.SubjectPaymentUpdate, h.handlePaymentUpdate},
		{constants.SubjectUserNotification, h.handleUserNotification},
	}

	// A queue group hands each emission to one instance only, so a user whose socket is
	// held by another instance misses it. Sockets are assumed pinned to a single instance.
	for _, c := range consumers {
		if err := h.subscriber.QueueSubscribe(c.subject, h.queueGroup, h.traced(c.subject, c.handler)); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", c.subject, err)
		}
		logger.Info("Subscribed to NATS subject",
			logger.String("subject", c.subject),
			logger.String("queue_group", h.queueGroup))
	}
	return nil
}

// traced wraps each delivery in a background transaction
func (h *RealtimeHandler) traced(subject string, handler natspkg.MessageHandler) natspkg.MessageHandler {
	return func(msg []byte) error {
		_, txn := h.tracer.StartTransaction(context.Background(), "NATS/"+subject)
		defer txn.End()
		err := handler(msg)
		if err != nil {
			txn.NoticeError(err)
		}
		return err
	}
}

func (h *RealtimeHandler) handleTripStatusUpdate(msg []byte) error {
	var update models.TripStatusUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		logger.Error("Failed to unmarshal trip status update", logger.Err(err))
		return err
	}

	delivered, err := h.notifier.EmitTripStatusUpdate(context.Background(), update)
	if err != nil {
		return err
	}
	logger.Debug("Trip status update relayed",
		logger.TripID(update.TripID),
		logger.Int("delivered", delivered))
	return nil
}

func (h *RealtimeHandler) handleDriverAssigned(msg []byte) error {
	var assigned models.DriverAssigned
	if err := json.Unmarshal(msg, &assigned); err != nil {
		logger.Error("Failed to unmarshal driver assigned event", logger.Err(err))
		return err
	}

	_, err := h.notifier.EmitDriverAssigned(context.Background(), assigned)
	return err
}

func (h *RealtimeHandler) handlePaymentUpdate(msg []byte) error {
	var payment models.PaymentUpdate
	if err := json.Unmarshal(msg, &payment); err != nil {
		logger.Error("Failed to unmarshal payment update", logger.Err(err))
		return err
	}

	_, err := h.notifier.EmitPaymentUpdate(context.Background(), payment.UserID, payment)
	return err
}

func (h *RealtimeHandler) handleUserNotification(msg []byte) error {
	var event models.UserNotificationEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.Error("Failed to unmarshal user notification", logger.Err(err))
		return err
	}

	_, err := h.notifier.EmitNotification(context.Background(), event.UserID, event.Notification)
	return err
}
