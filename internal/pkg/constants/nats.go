package constants

// NATS subjects
const (
	SubjectLocationUpdate     = "location.update"
	SubjectTripStatusUpdate   = "trip.status.update"
	SubjectTripDriverAssigned = "trip.driver.assigned"
	SubjectPaymentUpdate      = "payment.update"
	SubjectUserNotification   = "user.notification"
)

// DefaultRealtimeQueueGroup load-balances bridge subscriptions across instances
const DefaultRealtimeQueueGroup = "realtime"
