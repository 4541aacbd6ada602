package constants

// Inbound websocket events
const (
	EventTripJoin          = "trip:join"
	EventTripLeave         = "trip:leave"
	EventDriverLocation    = "driver:location"
	EventDriverLocationGet = "driver:location:get"
)

// Outbound websocket events
const (
	EventDriverLocationUpdate = "driver:location:update"
	EventTripStatusUpdate     = "trip:status:update"
	EventTripDriverAssigned   = "trip:driver:assigned"
	EventPaymentUpdate        = "payment:update"
	EventNotification         = "notification"
	EventError                = "error"

	// AckSuffix is appended to an inbound event name to form its reply
	AckSuffix = ":ack"
)

// Error codes carried in error frames
const (
	ErrorInvalidFormat  = "invalid_format"
	ErrorUnknownEvent   = "unknown_event"
	ErrorInvalidPayload = "invalid_payload"
	ErrorForbidden      = "forbidden"
	ErrorInternal       = "internal_error"
)

// Room name prefixes
const (
	RoomTripPrefix = "trip:"
	RoomUserPrefix = "user:"
)

// Roles
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
)

// Notification types
const (
	NotificationDriverAssigned = "driver_assigned"
	NotificationPaymentSuccess = "payment_success"
)

// PaymentStatusCompleted is the payment status that triggers a success notification
const PaymentStatusCompleted = "completed"

// TripRoom returns the broadcast room for a trip
func TripRoom(tripID string) string {
	return RoomTripPrefix + tripID
}

// UserRoom returns the private room for a user
func UserRoom(userID string) string {
	return RoomUserPrefix + userID
}

// ErrorSeverity decides how much of an error is revealed to the socket client
type ErrorSeverity int

const (
	// ErrorSeverityClient errors are caused by the client input and shown verbatim
	ErrorSeverityClient ErrorSeverity = iota
	// ErrorSeverityServer errors are internal and replaced by a generic message
	ErrorSeverityServer
	// ErrorSeveritySecurity errors are authorization failures and reveal nothing
	ErrorSeveritySecurity
)

func (s ErrorSeverity) String() string {
	switch s {
	case ErrorSeverityClient:
		return "client"
	case ErrorSeverityServer:
		return "server"
	case ErrorSeveritySecurity:
		return "security"
	default:
		return "unknown"
	}
}
