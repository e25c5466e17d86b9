package constants

// WebSocket event names
const (
	EventOrderView       = "order_view"
	EventLocationUpdate  = "location_update"
	EventDeviceError     = "device_error"
	EventSessionReleased = "session_released"
)

// WebSocket error codes
const (
	ErrorInvalidLocation = "INVALID_LOCATION"
	ErrorInvalidMessage  = "INVALID_MESSAGE"
	ErrorOrderNotFound   = "ORDER_NOT_FOUND"
	ErrorUnauthorized    = "UNAUTHORIZED"
)
