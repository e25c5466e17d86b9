package constants

// NATS Subjects
const (
	// Order lifecycle
	SubjectOrderUpdated = "order.updated"

	// Rider telemetry
	SubjectDriverPosition = "driver.position"
)

// NSQ topics and channels
const (
	TopicOrderStatusUpdate = "order-status-update"

	ChannelOrderService = "order-service"
)
