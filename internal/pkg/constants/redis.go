package constants

// Redis key formats
const (
	// Tracking service
	KeyOrderDriverPosition = "order:driver:position:%s" // Format: order:driver:position:{order_id}

	// Store discovery
	KeyStoreGeo = "stores:geo" // Geo set of all active store locations
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldAccuracy  = "acc"
)
