package models

import "time"

// LatLng is a bare coordinate pair
type LatLng struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Position represents a geographic position sample for a rider.
// Accuracy is only populated for samples sourced from a real device.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	Accuracy  float64   `json:"accuracy,omitempty"`
}

// LatLng returns the coordinate pair of the position
func (p Position) LatLng() LatLng {
	return LatLng{Latitude: p.Latitude, Longitude: p.Longitude}
}

// TelemetryUpdate represents a position report pushed by a rider device
type TelemetryUpdate struct {
	OrderID   string    `json:"order_id"`
	DriverID  string    `json:"driver_id"`
	Position  Position  `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
