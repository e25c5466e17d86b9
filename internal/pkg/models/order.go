package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mode represents the fulfillment mode of an order
type Mode string

const (
	ModeDelivery Mode = "DELIVERY"
	ModePickup   Mode = "PICKUP"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusPacking   OrderStatus = "PACKING"
	StatusOnTheWay  OrderStatus = "ON_THE_WAY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusReady     OrderStatus = "READY"
	StatusPickedUp  OrderStatus = "PICKED_UP"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusRejected  OrderStatus = "REJECTED"
)

// ParseMode normalizes a raw mode string. Anything unrecognized falls
// back to delivery, the dominant fulfillment mode.
func ParseMode(raw string) Mode {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(ModePickup):
		return ModePickup
	default:
		return ModeDelivery
	}
}

// ParseStatus normalizes a raw status string into an OrderStatus.
// Unrecognized values pass through uppercased so they can still be
// compared and logged; they simply match no step.
func ParseStatus(raw string) OrderStatus {
	return OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsTerminal reports whether no further transition may leave the status
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusPickedUp, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// Order is the in-memory view of an order owned by its tracking
// session. StoreLocation is always set for a placed order;
// CustomerLocation is set at checkout for delivery orders;
// DriverPosition is only meaningful while the order is in transit.
type Order struct {
	ID               uuid.UUID   `json:"order_id"`
	MartID           uuid.UUID   `json:"mart_id"`
	CustomerID       uuid.UUID   `json:"customer_id"`
	Mode             Mode        `json:"fulfillment_mode"`
	Status           OrderStatus `json:"status"`
	StoreLocation    LatLng      `json:"store_location"`
	CustomerLocation *LatLng     `json:"customer_location,omitempty"`
	DriverPosition   *Position   `json:"driver_position,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// OrderUpdate is a partial order record pushed over the order-change
// channel. Nil fields were not part of the change.
type OrderUpdate struct {
	OrderID        string    `json:"order_id"`
	Status         *string   `json:"status,omitempty"`
	DriverPosition *Position `json:"driver_position,omitempty"`
}

// OrderStep is one named checkpoint in an order's progress display
type OrderStep struct {
	Status OrderStatus `json:"status"`
	Label  string      `json:"label"`
	Icon   string      `json:"icon"`
}

// OrderView is the merged tracking state emitted to the presentation
// layer on every tick or push event.
type OrderView struct {
	OrderID        string      `json:"order_id"`
	Mode           Mode        `json:"fulfillment_mode"`
	Status         OrderStatus `json:"status"`
	Steps          []OrderStep `json:"steps"`
	CurrentStep    int         `json:"current_step"`
	Progress       float64     `json:"progress"`
	DriverPosition *Position   `json:"driver_position,omitempty"`
}

// StatusCommand is a fire-and-forget status update command issued to
// the persistence layer.
type StatusCommand struct {
	OrderID     string    `json:"order_id"`
	NewStatus   string    `json:"new_status"`
	RequestedBy string    `json:"requested_by"`
	CreatedAt   time.Time `json:"created_at"`
}
