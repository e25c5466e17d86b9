package order

import "errors"

var (
	// ErrOrderNotFound is returned when no order exists for the given id
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidTransition is returned when a status update would skip
	// steps or leave a terminal status.
	ErrInvalidTransition = errors.New("invalid status transition")
)
