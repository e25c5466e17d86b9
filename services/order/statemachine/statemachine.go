// Package statemachine governs order status transitions per
// fulfillment mode and derives the step list and progress fraction
// shown by tracking views.
package statemachine

import (
	"github.com/lokamart/lokamart/internal/pkg/models"
)

var deliverySteps = []models.OrderStep{
	{Status: models.StatusPlaced, Label: "Order placed", Icon: "receipt"},
	{Status: models.StatusPacking, Label: "Packing your order", Icon: "package"},
	{Status: models.StatusOnTheWay, Label: "On the way", Icon: "truck"},
	{Status: models.StatusDelivered, Label: "Delivered", Icon: "check-circle"},
}

var pickupSteps = []models.OrderStep{
	{Status: models.StatusPlaced, Label: "Order placed", Icon: "receipt"},
	{Status: models.StatusPacking, Label: "Packing your order", Icon: "package"},
	{Status: models.StatusReady, Label: "Ready for pickup", Icon: "shopping-bag"},
	{Status: models.StatusPickedUp, Label: "Picked up", Icon: "check-circle"},
}

// Steps returns the ordered checkpoint list for a fulfillment mode.
// The returned slice is a copy; callers may not mutate the step tables.
func Steps(mode models.Mode) []models.OrderStep {
	var steps []models.OrderStep
	switch mode {
	case models.ModePickup:
		steps = pickupSteps
	default:
		steps = deliverySteps
	}

	out := make([]models.OrderStep, len(steps))
	copy(out, steps)
	return out
}

// Progress is the display classification of a raw status
type Progress struct {
	Steps        []models.OrderStep
	CurrentIndex int
	Fraction     float64
}

// Classify maps a raw status string (case-insensitive) onto the mode's
// step list. Statuses outside the list, including CANCELLED/REJECTED
// and anything unrecognized, degrade to the not-started state
// (index -1, fraction 0) rather than failing.
func Classify(rawStatus string, mode models.Mode) Progress {
	status := models.ParseStatus(rawStatus)
	steps := Steps(mode)

	index := -1
	for i, step := range steps {
		if step.Status == status {
			index = i
			break
		}
	}

	if index < 0 {
		return Progress{Steps: steps, CurrentIndex: -1, Fraction: 0}
	}

	fraction := float64(index) / float64(len(steps)-1)
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	return Progress{Steps: steps, CurrentIndex: index, Fraction: fraction}
}

// CanTransition reports whether an order in status from may move to
// status to under the given mode. Cancellation and rejection are
// allowed from any non-terminal state; otherwise only the immediately
// following step is legal. Terminal states are absorbing.
func CanTransition(rawFrom, rawTo string, mode models.Mode) bool {
	from := models.ParseStatus(rawFrom)
	to := models.ParseStatus(rawTo)

	if from.IsTerminal() {
		return false
	}

	if to == models.StatusCancelled || to == models.StatusRejected {
		return true
	}

	steps := Steps(mode)
	fromIndex := -1
	toIndex := -1
	for i, step := range steps {
		if step.Status == from {
			fromIndex = i
		}
		if step.Status == to {
			toIndex = i
		}
	}

	return fromIndex >= 0 && toIndex == fromIndex+1
}
