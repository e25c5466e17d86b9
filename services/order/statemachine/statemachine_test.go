package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

func TestClassify_DeliveryProgression(t *testing.T) {
	tests := []struct {
		status   string
		index    int
		fraction float64
	}{
		{status: "PLACED", index: 0, fraction: 0},
		{status: "PACKING", index: 1, fraction: 1.0 / 3.0},
		{status: "ON_THE_WAY", index: 2, fraction: 2.0 / 3.0},
		{status: "DELIVERED", index: 3, fraction: 1},
	}

	previous := -1.0
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			p := Classify(tt.status, models.ModeDelivery)
			assert.Equal(t, tt.index, p.CurrentIndex)
			assert.InDelta(t, tt.fraction, p.Fraction, 1e-9)
			assert.Len(t, p.Steps, 4)

			// Monotonically non-decreasing along the step order
			assert.GreaterOrEqual(t, p.Fraction, previous)
			previous = p.Fraction
		})
	}
}

func TestClassify_PickupProgression(t *testing.T) {
	p := Classify("READY", models.ModePickup)
	assert.Equal(t, 2, p.CurrentIndex)
	assert.InDelta(t, 2.0/3.0, p.Fraction, 1e-9)

	p = Classify("PICKED_UP", models.ModePickup)
	assert.Equal(t, 3, p.CurrentIndex)
	assert.InDelta(t, 1.0, p.Fraction, 1e-9)

	// ON_THE_WAY is not a pickup step
	p = Classify("ON_THE_WAY", models.ModePickup)
	assert.Equal(t, -1, p.CurrentIndex)
	assert.Zero(t, p.Fraction)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	p := Classify("packing", models.ModeDelivery)
	assert.Equal(t, 1, p.CurrentIndex)

	p = Classify("  On_The_Way  ", models.ModeDelivery)
	assert.Equal(t, 2, p.CurrentIndex)
}

func TestClassify_UnknownStatusDegrades(t *testing.T) {
	for _, status := range []string{"cancelled", "REJECTED", "garbage", "", "refunded"} {
		p := Classify(status, models.ModeDelivery)
		assert.Equal(t, -1, p.CurrentIndex, "status %q", status)
		assert.Zero(t, p.Fraction, "status %q", status)
	}
}

func TestClassify_FractionAlwaysInRange(t *testing.T) {
	statuses := []string{"PLACED", "PACKING", "ON_THE_WAY", "DELIVERED", "READY", "PICKED_UP", "CANCELLED", "REJECTED", "bogus"}
	modes := []models.Mode{models.ModeDelivery, models.ModePickup}

	for _, mode := range modes {
		for _, status := range statuses {
			p := Classify(status, mode)
			assert.GreaterOrEqual(t, p.Fraction, 0.0)
			assert.LessOrEqual(t, p.Fraction, 1.0)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		mode    models.Mode
		allowed bool
	}{
		{name: "next step allowed", from: "PLACED", to: "PACKING", mode: models.ModeDelivery, allowed: true},
		{name: "skip disallowed", from: "PLACED", to: "DELIVERED", mode: models.ModeDelivery, allowed: false},
		{name: "regression disallowed", from: "ON_THE_WAY", to: "PACKING", mode: models.ModeDelivery, allowed: false},
		{name: "cancel from transit", from: "ON_THE_WAY", to: "CANCELLED", mode: models.ModeDelivery, allowed: true},
		{name: "reject from placed", from: "PLACED", to: "REJECTED", mode: models.ModePickup, allowed: true},
		{name: "terminal is absorbing", from: "DELIVERED", to: "PACKING", mode: models.ModeDelivery, allowed: false},
		{name: "cancel from terminal disallowed", from: "PICKED_UP", to: "CANCELLED", mode: models.ModePickup, allowed: false},
		{name: "pickup ready step", from: "PACKING", to: "READY", mode: models.ModePickup, allowed: true},
		{name: "delivery has no ready step", from: "PACKING", to: "READY", mode: models.ModeDelivery, allowed: false},
		{name: "case insensitive", from: "placed", to: "packing", mode: models.ModeDelivery, allowed: true},
		{name: "unknown from can still cancel", from: "mystery", to: "CANCELLED", mode: models.ModeDelivery, allowed: true},
		{name: "unknown from cannot advance", from: "mystery", to: "PACKING", mode: models.ModeDelivery, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to, tt.mode))
		})
	}
}

func TestSteps_ReturnsCopy(t *testing.T) {
	steps := Steps(models.ModeDelivery)
	steps[0].Label = "mutated"

	fresh := Steps(models.ModeDelivery)
	assert.Equal(t, "Order placed", fresh[0].Label)
}
