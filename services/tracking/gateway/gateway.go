package gateway

import (
	"context"
	"fmt"

	"github.com/lokamart/lokamart/internal/pkg/constants"
	"github.com/lokamart/lokamart/internal/pkg/models"
	natspkg "github.com/lokamart/lokamart/internal/pkg/nats"
	"github.com/lokamart/lokamart/services/tracking"
)

type trackingGW struct {
	natsClient *natspkg.Client
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(natsClient *natspkg.Client) tracking.TrackingGW {
	return &trackingGW{
		natsClient: natsClient,
	}
}

// PublishDriverPosition fans a device report out to every tracking
// instance so sessions held elsewhere see it too.
func (g *trackingGW) PublishDriverPosition(_ context.Context, update models.TelemetryUpdate) error {
	if err := g.natsClient.Publish(constants.SubjectDriverPosition, update); err != nil {
		return fmt.Errorf("failed to publish driver position: %w", err)
	}
	return nil
}
