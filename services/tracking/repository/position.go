package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lokamart/lokamart/internal/pkg/constants"
	"github.com/lokamart/lokamart/internal/pkg/database"
	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/services/tracking"
)

// PositionTTL bounds how long a sticky last-known position outlives
// its last telemetry report.
const PositionTTL = 24 * time.Hour

type positionRepo struct {
	redisClient *database.RedisClient
}

// NewPositionRepository creates a redis-backed sticky position store
func NewPositionRepository(redisClient *database.RedisClient) tracking.PositionRepo {
	return &positionRepo{redisClient: redisClient}
}

// StorePosition stores the last-known driver position for an order
func (r *positionRepo) StorePosition(ctx context.Context, orderID string, position models.Position) error {
	key := fmt.Sprintf(constants.KeyOrderDriverPosition, orderID)

	ts := position.Timestamp
	if ts.IsZero() {
		ts = models.Now()
	}

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(position.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(position.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(ts.Unix(), 10),
		constants.FieldAccuracy:  strconv.FormatFloat(position.Accuracy, 'f', -1, 64),
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store driver position: %w", err)
	}

	if err := r.redisClient.Expire(ctx, key, PositionTTL); err != nil {
		return fmt.Errorf("failed to set position TTL: %w", err)
	}

	return nil
}

// GetPosition returns the last-known driver position for an order, or
// nil when none has been stored.
func (r *positionRepo) GetPosition(ctx context.Context, orderID string) (*models.Position, error) {
	key := fmt.Sprintf(constants.KeyOrderDriverPosition, orderID)

	values, err := r.redisClient.HMGet(ctx, key,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
		constants.FieldAccuracy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver position: %w", err)
	}

	if len(values) != 4 || values[0] == "" || values[1] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	position := &models.Position{Latitude: lat, Longitude: lng}

	if values[2] != "" {
		if ts, err := strconv.ParseInt(values[2], 10, 64); err == nil {
			position.Timestamp = time.Unix(ts, 0).UTC()
		}
	}
	if values[3] != "" {
		if acc, err := strconv.ParseFloat(values[3], 64); err == nil {
			position.Accuracy = acc
		}
	}

	return position, nil
}

// ClearPosition removes the stored position for an order
func (r *positionRepo) ClearPosition(ctx context.Context, orderID string) error {
	key := fmt.Sprintf(constants.KeyOrderDriverPosition, orderID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear driver position: %w", err)
	}
	return nil
}
