package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lokamart/lokamart/internal/pkg/constants"
	"github.com/lokamart/lokamart/internal/pkg/database"
	"github.com/lokamart/lokamart/internal/pkg/logger"
	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/internal/utils"
)

type StoreRepo struct {
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *sqlx.DB, redisClient *database.RedisClient) *StoreRepo {
	return &StoreRepo{
		db:    db,
		redis: redisClient,
	}
}

// AddStore persists a store and indexes it in the geo set
func (r *StoreRepo) AddStore(ctx context.Context, store *models.Store) error {
	store.Geohash = utils.EncodeLocation(store.Location(), 9)
	if store.CreatedAt.IsZero() {
		store.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO stores (store_id, name, latitude, longitude, geohash, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		store.ID, store.Name, store.Latitude, store.Longitude,
		store.Geohash, store.IsActive, store.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert store: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyStoreGeo, store.Longitude, store.Latitude, store.ID.String()); err != nil {
		// The geo index is a cache; proximity queries fall back to SQL
		logger.Warn("Failed to index store location",
			logger.String("store_id", store.ID.String()),
			logger.Err(err))
	}
	return nil
}

// NearbyStores returns active stores within radiusKm of the location,
// nearest first. The redis geo index serves the lookup; when it is
// unavailable the full store list is ranked in memory instead.
func (r *StoreRepo) NearbyStores(ctx context.Context, location models.LatLng, radiusKm float64, limit int) ([]models.Store, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyStoreGeo, location.Longitude, location.Latitude, radiusKm, "km")
	if err != nil {
		logger.Warn("Geo index unavailable, ranking stores in memory", logger.Err(err))
		return r.nearbyStoresFallback(ctx, location, radiusKm, limit)
	}

	if len(locations) == 0 {
		return []models.Store{}, nil
	}

	ids := make([]string, 0, len(locations))
	for _, loc := range locations {
		ids = append(ids, loc.Name)
	}

	query, args, err := sqlx.In(`
		SELECT store_id, name, latitude, longitude, geohash, is_active, created_at
		FROM stores
		WHERE store_id IN (?) AND is_active = true
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build store query: %w", err)
	}

	var stores []models.Store
	if err := r.db.SelectContext(ctx, &stores, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}

	ranked := utils.SortStoresByProximity(stores, location)
	return truncateStores(ranked, limit), nil
}

func (r *StoreRepo) nearbyStoresFallback(ctx context.Context, location models.LatLng, radiusKm float64, limit int) ([]models.Store, error) {
	var stores []models.Store
	query := `
		SELECT store_id, name, latitude, longitude, geohash, is_active, created_at
		FROM stores
		WHERE is_active = true
	`
	if err := r.db.SelectContext(ctx, &stores, query); err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}

	ranked := utils.SortStoresByProximity(stores, location)
	inRange := ranked[:0:0]
	for _, s := range ranked {
		if s.DistanceKm <= radiusKm {
			inRange = append(inRange, s)
		}
	}
	return truncateStores(inRange, limit), nil
}

func truncateStores(stores []models.Store, limit int) []models.Store {
	if limit > 0 && len(stores) > limit {
		return stores[:limit]
	}
	return stores
}
