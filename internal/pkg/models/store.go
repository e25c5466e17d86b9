package models

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a merchant mart
type Store struct {
	ID        uuid.UUID `json:"store_id" db:"store_id"`
	Name      string    `json:"name" db:"name"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Geohash   string    `json:"geohash" db:"geohash"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// DistanceKm is populated by proximity queries, not persisted
	DistanceKm float64 `json:"distance_km,omitempty" db:"-"`
}

// Location returns the store's coordinate pair
func (s Store) Location() LatLng {
	return LatLng{Latitude: s.Latitude, Longitude: s.Longitude}
}
