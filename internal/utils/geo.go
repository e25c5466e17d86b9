package utils

import (
	"math"
	"sort"

	"github.com/mmcloughlin/geohash"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// IsFiniteCoordinate reports whether v is a usable coordinate component.
// NaN and infinities are rejected.
func IsFiniteCoordinate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsValidLatitude reports whether v is a finite latitude in [-90, 90]
func IsValidLatitude(v float64) bool {
	return IsFiniteCoordinate(v) && v >= -90 && v <= 90
}

// IsValidLongitude reports whether v is a finite longitude in [-180, 180]
func IsValidLongitude(v float64) bool {
	return IsFiniteCoordinate(v) && v >= -180 && v <= 180
}

// IsValidLatLng reports whether the pair is a renderable coordinate
func IsValidLatLng(p models.LatLng) bool {
	return IsValidLatitude(p.Latitude) && IsValidLongitude(p.Longitude)
}

// CalculateDistance calculates the distance between two points in
// kilometers using the Haversine formula.
func CalculateDistance(point1, point2 models.LatLng) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// SortStoresByProximity returns the stores ordered ascending by
// great-circle distance from origin. The sort is stable, the input
// slice is not mutated, and each returned store carries its computed
// DistanceKm.
func SortStoresByProximity(stores []models.Store, origin models.LatLng) []models.Store {
	ranked := make([]models.Store, len(stores))
	copy(ranked, stores)

	for i := range ranked {
		ranked[i].DistanceKm = CalculateDistance(origin, ranked[i].Location())
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}

// EncodeLocation converts a coordinate pair to a geohash string
func EncodeLocation(p models.LatLng, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
