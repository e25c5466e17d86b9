package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

func TestIsFiniteCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{name: "NaN", value: math.NaN(), expected: false},
		{name: "Positive infinity", value: math.Inf(1), expected: false},
		{name: "Negative infinity", value: math.Inf(-1), expected: false},
		{name: "Zero", value: 0, expected: true},
		{name: "Bengaluru latitude", value: 12.97, expected: true},
		{name: "Negative longitude", value: -77.5946, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFiniteCoordinate(tt.value))
		})
	}
}

func TestIsValidLatitude(t *testing.T) {
	assert.True(t, IsValidLatitude(12.97))
	assert.True(t, IsValidLatitude(-90))
	assert.True(t, IsValidLatitude(90))
	assert.False(t, IsValidLatitude(91))
	assert.False(t, IsValidLatitude(-90.0001))
	assert.False(t, IsValidLatitude(math.NaN()))
}

func TestIsValidLongitude(t *testing.T) {
	assert.True(t, IsValidLongitude(77.5946))
	assert.True(t, IsValidLongitude(-180))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(180.5))
	assert.False(t, IsValidLongitude(math.Inf(1)))
}

func TestIsValidLatLng(t *testing.T) {
	assert.True(t, IsValidLatLng(models.LatLng{Latitude: 12.9716, Longitude: 77.5946}))
	assert.False(t, IsValidLatLng(models.LatLng{Latitude: 91, Longitude: 77.5946}))
	assert.False(t, IsValidLatLng(models.LatLng{Latitude: 12.9716, Longitude: math.NaN()}))
}

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    models.LatLng
		point2    models.LatLng
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    models.LatLng{Latitude: 12.9716, Longitude: 77.5946},
			point2:    models.LatLng{Latitude: 12.9716, Longitude: 77.5946},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Bengaluru to Mysuru (approximately)",
			point1:    models.LatLng{Latitude: 12.9716, Longitude: 77.5946},
			point2:    models.LatLng{Latitude: 12.2958, Longitude: 76.6394},
			expected:  128.0,
			tolerance: 10.0,
		},
		{
			name:      "Two degrees of latitude across the equator",
			point1:    models.LatLng{Latitude: -1.0, Longitude: 100.0},
			point2:    models.LatLng{Latitude: 1.0, Longitude: 100.0},
			expected:  222.4,
			tolerance: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := CalculateDistance(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, distance, tt.tolerance)
		})
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := models.LatLng{Latitude: 12.9716, Longitude: 77.6410}
	b := models.LatLng{Latitude: 12.9780, Longitude: 77.6450}

	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 1e-12)
}

func TestSortStoresByProximity(t *testing.T) {
	origin := models.LatLng{Latitude: 12.9716, Longitude: 77.5946}

	far := models.Store{Name: "far", Latitude: 13.10, Longitude: 77.70}
	near := models.Store{Name: "near", Latitude: 12.9720, Longitude: 77.5950}
	mid := models.Store{Name: "mid", Latitude: 13.00, Longitude: 77.62}

	stores := []models.Store{far, near, mid}
	ranked := SortStoresByProximity(stores, origin)

	assert.Equal(t, []string{"near", "mid", "far"}, []string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
	assert.True(t, ranked[0].DistanceKm <= ranked[1].DistanceKm)
	assert.True(t, ranked[1].DistanceKm <= ranked[2].DistanceKm)

	// Input order untouched
	assert.Equal(t, "far", stores[0].Name)
}

func TestSortStoresByProximity_Stable(t *testing.T) {
	origin := models.LatLng{Latitude: 0, Longitude: 0}

	first := models.Store{Name: "first", Latitude: 1, Longitude: 0}
	second := models.Store{Name: "second", Latitude: 1, Longitude: 0}

	ranked := SortStoresByProximity([]models.Store{first, second}, origin)
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
}

func TestEncodeDecodeLocation(t *testing.T) {
	p := models.LatLng{Latitude: 12.9716, Longitude: 77.5946}

	hash := EncodeLocation(p, 9)
	assert.Len(t, hash, 9)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, p.Latitude, lat, 0.001)
	assert.InDelta(t, p.Longitude, lng, 0.001)
}
