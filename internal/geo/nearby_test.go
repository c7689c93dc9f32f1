package geo

import (
	"testing"
	"time"

	"grasswren-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = models.Location{Latitude: -32.4936, Longitude: 137.7654, City: "Port Augusta", Region: "South Australia"}

func obs(id string, lat, lon float64) models.Observation {
	return models.Observation{WrenID: id, Latitude: lat, Longitude: lon, Date: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)}
}

func TestNearby_SortedAndFiltered(t *testing.T) {
	observations := []models.Observation{
		obs("far", -34.9285, 138.6007),
		obs("mid", -32.30, 137.60),
		obs("near", -32.50, 137.77),
	}

	result := Nearby(origin, observations, 50)

	require.True(t, result.Nearby)
	require.Len(t, result.Observations, 2)
	assert.Equal(t, "near", result.Observations[0].WrenID)
	assert.Equal(t, "mid", result.Observations[1].WrenID)
	assert.Less(t, result.Observations[0].DistanceKm, result.Observations[1].DistanceKm)
}

func TestNearby_NoneInRadius(t *testing.T) {
	result := Nearby(origin, []models.Observation{obs("far", -34.9285, 138.6007)}, 50)

	assert.False(t, result.Nearby)
	assert.Empty(t, result.Observations)
}

func TestNearby_EmptyInput(t *testing.T) {
	result := Nearby(origin, nil, 50)
	assert.False(t, result.Nearby)
}

func TestNearby_RadiusBoundary(t *testing.T) {
	o := obs("edge", -32.80, 137.90)
	d := DistanceKm(origin.Latitude, origin.Longitude, o.Latitude, o.Longitude)

	atBoundary := Nearby(origin, []models.Observation{o}, d)
	assert.False(t, atBoundary.Nearby, "distance == radius is excluded")

	justInside := Nearby(origin, []models.Observation{o}, d+1e-9)
	require.True(t, justInside.Nearby)
	assert.Equal(t, "edge", justInside.Observations[0].WrenID)
}
