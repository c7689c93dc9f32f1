package geo

import (
	"sort"

	"grasswren-api/internal/models"
)

// NearbyResult is the outcome of a radius search. Nearby is false, and
// Observations empty, when nothing fell inside the radius.
type NearbyResult struct {
	Nearby       bool                       `json:"nearby"`
	Observations []models.NearbyObservation `json:"observations,omitempty"`
}

// Nearby returns the observations strictly closer than radiusKm to loc,
// nearest first.
func Nearby(loc models.Location, observations []models.Observation, radiusKm float64) NearbyResult {
	var hits []models.NearbyObservation
	for _, obs := range observations {
		d := DistanceKm(loc.Latitude, loc.Longitude, obs.Latitude, obs.Longitude)
		if d < radiusKm {
			hits = append(hits, models.NearbyObservation{Observation: obs, DistanceKm: d})
		}
	}

	if len(hits) == 0 {
		return NearbyResult{Nearby: false}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].DistanceKm < hits[j].DistanceKm
	})

	return NearbyResult{Nearby: true, Observations: hits}
}
