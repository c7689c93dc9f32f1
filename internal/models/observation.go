package models

import "time"

// Observation is a single recorded grasswren sighting.
type Observation struct {
	ID        int64     `json:"id"`
	WrenID    string    `json:"wren_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Date      time.Time `json:"date"`
}

// NearbyObservation pairs a sighting with its distance from the query point.
type NearbyObservation struct {
	Observation
	DistanceKm float64 `json:"distance_km"`
}
