package models

import "time"

// FireIncidentAggregate counts historical fires for one (year, month) bucket
// inside the search radius.
type FireIncidentAggregate struct {
	Count      int       `json:"count"`
	FireDate   time.Time `json:"fire_date"`
	Month      int       `json:"month"`
	DistanceKm float64   `json:"distance_km"`
}
