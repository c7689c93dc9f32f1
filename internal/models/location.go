package models

// Location is a resolved postcode: its coordinates plus the locality and
// top-level administrative region reported by the geocoder.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
	Region    string  `json:"region,omitempty"`
}
