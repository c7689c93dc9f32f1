// Package geo holds the great-circle helpers used by the nearby search.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for all distances.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points using the
// spherical law of cosines.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := radians(lat1)
	φ2 := radians(lat2)
	Δλ := radians(lon2 - lon1)

	c := math.Cos(φ1)*math.Cos(φ2)*math.Cos(Δλ) + math.Sin(φ1)*math.Sin(φ2)
	// Rounding can push c just past ±1 for coincident or antipodal points.
	c = math.Max(-1, math.Min(1, c))

	return EarthRadiusKm * math.Acos(c)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
