package utils

import "math"

const earthRadiusKm = 6371.0088

// CalculateDistance returns the great-circle distance in kilometers
// between two latitude/longitude points (haversine formula).
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to 2 decimal places for display
func RoundKm(d float64) float64 {
	return math.Round(d*100) / 100
}
