// Package geo computes great-circle distances between coordinates.
package geo

import "math"

const earthRadiusKm = 6371

type Point struct {
	Lat  float64
	Long float64
}

// Kilometers returns the haversine distance between a and b. The atan2 form
// keeps precision for small separations where the law-of-cosines formula
// degrades.
func Kilometers(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLong := radians(b.Long - a.Long)

	sinLat := math.Sin(dLat / 2)
	sinLong := math.Sin(dLong / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLong*sinLong

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
