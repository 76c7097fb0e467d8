package services

import (
	"math"

	"inventory-allocation-service/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371

// Haversine returns the great-circle distance between two points in
// kilometers.
//
// The function is total over candidate data: any non-finite coordinate
// yields +Inf instead of an error, which keeps a malformed warehouse or
// delivery location out of the running without failing the whole run.
func Haversine(from, to domain.Coordinates) float64 {
	if !from.Valid() || !to.Valid() {
		return math.Inf(1)
	}

	lat1 := radians(from.Lat)
	lon1 := radians(from.Lon)
	lat2 := radians(to.Lat)
	lon2 := radians(to.Lon)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return c * earthRadiusKm
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
