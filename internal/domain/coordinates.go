package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Reports whether both components are finite numbers.
// Malformed dataset values travel as NaN and fail this check.
func (c Coordinates) Valid() bool {
	return isFinite(c.Lat) && isFinite(c.Lon)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
