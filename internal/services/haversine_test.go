package services

import (
	"math"
	"testing"

	"inventory-allocation-service/internal/domain"
)

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of longitude on the equator is ~111.19 km.
	got := Haversine(domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 1})
	if math.Abs(got-111.19) > 0.01 {
		t.Errorf("distance = %v, want ~111.19", got)
	}

	mumbai := domain.Coordinates{Lat: 19.0760, Lon: 72.8777}
	delhi := domain.Coordinates{Lat: 28.7041, Lon: 77.1025}
	got = Haversine(mumbai, delhi)
	if math.Abs(got-1153.2) > 1.0 {
		t.Errorf("Mumbai-Delhi = %v, want ~1153.2", got)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := domain.Coordinates{Lat: 19.0760, Lon: 72.8777}
	b := domain.Coordinates{Lat: 13.0827, Lon: 80.2707}

	if Haversine(a, b) != Haversine(b, a) {
		t.Errorf("asymmetric: %v vs %v", Haversine(a, b), Haversine(b, a))
	}
}

func TestHaversineZeroDistance(t *testing.T) {
	p := domain.Coordinates{Lat: 28.7041, Lon: 77.1025}
	if got := Haversine(p, p); got > 1e-9 {
		t.Errorf("distance to self = %v, want ~0", got)
	}
}

func TestHaversineMalformedCoordinates(t *testing.T) {
	good := domain.Coordinates{Lat: 0, Lon: 0}

	cases := []domain.Coordinates{
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.NaN()},
		{Lat: math.Inf(1), Lon: 0},
		{Lat: 0, Lon: math.Inf(-1)},
	}
	for _, bad := range cases {
		if got := Haversine(good, bad); !math.IsInf(got, 1) {
			t.Errorf("Haversine(good, %+v) = %v, want +Inf", bad, got)
		}
		if got := Haversine(bad, good); !math.IsInf(got, 1) {
			t.Errorf("Haversine(%+v, good) = %v, want +Inf", bad, got)
		}
	}
}
