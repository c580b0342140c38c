package grids

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want, tol              float64
	}{
		{"coincident points", 10, 150, 10, 150, 0, 1e-9},
		{"one degree of latitude", 0, 0, 1, 0, 111318, 200},
		{"quarter circumference", 0, 0, 0, 90, math.Pi * EarthRadius / 2, 1000},
		{"antipodal", 0, 0, 0, 180, math.Pi * EarthRadius, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Haversine = %.1f, want %.1f +/- %.0f", got, tt.want, tt.tol)
			}
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	d1 := Haversine(10, 150, -20, 170)
	d2 := Haversine(-20, 170, 10, 150)
	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("distance not symmetric: %.3f vs %.3f", d1, d2)
	}
}

func TestBearingGeolocRoundTrip(t *testing.T) {
	// Travelling a distance along a heading must land at a point whose
	// haversine distance from the origin equals that distance.
	for _, heading := range []float64{0, 45, 90, 135, 270} {
		lat2, lon2 := BearingGeoloc(10, 150, 500e3, heading)
		d := Haversine(10, 150, lat2, lon2)
		if math.Abs(d-500e3) > 100 {
			t.Errorf("heading %g: destination is %.0f m away, want 500000", heading, d)
		}
	}

	// Due north from the equator is pure latitude displacement.
	lat2, lon2 := BearingGeoloc(0, 0, 111195, 0)
	if math.Abs(lat2-1.0) > 0.01 || math.Abs(lon2) > 1e-9 {
		t.Errorf("due north landed at (%.4f, %.4f), want (1, 0)", lat2, lon2)
	}
}

func TestRadialDistance(t *testing.T) {
	lats := []float64{10, 10, 11, 9}
	lons := []float64{150, 151, 150, 150}
	dist := RadialDistance(10, 150, lats, lons)

	if dist[0] != 0 {
		t.Errorf("distance to the reference point = %g, want 0", dist[0])
	}
	// One degree north and one degree south are equidistant.
	if math.Abs(dist[2]-dist[3]) > 1e-6 {
		t.Errorf("north/south asymmetry: %.3f vs %.3f", dist[2], dist[3])
	}
	for i, d := range dist[1:] {
		if d <= 0 {
			t.Errorf("distance %d = %g, expected positive", i+1, d)
		}
	}
}
