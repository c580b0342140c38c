// Package grids provides geodesic utilities over geographical coordinate
// grids: great-circle distances, bearing-based destination points, and
// radial distance fields relative to a reference location.
package grids

import "math"

// EarthRadius is the mean Earth radius in meters. Deployments can
// override it through the configuration constants table (see
// pkg/derived.ApplyConstants).
var EarthRadius = 6.3781e6

// Haversine computes the great-circle distance (m) between two locations
// given as (lat, lon) in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	dlat := (lat2 - lat1) * math.Pi / 180.0
	dlon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return 2.0 * EarthRadius * math.Asin(math.Sqrt(a))
}

// BearingGeoloc computes the destination (lat, lon) in degrees reached from
// a reference location by travelling dist meters along the given heading
// (degrees clockwise from north).
func BearingGeoloc(lat, lon, dist, heading float64) (lat2, lon2 float64) {
	rlat := lat * math.Pi / 180.0
	rlon := lon * math.Pi / 180.0
	rhdg := heading * math.Pi / 180.0
	delta := dist / EarthRadius

	rlat2 := math.Asin(math.Sin(rlat)*math.Cos(delta) +
		math.Cos(rlat)*math.Sin(delta)*math.Cos(rhdg))
	rlon2 := rlon + math.Atan2(
		math.Sin(rhdg)*math.Sin(delta)*math.Cos(rlat),
		math.Cos(delta)-math.Sin(rlat)*math.Sin(rlat2))

	return rlat2 * 180.0 / math.Pi, rlon2 * 180.0 / math.Pi
}

// RadialDistance computes the great-circle distance (m) from a fixed
// reference location to every point of a coordinate grid. The latitude and
// longitude slices must have equal length; the result is returned in the
// same layout.
func RadialDistance(refLat, refLon float64, lats, lons []float64) []float64 {
	n := len(lats)
	if len(lons) < n {
		n = len(lons)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = Haversine(refLat, refLon, lats[i], lons[i])
	}
	return out
}
