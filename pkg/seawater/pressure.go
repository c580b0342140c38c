package seawater

import "math"

// saundersC1 is the latitude coefficient of the Saunders 1981 pressure-depth
// relation.
func saundersC1(lat float64) float64 {
	sinLat := math.Sin(lat * math.Pi / 180.0)
	return (5.92 + 5.25*sinLat*sinLat) * 1e-3
}

// PressureFromDepth computes sea pressure (dbar) from depth (m, positive
// downward) and latitude (degrees), Saunders 1981.
func PressureFromDepth(depth, lat float64) float64 {
	c1 := saundersC1(lat)
	return ((1.0 - c1) - math.Sqrt((1.0-c1)*(1.0-c1)-8.84e-6*depth)) / 4.42e-6
}

// DepthFromPressure computes depth (m, positive downward) from sea pressure
// (dbar) and latitude (degrees). Algebraic inverse of PressureFromDepth.
func DepthFromPressure(p, lat float64) float64 {
	c1 := saundersC1(lat)
	return (1.0-c1)*p - 2.21e-6*p*p
}
