package interp

import (
	"fmt"
	"math"

	"github.com/chrissnell/oceandiags/pkg/grids"
)

// Polar holds a field regridded to a radius/azimuth grid about a fixed
// geographical location. Values is stored row-major as [nRadial, nAzimuth].
type Polar struct {
	Lat0, Lon0 float64
	Radial     []float64 // m from the reference point
	Azimuth    []float64 // radians, -pi..pi
	Values     []float64
}

// At returns the regridded value at radial index r and azimuth index a.
func (p *Polar) At(r, a int) float64 {
	return p.Values[r*len(p.Azimuth)+a]
}

// LL2RA regrids a 2-D field from geographical coordinates onto a polar
// radius/azimuth grid centered on (lat0, lon0). maxRadius and dRho are in
// meters, dPhi in degrees. Grid nodes with no source data nearby are filled
// by inverse-distance weighting from the closest samples.
func LL2RA(varin, lats, lons []float64, lat0, lon0, maxRadius, dRho, dPhi float64) (*Polar, error) {
	if len(varin) != len(lats) || len(varin) != len(lons) {
		return nil, fmt.Errorf("field (%d), latitude (%d), and longitude (%d) lengths differ",
			len(varin), len(lats), len(lons))
	}
	if len(varin) == 0 {
		return nil, fmt.Errorf("no source points supplied")
	}
	if dRho <= 0 || dPhi <= 0 || maxRadius <= 0 {
		return nil, fmt.Errorf("polar grid spacing must be positive")
	}

	// Project every source point to local Cartesian coordinates about the
	// reference location, signed by hemisphere.
	n := len(varin)
	xx := make([]float64, n)
	yy := make([]float64, n)
	for i := 0; i < n; i++ {
		x := grids.Haversine(lat0, lon0, lat0, lons[i])
		if lons[i] < lon0 {
			x = -x
		}
		y := grids.Haversine(lat0, lon0, lats[i], lon0)
		if lats[i] < lat0 {
			y = -y
		}
		xx[i] = x
		yy[i] = y
	}

	p := &Polar{Lat0: lat0, Lon0: lon0}
	for r := 0.0; r <= maxRadius+dRho/2; r += dRho {
		p.Radial = append(p.Radial, r)
	}
	dphi := dPhi * math.Pi / 180.0
	for a := -math.Pi; a <= math.Pi+dphi/2; a += dphi {
		p.Azimuth = append(p.Azimuth, a)
	}

	p.Values = make([]float64, len(p.Radial)*len(p.Azimuth))
	for ri, r := range p.Radial {
		for ai, a := range p.Azimuth {
			tx := r * math.Cos(a)
			ty := r * math.Sin(a)
			p.Values[ri*len(p.Azimuth)+ai] = idw(xx, yy, varin, tx, ty, 2*dRho)
		}
	}

	fillGaps(p.Values)
	return p, nil
}

// idw computes an inverse-distance-squared weighted value from all source
// points within the cutoff radius; NaN when none are in range.
func idw(xx, yy, values []float64, tx, ty, cutoff float64) float64 {
	var sum, wsum float64
	for i := range values {
		dx := xx[i] - tx
		dy := yy[i] - ty
		d2 := dx*dx + dy*dy
		if d2 > cutoff*cutoff {
			continue
		}
		if d2 == 0 {
			return values[i]
		}
		w := 1.0 / d2
		sum += w * values[i]
		wsum += w
	}
	if wsum == 0 {
		return math.NaN()
	}
	return sum / wsum
}

// fillGaps replaces NaN entries by linear interpolation over the flattened
// array, extending the nearest defined value at the ends.
func fillGaps(v []float64) {
	prev := -1
	for i := 0; i < len(v); i++ {
		if math.IsNaN(v[i]) {
			continue
		}
		if prev == -1 && i > 0 {
			for j := 0; j < i; j++ {
				v[j] = v[i]
			}
		} else if prev >= 0 && i-prev > 1 {
			for j := prev + 1; j < i; j++ {
				frac := float64(j-prev) / float64(i-prev)
				v[j] = v[prev] + frac*(v[i]-v[prev])
			}
		}
		prev = i
	}
	if prev == -1 {
		return
	}
	for j := prev + 1; j < len(v); j++ {
		v[j] = v[prev]
	}
}
