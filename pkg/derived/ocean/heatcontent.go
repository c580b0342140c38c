package ocean

import (
	"gonum.org/v1/gonum/integrate"

	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
	"github.com/chrissnell/oceandiags/pkg/seawater"
)

// increasing reports whether x is strictly increasing, the precondition of
// gonum's trapezoidal rule.
func increasing(x []float64) bool {
	if len(x) < 2 {
		return false
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return false
		}
	}
	return true
}

// SpecificHeatCapacity computes the specific heat capacity of seawater
// (J/(kg K)) at every grid point. Mandatory bundle fields: latitude,
// longitude, salinity, seawater_pressure, pottemp.
func SpecificHeatCapacity(b *bundle.Bundle) (*bundle.Field, error) {
	c, err := gatherColumns(b, true)
	if err != nil {
		return nil, err
	}
	log.Debugf("computing specific heat capacity over %d levels on a %dx%d grid", c.nz, c.ny, c.nx)

	out := c.cube("specific_heat_capacity", "joule/(kg*K)")
	idx := 0
	for k := 0; k < c.nz; k++ {
		for j := 0; j < c.ny; j++ {
			for i := 0; i < c.nx; i++ {
				sp := c.saln.At3(k, j, i)
				p := c.pres.At3(k, j, i)
				t := seawater.InsituFromPotential(sp, c.ptemp.At3(k, j, i), p)
				out.Data[idx] = seawater.HeatCapacity(sp, t, p)
				idx++
			}
		}
	}
	return out, nil
}

// TotalHeatContent computes the vertically integrated ocean heat content
// proxy for each water column: the trapezoidal integral of the specific
// volume anomaly over pressure, times the column-mean specific heat
// capacity, times the surface-to-bottom in-situ temperature difference.
// The result is a 2-D grid; a warm-over-cold column yields a positive
// value. Mandatory bundle fields: latitude, longitude, salinity,
// seawater_pressure, pottemp.
func TotalHeatContent(b *bundle.Bundle) (*bundle.Field, error) {
	c, err := gatherColumns(b, true)
	if err != nil {
		return nil, err
	}
	log.Debugf("computing total heat content for %dx%d columns of %d levels", c.ny, c.nx, c.nz)

	out := c.grid("total_heat_content", "joule*m^3/kg^2")
	pres := make([]float64, c.nz)
	sva := make([]float64, c.nz)
	insitu := make([]float64, c.nz)

	for j := 0; j < c.ny; j++ {
		for i := 0; i < c.nx; i++ {
			var cpSum float64
			for k := 0; k < c.nz; k++ {
				sp := c.saln.At3(k, j, i)
				p := c.pres.At3(k, j, i)
				pt := c.ptemp.At3(k, j, i)
				sa := seawater.AbsoluteSalinity(sp)
				ct := seawater.ConservativeTemperature(sa, pt)

				pres[k] = p
				sva[k] = seawater.SpecificVolumeAnomaly(sa, ct, p)
				insitu[k] = seawater.InsituFromPotential(sp, pt, p)
				cpSum += seawater.HeatCapacity(sp, insitu[k], p)
			}

			// Degenerate profiles (constant pressure, e.g. all zeros) are
			// valid input; they integrate to zero rather than erroring.
			var svaInt float64
			if increasing(pres) {
				svaInt = integrate.Trapezoidal(pres, sva)
			} else {
				for k := 1; k < c.nz; k++ {
					svaInt += 0.5 * (sva[k] + sva[k-1]) * (pres[k] - pres[k-1])
				}
			}
			cpMean := cpSum / float64(c.nz)
			dT := insitu[0] - insitu[c.nz-1]
			out.Data[j*c.nx+i] = svaInt * cpMean * dT
		}
	}
	return out, nil
}
