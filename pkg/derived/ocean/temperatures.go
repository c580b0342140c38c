package ocean

import (
	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
	"github.com/chrissnell/oceandiags/pkg/seawater"
)

// ConservativeFromPotential computes the conservative temperature (degC)
// from potential temperature. Mandatory bundle fields: latitude, longitude,
// salinity, seawater_pressure, pottemp.
func ConservativeFromPotential(b *bundle.Bundle) (*bundle.Field, error) {
	c, err := gatherColumns(b, true)
	if err != nil {
		return nil, err
	}
	log.Debugf("computing conservative temperature over %d levels on a %dx%d grid", c.nz, c.ny, c.nx)

	out := c.cube("conservative_temperature", "degc")
	idx := 0
	for k := 0; k < c.nz; k++ {
		for j := 0; j < c.ny; j++ {
			for i := 0; i < c.nx; i++ {
				sa := seawater.AbsoluteSalinity(c.saln.At3(k, j, i))
				out.Data[idx] = seawater.ConservativeTemperature(sa, c.ptemp.At3(k, j, i))
				idx++
			}
		}
	}
	return out, nil
}

// InsituFromConservative computes the in-situ temperature (degC) by way of
// the conservative temperature. Mandatory bundle fields: latitude,
// longitude, salinity, seawater_pressure, pottemp.
func InsituFromConservative(b *bundle.Bundle) (*bundle.Field, error) {
	c, err := gatherColumns(b, true)
	if err != nil {
		return nil, err
	}
	log.Debugf("computing in-situ temperature over %d levels on a %dx%d grid", c.nz, c.ny, c.nx)

	out := c.cube("insitu_temperature", "degc")
	idx := 0
	for k := 0; k < c.nz; k++ {
		for j := 0; j < c.ny; j++ {
			for i := 0; i < c.nx; i++ {
				sa := seawater.AbsoluteSalinity(c.saln.At3(k, j, i))
				ct := seawater.ConservativeTemperature(sa, c.ptemp.At3(k, j, i))
				out.Data[idx] = seawater.InsituFromConservative(sa, ct, c.pres.At3(k, j, i))
				idx++
			}
		}
	}
	return out, nil
}
