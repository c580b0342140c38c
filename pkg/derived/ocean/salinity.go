package ocean

import (
	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
	"github.com/chrissnell/oceandiags/pkg/seawater"
)

// AbsoluteFromPractical computes the absolute salinity (g/kg) from the
// practical salinity. Mandatory bundle fields: latitude, longitude,
// salinity, seawater_pressure.
func AbsoluteFromPractical(b *bundle.Bundle) (*bundle.Field, error) {
	c, err := gatherColumns(b, false)
	if err != nil {
		return nil, err
	}
	log.Debugf("computing absolute salinity over %d levels on a %dx%d grid", c.nz, c.ny, c.nx)

	out := c.cube("absolute_salinity", "g/kg")
	idx := 0
	for k := 0; k < c.nz; k++ {
		for j := 0; j < c.ny; j++ {
			for i := 0; i < c.nx; i++ {
				out.Data[idx] = seawater.AbsoluteSalinity(c.saln.At3(k, j, i))
				idx++
			}
		}
	}
	return out, nil
}
