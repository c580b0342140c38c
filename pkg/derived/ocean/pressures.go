package ocean

import (
	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
	"github.com/chrissnell/oceandiags/pkg/seawater"
)

// SeawaterPressureFromDepth computes the sea-water pressure profile (dbar)
// as a function of depth and latitude. Mandatory bundle fields: depth,
// latitude, longitude.
func SeawaterPressureFromDepth(b *bundle.Bundle) (*bundle.Field, error) {
	if err := b.Require(FieldDepth, FieldLatitude, FieldLongitude); err != nil {
		return nil, err
	}
	ny, nx, err := bundle.CheckGrid(b.Get(FieldLatitude), b.Get(FieldLongitude))
	if err != nil {
		return nil, err
	}
	nz, err := bundle.CheckColumn(b.Get(FieldDepth), ny, nx)
	if err != nil {
		return nil, err
	}
	if err := bundle.CheckNonNegative(b.Get(FieldDepth)); err != nil {
		return nil, err
	}

	depth, err := convertField(b.Get(FieldDepth), "m")
	if err != nil {
		return nil, err
	}
	lat, err := convertField(b.Get(FieldLatitude), "degree")
	if err != nil {
		return nil, err
	}

	log.Debugf("computing sea-water pressure from depth over %d levels on a %dx%d grid", nz, ny, nx)

	out := &bundle.Field{
		Name:  FieldSeawaterPressure,
		Data:  make([]float64, nz*ny*nx),
		Shape: []int{nz, ny, nx},
		Units: "dbar",
	}
	idx := 0
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				out.Data[idx] = seawater.PressureFromDepth(depth.At3(k, j, i), lat.At2(j, i))
				idx++
			}
		}
	}
	return out, nil
}
