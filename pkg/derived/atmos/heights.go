package atmos

import (
	"math"

	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
)

// HeightFromPressure computes the geometric height profile (m) from the
// pressure profile using the U.S. standard atmosphere with a constant
// tropospheric lapse rate. Mandatory bundle field: pressure.
func HeightFromPressure(b *bundle.Bundle) (*bundle.Field, error) {
	if err := b.Require(FieldPressure); err != nil {
		return nil, err
	}
	if err := bundle.CheckNonNegative(b.Get(FieldPressure)); err != nil {
		return nil, err
	}
	pres, err := convertField(b.Get(FieldPressure), "Pa")
	if err != nil {
		return nil, err
	}
	log.Debugf("computing standard-atmosphere heights for %d pressure values", pres.Len())

	out := &bundle.Field{
		Name:  "height",
		Data:  make([]float64, pres.Len()),
		Shape: pres.Shape,
		Units: "m",
	}
	for n, p := range pres.Data {
		out.Data[n] = (stdSurfaceTemp / stdLapseRate) *
			(1.0 - math.Pow(p/stdSurfacePressure, hypsometricExponent))
	}
	return out, nil
}
