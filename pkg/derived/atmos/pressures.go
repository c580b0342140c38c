package atmos

import (
	"math"

	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
)

// PressureFromThickness computes the pressure profile (Pa) by integrating
// the isobaric interface thicknesses from the top of the atmosphere
// downward to the surface. Level 0 of the thickness field is the topmost
// interface. Mandatory bundle field: thickness.
func PressureFromThickness(b *bundle.Bundle) (*bundle.Field, error) {
	if err := b.Require(FieldThickness); err != nil {
		return nil, err
	}
	if err := bundle.CheckNonNegative(b.Get(FieldThickness)); err != nil {
		return nil, err
	}
	thick, err := convertField(b.Get(FieldThickness), "Pa")
	if err != nil {
		return nil, err
	}

	nz := thick.Levels()
	ncol := thick.Len() / nz
	log.Debugf("integrating %d interface thicknesses over %d columns", nz, ncol)

	out := &bundle.Field{
		Name:  FieldPressure,
		Data:  make([]float64, thick.Len()),
		Shape: thick.Shape,
		Units: "Pa",
	}
	for col := 0; col < ncol; col++ {
		var p float64
		for k := 0; k < nz; k++ {
			p += thick.Data[k*ncol+col]
			out.Data[k*ncol+col] = p
		}
	}
	return out, nil
}

// PressureToSealevel reduces the surface pressure to sea level following
// Wallace and Hobbs (1977), using the surface temperature and the surface
// elevation. Mandatory bundle fields: surface_pressure,
// surface_temperature, surface_height.
func PressureToSealevel(b *bundle.Bundle) (*bundle.Field, error) {
	if err := b.Require(FieldSurfacePressure, FieldSurfaceTemperature, FieldSurfaceHeight); err != nil {
		return nil, err
	}
	if err := bundle.CheckNonNegative(b.Get(FieldSurfacePressure)); err != nil {
		return nil, err
	}

	pres, err := convertField(b.Get(FieldSurfacePressure), "Pa")
	if err != nil {
		return nil, err
	}
	temp, err := convertField(b.Get(FieldSurfaceTemperature), "degc")
	if err != nil {
		return nil, err
	}
	height, err := convertField(b.Get(FieldSurfaceHeight), "m")
	if err != nil {
		return nil, err
	}
	if len(temp.Data) != len(pres.Data) || len(height.Data) != len(pres.Data) {
		return nil, &bundle.ShapeError{
			Field:  FieldSurfacePressure,
			Reason: "surface pressure, temperature, and height must share one shape",
		}
	}
	log.Debugf("reducing %d surface pressure values to sea level", pres.Len())

	out := &bundle.Field{
		Name:  "sealevel_pressure",
		Data:  make([]float64, pres.Len()),
		Shape: pres.Shape,
		Units: "Pa",
	}
	for n := range pres.Data {
		tK := temp.Data[n] + 273.15
		h := height.Data[n]
		out.Data[n] = pres.Data[n] *
			math.Pow(1.0-(stdLapseRate*h)/(tK+stdLapseRate*h), -1.0/hypsometricExponent)
	}
	return out, nil
}
