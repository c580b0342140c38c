// Package units converts diagnostic field values between the unit a caller
// supplied and the unit a formula requires. Conversions are linear
// (scale and offset against a per-dimension base unit); an unknown unit or a
// cross-dimension conversion is an error, never an identity pass.
package units

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

type dimension int

const (
	dimTemperature dimension = iota
	dimPressure
	dimLength
	dimMassFraction
	dimAngle
)

// unit maps a value v to the dimension's base unit as v*scale + offset.
// Base units: degC, dbar, m, g/kg, degrees.
type unit struct {
	dim    dimension
	scale  float64
	offset float64
}

var table = map[string]unit{
	// temperature (base degC)
	"degc":    {dimTemperature, 1, 0},
	"celsius": {dimTemperature, 1, 0},
	"k":       {dimTemperature, 1, -273.15},
	"kelvin":  {dimTemperature, 1, -273.15},
	"degf":    {dimTemperature, 5.0 / 9.0, -160.0 / 9.0},

	// pressure (base dbar)
	"dbar": {dimPressure, 1, 0},
	"bar":  {dimPressure, 10, 0},
	"pa":   {dimPressure, 1e-4, 0},
	"hpa":  {dimPressure, 1e-2, 0},
	"kpa":  {dimPressure, 1e-1, 0},
	"mb":   {dimPressure, 1e-2, 0},

	// length (base m)
	"m":  {dimLength, 1, 0},
	"km": {dimLength, 1000, 0},
	"cm": {dimLength, 0.01, 0},

	// mass fraction (base g/kg). Salinity, specific humidity, and mixing
	// ratio all live on this axis; the practical salinity scale and the
	// bare "1" label are numerically carried on it as well.
	"g/kg":          {dimMassFraction, 1, 0},
	"kg/kg":         {dimMassFraction, 1000, 0},
	"psu":           {dimMassFraction, 1, 0},
	"dimensionless": {dimMassFraction, 1, 0},
	"1":             {dimMassFraction, 1000, 0},

	// angle (base degrees)
	"degree":  {dimAngle, 1, 0},
	"degrees": {dimAngle, 1, 0},
	"radians": {dimAngle, 180.0 / 3.141592653589793, 0},
}

func lookup(name string) (unit, error) {
	u, ok := table[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return unit{}, fmt.Errorf("unknown unit %q", name)
	}
	return u, nil
}

// ConvertValue converts a single value between two units of the same
// dimension.
func ConvertValue(v float64, from, to string) (float64, error) {
	uf, err := lookup(from)
	if err != nil {
		return 0, err
	}
	ut, err := lookup(to)
	if err != nil {
		return 0, err
	}
	if uf.dim != ut.dim {
		return 0, fmt.Errorf("cannot convert %q to %q: incompatible dimensions", from, to)
	}
	return (v*uf.scale + uf.offset - ut.offset) / ut.scale, nil
}

// Convert converts a slice of values between two units, returning a new
// slice. An empty source unit means the values are already in the target
// unit (the assumed-convention case of the bundle contract).
func Convert(data []float64, from, to string) ([]float64, error) {
	out := make([]float64, len(data))
	copy(out, data)
	if from == "" || strings.EqualFold(from, to) {
		return out, nil
	}
	uf, err := lookup(from)
	if err != nil {
		return nil, err
	}
	ut, err := lookup(to)
	if err != nil {
		return nil, err
	}
	if uf.dim != ut.dim {
		return nil, fmt.Errorf("cannot convert %q to %q: incompatible dimensions", from, to)
	}
	floats.Scale(uf.scale, out)
	floats.AddConst(uf.offset-ut.offset, out)
	floats.Scale(1/ut.scale, out)
	return out, nil
}
