// Package atmos computes derived atmospheric quantities from a parameter
// bundle: standard-atmosphere heights, pressure profiles, sea-level
// pressure reduction, and moisture variables.
package atmos

import (
	"github.com/chrissnell/oceandiags/pkg/bundle"
	"github.com/chrissnell/oceandiags/pkg/units"
)

// Bundle field names consumed by the atmospheric diagnostics.
const (
	FieldPressure           = "pressure"
	FieldThickness          = "thickness"
	FieldSurfacePressure    = "surface_pressure"
	FieldSurfaceTemperature = "surface_temperature"
	FieldSurfaceHeight      = "surface_height"
	FieldSpecificHumidity   = "specific_humidity"
)

// U.S. standard atmosphere constants.
const (
	stdSurfacePressure = 101325.0  // Pa
	stdSurfaceTemp     = 288.15    // K
	stdLapseRate       = 0.0065    // K/m
	gasConstantDryAir  = 8.3144598 // J/(mol K)
	molarMassDryAir    = 0.0289644 // kg/mol
)

// gravity (m/s^2) can be overridden through the configuration constants
// table (see pkg/derived.ApplyConstants); hypsometricExponent is R*L/(g*M),
// the exponent of the barometric formula for a constant lapse rate, and is
// kept in step with it.
var (
	gravity             = 9.80665
	hypsometricExponent = gasConstantDryAir * stdLapseRate / (gravity * molarMassDryAir)
)

// SetGravity overrides the gravitational acceleration (m/s^2) used by the
// barometric formulas.
func SetGravity(g float64) {
	gravity = g
	hypsometricExponent = gasConstantDryAir * stdLapseRate / (gravity * molarMassDryAir)
}

// Gravity returns the gravitational acceleration currently in use.
func Gravity() float64 { return gravity }

func convertField(f *bundle.Field, to string) (*bundle.Field, error) {
	data, err := units.Convert(f.Data, f.Units, to)
	if err != nil {
		return nil, err
	}
	return &bundle.Field{Name: f.Name, Data: data, Shape: f.Shape, Units: to}, nil
}
