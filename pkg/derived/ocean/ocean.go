// Package ocean computes derived oceanographic quantities from a parameter
// bundle: salinity and temperature conversions, depth/pressure profiles,
// and heat content. Every function validates the bundle's mandatory fields,
// converts them to the units the formulas require, and returns the derived
// quantity as a new field; the caller decides whether to attach it back to
// the bundle.
package ocean

import (
	"github.com/chrissnell/oceandiags/pkg/bundle"
	"github.com/chrissnell/oceandiags/pkg/units"
)

// Bundle field names consumed by the ocean diagnostics.
const (
	FieldLatitude             = "latitude"
	FieldLongitude            = "longitude"
	FieldSalinity             = "salinity"
	FieldSeawaterPressure     = "seawater_pressure"
	FieldPotentialTemperature = "pottemp"
	FieldDepth                = "depth"
	FieldDepthProfile         = "depth_profile"
	FieldIsolevel             = "isolevel"
)

// columns holds the validated, unit-converted inputs common to the
// column-wise ocean diagnostics.
type columns struct {
	ny, nx, nz int
	lat, lon   *bundle.Field // degrees
	saln       *bundle.Field // practical salinity
	pres       *bundle.Field // dbar
	ptemp      *bundle.Field // degC, nil unless requested
}

// convertField returns a copy of the field in the target unit, keeping the
// original name and shape.
func convertField(f *bundle.Field, to string) (*bundle.Field, error) {
	data, err := units.Convert(f.Data, f.Units, to)
	if err != nil {
		return nil, err
	}
	return &bundle.Field{Name: f.Name, Data: data, Shape: f.Shape, Units: to}, nil
}

// gatherColumns validates the standard ocean inputs (latitude, longitude,
// salinity, sea-water pressure, and optionally potential temperature)
// against the bundle contract and converts them to formula units.
func gatherColumns(b *bundle.Bundle, withPotTemp bool) (*columns, error) {
	required := []string{FieldLatitude, FieldLongitude, FieldSalinity, FieldSeawaterPressure}
	if withPotTemp {
		required = append(required, FieldPotentialTemperature)
	}
	if err := b.Require(required...); err != nil {
		return nil, err
	}

	ny, nx, err := bundle.CheckGrid(b.Get(FieldLatitude), b.Get(FieldLongitude))
	if err != nil {
		return nil, err
	}

	profiles := []*bundle.Field{b.Get(FieldSalinity), b.Get(FieldSeawaterPressure)}
	if withPotTemp {
		profiles = append(profiles, b.Get(FieldPotentialTemperature))
	}
	nz, err := bundle.CheckColumns(ny, nx, profiles...)
	if err != nil {
		return nil, err
	}

	for _, name := range []string{FieldSalinity, FieldSeawaterPressure} {
		if err := bundle.CheckNonNegative(b.Get(name)); err != nil {
			return nil, err
		}
	}

	c := &columns{ny: ny, nx: nx, nz: nz}
	if c.lat, err = convertField(b.Get(FieldLatitude), "degree"); err != nil {
		return nil, err
	}
	if c.lon, err = convertField(b.Get(FieldLongitude), "degree"); err != nil {
		return nil, err
	}
	if c.saln, err = convertField(b.Get(FieldSalinity), "psu"); err != nil {
		return nil, err
	}
	if c.pres, err = convertField(b.Get(FieldSeawaterPressure), "dbar"); err != nil {
		return nil, err
	}
	if withPotTemp {
		if c.ptemp, err = convertField(b.Get(FieldPotentialTemperature), "degc"); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// cube allocates a [nz, ny, nx] output field.
func (c *columns) cube(name, unit string) *bundle.Field {
	return &bundle.Field{
		Name:  name,
		Data:  make([]float64, c.nz*c.ny*c.nx),
		Shape: []int{c.nz, c.ny, c.nx},
		Units: unit,
	}
}

// grid allocates a [ny, nx] output field.
func (c *columns) grid(name, unit string) *bundle.Field {
	return &bundle.Field{
		Name:  name,
		Data:  make([]float64, c.ny*c.nx),
		Shape: []int{c.ny, c.nx},
		Units: unit,
	}
}
