// Package derived maps diagnostic names to their compute functions. The
// name space is two-level, domain.operation, e.g. "ocean.total_heat_content".
package derived

import (
	"fmt"
	"sort"

	"github.com/chrissnell/oceandiags/pkg/bundle"
	"github.com/chrissnell/oceandiags/pkg/derived/atmos"
	"github.com/chrissnell/oceandiags/pkg/derived/ocean"
)

// ComputeFunc evaluates one diagnostic against a parameter bundle.
type ComputeFunc func(*bundle.Bundle) (*bundle.Field, error)

var registry = map[string]ComputeFunc{
	"ocean.absolute_from_practical":             ocean.AbsoluteFromPractical,
	"ocean.conservative_from_potential":         ocean.ConservativeFromPotential,
	"ocean.insitu_from_conservative":            ocean.InsituFromConservative,
	"ocean.seawater_pressure_from_depth":        ocean.SeawaterPressureFromDepth,
	"ocean.depth_from_profile":                  ocean.DepthFromProfile,
	"ocean.isodepth":                            ocean.Isodepth,
	"ocean.specific_heat_capacity":              ocean.SpecificHeatCapacity,
	"ocean.total_heat_content":                  ocean.TotalHeatContent,
	"atmos.height_from_pressure":                atmos.HeightFromPressure,
	"atmos.pressure_from_thickness":             atmos.PressureFromThickness,
	"atmos.pressure_to_sealevel":                atmos.PressureToSealevel,
	"atmos.mixing_ratio_from_specific_humidity": atmos.MixingRatioFromSpecificHumidity,
}

// Lookup returns the compute function registered under the given name.
func Lookup(name string) (ComputeFunc, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown diagnostic %q", name)
	}
	return fn, nil
}

// Names returns the registered diagnostic names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute evaluates the named diagnostic against the bundle and attaches
// the derived field to it, returning the field as well.
func Compute(name string, b *bundle.Bundle) (*bundle.Field, error) {
	fn, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := fn(b)
	if err != nil {
		return nil, err
	}
	b.Attach(out)
	return out, nil
}
