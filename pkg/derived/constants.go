package derived

import (
	"fmt"

	"github.com/chrissnell/oceandiags/pkg/derived/atmos"
	"github.com/chrissnell/oceandiags/pkg/grids"
	"github.com/chrissnell/oceandiags/pkg/units"
)

// Constant is a named physical-constant override with the unit the caller
// supplied it in.
type Constant struct {
	Value float64
	Units string
}

// Constant names recognized by ApplyConstants.
const (
	ConstEarthRadius = "earth_radius"
	ConstGravity     = "gravity"
)

// constantBaseUnits maps each recognized constant to the unit the compute
// functions expect. An empty base unit means the value is taken as-is.
var constantBaseUnits = map[string]string{
	ConstEarthRadius: "m",
	ConstGravity:     "",
}

// ApplyConstants overrides the physical constants used by the compute
// functions from the configuration constants table. An unknown name is an
// error so a misspelled entry is never silently ignored.
func ApplyConstants(constants map[string]Constant) error {
	for name, c := range constants {
		base, ok := constantBaseUnits[name]
		if !ok {
			return fmt.Errorf("unknown constant %q", name)
		}

		v := c.Value
		if base != "" && c.Units != "" {
			var err error
			if v, err = units.ConvertValue(c.Value, c.Units, base); err != nil {
				return fmt.Errorf("constant %q: %w", name, err)
			}
		}
		if v <= 0 {
			return fmt.Errorf("constant %q: value %g is not positive", name, v)
		}

		switch name {
		case ConstEarthRadius:
			grids.EarthRadius = v
		case ConstGravity:
			atmos.SetGravity(v)
		}
	}
	return nil
}
