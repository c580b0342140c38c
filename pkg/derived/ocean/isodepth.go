package ocean

import (
	"fmt"
	"math"

	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
)

// Isodepth computes, for each water column, the depth (m) at which the
// potential temperature profile crosses the requested iso-level, found by
// linear interpolation between the bracketing levels. Columns that never
// reach the level are NaN. Mandatory bundle fields: depth_profile,
// latitude, longitude, pottemp, isolevel (a single value, convertible to
// degC).
func Isodepth(b *bundle.Bundle) (*bundle.Field, error) {
	if err := b.Require(FieldDepthProfile, FieldLatitude, FieldLongitude,
		FieldPotentialTemperature, FieldIsolevel); err != nil {
		return nil, err
	}
	ny, nx, err := bundle.CheckGrid(b.Get(FieldLatitude), b.Get(FieldLongitude))
	if err != nil {
		return nil, err
	}

	profile := b.Get(FieldDepthProfile)
	if profile.Rank() != 1 {
		return nil, &bundle.ShapeError{
			Field:  FieldDepthProfile,
			Reason: fmt.Sprintf("expected a 1-D profile, got shape %v", profile.Shape),
		}
	}
	if err := bundle.CheckNonNegative(profile); err != nil {
		return nil, err
	}
	depths, err := convertField(profile, "m")
	if err != nil {
		return nil, err
	}
	nz := profile.Shape[0]

	nzv, err := bundle.CheckColumn(b.Get(FieldPotentialTemperature), ny, nx)
	if err != nil {
		return nil, err
	}
	if nzv != nz {
		return nil, &bundle.ShapeError{
			Field: FieldPotentialTemperature,
			Reason: fmt.Sprintf("profile has %d levels but the depth profile has %d",
				nzv, nz),
		}
	}
	ptemp, err := convertField(b.Get(FieldPotentialTemperature), "degc")
	if err != nil {
		return nil, err
	}

	level := b.Get(FieldIsolevel)
	if level.Len() != 1 {
		return nil, &bundle.ShapeError{
			Field:  FieldIsolevel,
			Reason: fmt.Sprintf("expected a single value, got shape %v", level.Shape),
		}
	}
	iso, err := convertField(level, "degc")
	if err != nil {
		return nil, err
	}
	target := iso.Data[0]

	log.Debugf("locating the %g degc iso-level over %dx%d columns of %d levels",
		target, ny, nx, nz)

	out := &bundle.Field{
		Name:  "isodepth",
		Data:  make([]float64, ny*nx),
		Shape: []int{ny, nx},
		Units: "m",
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			out.Data[j*nx+i] = columnIsodepth(ptemp, depths.Data, target, j, i, nz)
		}
	}
	return out, nil
}

// columnIsodepth walks one column from the surface down and linearly
// interpolates the depth of the first crossing of the target value.
func columnIsodepth(v *bundle.Field, z []float64, target float64, j, i, nz int) float64 {
	for k := 0; k < nz-1; k++ {
		a := v.At3(k, j, i)
		b := v.At3(k+1, j, i)
		if (a-target)*(b-target) > 0 {
			continue
		}
		if a == b {
			return z[k]
		}
		t := (target - a) / (b - a)
		return z[k] + t*(z[k+1]-z[k])
	}
	return math.NaN()
}
