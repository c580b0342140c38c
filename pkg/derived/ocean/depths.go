package ocean

import (
	"fmt"

	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
)

// DepthFromProfile tiles a single-column depth profile into a
// [nz, ny, nx] grid of depth values (m, positive downward). Mandatory
// bundle fields: depth_profile, latitude, longitude.
func DepthFromProfile(b *bundle.Bundle) (*bundle.Field, error) {
	if err := b.Require(FieldDepthProfile, FieldLatitude, FieldLongitude); err != nil {
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
	log.Debugf("tiling depth profile of %d levels onto a %dx%d grid", nz, ny, nx)

	out := &bundle.Field{
		Name:  FieldDepth,
		Data:  make([]float64, nz*ny*nx),
		Shape: []int{nz, ny, nx},
		Units: "m",
	}
	idx := 0
	for k := 0; k < nz; k++ {
		z := depths.Data[k]
		for n := 0; n < ny*nx; n++ {
			out.Data[idx] = z
			idx++
		}
	}
	return out, nil
}
