// Package interp provides interpolation utilities for diagnostic fields:
// vertical interpolation to specified levels and regridding from a
// latitude/longitude grid to a radius/azimuth polar grid.
package interp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/chrissnell/oceandiags/pkg/bundle"
)

// Vertical interpolates a profile-shaped field to the specified vertical
// levels. The field and the vertical coordinate must share one shape; the
// coordinate must be monotonic along each column. Target levels outside a
// column's coordinate range yield NaN, matching the convention of the
// common interplevel tools.
func Vertical(varin, z *bundle.Field, levs []float64) (*bundle.Field, error) {
	if varin.Rank() != z.Rank() || varin.Levels() != z.Levels() || varin.Len() != z.Len() {
		return nil, &bundle.ShapeError{
			Field:  varin.Name,
			Reason: fmt.Sprintf("shape %v does not match vertical coordinate shape %v", varin.Shape, z.Shape),
		}
	}
	if len(levs) == 0 {
		return nil, fmt.Errorf("no target levels supplied")
	}

	nz := varin.Levels()
	if nz < 2 {
		return nil, fmt.Errorf("vertical interpolation needs at least 2 levels, got %d", nz)
	}
	ncol := varin.Len() / nz

	outShape := []int{len(levs)}
	if varin.Rank() == 3 {
		outShape = []int{len(levs), varin.Shape[1], varin.Shape[2]}
	}
	out := &bundle.Field{
		Name:  varin.Name,
		Data:  make([]float64, len(levs)*ncol),
		Shape: outShape,
		Units: varin.Units,
	}

	xs := make([]float64, nz)
	ys := make([]float64, nz)
	var pl interp.PiecewiseLinear

	for col := 0; col < ncol; col++ {
		for k := 0; k < nz; k++ {
			xs[k] = z.Data[k*ncol+col]
			ys[k] = varin.Data[k*ncol+col]
		}
		// Columns with a descending coordinate (e.g. atmospheric
		// pressure increasing downward in index) are reversed.
		if xs[0] > xs[nz-1] {
			for lo, hi := 0, nz-1; lo < hi; lo, hi = lo+1, hi-1 {
				xs[lo], xs[hi] = xs[hi], xs[lo]
				ys[lo], ys[hi] = ys[hi], ys[lo]
			}
		}
		if err := pl.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("column %d: vertical coordinate is not monotonic: %w", col, err)
		}
		for n, lev := range levs {
			if lev < xs[0] || lev > xs[nz-1] {
				out.Data[n*ncol+col] = math.NaN()
				continue
			}
			out.Data[n*ncol+col] = pl.Predict(lev)
		}
	}
	return out, nil
}
