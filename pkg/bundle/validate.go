package bundle

import "fmt"

// CheckGrid verifies that latitude and longitude are 2-D and share the same
// shape, returning the grid dimensions (ny, nx).
func CheckGrid(lat, lon *Field) (ny, nx int, err error) {
	if lat.Rank() != 2 {
		return 0, 0, &ShapeError{Field: lat.Name, Reason: fmt.Sprintf("expected a 2-D grid, got shape %v", lat.Shape)}
	}
	if lon.Rank() != 2 {
		return 0, 0, &ShapeError{Field: lon.Name, Reason: fmt.Sprintf("expected a 2-D grid, got shape %v", lon.Shape)}
	}
	if lat.Shape[0] != lon.Shape[0] || lat.Shape[1] != lon.Shape[1] {
		return 0, 0, &ShapeError{
			Field:  lon.Name,
			Reason: fmt.Sprintf("grid shape %v does not match %q shape %v", lon.Shape, lat.Name, lat.Shape),
		}
	}
	return lat.Shape[0], lat.Shape[1], nil
}

// CheckColumn verifies that a profile field is broadcast-compatible with a
// (ny, nx) horizontal grid: either a 1-D column, or a 3-D cube whose
// trailing dimensions match the grid. It returns the number of levels.
func CheckColumn(f *Field, ny, nx int) (nz int, err error) {
	switch f.Rank() {
	case 1:
		return f.Shape[0], nil
	case 3:
		if f.Shape[1] != ny || f.Shape[2] != nx {
			return 0, &ShapeError{
				Field:  f.Name,
				Reason: fmt.Sprintf("cube shape %v does not match grid [%d %d]", f.Shape, ny, nx),
			}
		}
		return f.Shape[0], nil
	default:
		return 0, &ShapeError{Field: f.Name, Reason: fmt.Sprintf("expected a profile or cube, got shape %v", f.Shape)}
	}
}

// CheckColumns validates several profile fields against one grid and
// verifies that they agree on the number of levels.
func CheckColumns(ny, nx int, fields ...*Field) (nz int, err error) {
	nz = -1
	for _, f := range fields {
		n, err := CheckColumn(f, ny, nx)
		if err != nil {
			return 0, err
		}
		if nz == -1 {
			nz = n
			continue
		}
		if n != nz {
			return 0, &ShapeError{
				Field:  f.Name,
				Reason: fmt.Sprintf("has %d levels, other profile fields have %d", n, nz),
			}
		}
	}
	return nz, nil
}

// CheckNonNegative verifies that every value of the field is >= 0. Zero is
// valid input; only genuinely unphysical negatives are rejected.
func CheckNonNegative(f *Field) error {
	for _, v := range f.Data {
		if v < 0 {
			return &DomainError{Field: f.Name, Reason: fmt.Sprintf("contains negative value %g", v)}
		}
	}
	return nil
}
