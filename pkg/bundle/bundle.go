// Package bundle implements the named-field parameter bundle that every
// diagnostic function accepts. A bundle is built by the caller immediately
// before a computation, borrowed by the diagnostic, and optionally augmented
// with the derived field.
package bundle

import (
	"fmt"
	"sort"
)

// Field is a named array carried by a Bundle. Data is stored flat in
// row-major order; Shape describes the logical dimensions:
//
//	[nz]          vertical profile
//	[ny, nx]      horizontal grid
//	[nz, ny, nx]  full cube
//
// Units holds the caller's unit label (see pkg/units for conversions).
type Field struct {
	Name  string
	Data  []float64
	Shape []int
	Units string
}

// NewField builds a Field, verifying that the data length matches the shape.
func NewField(name string, data []float64, shape []int, units string) (*Field, error) {
	if len(shape) < 1 || len(shape) > 3 {
		return nil, &ShapeError{Field: name, Reason: fmt.Sprintf("unsupported rank %d", len(shape))}
	}
	n := 1
	for _, d := range shape {
		if d < 1 {
			return nil, &ShapeError{Field: name, Reason: fmt.Sprintf("non-positive dimension in shape %v", shape)}
		}
		n *= d
	}
	if n != len(data) {
		return nil, &ShapeError{Field: name, Reason: fmt.Sprintf("shape %v implies %d values, got %d", shape, n, len(data))}
	}
	return &Field{Name: name, Data: data, Shape: shape, Units: units}, nil
}

// Len returns the total number of values in the field.
func (f *Field) Len() int { return len(f.Data) }

// Rank returns the number of dimensions.
func (f *Field) Rank() int { return len(f.Shape) }

// Levels returns the number of vertical levels: Shape[0] for profiles and
// cubes, 1 for a horizontal grid.
func (f *Field) Levels() int {
	if len(f.Shape) == 2 {
		return 1
	}
	return f.Shape[0]
}

// At2 indexes a 2-D grid field.
func (f *Field) At2(j, i int) float64 {
	return f.Data[j*f.Shape[1]+i]
}

// At3 indexes a profile-shaped field at level k and grid point (j,i). A 1-D
// profile returns the level value regardless of (j,i), so profile and cube
// inputs are interchangeable at the call sites.
func (f *Field) At3(k, j, i int) float64 {
	if len(f.Shape) == 1 {
		return f.Data[k]
	}
	return f.Data[(k*f.Shape[1]+j)*f.Shape[2]+i]
}

// Bundle is a set of named fields. The zero value is not usable; construct
// with New.
type Bundle struct {
	fields map[string]*Field
}

// New creates an empty bundle.
func New() *Bundle {
	return &Bundle{fields: make(map[string]*Field)}
}

// Attach adds or replaces a field, keyed by its name.
func (b *Bundle) Attach(f *Field) {
	b.fields[f.Name] = f
}

// Get returns the named field, or nil if it is absent.
func (b *Bundle) Get(name string) *Field {
	return b.fields[name]
}

// Has reports whether the named field is present.
func (b *Bundle) Has(name string) bool {
	_, ok := b.fields[name]
	return ok
}

// Names returns the attached field names in sorted order.
func (b *Bundle) Names() []string {
	names := make([]string, 0, len(b.fields))
	for name := range b.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Require checks that every listed field is present, returning a
// MissingFieldError naming all absent fields. A missing field is never
// silently substituted with a default.
func (b *Bundle) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if !b.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) != 0 {
		return &MissingFieldError{Missing: missing}
	}
	return nil
}
