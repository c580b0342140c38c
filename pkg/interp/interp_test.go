package interp

import (
	"math"
	"testing"

	"github.com/chrissnell/oceandiags/pkg/bundle"
)

func mustField(t *testing.T, name string, data []float64, shape []int, units string) *bundle.Field {
	t.Helper()
	f, err := bundle.NewField(name, data, shape, units)
	if err != nil {
		t.Fatalf("NewField(%s): %v", name, err)
	}
	return f
}

func TestVerticalProfile(t *testing.T) {
	// Linear-in-z field interpolates exactly.
	z := mustField(t, "depth", []float64{0, 100, 200, 400}, []int{4}, "m")
	v := mustField(t, "temp", []float64{20, 18, 16, 12}, []int{4}, "degc")

	out, err := Vertical(v, z, []float64{50, 150, 300})
	if err != nil {
		t.Fatalf("Vertical: %v", err)
	}
	want := []float64{19, 17, 14}
	for i, w := range want {
		if math.Abs(out.Data[i]-w) > 1e-12 {
			t.Errorf("level %d: %.6f, want %g", i, out.Data[i], w)
		}
	}
}

func TestVerticalOutOfRangeIsNaN(t *testing.T) {
	z := mustField(t, "depth", []float64{0, 100}, []int{2}, "m")
	v := mustField(t, "temp", []float64{20, 18}, []int{2}, "degc")

	out, err := Vertical(v, z, []float64{-10, 50, 500})
	if err != nil {
		t.Fatalf("Vertical: %v", err)
	}
	if !math.IsNaN(out.Data[0]) || !math.IsNaN(out.Data[2]) {
		t.Errorf("out-of-range levels should be NaN, got %v and %v", out.Data[0], out.Data[2])
	}
	if math.Abs(out.Data[1]-19) > 1e-12 {
		t.Errorf("in-range level = %.6f, want 19", out.Data[1])
	}
}

func TestVerticalDescendingCoordinate(t *testing.T) {
	// Atmospheric convention: pressure decreases with index.
	z := mustField(t, "pressure", []float64{1000, 850, 500}, []int{3}, "hPa")
	v := mustField(t, "temp", []float64{15, 8, -20}, []int{3}, "degc")

	out, err := Vertical(v, z, []float64{925})
	if err != nil {
		t.Fatalf("Vertical: %v", err)
	}
	if out.Data[0] <= 8 || out.Data[0] >= 15 {
		t.Errorf("value at 925 hPa = %.3f, expected between 8 and 15", out.Data[0])
	}
}

func TestVerticalCube(t *testing.T) {
	// Two columns with distinct profiles interpolate independently.
	z := mustField(t, "depth", []float64{
		0, 0,
		100, 100,
	}, []int{2, 1, 2}, "m")
	v := mustField(t, "temp", []float64{
		20, 10,
		10, 0,
	}, []int{2, 1, 2}, "degc")

	out, err := Vertical(v, z, []float64{50})
	if err != nil {
		t.Fatalf("Vertical: %v", err)
	}
	if out.At3(0, 0, 0) != 15 || out.At3(0, 0, 1) != 5 {
		t.Errorf("columns = (%g, %g), want (15, 5)", out.At3(0, 0, 0), out.At3(0, 0, 1))
	}
}

func TestVerticalShapeMismatch(t *testing.T) {
	z := mustField(t, "depth", []float64{0, 100}, []int{2}, "m")
	v := mustField(t, "temp", []float64{20, 18, 16}, []int{3}, "degc")
	if _, err := Vertical(v, z, []float64{50}); err == nil {
		t.Fatal("expected a shape error")
	}
}

func TestLL2RAConstantField(t *testing.T) {
	// A constant field stays constant under regridding.
	var varin, lats, lons []float64
	for la := 9.0; la <= 11.0; la += 0.1 {
		for lo := 149.0; lo <= 151.0; lo += 0.1 {
			varin = append(varin, 7.5)
			lats = append(lats, la)
			lons = append(lons, lo)
		}
	}

	p, err := LL2RA(varin, lats, lons, 10.0, 150.0, 50e3, 10e3, 30)
	if err != nil {
		t.Fatalf("LL2RA: %v", err)
	}
	if len(p.Radial) < 2 || len(p.Azimuth) < 2 {
		t.Fatalf("degenerate polar grid: %d radial, %d azimuth", len(p.Radial), len(p.Azimuth))
	}
	for i, v := range p.Values {
		if math.IsNaN(v) || math.Abs(v-7.5) > 1e-9 {
			t.Fatalf("node %d = %v, want 7.5", i, v)
		}
	}
}

func TestLL2RACenterValue(t *testing.T) {
	// The r=0 node takes the value at the reference location.
	varin := []float64{1, 2, 3, 4, 99}
	lats := []float64{9.5, 9.5, 10.5, 10.5, 10.0}
	lons := []float64{149.5, 150.5, 149.5, 150.5, 150.0}

	p, err := LL2RA(varin, lats, lons, 10.0, 150.0, 100e3, 25e3, 45)
	if err != nil {
		t.Fatalf("LL2RA: %v", err)
	}
	for a := range p.Azimuth {
		if math.Abs(p.At(0, a)-99) > 1e-9 {
			t.Errorf("center node azimuth %d = %g, want 99", a, p.At(0, a))
		}
	}
}

func TestFillGaps(t *testing.T) {
	v := []float64{math.NaN(), 2, math.NaN(), math.NaN(), 8, math.NaN()}
	fillGaps(v)
	want := []float64{2, 2, 4, 6, 8, 8}
	for i, w := range want {
		if math.Abs(v[i]-w) > 1e-12 {
			t.Errorf("index %d = %g, want %g", i, v[i], w)
		}
	}
}
