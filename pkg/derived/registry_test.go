package derived

import (
	"sort"
	"testing"

	"github.com/chrissnell/oceandiags/pkg/bundle"
)

func TestLookup(t *testing.T) {
	if _, err := Lookup("ocean.total_heat_content"); err != nil {
		t.Errorf("Lookup(ocean.total_heat_content): %v", err)
	}
	if _, err := Lookup("ocean.does_not_exist"); err == nil {
		t.Error("unknown diagnostic must error")
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if len(names) != 12 {
		t.Errorf("registry has %d diagnostics, want 12: %v", len(names), names)
	}
}

func TestComputeAttachesResult(t *testing.T) {
	b := bundle.New()
	q, err := bundle.NewField("specific_humidity", []float64{0.01}, []int{1}, "kg/kg")
	if err != nil {
		t.Fatal(err)
	}
	b.Attach(q)

	out, err := Compute("atmos.mixing_ratio_from_specific_humidity", b)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !b.Has(out.Name) {
		t.Errorf("derived field %q was not attached to the bundle", out.Name)
	}
}
