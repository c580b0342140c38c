package seawater

import (
	"math"
	"testing"
)

func TestDensityPlausibility(t *testing.T) {
	tests := []struct {
		name     string
		s, temp  float64
		p        float64
		min, max float64
	}{
		{"fresh water at 4C", 0, 4, 0, 999.5, 1000.5},
		{"standard surface ocean", 35, 10, 0, 1025, 1029},
		{"warm tropical surface", 35, 28, 0, 1021, 1025},
		{"deep water", 34.7, 2, 4000, 1040, 1060},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rho := Density(tt.s, tt.temp, tt.p)
			if rho < tt.min || rho > tt.max {
				t.Errorf("Density(%g, %g, %g) = %.3f, expected in [%.1f, %.1f]",
					tt.s, tt.temp, tt.p, rho, tt.min, tt.max)
			}
		})
	}
}

func TestDensityMonotonicity(t *testing.T) {
	// Salinity and pressure both increase density; warming above the
	// density maximum decreases it.
	if Density(36, 10, 0) <= Density(35, 10, 0) {
		t.Error("density did not increase with salinity")
	}
	if Density(35, 10, 1000) <= Density(35, 10, 0) {
		t.Error("density did not increase with pressure")
	}
	if Density(35, 25, 0) >= Density(35, 10, 0) {
		t.Error("density did not decrease with warming")
	}
}

func TestPotentialTemperatureRoundTrip(t *testing.T) {
	tests := []struct {
		s, temp, p float64
	}{
		{35, 20, 0},
		{35, 10, 500},
		{34.5, 4, 1000},
		{36.5, 2, 4000},
		{0, 15, 2000},
	}

	for _, tt := range tests {
		pt := PotentialTemperature(tt.s, tt.temp, tt.p, 0)
		back := InsituFromPotential(tt.s, pt, tt.p)
		if math.Abs(back-tt.temp) > 1e-4 {
			t.Errorf("round trip S=%g t=%g p=%g: got %.6f, want %.6f",
				tt.s, tt.temp, tt.p, back, tt.temp)
		}
		// A parcel raised adiabatically from depth cools.
		if tt.p > 0 && pt >= tt.temp {
			t.Errorf("potential temperature %.4f not below in-situ %.4f at p=%g", pt, tt.temp, tt.p)
		}
	}
}

func TestConservativeTemperatureRoundTrip(t *testing.T) {
	for _, pt := range []float64{-1, 0, 4, 10, 20, 28} {
		for _, sa := range []float64{0, 20, 35.16504, 37} {
			ct := ConservativeTemperature(sa, pt)
			back := PotentialFromConservative(sa, ct)
			if math.Abs(back-pt) > 1e-9 {
				t.Errorf("SA=%g pt=%g: round trip returned %.12f", sa, pt, back)
			}
			// Conservative and potential temperature agree to within
			// a fraction of a degree over the oceanic salinity range.
			if sa >= 30 && math.Abs(ct-pt) > 0.75 {
				t.Errorf("SA=%g pt=%g: conservative temperature %.4f implausibly far", sa, pt, ct)
			}
		}
	}
}

func TestPressureDepthRoundTrip(t *testing.T) {
	for _, lat := range []float64{0, 10, 45, 90} {
		for _, depth := range []float64{0, 10, 500, 1000, 5000, 10000} {
			p := PressureFromDepth(depth, lat)
			back := DepthFromPressure(p, lat)
			if math.Abs(back-depth) > 1e-6*math.Max(depth, 1) {
				t.Errorf("lat=%g depth=%g: round trip returned %.8f", lat, depth, back)
			}
		}
	}

	// Rule of thumb: roughly 1 dbar per meter, slightly more at depth.
	p := PressureFromDepth(1000, 30)
	if p < 1000 || p > 1020 {
		t.Errorf("PressureFromDepth(1000, 30) = %.2f, expected near 1010", p)
	}
}

func TestHeatCapacity(t *testing.T) {
	// Pure water at 0C, surface: 4217.4 by construction of the polynomial.
	if cp := HeatCapacity(0, 0, 0); math.Abs(cp-4217.4) > 0.5 {
		t.Errorf("HeatCapacity(0,0,0) = %.2f, want 4217.4", cp)
	}

	for _, tt := range []struct{ s, temp, p float64 }{
		{35, 0, 0}, {35, 15, 0}, {35, 28, 0}, {34.7, 2, 4000}, {40, 40, 10000},
	} {
		cp := HeatCapacity(tt.s, tt.temp, tt.p)
		if cp < 3700 || cp > 4250 {
			t.Errorf("HeatCapacity(%g, %g, %g) = %.2f out of physical range", tt.s, tt.temp, tt.p, cp)
		}
	}

	// Dissolved salt lowers the heat capacity.
	if HeatCapacity(35, 15, 0) >= HeatCapacity(0, 15, 0) {
		t.Error("heat capacity did not decrease with salinity")
	}
}

func TestSalinityScaling(t *testing.T) {
	if sa := AbsoluteSalinity(35); math.Abs(sa-SSO) > 1e-12 {
		t.Errorf("AbsoluteSalinity(35) = %.6f, want %.6f", sa, SSO)
	}
	if sp := PracticalSalinity(AbsoluteSalinity(34.2)); math.Abs(sp-34.2) > 1e-12 {
		t.Errorf("salinity scaling round trip returned %.12f", sp)
	}
}

func TestSpecificVolumeAnomaly(t *testing.T) {
	// Warm, salty surface water is lighter than the standard ocean, so the
	// anomaly is positive and small.
	sva := SpecificVolumeAnomaly(AbsoluteSalinity(35), 20, 0)
	if sva <= 0 || sva > 1e-5 {
		t.Errorf("SpecificVolumeAnomaly = %.3e, expected small positive", sva)
	}

	// The standard ocean itself has zero anomaly.
	zero := SpecificVolumeAnomaly(AbsoluteSalinity(35), ConservativeTemperature(SSO, 0), 500)
	if math.Abs(zero) > 1e-7 {
		t.Errorf("standard-ocean anomaly = %.3e, expected ~0", zero)
	}
}
