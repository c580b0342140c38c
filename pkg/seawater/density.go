package seawater

import "math"

// densityW computes the density of pure water (kg/m³) at atmospheric
// pressure from the UNESCO 1983 polynomial (Bigg 1967).
func densityW(t float64) float64 {
	return 999.842594 +
		t*(6.793952e-2+
			t*(-9.095290e-3+
				t*(1.001685e-4+
					t*(-1.120083e-6+
						t*6.536332e-9))))
}

// densitySTP0 computes seawater density (kg/m³) at atmospheric pressure,
// UNESCO 1983.
func densitySTP0(s, t float64) float64 {
	b := 0.824493 + t*(-4.0899e-3+t*(7.6438e-5+t*(-8.2467e-7+t*5.3875e-9)))
	c := -5.72466e-3 + t*(1.0227e-4+t*-1.6546e-6)
	const d = 4.8314e-4
	return densityW(t) + b*s + c*s*math.Sqrt(s) + d*s*s
}

// secantBulkModulus computes K(S,t,p) (bar), UNESCO 1983. Pressure argument
// is in bar.
func secantBulkModulus(s, t, pBar float64) float64 {
	s15 := s * math.Sqrt(s)

	kw := 19652.21 +
		t*(148.4206+
			t*(-2.327105+
				t*(1.360477e-2+
					t*-5.155288e-5)))
	k0 := kw +
		s*(54.6746+t*(-0.603459+t*(1.09987e-2+t*-6.1670e-5))) +
		s15*(7.944e-2+t*(1.6483e-2+t*-5.3009e-4))

	aw := 3.239908 + t*(1.43713e-3+t*(1.16092e-4+t*-5.77905e-7))
	a := aw +
		s*(2.2838e-3+t*(-1.0981e-5+t*-1.6078e-6)) +
		s15*1.91075e-4

	bw := 8.50935e-5 + t*(-6.12293e-6+t*5.2787e-8)
	b := bw + s*(-9.9348e-7+t*(2.0816e-8+t*9.1697e-10))

	return k0 + a*pBar + b*pBar*pBar
}

// Density computes in-situ seawater density (kg/m³) from practical
// salinity, in-situ temperature (degC), and sea pressure (dbar) using the
// EOS-80 equation of state.
func Density(s, t, p float64) float64 {
	rho0 := densitySTP0(s, t)
	if p == 0 {
		return rho0
	}
	pBar := p / 10.0
	return rho0 / (1.0 - pBar/secantBulkModulus(s, t, pBar))
}

// SpecificVolume computes the in-situ specific volume (m³/kg).
func SpecificVolume(s, t, p float64) float64 {
	return 1.0 / Density(s, t, p)
}

// SpecificVolumeAnomaly computes the specific volume anomaly (m³/kg)
// relative to the standard ocean (practical salinity 35, temperature 0) at
// the same pressure. Inputs follow TEOS-10 conventions: absolute salinity
// (g/kg) and conservative temperature (degC).
func SpecificVolumeAnomaly(sa, ct, p float64) float64 {
	sp := PracticalSalinity(sa)
	t := InsituFromPotential(sp, PotentialFromConservative(sa, ct), p)
	return SpecificVolume(sp, t, p) - SpecificVolume(35.0, 0.0, p)
}
