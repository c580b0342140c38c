package seawater

import "math"

// heatCapacitySurface computes Cp(S,t,0) (J/(kg K)) at atmospheric
// pressure, UNESCO 1983 (Millero et al. 1973).
func heatCapacitySurface(s, t float64) float64 {
	cw := 4217.4 +
		t*(-3.720283+
			t*(0.1412855+
				t*(-2.654387e-3+
					t*2.093236e-5)))
	a := -7.64357 + t*(0.1072763+t*-1.38385e-3)
	b := 0.1770383 + t*(-4.07718e-3+t*5.148e-5)
	return cw + a*s + b*s*math.Sqrt(s)
}

// HeatCapacity computes the specific heat capacity of seawater Cp(S,t,p)
// (J/(kg K)) from practical salinity, in-situ temperature (degC), and sea
// pressure (dbar), UNESCO 1983.
func HeatCapacity(s, t, p float64) float64 {
	cp := heatCapacitySurface(s, t)
	if p == 0 {
		return cp
	}
	pBar := p / 10.0
	s15 := s * math.Sqrt(s)

	// Pressure correction for pure water.
	a := -4.9592e-1 + t*(1.45747e-2+t*(-3.13885e-4+t*(2.0357e-6+t*1.7168e-8)))
	b := 2.4931e-4 + t*(-1.08645e-5+t*(2.87533e-7+t*(-4.0027e-9+t*2.2956e-11)))
	c := -5.422e-8 + t*(2.6380e-9+t*(-6.5637e-11+t*6.136e-13))
	cp += a*pBar + b*pBar*pBar + c*pBar*pBar*pBar

	// Salinity-dependent pressure correction.
	d := 4.9247e-3 + t*(-1.28315e-4+t*(9.802e-7+t*(2.5941e-8+t*-2.9179e-10)))
	e := -1.2331e-4 + t*(-1.517e-6+t*3.122e-8)
	f := -2.9558e-6 + t*(1.17054e-7+t*(-2.3905e-9+t*1.8448e-11))
	const g = 9.971e-8
	h := 5.540e-10 + t*(-1.7682e-11+t*3.513e-13)
	const j = -1.4300e-12
	cp += (d*s + e*s15) * pBar
	cp += (f*s + g*s15) * pBar * pBar
	cp += (h*s + j*t*s15) * pBar * pBar * pBar

	return cp
}
