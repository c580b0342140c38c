package seawater

import "math"

// AdiabaticLapseRate computes the adiabatic temperature gradient
// (degC/dbar) from practical salinity, in-situ temperature (degC), and sea
// pressure (dbar), Bryden 1973.
func AdiabaticLapseRate(s, t, p float64) float64 {
	ds := s - 35.0
	return 3.5803e-5 + t*(8.5258e-6+t*(-6.836e-8+t*6.6228e-10)) +
		ds*(1.8932e-6+t*-4.2393e-8) +
		p*(1.8741e-8+t*(-6.7795e-10+t*(8.733e-12+t*-5.4481e-14))+
			ds*(-1.1351e-10+t*2.7759e-12)) +
		p*p*(-4.6206e-13+t*(1.8676e-14+t*-2.1687e-16))
}

// PotentialTemperature computes the potential temperature (degC) of a
// water parcel moved adiabatically from pressure p to reference pressure
// pRef, integrating the lapse rate with the fourth-order Runge-Kutta scheme
// of Fofonoff & Millard 1983.
func PotentialTemperature(s, t, p, pRef float64) float64 {
	sqrt2 := math.Sqrt2

	dp := pRef - p
	dth := dp * AdiabaticLapseRate(s, t, p)
	th := t + 0.5*dth
	q := dth

	dth = dp * AdiabaticLapseRate(s, th, p+0.5*dp)
	th += (1 - 1/sqrt2) * (dth - q)
	q = (2-sqrt2)*dth + (-2+3/sqrt2)*q

	dth = dp * AdiabaticLapseRate(s, th, p+0.5*dp)
	th += (1 + 1/sqrt2) * (dth - q)
	q = (2+sqrt2)*dth + (-2-3/sqrt2)*q

	dth = dp * AdiabaticLapseRate(s, th, p+dp)
	return th + (dth-2*q)/6.0
}

// InsituFromPotential recovers the in-situ temperature (degC) at pressure p
// from the potential temperature referenced to the surface. The adiabatic
// integration is symmetric in its pressure arguments, so this is the exact
// inverse of PotentialTemperature(s, t, p, 0).
func InsituFromPotential(s, pt, p float64) float64 {
	return PotentialTemperature(s, pt, 0.0, p)
}

// potentialEnthalpy computes the potential enthalpy h(S,pt,0) (J/kg)
// relative to 0 degC by analytic integration of the surface heat-capacity
// polynomial in temperature.
func potentialEnthalpy(s, pt float64) float64 {
	t := pt
	hw := t * (4217.4 +
		t*(-3.720283/2+
			t*(0.1412855/3+
				t*(-2.654387e-3/4+
					t*2.093236e-5/5))))
	ha := t * (-7.64357 + t*(0.1072763/2+t*-1.38385e-3/3))
	hb := t * (0.1770383 + t*(-4.07718e-3/2+t*5.148e-5/3))
	return hw + ha*s + hb*s*math.Sqrt(s)
}

// ConservativeTemperature computes the conservative temperature (degC) from
// absolute salinity (g/kg) and potential temperature (degC): potential
// enthalpy over the fixed TEOS-10 heat capacity Cp0.
func ConservativeTemperature(sa, pt float64) float64 {
	return potentialEnthalpy(PracticalSalinity(sa), pt) / Cp0
}

// PotentialFromConservative inverts ConservativeTemperature by Newton
// iteration; the derivative of potential enthalpy in temperature is the
// surface heat capacity itself, so convergence is quadratic and the pair
// round-trips to machine precision.
func PotentialFromConservative(sa, ct float64) float64 {
	sp := PracticalSalinity(sa)
	pt := ct
	for i := 0; i < 6; i++ {
		f := potentialEnthalpy(sp, pt)/Cp0 - ct
		df := heatCapacitySurface(sp, pt) / Cp0
		step := f / df
		pt -= step
		if math.Abs(step) < 1e-12 {
			break
		}
	}
	return pt
}

// InsituFromConservative computes the in-situ temperature (degC) at
// pressure p from absolute salinity and conservative temperature.
func InsituFromConservative(sa, ct, p float64) float64 {
	return InsituFromPotential(PracticalSalinity(sa), PotentialFromConservative(sa, ct), p)
}
