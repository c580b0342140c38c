// Package seawater implements the reference thermodynamic formulas for
// seawater used by the ocean diagnostics: the UNESCO 1983 (EOS-80) equation
// of state and heat capacity, the Bryden 1973 adiabatic lapse rate, the
// Fofonoff & Millard 1983 potential-temperature integration, the Saunders
// 1981 pressure/depth relation, and the TEOS-10 conservative-temperature
// and absolute-salinity conventions.
//
// Unit conventions throughout: practical salinity on the PSS-78 scale,
// absolute salinity in g/kg, temperatures in degrees Celsius, pressure in
// decibars, depth in meters measured positive downward.
package seawater

const (
	// Cp0 is the TEOS-10 fixed heat capacity relating potential enthalpy
	// to conservative temperature (J/(kg K)).
	Cp0 = 3991.86795711963

	// SSO is the standard-ocean reference absolute salinity (g/kg).
	SSO = 35.16504

	// uPS converts practical salinity to reference-composition absolute
	// salinity (g/kg per PSS-78 unit).
	uPS = SSO / 35.0
)

// AbsoluteSalinity converts practical salinity to absolute salinity (g/kg)
// using the reference-composition scaling. The regional composition-anomaly
// correction is below the accuracy carried by these diagnostics and is
// omitted.
func AbsoluteSalinity(sp float64) float64 {
	return uPS * sp
}

// PracticalSalinity converts absolute salinity (g/kg) back to practical
// salinity.
func PracticalSalinity(sa float64) float64 {
	return sa / uPS
}
