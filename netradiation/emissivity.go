package netradiation

import "math"

// AtmosphericEmissivity computes the clear-sky atmospheric emissivity after
// Brutsaert (1975):
//
//	ε_a = 1.24 * (Ea_hPa / Ta_K)^(1/7)
//
// Args:
//
//	eaPa: actual water vapor pressure [Pa]
//	taK:  air temperature [K]
//
// Returns the dimensionless emissivity, typically 0.6..1.0 for terrestrial
// conditions. Units are a caller contract and are not checked; a negative
// base under the fractional power yields NaN, which propagates.
func AtmosphericEmissivity(eaPa, taK Field) Field {
	return zip2(eaPa, taK, func(ea, ta float64) float64 {
		return 1.24 * math.Pow((ea/100)/ta, 1.0/7.0)
	})
}
