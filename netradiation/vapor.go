package netradiation

import "math"

// SaturationVaporPressurePa computes the saturation water vapor pressure [Pa]
// from air temperature [°C]:
//
//	SVP_Pa = 0.6113 * 10^(7.5*Ta_C / (Ta_C + 237.3)) * 1000
func SaturationVaporPressurePa(taC Field) Field {
	return taC.Map(func(t float64) float64 {
		return 0.6113 * math.Pow(10, 7.5*t/(t+237.3)) * 1000
	})
}

// VaporPressurePa computes the actual water vapor pressure [Pa] from air
// temperature [°C] and relative humidity [0..1 fraction].
func VaporPressurePa(taC, rh Field) Field {
	return zip2(rh, SaturationVaporPressurePa(taC), func(r, svp float64) float64 {
		return r * svp
	})
}
