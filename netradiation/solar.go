package netradiation

import "math"

// Solar geometry for the daily upscaling: sunset hour angle, daylight hours
// and sunrise hour from day of year and latitude.

func degreeToRad(d float64) float64 {
	return d * math.Pi / 180
}

func radToDegree(r float64) float64 {
	return r * 180 / math.Pi
}

// SunsetHourAngleDeg computes the sunset hour angle [deg] from day of year
// (1-365) and latitude [deg]. The solar declination uses the standard
// 23.45°·sin(2π(284+DOY)/365) approximation; cos(SHA) is clamped to [-1,1]
// so polar day and polar night come out as 180° and 0° instead of a domain
// error.
func SunsetHourAngleDeg(doy, lat Field) Field {
	return zip2(doy, lat, func(d, la float64) float64 {
		decl := 23.45 * math.Sin(2*math.Pi*(284+d)/365)
		cosSHA := -math.Tan(degreeToRad(la)) * math.Tan(degreeToRad(decl))
		if cosSHA > 1 {
			cosSHA = 1
		} else if cosSHA < -1 {
			cosSHA = -1
		}
		return radToDegree(math.Acos(cosSHA))
	})
}

// DaylightHoursFromSHA converts a sunset hour angle [deg] to daylight
// duration [h] (the sun moves 15° per hour).
func DaylightHoursFromSHA(sha Field) Field {
	return sha.Scale(2.0 / 15.0)
}

// SunriseHourFromSHA converts a sunset hour angle [deg] to the local solar
// hour of sunrise.
func SunriseHourFromSHA(sha Field) Field {
	return sha.Map(func(s float64) float64 { return 12 - s/15 })
}
