package netradiation

import (
	"fmt"
	"math"
)

// The daily upscaling assumes net radiation follows a half-sine curve over
// the daylight window (Verma et al. 2016): one instantaneous sample fixes
// the sine amplitude, and the integral over sunrise..sunset gives the day.

// dailySineEpsilon guards the amplitude inversion RnPeak = Rn / sin(θ):
// samples at or near sunrise/sunset make the inversion ill-conditioned and
// come out as NaN instead of blowing up.
const dailySineEpsilon = 1e-6

// DailyInput collects the fields for one daily upscaling. Rn and HourOfDay
// are required. SunriseHour and DaylightHours may be given directly or left
// empty to be derived from DOY and Lat; when neither parameterization is
// complete the call fails, since no default is physically defensible.
type DailyInput struct {
	Rn            Field // instantaneous net radiation [W/m²]
	HourOfDay     Field // local solar hour of the sample (0-24)
	SunriseHour   Field // hour of sunrise (0-24), optional
	DaylightHours Field // daylight duration [h], optional
	DOY           Field // day of year (1-365), optional
	Lat           Field // latitude [deg], optional
}

// DailyNetRadiation upscales an instantaneous net-radiation sample to the
// daily mean net radiation [W/m²], averaged over the full 24-hour day:
//
//	Rn_daily = Rn_peak * daylight_hours * 2 / (π * 24)
//
// with Rn_peak = Rn / sin(π (hour - sunrise) / daylight_hours).
//
// Cells whose sample falls outside the daylight window, or at/near
// sunrise/sunset where the inversion degenerates, yield NaN rather than a
// fabricated value; NaN never aborts the batch. Multiply by 86400 for the
// daily total in J/m², or use DailyNetRadiationJ.
func DailyNetRadiation(in DailyInput) (Field, error) {
	peak, daylight, err := dailyPeak(in)
	if err != nil {
		return Field{}, err
	}
	return zip2(peak, daylight, func(p, d float64) float64 {
		return p * d * 2 / (math.Pi * 24)
	}), nil
}

// DailyNetRadiationJ upscales an instantaneous net-radiation sample to the
// integrated daily total [J/m²]:
//
//	Rn_daily = Rn_peak * daylight_hours * 3600 * 2 / π
//
// Window and degeneracy handling are as in DailyNetRadiation.
func DailyNetRadiationJ(in DailyInput) (Field, error) {
	peak, daylight, err := dailyPeak(in)
	if err != nil {
		return Field{}, err
	}
	return zip2(peak, daylight, func(p, d float64) float64 {
		return p * d * 3600 * 2 / math.Pi
	}), nil
}

// dailyPeak resolves the solar-geometry parameterization, validates shapes
// and inverts the half-sine for its amplitude.
func dailyPeak(in DailyInput) (peak, daylight Field, err error) {
	if in.Rn.IsEmpty() {
		return Field{}, Field{}, fmt.Errorf("instantaneous net radiation (Rn) not given")
	}
	if in.HourOfDay.IsEmpty() {
		return Field{}, Field{}, fmt.Errorf("hour of day not given")
	}

	sunrise := in.SunriseHour
	daylight = in.DaylightHours
	if sunrise.IsEmpty() || daylight.IsEmpty() {
		if in.DOY.IsEmpty() || in.Lat.IsEmpty() {
			return Field{}, Field{}, fmt.Errorf(
				"sunrise hour and daylight hours not given and not derivable: day of year and latitude not given")
		}
		if _, err := BroadcastShape(in.DOY, in.Lat); err != nil {
			return Field{}, Field{}, err
		}
		sha := SunsetHourAngleDeg(in.DOY, in.Lat)
		if daylight.IsEmpty() {
			daylight = DaylightHoursFromSHA(sha)
		}
		if sunrise.IsEmpty() {
			sunrise = SunriseHourFromSHA(sha)
		}
	}

	if _, err := BroadcastShape(in.Rn, in.HourOfDay, sunrise, daylight); err != nil {
		return Field{}, Field{}, err
	}

	theta := in.HourOfDay.Sub(sunrise).Div(daylight).Scale(math.Pi)
	inWindow := zip2(in.HourOfDay.Sub(sunrise), daylight, func(dt, d float64) float64 {
		if !(d > 0) || dt < 0 || dt > d {
			return math.NaN()
		}
		return 1
	})
	peak = zip2(in.Rn.Mul(inWindow), theta, func(rn, th float64) float64 {
		s := math.Sin(th)
		if !(s >= dailySineEpsilon) {
			return math.NaN()
		}
		return rn / s
	})
	return peak, daylight, nil
}
