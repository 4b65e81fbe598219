package netradiation

// IncomingLongwave computes the incoming longwave radiation [W/m²] from the
// atmospheric emissivity and air temperature [K] via the Stefan-Boltzmann law:
//
//	LWin_clear = ε_a * σ * Ta_K⁴
//
// Where cloud is true the clear-sky value is replaced by the overcast
// approximation σ * Ta_K⁴ (emissivity 1). The zero Mask means clear sky
// everywhere.
func IncomingLongwave(emisAtm, taK Field, cloud Mask) Field {
	overcast := taK.Pow(4).Scale(SigmaSB)
	clear := emisAtm.Mul(overcast)
	if cloud.IsEmpty() {
		return clear
	}
	return clear.Where(cloud, overcast)
}

// OutgoingLongwave computes the longwave radiation emitted by the surface
// [W/m²] from surface emissivity [0..1 fraction] and surface temperature [K]:
//
//	LWout = ε_s * σ * Ts_K⁴
func OutgoingLongwave(emisSurf, tsK Field) Field {
	return emisSurf.Mul(tsK.Pow(4).Scale(SigmaSB))
}
