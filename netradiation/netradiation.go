package netradiation

import "fmt"

// NetRadiationInput collects the fields for one instantaneous net-radiation
// calculation. STC, Emissivity, Albedo and SWin are required. EaPa is
// optional and is derived from TaC and RH when left empty; TaC is always
// required (the longwave terms need it), RH only when EaPa is empty.
// Cloud is optional; the zero Mask means clear sky everywhere.
//
// Fields must share one grid shape or be scalars; temperatures are in °C,
// vapor pressure in Pa, radiation in W/m², albedo/emissivity/RH fractional.
type NetRadiationInput struct {
	STC        Field // surface temperature [°C]
	Emissivity Field // surface emissivity [0..1]
	Albedo     Field // surface albedo [0..1]
	SWin       Field // incoming shortwave radiation [W/m²]
	TaC        Field // air temperature [°C]
	RH         Field // relative humidity [0..1]
	EaPa       Field // actual vapor pressure [Pa], optional
	Cloud      Mask  // true where cloudy, optional
}

// Fluxes bundles the derived radiation components [W/m²].
type Fluxes struct {
	SWout Field // outgoing (reflected) shortwave radiation
	LWin  Field // incoming longwave radiation
	LWout Field // outgoing longwave radiation
	Rn    Field // instantaneous net radiation
}

// NetRadiation computes the instantaneous surface net radiation and its
// components after Verma et al. (2016), Remote Sensing 8, 739.
//
// The calculation is a pure per-cell transform: shapes are validated up
// front, temperatures converted to kelvin once at this boundary, the vapor
// pressure derived from TaC/RH when not supplied, and the result assembled
// from the balance identity Rn = (SWin - SWout) + (LWin - LWout).
// Out-of-domain inputs are not rejected; NaN cells stay NaN.
func NetRadiation(in NetRadiationInput) (*Fluxes, error) {
	if in.SWin.IsEmpty() {
		return nil, fmt.Errorf("incoming shortwave radiation (SWin) not given")
	}
	if in.STC.IsEmpty() {
		return nil, fmt.Errorf("surface temperature (ST_C) not given")
	}
	if in.Emissivity.IsEmpty() {
		return nil, fmt.Errorf("surface emissivity not given")
	}
	if in.Albedo.IsEmpty() {
		return nil, fmt.Errorf("surface albedo not given")
	}
	if in.TaC.IsEmpty() {
		return nil, fmt.Errorf("air temperature (Ta_C) not given")
	}
	if in.EaPa.IsEmpty() && in.RH.IsEmpty() {
		return nil, fmt.Errorf("relative humidity (RH) not given")
	}

	shape, err := BroadcastShape(in.STC, in.Emissivity, in.Albedo, in.SWin, in.TaC, in.RH, in.EaPa)
	if err != nil {
		return nil, err
	}
	if err := in.Cloud.conformsTo(shape); err != nil {
		return nil, err
	}

	stK := CelsiusToKelvin(in.STC)
	taK := CelsiusToKelvin(in.TaC)

	eaPa := in.EaPa
	if eaPa.IsEmpty() {
		eaPa = VaporPressurePa(in.TaC, in.RH)
	}

	swout := OutgoingShortwave(in.SWin, in.Albedo)

	emisAtm := AtmosphericEmissivity(eaPa, taK)
	lwin := IncomingLongwave(emisAtm, taK, in.Cloud)
	lwout := OutgoingLongwave(in.Emissivity, stK)

	rn := in.SWin.Sub(swout).Add(lwin).Sub(lwout)

	return &Fluxes{SWout: swout, LWin: lwin, LWout: lwout, Rn: rn}, nil
}
