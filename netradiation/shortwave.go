package netradiation

// OutgoingShortwave computes the reflected shortwave radiation [W/m²] from
// incoming shortwave radiation [W/m²] and surface albedo [0..1 fraction].
// Albedo outside [0,1] is not corrected here; callers pre-clip.
func OutgoingShortwave(swin, albedo Field) Field {
	return swin.Mul(albedo)
}
