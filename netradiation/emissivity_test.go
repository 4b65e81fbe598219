package netradiation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference values computed from the Brutsaert (1975) relation with the
// Python implementation.
func TestAtmosphericEmissivityReference(t *testing.T) {
	e := AtmosphericEmissivity(Scalar(2766.56), Scalar(305.809))
	assert.True(t, math.Abs(e.At(0)-0.8797287878352823) < 1e-6)

	e = AtmosphericEmissivity(Scalar(1658.59), Scalar(303.466))
	assert.True(t, math.Abs(e.At(0)-0.8186211693574351) < 1e-6)
}

func TestAtmosphericEmissivityMonotonic(t *testing.T) {
	// increasing in vapor pressure at fixed temperature
	prev := 0.0
	for _, ea := range []float64{500, 1000, 2000, 3000, 4000} {
		v := AtmosphericEmissivity(Scalar(ea), Scalar(300)).At(0)
		assert.True(t, v > prev, "emissivity must increase with Ea, got %v after %v", v, prev)
		prev = v
	}

	// decreasing in temperature at fixed vapor pressure
	prev = 2.0
	for _, ta := range []float64{270, 280, 290, 300, 310} {
		v := AtmosphericEmissivity(Scalar(2000), Scalar(ta)).At(0)
		assert.True(t, v < prev, "emissivity must decrease with Ta, got %v after %v", v, prev)
		prev = v
	}
}

func TestAtmosphericEmissivityRange(t *testing.T) {
	for _, ea := range []float64{100, 1000, 3000, 5000} {
		for _, ta := range []float64{250, 280, 310} {
			v := AtmosphericEmissivity(Scalar(ea), Scalar(ta)).At(0)
			assert.True(t, v > 0 && v < 1.24, "emissivity %v out of (0, 1.24) for Ea=%v Ta=%v", v, ea, ta)
		}
	}
}

func TestAtmosphericEmissivityNaN(t *testing.T) {
	// negative base under the fractional power propagates as NaN
	v := AtmosphericEmissivity(Scalar(-2000), Scalar(300)).At(0)
	assert.True(t, math.IsNaN(v))

	v = AtmosphericEmissivity(Scalar(math.NaN()), Scalar(300)).At(0)
	assert.True(t, math.IsNaN(v))
}
