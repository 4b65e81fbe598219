package netradiation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutgoingLongwaveBlackbody(t *testing.T) {
	// ε_s = 1 at 300 K is the blackbody flux σ·300⁴
	lwout := OutgoingLongwave(Scalar(1), Scalar(300)).At(0)
	assert.True(t, math.Abs(lwout-459.300294) < 1e-9)
}

func TestIncomingLongwaveClearSky(t *testing.T) {
	emisAtm := Scalar(0.8)
	lwin := IncomingLongwave(emisAtm, Scalar(300), Mask{}).At(0)
	assert.True(t, math.Abs(lwin-0.8*459.300294) < 1e-9)
}

// With ε_s = 1 and ST = Ta, the outgoing flux and the clear-sky incoming
// flux differ only by the atmospheric-emissivity factor.
func TestLongwaveEmissivityFactor(t *testing.T) {
	taK := Scalar(298.15)
	emisAtm := AtmosphericEmissivity(Scalar(1585.0929963049502), taK)

	lwin := IncomingLongwave(emisAtm, taK, Mask{})
	lwout := OutgoingLongwave(Scalar(1), taK)

	assert.True(t, math.Abs(lwin.At(0)-emisAtm.At(0)*lwout.At(0)) < 1e-9)
}

func TestIncomingLongwaveCloudMask(t *testing.T) {
	taK, _ := FromSlice([]float64{298.15, 298.15, 298.15, 298.15})
	emisAtm := AtmosphericEmissivity(Scalar(1585.0929963049502), taK)
	cloud, _ := MaskFromSlice([]bool{false, true, false, true})

	lwin := IncomingLongwave(emisAtm, taK, cloud)
	clear := IncomingLongwave(emisAtm, taK, Mask{})
	overcast := taK.Pow(4).Scale(SigmaSB)

	for i := 0; i < lwin.Len(); i++ {
		if cloud.At(i) {
			assert.Equal(t, overcast.At(i), lwin.At(i), "cloudy cell %d", i)
		} else {
			assert.Equal(t, clear.At(i), lwin.At(i), "clear cell %d", i)
		}
	}
	// overcast reference value for Ta = 25 °C
	assert.True(t, math.Abs(overcast.At(0)-448.07525359709916) < 1e-9)
}

func TestLongwaveNaNPropagation(t *testing.T) {
	tsK, _ := FromSlice([]float64{300, math.NaN()})
	lwout := OutgoingLongwave(Scalar(0.95), tsK)
	assert.False(t, math.IsNaN(lwout.At(0)))
	assert.True(t, math.IsNaN(lwout.At(1)))
}
