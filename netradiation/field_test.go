package netradiation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcastShape(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3})
	b, _ := FromSlice([]float64{4, 5, 6})

	shape, err := BroadcastShape(a, b, Scalar(1))
	assert.NoError(t, err)
	assert.Equal(t, []int{3}, shape)

	// all scalars resolve to the nil (scalar) shape
	shape, err = BroadcastShape(Scalar(1), Scalar(2))
	assert.NoError(t, err)
	assert.Nil(t, shape)

	// empty fields are skipped
	shape, err = BroadcastShape(a, Field{})
	assert.NoError(t, err)
	assert.Equal(t, []int{3}, shape)

	c, _ := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	_, err = BroadcastShape(a, c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broadcast")
}

func TestFromSliceShape(t *testing.T) {
	f, err := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 2}, f.Shape())
	assert.Equal(t, 4, f.Len())

	_, err = FromSlice([]float64{1, 2, 3}, 2, 2)
	assert.Error(t, err)
}

func TestFieldArithmetic(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3})
	b, _ := FromSlice([]float64{10, 20, 30})

	sum := a.Add(b)
	assert.Equal(t, []float64{11, 22, 33}, sum.Values())

	diff := b.Sub(a)
	assert.Equal(t, []float64{9, 18, 27}, diff.Values())

	prod := a.Mul(Scalar(2))
	assert.Equal(t, []float64{2, 4, 6}, prod.Values())

	quot := b.Div(a)
	assert.Equal(t, []float64{10, 10, 10}, quot.Values())

	// scalar broadcasts on either side
	left := Scalar(100).Sub(a)
	assert.Equal(t, []float64{99, 98, 97}, left.Values())

	// inputs stay unchanged
	assert.Equal(t, []float64{1, 2, 3}, a.Values())
}

func TestNaNPropagation(t *testing.T) {
	a, _ := FromSlice([]float64{1, math.NaN(), 3})

	sum := a.Add(Scalar(1)).Mul(Scalar(2)).Pow(2)
	vals := sum.Values()
	assert.False(t, math.IsNaN(vals[0]))
	assert.True(t, math.IsNaN(vals[1]))
	assert.False(t, math.IsNaN(vals[2]))
}

func TestPowNegativeBase(t *testing.T) {
	f := Scalar(-2.0).Pow(1.0 / 7.0)
	assert.True(t, math.IsNaN(f.At(0)))
}

func TestWhere(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4})
	b, _ := FromSlice([]float64{10, 20, 30, 40})
	m, _ := MaskFromSlice([]bool{false, true, false, true})

	merged := a.Where(m, b)
	assert.Equal(t, []float64{1, 20, 3, 40}, merged.Values())

	// scalar field against a grid mask takes the mask's shape
	merged = Scalar(1).Where(m, Scalar(9))
	assert.Equal(t, []float64{1, 9, 1, 9}, merged.Values())

	// the zero Mask selects nothing
	merged = a.Where(Mask{}, b)
	assert.Equal(t, []float64{1, 2, 3, 4}, merged.Values())
}

func TestCelsiusToKelvin(t *testing.T) {
	k := CelsiusToKelvin(Scalar(25))
	assert.True(t, math.Abs(k.At(0)-298.15) < 1e-12)
}
