package netradiation

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Field is a numeric quantity that is either a single scalar or a dense
// N-dimensional grid of float64 values. All physical formulas in this
// package are written once against Field, so scalars, 1-d column vectors
// and georeferenced 2-d grids go through the same code path.
//
// NaN marks missing cells and propagates through every operation.
// The zero Field means "not given" and is how optional inputs are left out.
type Field struct {
	grid   *sparse.DenseArray // nil when the field holds a scalar
	scalar float64
	ok     bool
}

// Scalar wraps a single value as a Field.
func Scalar(v float64) Field {
	return Field{scalar: v, ok: true}
}

// FromDense wraps a dense array as a Field. The array is not copied;
// the caller must not modify it afterwards.
func FromDense(a *sparse.DenseArray) Field {
	return Field{grid: a, ok: true}
}

// FromSlice builds a grid Field from values with the given shape.
// With no shape, the field is a 1-d vector of len(values).
func FromSlice(values []float64, shape ...int) (Field, error) {
	if len(shape) == 0 {
		shape = []int{len(values)}
	}
	size := 1
	for _, d := range shape {
		size *= d
	}
	if size != len(values) {
		return Field{}, fmt.Errorf("shape %v does not hold %d values", shape, len(values))
	}
	a := sparse.ZerosDense(shape...)
	copy(a.Elements, values)
	return FromDense(a), nil
}

// IsEmpty reports whether the field was never given (zero Field).
func (f Field) IsEmpty() bool {
	return !f.ok
}

// IsScalar reports whether the field holds a single value.
func (f Field) IsScalar() bool {
	return f.grid == nil
}

// Shape returns the grid shape, or nil for a scalar.
func (f Field) Shape() []int {
	if f.grid == nil {
		return nil
	}
	return f.grid.Shape
}

// Len returns the number of cells (1 for a scalar).
func (f Field) Len() int {
	if f.grid == nil {
		return 1
	}
	return len(f.grid.Elements)
}

// At returns the value of cell i in flat order. A scalar broadcasts to
// every index.
func (f Field) At(i int) float64 {
	if !f.ok {
		return math.NaN()
	}
	if f.grid == nil {
		return f.scalar
	}
	return f.grid.Elements[i]
}

// Values returns a copy of the cell values in flat order.
func (f Field) Values() []float64 {
	if !f.ok {
		return nil
	}
	if f.grid == nil {
		return []float64{f.scalar}
	}
	return append([]float64{}, f.grid.Elements...)
}

// BroadcastShape resolves the common shape of the given fields: scalars are
// compatible with anything, grids must all share one shape exactly. It
// returns nil when every field is a scalar, and a descriptive error on the
// first mismatch, before any arithmetic runs. Empty fields are skipped.
func BroadcastShape(fields ...Field) ([]int, error) {
	var shape []int
	for _, f := range fields {
		if f.IsEmpty() || f.grid == nil {
			continue
		}
		if shape == nil {
			shape = f.grid.Shape
			continue
		}
		if !shapeEqual(shape, f.grid.Shape) {
			return nil, fmt.Errorf("cannot broadcast shape %v with shape %v", shape, f.grid.Shape)
		}
	}
	return shape, nil
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// zeros returns a writable Field of the given shape (a scalar for nil shape).
func zeros(shape []int) Field {
	if shape == nil {
		return Scalar(0)
	}
	return FromDense(sparse.ZerosDense(shape...))
}

func (f *Field) set(i int, v float64) {
	if f.grid == nil {
		f.scalar = v
		return
	}
	f.grid.Elements[i] = v
}

// zip2 applies fn cell-wise over two fields, broadcasting scalars.
// Shapes must be pre-validated with BroadcastShape.
func zip2(a, b Field, fn func(x, y float64) float64) Field {
	if a.grid != nil && b.grid != nil && !shapeEqual(a.grid.Shape, b.grid.Shape) {
		panic(fmt.Sprintf("netradiation: shape mismatch %v vs %v", a.grid.Shape, b.grid.Shape))
	}
	shape := a.Shape()
	if shape == nil {
		shape = b.Shape()
	}
	out := zeros(shape)
	for i := 0; i < out.Len(); i++ {
		out.set(i, fn(a.At(i), b.At(i)))
	}
	return out
}

// Map applies fn to every cell.
func (f Field) Map(fn func(x float64) float64) Field {
	if f.grid == nil {
		return Scalar(fn(f.scalar))
	}
	out := f.grid.Copy()
	for i, v := range out.Elements {
		out.Elements[i] = fn(v)
	}
	return FromDense(out)
}

// Add returns f + g cell-wise.
func (f Field) Add(g Field) Field {
	if f.grid != nil && g.grid != nil && shapeEqual(f.grid.Shape, g.grid.Shape) {
		out := f.grid.Copy()
		floats.Add(out.Elements, g.grid.Elements)
		return FromDense(out)
	}
	if f.grid != nil && g.grid == nil {
		out := f.grid.Copy()
		floats.AddConst(g.scalar, out.Elements)
		return FromDense(out)
	}
	if f.grid == nil && g.grid != nil {
		return g.Add(f)
	}
	return zip2(f, g, func(x, y float64) float64 { return x + y })
}

// Sub returns f - g cell-wise.
func (f Field) Sub(g Field) Field {
	if f.grid != nil && g.grid != nil && shapeEqual(f.grid.Shape, g.grid.Shape) {
		out := f.grid.Copy()
		floats.Sub(out.Elements, g.grid.Elements)
		return FromDense(out)
	}
	if f.grid != nil && g.grid == nil {
		out := f.grid.Copy()
		floats.AddConst(-g.scalar, out.Elements)
		return FromDense(out)
	}
	return zip2(f, g, func(x, y float64) float64 { return x - y })
}

// Mul returns f * g cell-wise.
func (f Field) Mul(g Field) Field {
	if f.grid != nil && g.grid != nil && shapeEqual(f.grid.Shape, g.grid.Shape) {
		out := f.grid.Copy()
		floats.Mul(out.Elements, g.grid.Elements)
		return FromDense(out)
	}
	if f.grid != nil && g.grid == nil {
		return f.Scale(g.scalar)
	}
	if f.grid == nil && g.grid != nil {
		return g.Mul(f)
	}
	return zip2(f, g, func(x, y float64) float64 { return x * y })
}

// Div returns f / g cell-wise.
func (f Field) Div(g Field) Field {
	if f.grid != nil && g.grid != nil && shapeEqual(f.grid.Shape, g.grid.Shape) {
		out := f.grid.Copy()
		floats.Div(out.Elements, g.grid.Elements)
		return FromDense(out)
	}
	return zip2(f, g, func(x, y float64) float64 { return x / y })
}

// Scale returns f * c.
func (f Field) Scale(c float64) Field {
	if f.grid == nil {
		return Scalar(f.scalar * c)
	}
	out := f.grid.Copy()
	floats.Scale(c, out.Elements)
	return FromDense(out)
}

// Pow returns f^p cell-wise. A negative base with a fractional exponent
// yields NaN, which propagates like any other missing value.
func (f Field) Pow(p float64) Field {
	return f.Map(func(x float64) float64 { return math.Pow(x, p) })
}

// Where returns f with the cells where m is true replaced by other.
// Scalars broadcast on all three sides.
func (f Field) Where(m Mask, other Field) Field {
	shape := f.Shape()
	if shape == nil {
		shape = other.Shape()
	}
	if shape == nil {
		shape = m.Shape()
	}
	if shape == nil {
		if m.At(0) {
			return other
		}
		return f
	}
	out := zeros(shape)
	for i := 0; i < out.Len(); i++ {
		if m.At(i) {
			out.set(i, other.At(i))
		} else {
			out.set(i, f.At(i))
		}
	}
	return out
}

// CelsiusToKelvin converts a temperature field from °C to K.
func CelsiusToKelvin(tC Field) Field {
	return tC.Add(Scalar(273.15))
}

// Mask is the boolean analogue of Field: a scalar truth value or a grid of
// cells. The zero Mask is false everywhere, which the radiation functions
// read as "clear sky".
type Mask struct {
	cells []bool
	shape []int
	all   bool
	ok    bool
}

// MaskScalar wraps a single truth value as a Mask.
func MaskScalar(v bool) Mask {
	return Mask{all: v, ok: true}
}

// MaskFromSlice builds a grid Mask from values with the given shape.
// With no shape, the mask is a 1-d vector of len(values).
func MaskFromSlice(values []bool, shape ...int) (Mask, error) {
	if len(shape) == 0 {
		shape = []int{len(values)}
	}
	size := 1
	for _, d := range shape {
		size *= d
	}
	if size != len(values) {
		return Mask{}, fmt.Errorf("shape %v does not hold %d values", shape, len(values))
	}
	return Mask{cells: append([]bool{}, values...), shape: shape, ok: true}, nil
}

// IsEmpty reports whether the mask was never given (zero Mask).
func (m Mask) IsEmpty() bool {
	return !m.ok
}

// Shape returns the grid shape, or nil for a scalar mask.
func (m Mask) Shape() []int {
	return m.shape
}

// At returns cell i in flat order. A scalar mask broadcasts; the zero Mask
// is false everywhere.
func (m Mask) At(i int) bool {
	if m.cells == nil {
		return m.ok && m.all
	}
	return m.cells[i]
}

// conformsTo checks a grid mask against the resolved field shape. Scalar
// masks and scalar fields broadcast either way.
func (m Mask) conformsTo(shape []int) error {
	if m.cells == nil || shape == nil {
		return nil
	}
	if !shapeEqual(m.shape, shape) {
		return fmt.Errorf("cannot broadcast mask shape %v with shape %v", m.shape, shape)
	}
	return nil
}
