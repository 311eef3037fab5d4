package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// The package-level operation library. The arithmetic entry points forward to
// the corresponding Vector methods; the batch and reduction functions own the
// cross-vector logic that no single instance can.

// Add returns a + b. See Vector.Add.
func Add(a, b *Vector) (*Vector, error) { return a.Add(b) }

// Subtract returns a - b. See Vector.Sub.
func Subtract(a, b *Vector) (*Vector, error) { return a.Sub(b) }

// Multiply returns v scaled by s. See Vector.Scale.
func Multiply(v *Vector, s float64) *Vector { return v.Scale(s) }

// Divide returns v scaled by 1/s. See Vector.Div.
func Divide(v *Vector, s float64) (*Vector, error) { return v.Div(s) }

// DotProduct returns a · b. See Vector.Dot.
func DotProduct(a, b *Vector) (float64, error) { return a.Dot(b) }

// CrossProduct returns the 3D cross product a × b. See Vector.Cross.
func CrossProduct(a, b *Vector) (*Vector, error) { return a.Cross(b) }

// Magnitude returns the Euclidean norm of v. See Vector.Magnitude.
func Magnitude(v *Vector) float64 { return v.Magnitude() }

// Normalize returns v scaled to unit length. See Vector.Normalize.
func Normalize(v *Vector) (*Vector, error) { return v.Normalize() }

// Distance returns the Euclidean distance between a and b. See
// Vector.Distance.
func Distance(a, b *Vector) (float64, error) { return a.Distance(b) }

// AngleBetween returns the angle between a and b in radians. See
// Vector.AngleBetween.
func AngleBetween(a, b *Vector) (float64, error) { return a.AngleBetween(b) }

// Rotate returns v rotated about axis by angle radians using Rodrigues'
// rotation formula:
//
//	v' = v cosθ + (v × axis) sinθ + axis (axis · v)(1 - cosθ)
//
// The caller supplies a normalized axis; the formula is not self-normalizing.
// Returns ErrInvalidDimension unless both v and axis are 3-dimensional.
func Rotate(v, axis *Vector, angle float64) (*Vector, error) {
	if !v.Is3D() || !axis.Is3D() {
		return nil, fmt.Errorf("%w: rotation requires 3D, got %dD and %dD",
			ErrInvalidDimension, v.Dim(), axis.Dim())
	}
	cos := math.Cos(angle)
	sin := math.Sin(angle)

	perp, err := v.Cross(axis)
	if err != nil {
		return nil, err
	}
	dot, err := axis.Dot(v)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 3)
	floats.ScaleTo(out, cos, v.elems)
	floats.AddScaled(out, sin, perp.elems)
	floats.AddScaled(out, dot*(1-cos), axis.elems)
	return &Vector{elems: out}, nil
}

// BatchAdd pairs the two lists elementwise and adds each pair. Returns
// ErrLengthMismatch if the lists have different lengths; dimension
// mismatches within a pair surface through Add.
func BatchAdd(as, bs []*Vector) ([]*Vector, error) {
	if len(as) != len(bs) {
		return nil, fmt.Errorf("%w: %d vs %d vectors", ErrLengthMismatch, len(as), len(bs))
	}
	out := make([]*Vector, len(as))
	for i := range as {
		sum, err := as[i].Add(bs[i])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		out[i] = sum
	}
	return out, nil
}

// BatchDotProduct pairs the two lists elementwise and computes each dot
// product. Returns ErrLengthMismatch if the lists have different lengths.
func BatchDotProduct(as, bs []*Vector) ([]float64, error) {
	if len(as) != len(bs) {
		return nil, fmt.Errorf("%w: %d vs %d vectors", ErrLengthMismatch, len(as), len(bs))
	}
	out := make([]float64, len(as))
	for i := range as {
		dot, err := as[i].Dot(bs[i])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		out[i] = dot
	}
	return out, nil
}

// Centroid returns the arithmetic mean of the given vectors. Returns
// ErrEmptyInput for an empty list; all vectors must share a dimension
// (mismatches surface through Add).
func Centroid(vs []*Vector) (*Vector, error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("%w: centroid", ErrEmptyInput)
	}
	sum := vs[0].Clone()
	for i, v := range vs[1:] {
		next, err := sum.Add(v)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
		sum = next
	}
	return sum.Div(float64(len(vs)))
}

// WeightedAverage returns sum(v_i * w_i) / sum(w_i). Returns
// ErrLengthMismatch if the lists have different lengths, ErrEmptyInput for
// empty lists, and ErrZeroWeight if the weights sum to zero.
func WeightedAverage(vs []*Vector, weights []float64) (*Vector, error) {
	if len(vs) != len(weights) {
		return nil, fmt.Errorf("%w: %d vectors, %d weights", ErrLengthMismatch, len(vs), len(weights))
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("%w: weighted average", ErrEmptyInput)
	}
	total := floats.Sum(weights)
	if total == 0 {
		return nil, ErrZeroWeight
	}
	sum := vs[0].Scale(weights[0])
	for i := 1; i < len(vs); i++ {
		next, err := sum.Add(vs[i].Scale(weights[i]))
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		sum = next
	}
	return sum.Div(total)
}

// ElementWiseMultiply returns the Hadamard product of a and b. Returns
// ErrDimensionMismatch if the dimensions differ.
func ElementWiseMultiply(a, b *Vector) (*Vector, error) {
	if a.Dim() != b.Dim() {
		return nil, fmt.Errorf("%w: %dD vs %dD", ErrDimensionMismatch, a.Dim(), b.Dim())
	}
	out := make([]float64, a.Dim())
	floats.MulTo(out, a.elems, b.elems)
	return &Vector{elems: out}, nil
}

// ElementWiseDivide returns the componentwise quotient a / b. Returns
// ErrDimensionMismatch if the dimensions differ and ErrDivideByZero if any
// component of b is zero; the divisor is checked in full before any result
// is built.
func ElementWiseDivide(a, b *Vector) (*Vector, error) {
	if a.Dim() != b.Dim() {
		return nil, fmt.Errorf("%w: %dD vs %dD", ErrDimensionMismatch, a.Dim(), b.Dim())
	}
	for i, x := range b.elems {
		if x == 0 {
			return nil, fmt.Errorf("%w: divisor component %d", ErrDivideByZero, i)
		}
	}
	out := make([]float64, a.Dim())
	floats.DivTo(out, a.elems, b.elems)
	return &Vector{elems: out}, nil
}

// SumElements returns the sum of all components of v. The sum over a
// 0-dimensional vector is 0.
func SumElements(v *Vector) float64 {
	return floats.Sum(v.elems)
}

// MaxElement returns the largest component of v. Returns ErrEmptyInput for a
// 0-dimensional vector.
func MaxElement(v *Vector) (float64, error) {
	if v.Dim() == 0 {
		return 0, fmt.Errorf("%w: max of 0-dimensional vector", ErrEmptyInput)
	}
	return floats.Max(v.elems), nil
}

// MinElement returns the smallest component of v. Returns ErrEmptyInput for
// a 0-dimensional vector.
func MinElement(v *Vector) (float64, error) {
	if v.Dim() == 0 {
		return 0, fmt.Errorf("%w: min of 0-dimensional vector", ErrEmptyInput)
	}
	return floats.Min(v.elems), nil
}

// MeanElement returns the arithmetic mean of the components of v. Returns
// ErrEmptyInput for a 0-dimensional vector.
func MeanElement(v *Vector) (float64, error) {
	if v.Dim() == 0 {
		return 0, fmt.Errorf("%w: mean of 0-dimensional vector", ErrEmptyInput)
	}
	return floats.Sum(v.elems) / float64(v.Dim()), nil
}
