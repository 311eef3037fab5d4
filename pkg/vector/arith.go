package vector

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/orneryd/vecmath/pkg/simd"
)

// Add returns v + o componentwise. Returns ErrDimensionMismatch if the
// dimensions differ.
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if len(v.elems) != len(o.elems) {
		return nil, fmt.Errorf("%w: %dD + %dD", ErrDimensionMismatch, len(v.elems), len(o.elems))
	}
	out := make([]float64, len(v.elems))
	floats.AddTo(out, v.elems, o.elems)
	return &Vector{elems: out}, nil
}

// Sub returns v - o componentwise. Returns ErrDimensionMismatch if the
// dimensions differ.
func (v *Vector) Sub(o *Vector) (*Vector, error) {
	if len(v.elems) != len(o.elems) {
		return nil, fmt.Errorf("%w: %dD - %dD", ErrDimensionMismatch, len(v.elems), len(o.elems))
	}
	out := make([]float64, len(v.elems))
	floats.SubTo(out, v.elems, o.elems)
	return &Vector{elems: out}, nil
}

// Scale returns v scaled by s componentwise.
func (v *Vector) Scale(s float64) *Vector {
	out := make([]float64, len(v.elems))
	floats.ScaleTo(out, s, v.elems)
	return &Vector{elems: out}
}

// Div returns v scaled by 1/s. Returns ErrDivideByZero if s is zero.
// Division by another vector is not mathematically defined; for a
// componentwise quotient use ElementWiseDivide.
func (v *Vector) Div(s float64) (*Vector, error) {
	if s == 0 {
		return nil, ErrDivideByZero
	}
	return v.Scale(1 / s), nil
}

// Neg returns v with every component sign-flipped.
func (v *Vector) Neg() *Vector {
	return v.Scale(-1)
}

// Dot returns the dot product of v and o. Returns ErrDimensionMismatch if
// the dimensions differ.
//
// Example:
//
//	vector.Of(1, 2, 3).Dot(vector.Of(4, 5, 6)) // 32, nil
func (v *Vector) Dot(o *Vector) (float64, error) {
	if len(v.elems) != len(o.elems) {
		return 0, fmt.Errorf("%w: %dD · %dD", ErrDimensionMismatch, len(v.elems), len(o.elems))
	}
	return simd.Dot(v.elems, o.elems), nil
}

// Cross returns the 3D cross product of v and o. Returns ErrInvalidDimension
// unless both vectors are exactly 3-dimensional.
func (v *Vector) Cross(o *Vector) (*Vector, error) {
	if !v.Is3D() || !o.Is3D() {
		return nil, fmt.Errorf("%w: cross product requires 3D, got %dD and %dD",
			ErrInvalidDimension, len(v.elems), len(o.elems))
	}
	return Of(
		v.elems[1]*o.elems[2]-v.elems[2]*o.elems[1],
		v.elems[2]*o.elems[0]-v.elems[0]*o.elems[2],
		v.elems[0]*o.elems[1]-v.elems[1]*o.elems[0],
	), nil
}

// Magnitude returns the Euclidean norm of v. A 0-dimensional vector has
// magnitude 0.
func (v *Vector) Magnitude() float64 {
	return simd.Norm(v.elems)
}

// MagnitudeSquared returns the sum of squared components, avoiding the
// square root when only comparisons are needed.
func (v *Vector) MagnitudeSquared() float64 {
	if len(v.elems) == 0 {
		return 0
	}
	return simd.Dot(v.elems, v.elems)
}

// Normalize returns v scaled to unit length. Returns ErrZeroVector if the
// magnitude is zero.
func (v *Vector) Normalize() (*Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return nil, fmt.Errorf("%w: cannot normalize", ErrZeroVector)
	}
	return v.Scale(1 / mag), nil
}

// Distance returns the Euclidean distance between v and o. Returns
// ErrDimensionMismatch if the dimensions differ.
func (v *Vector) Distance(o *Vector) (float64, error) {
	if len(v.elems) != len(o.elems) {
		return 0, fmt.Errorf("%w: %dD vs %dD", ErrDimensionMismatch, len(v.elems), len(o.elems))
	}
	return simd.Distance(v.elems, o.elems), nil
}

// DistanceSquared returns the squared Euclidean distance between v and o.
// Returns ErrDimensionMismatch if the dimensions differ.
func (v *Vector) DistanceSquared(o *Vector) (float64, error) {
	if len(v.elems) != len(o.elems) {
		return 0, fmt.Errorf("%w: %dD vs %dD", ErrDimensionMismatch, len(v.elems), len(o.elems))
	}
	var sum float64
	for i := range v.elems {
		d := v.elems[i] - o.elems[i]
		sum += d * d
	}
	return sum, nil
}
