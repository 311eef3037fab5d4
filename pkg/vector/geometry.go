package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/orneryd/vecmath/pkg/simd"
)

// AngleBetween returns the angle between v and o in radians, in [0, π].
// Returns ErrDimensionMismatch if the dimensions differ and ErrZeroVector if
// either vector has zero magnitude.
func (v *Vector) AngleBetween(o *Vector) (float64, error) {
	cos, err := v.CosineSimilarity(o)
	if err != nil {
		return 0, err
	}
	return math.Acos(cos), nil
}

// CosineSimilarity returns the cosine of the angle between v and o, in
// [-1, 1]. Returns ErrDimensionMismatch if the dimensions differ and
// ErrZeroVector if either vector has zero magnitude.
func (v *Vector) CosineSimilarity(o *Vector) (float64, error) {
	if len(v.elems) != len(o.elems) {
		return 0, fmt.Errorf("%w: %dD vs %dD", ErrDimensionMismatch, len(v.elems), len(o.elems))
	}
	if v.Magnitude() == 0 || o.Magnitude() == 0 {
		return 0, fmt.Errorf("%w: angle undefined", ErrZeroVector)
	}
	cos := simd.CosineSimilarity(v.elems, o.elems)
	// Guard against accumulation drift pushing |cos| past 1.
	return math.Max(-1, math.Min(1, cos)), nil
}

// ProjectOnto returns the projection of v onto o: o * (v·o / |o|²).
// Returns ErrDimensionMismatch if the dimensions differ and ErrZeroVector if
// o has zero magnitude.
func (v *Vector) ProjectOnto(o *Vector) (*Vector, error) {
	dot, err := v.Dot(o)
	if err != nil {
		return nil, err
	}
	magSq := o.MagnitudeSquared()
	if magSq == 0 {
		return nil, fmt.Errorf("%w: cannot project onto", ErrZeroVector)
	}
	return o.Scale(dot / magSq), nil
}

// Reflect returns v reflected about the given normal:
// v - normal * (2 * v·normal). The caller is responsible for passing a
// unit-length normal; the operation does not normalize it. Returns
// ErrDimensionMismatch if the dimensions differ.
func (v *Vector) Reflect(normal *Vector) (*Vector, error) {
	dot, err := v.Dot(normal)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(v.elems))
	floats.AddScaledTo(out, v.elems, -2*dot, normal.elems)
	return &Vector{elems: out}, nil
}

// Lerp returns the linear interpolation v + (o-v)*t with t clamped to
// [0, 1]. Returns ErrDimensionMismatch if the dimensions differ.
func (v *Vector) Lerp(o *Vector, t float64) (*Vector, error) {
	if len(v.elems) != len(o.elems) {
		return nil, fmt.Errorf("%w: %dD vs %dD", ErrDimensionMismatch, len(v.elems), len(o.elems))
	}
	t = math.Max(0, math.Min(1, t))
	out := make([]float64, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i] + (o.elems[i]-v.elems[i])*t
	}
	return &Vector{elems: out}, nil
}

// Clamp returns v with every component clamped to [lo, hi]. Returns
// ErrInvalidRange if lo > hi.
func (v *Vector) Clamp(lo, hi float64) (*Vector, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	out := make([]float64, len(v.elems))
	for i, x := range v.elems {
		out[i] = math.Max(lo, math.Min(hi, x))
	}
	return &Vector{elems: out}, nil
}
