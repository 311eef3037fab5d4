package vector

import (
	"fmt"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// equalTol is the componentwise absolute tolerance used by Equal.
const equalTol = 1e-9

// Vector is an n-dimensional real vector. The zero value is a 0-dimensional
// vector; use the constructors for anything else.
//
// A Vector exclusively owns its component buffer. Copy with Clone, export
// with Slice.
type Vector struct {
	elems []float64
}

// Zero returns a zero vector of the given dimension. Dimension 0 is valid.
// Returns ErrInvalidDimension if dim is negative.
func Zero(dim int) (*Vector, error) {
	if dim < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	return &Vector{elems: make([]float64, dim)}, nil
}

// New returns a 3-dimensional zero vector, the most common case in geometric
// code.
func New() *Vector {
	return &Vector{elems: make([]float64, 3)}
}

// Of returns a vector with the given components. Of() is a valid
// 0-dimensional vector.
//
// Example:
//
//	v := vector.Of(1, 2, 3) // 3-dimensional
func Of(elems ...float64) *Vector {
	v := &Vector{elems: make([]float64, len(elems))}
	copy(v.elems, elems)
	return v
}

// FromSlice returns a vector with the components of s. The slice is copied;
// later changes to s do not affect the vector. Together with Slice it forms a
// lossless round trip to flat numeric storage.
func FromSlice(s []float64) *Vector {
	v := &Vector{elems: make([]float64, len(s))}
	copy(v.elems, s)
	return v
}

// Random returns a vector whose components are drawn uniformly from [lo, hi).
// Returns ErrInvalidDimension if dim is negative and ErrInvalidRange if
// lo > hi.
func Random(dim int, lo, hi float64) (*Vector, error) {
	if dim < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	v := &Vector{elems: make([]float64, dim)}
	for i := range v.elems {
		v.elems[i] = lo + rand.Float64()*(hi-lo)
	}
	return v, nil
}

// Dim returns the dimension (component count) of v.
func (v *Vector) Dim() int {
	return len(v.elems)
}

// Is3D reports whether v is exactly 3-dimensional.
func (v *Vector) Is3D() bool {
	return len(v.elems) == 3
}

// At returns the component at index i. Returns ErrIndexOutOfRange if i is
// outside [0, Dim).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.elems) {
		return 0, fmt.Errorf("%w: index %d, dimension %d", ErrIndexOutOfRange, i, len(v.elems))
	}
	return v.elems[i], nil
}

// Set assigns the component at index i. Returns ErrIndexOutOfRange if i is
// outside [0, Dim).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.elems) {
		return fmt.Errorf("%w: index %d, dimension %d", ErrIndexOutOfRange, i, len(v.elems))
	}
	v.elems[i] = x
	return nil
}

// X returns the first component, or 0 if the vector has dimension 0.
func (v *Vector) X() float64 {
	if len(v.elems) > 0 {
		return v.elems[0]
	}
	return 0
}

// Y returns the second component, or 0 if the dimension is below 2.
func (v *Vector) Y() float64 {
	if len(v.elems) > 1 {
		return v.elems[1]
	}
	return 0
}

// Z returns the third component, or 0 if the dimension is below 3.
func (v *Vector) Z() float64 {
	if len(v.elems) > 2 {
		return v.elems[2]
	}
	return 0
}

// SetX assigns the first component. A no-op when the dimension is 0; the
// named-axis setters are deliberately tolerant, unlike Set.
func (v *Vector) SetX(x float64) {
	if len(v.elems) > 0 {
		v.elems[0] = x
	}
}

// SetY assigns the second component. A no-op when the dimension is below 2.
func (v *Vector) SetY(y float64) {
	if len(v.elems) > 1 {
		v.elems[1] = y
	}
}

// SetZ assigns the third component. A no-op when the dimension is below 3.
func (v *Vector) SetZ(z float64) {
	if len(v.elems) > 2 {
		v.elems[2] = z
	}
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	c := &Vector{elems: make([]float64, len(v.elems))}
	copy(c.elems, v.elems)
	return c
}

// Slice returns a copy of the components as a flat []float64.
func (v *Vector) Slice() []float64 {
	s := make([]float64, len(v.elems))
	copy(s, v.elems)
	return s
}

// Resize changes the dimension of v in place: shrinking truncates, growing
// pads with fill. Returns ErrInvalidDimension if dim is negative.
func (v *Vector) Resize(dim int, fill float64) error {
	if dim < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	switch {
	case dim == len(v.elems):
		return nil
	case dim < len(v.elems):
		v.elems = v.elems[:dim:dim]
	default:
		grown := make([]float64, dim)
		copy(grown, v.elems)
		for i := len(v.elems); i < dim; i++ {
			grown[i] = fill
		}
		v.elems = grown
	}
	return nil
}

// Equal reports whether v and o have the same dimension and every pair of
// components differs by less than 1e-9.
func (v *Vector) Equal(o *Vector) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i := range v.elems {
		if !scalar.EqualWithinAbs(v.elems[i], o.elems[i], equalTol) {
			return false
		}
	}
	return true
}

// String renders the components for diagnostics. The format is not stable
// and not meant to be parsed.
func (v *Vector) String() string {
	parts := make([]string, len(v.elems))
	for i, x := range v.elems {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
