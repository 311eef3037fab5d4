package vector

import "errors"

// Sentinel errors returned by Vector operations. Callers should test with
// errors.Is; returned errors wrap these with operation context.
var (
	// ErrDimensionMismatch indicates a binary operation between vectors of
	// different dimensions.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
	// ErrInvalidDimension indicates a negative dimension, or a 3D-only
	// operation invoked on a non-3D vector.
	ErrInvalidDimension = errors.New("vector: invalid dimension")
	// ErrDivideByZero indicates division by a zero scalar or a zero divisor
	// component.
	ErrDivideByZero = errors.New("vector: division by zero")
	// ErrZeroVector indicates an operation that is undefined for a
	// zero-magnitude vector (normalize, angle, projection).
	ErrZeroVector = errors.New("vector: zero-magnitude vector")
	// ErrInvalidRange indicates a clamp or bounds pair with min > max.
	ErrInvalidRange = errors.New("vector: invalid range")
	// ErrLengthMismatch indicates paired lists of different lengths.
	ErrLengthMismatch = errors.New("vector: list length mismatch")
	// ErrEmptyInput indicates a reduction over an empty collection or a
	// zero-dimensional vector.
	ErrEmptyInput = errors.New("vector: empty input")
	// ErrZeroWeight indicates a weighted average whose weights sum to zero.
	ErrZeroWeight = errors.New("vector: zero total weight")
	// ErrIndexOutOfRange indicates an indexed access outside [0, Dim).
	ErrIndexOutOfRange = errors.New("vector: index out of range")
)
