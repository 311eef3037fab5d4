// Package vec32 provides float32 flat-slice vector helpers.
//
// Embedding pipelines and numeric array libraries commonly hand around raw
// []float32 buffers. This package operates on those buffers directly —
// similarity, norm, and normalization with float32 storage — and bridges
// them to the float64 world of pkg/vector via ToFloat64/FromFloat64.
//
// Functions here follow the kernel contract of pkg/simd: degenerate input
// (empty, mismatched lengths, zero magnitude) yields 0 rather than an error.
// Use pkg/vector when strict contract checking is needed.
package vec32

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// CosineSimilarity calculates cosine similarity between two float32 vectors.
// Returns a value in [-1, 1] where 1 = identical direction, 0 = orthogonal,
// -1 = opposite.
//
// Uses float64 accumulation for precision even with float32 inputs.
//
// Example:
//
//	a := []float32{1.0, 2.0, 3.0}
//	b := []float32{4.0, 5.0, 6.0}
//	sim := vec32.CosineSimilarity(a, b) // 0.9746318461970762
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		normA += va * va
		normB += vb * vb
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// CosineSimilarity32 is the float32-accumulation variant of
// CosineSimilarity. Slightly less accurate, fastest in hot loops where
// float32 precision is acceptable.
func CosineSimilarity32(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math32.Sqrt(normA) * math32.Sqrt(normB))
}

// Dot calculates the dot product of two float32 vectors using SIMD
// acceleration. Returns 0 for empty or mismatched inputs.
func Dot(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	return vek32.Dot(a, b)
}

// Norm returns the Euclidean norm of a float32 vector.
func Norm(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return vek32.Norm(v)
}

// Distance returns the Euclidean distance between two float32 vectors.
// Returns 0 for empty or mismatched inputs.
func Distance(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	return vek32.Distance(a, b)
}

// Normalize returns a normalized copy of the vector. The input is not
// modified. A zero vector normalizes to a zero vector.
func Normalize(v []float32) []float32 {
	out := make([]float32, len(v))
	n := Norm(v)
	if n == 0 {
		return out
	}
	inv := 1 / n
	for i, x := range v {
		out[i] = x * inv
	}
	return out
}

// NormalizeInPlace normalizes a vector to unit length, modifying the input.
// A zero vector is left unchanged.
func NormalizeInPlace(v []float32) {
	if len(v) == 0 {
		return
	}
	n := vek32.Norm(v)
	if n == 0 {
		return
	}
	vek32.DivNumber_Inplace(v, n)
}

// ToFloat64 widens a float32 buffer to []float64, suitable for
// vector.FromSlice.
func ToFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// FromFloat64 narrows a float64 buffer to []float32. Values outside float32
// range overflow to ±Inf per the usual conversion rules.
func FromFloat64(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
