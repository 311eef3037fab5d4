//go:build (!amd64 && !arm64) || nosimd

package simd

import (
	"math"

	"github.com/viterin/vek"
)

// Generic fallback implementations using the viterin/vek library.
// On platforms without AVX2/NEON, vek uses optimized pure Go implementations
// that are still faster than naive loops due to better memory access
// patterns.

func dot(a, b []float64) float64 {
	return vek.Dot(a, b)
}

func norm(v []float64) float64 {
	return vek.Norm(v)
}

func distance(a, b []float64) float64 {
	return vek.Distance(a, b)
}

func cosineSimilarity(a, b []float64) float64 {
	// vek.CosineSimilarity returns NaN for zero vectors, we want 0
	result := vek.CosineSimilarity(a, b)
	if math.IsNaN(result) {
		return 0
	}
	return result
}

func normalizeInPlace(v []float64) {
	n := vek.Norm(v)
	if n == 0 {
		return
	}
	vek.DivNumber_Inplace(v, n)
}

func runtimeInfo() RuntimeInfo {
	info := vek.Info()
	return RuntimeInfo{
		Implementation: ImplGeneric,
		Features:       info.CPUFeatures,
		Accelerated:    info.Acceleration,
	}
}
