//go:build amd64 && !nosimd

package simd

import (
	"math"

	"golang.org/x/sys/cpu"
)

// x86/amd64 optimized implementations.
// Uses loop unrolling that the Go compiler can auto-vectorize with AVX2/SSE.
// 4-way unrolling matches the 256-bit AVX2 register width (4 float64 lanes).

// hasAVX2 checks if the CPU supports AVX2+FMA at runtime
var hasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA

func dot(a, b []float64) float64 {
	n := len(a)

	sum0 := 0.0
	sum1 := 0.0
	sum2 := 0.0
	sum3 := 0.0

	i := 0
	for ; i <= n-4; i += 4 {
		sum0 += a[i] * b[i]
		sum1 += a[i+1] * b[i+1]
		sum2 += a[i+2] * b[i+2]
		sum3 += a[i+3] * b[i+3]
	}

	// Handle remaining elements
	for ; i < n; i++ {
		sum0 += a[i] * b[i]
	}

	return sum0 + sum1 + sum2 + sum3
}

func norm(v []float64) float64 {
	n := len(v)

	sum0 := 0.0
	sum1 := 0.0
	sum2 := 0.0
	sum3 := 0.0

	i := 0
	for ; i <= n-4; i += 4 {
		sum0 += v[i] * v[i]
		sum1 += v[i+1] * v[i+1]
		sum2 += v[i+2] * v[i+2]
		sum3 += v[i+3] * v[i+3]
	}
	for ; i < n; i++ {
		sum0 += v[i] * v[i]
	}

	return math.Sqrt(sum0 + sum1 + sum2 + sum3)
}

func distance(a, b []float64) float64 {
	n := len(a)

	sum0 := 0.0
	sum1 := 0.0
	sum2 := 0.0
	sum3 := 0.0

	i := 0
	for ; i <= n-4; i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		sum0 += d0 * d0
		sum1 += d1 * d1
		sum2 += d2 * d2
		sum3 += d3 * d3
	}
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum0 += d * d
	}

	return math.Sqrt(sum0 + sum1 + sum2 + sum3)
}

func cosineSimilarity(a, b []float64) float64 {
	n := len(a)

	dot0, dot1, dot2, dot3 := 0.0, 0.0, 0.0, 0.0
	na0, na1, na2, na3 := 0.0, 0.0, 0.0, 0.0
	nb0, nb1, nb2, nb3 := 0.0, 0.0, 0.0, 0.0

	i := 0
	for ; i <= n-4; i += 4 {
		a0, a1, a2, a3 := a[i], a[i+1], a[i+2], a[i+3]
		b0, b1, b2, b3 := b[i], b[i+1], b[i+2], b[i+3]

		dot0 += a0 * b0
		dot1 += a1 * b1
		dot2 += a2 * b2
		dot3 += a3 * b3

		na0 += a0 * a0
		na1 += a1 * a1
		na2 += a2 * a2
		na3 += a3 * a3

		nb0 += b0 * b0
		nb1 += b1 * b1
		nb2 += b2 * b2
		nb3 += b3 * b3
	}
	for ; i < n; i++ {
		dot0 += a[i] * b[i]
		na0 += a[i] * a[i]
		nb0 += b[i] * b[i]
	}

	dotSum := dot0 + dot1 + dot2 + dot3
	normA := na0 + na1 + na2 + na3
	normB := nb0 + nb1 + nb2 + nb3

	if normA == 0 || normB == 0 {
		return 0
	}
	return dotSum / (math.Sqrt(normA) * math.Sqrt(normB))
}

func normalizeInPlace(v []float64) {
	n := norm(v)
	if n == 0 {
		return
	}
	inv := 1.0 / n
	for i := range v {
		v[i] *= inv
	}
}

func runtimeInfo() RuntimeInfo {
	if hasAVX2 {
		return RuntimeInfo{
			Implementation: ImplAVX2,
			Features:       []string{"AVX2", "FMA"},
			Accelerated:    true,
		}
	}
	return RuntimeInfo{
		Implementation: ImplGeneric,
		Features:       []string{"SSE2"},
		Accelerated:    false,
	}
}
