// Package simd provides SIMD-accelerated float64 vector kernels.
//
// This package implements the hot numeric paths of the vector library
// using platform-specific acceleration where available:
//
//   - x86/amd64: unrolled loops the compiler auto-vectorizes with AVX2/SSE
//   - arm64: NEON via the viterin/vek SIMD library
//   - fallback: viterin/vek pure Go dispatch for all other platforms
//
// The active implementation is selected at build time by build tags; CPU
// capabilities are probed at runtime for Info. No configuration is required.
// Building with the nosimd tag forces the generic path.
//
// # Supported Operations
//
//   - Dot: dot product of two vectors
//   - Norm: Euclidean norm (L2 norm / magnitude) of a vector
//   - Distance: Euclidean distance between two vectors
//   - CosineSimilarity: cosine similarity between two vectors
//   - NormalizeInPlace: normalize a vector to unit length in-place
//
// # Contract
//
// Kernels return 0 for empty or length-mismatched inputs and leave zero
// vectors unchanged in NormalizeInPlace. Contract validation and error
// signaling belong to the callers (pkg/vector); the kernels are only reached
// after inputs have been validated.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Only NormalizeInPlace modifies
// its argument; none modify global state.
package simd
