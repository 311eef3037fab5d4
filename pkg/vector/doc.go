// Package vector implements an n-dimensional real vector value type and a
// library of operations over it.
//
// The Vector type owns a flat float64 component buffer whose dimension is
// fixed at construction (only Resize changes it, in place). All arithmetic
// and geometric methods are non-mutating: they validate their inputs, then
// allocate and return a fresh result. Mutation happens only through Set, the
// named-axis setters, and Resize on the owning instance.
//
// # Constructors
//
// Construction is split into distinct, unambiguous entry points:
//
//	v, err := vector.Zero(5)            // 5-dimensional zero vector
//	v := vector.New()                   // 3-dimensional zero vector
//	v := vector.Of(1, 2, 3)             // from components
//	v := vector.FromSlice(data)         // from a flat []float64 (copied)
//	v, err := vector.Random(3, -1, 1)   // uniform random components
//
// # Error contract
//
// Contract violations (dimension mismatch, division by zero, operations on
// zero-magnitude vectors, out-of-range indices) are reported synchronously
// through wrapped sentinel errors; test with errors.Is:
//
//	sum, err := a.Add(b)
//	if errors.Is(err, vector.ErrDimensionMismatch) { ... }
//
// No operation partially mutates state before failing.
//
// # Free functions
//
// The package-level functions (Add, DotProduct, Rotate, Centroid, ...) form a
// functional-style alternative to the methods plus the cross-vector
// reductions that no single instance owns: batch pairwise operations,
// centroid, weighted average, element-wise product/quotient, and scalar
// reductions over one vector's components.
//
// # Performance
//
// Magnitude, dot product, distance, and cosine similarity delegate to the
// runtime-dispatched kernels in pkg/simd after validation; element-wise
// arithmetic uses gonum's floats routines. Dimension checks stay in this
// package so the kernels never see mismatched inputs.
//
// # Thread safety
//
// Distinct Vector instances may be read concurrently without synchronization.
// Concurrent mutation of the same instance must be serialized by the caller.
package vector
