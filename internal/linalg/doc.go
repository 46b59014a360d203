// Package linalg implements the vector and matrix primitives used by the network.
//
// Vectors are plain float64 slices and matrices are slices of row vectors. Every
// binary operation validates shapes and returns ErrShapeMismatch (wrapped in a
// *ShapeError) instead of panicking. Results are always freshly allocated;
// inputs are never written.
//
// Elementwise operations split their output into disjoint ranges and may run
// them on separate goroutines (see internal/parallel). Ordering between
// elements does not affect the result.
//
// Dot is a reduction: for long vectors each worker sums its own range and the
// partial sums are added afterwards. Floating-point addition is not
// associative, so the last bits of a Dot can change with the number of
// workers. This is expected and is not a correctness problem. Use
// parallel.Sequential() when bit-identical results across machines are
// required. MatVecMul splits by row and sums each row on one goroutine.
package linalg
