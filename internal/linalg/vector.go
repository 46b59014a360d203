package linalg

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/xornet/internal/parallel"
)

// Vector is a fixed-length sequence of real numbers.
type Vector []float64

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Len returns the number of elements.
func (v Vector) Len() int {
	return len(v)
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Add returns v1 + v2.
func (k Kernel) Add(v1, v2 Vector) (Vector, error) {
	if len(v1) != len(v2) {
		return nil, mismatch("add", "length", len(v1), len(v2))
	}
	out := make(Vector, len(v1))
	parallel.ForChunks(len(out), func(_, s, e int) {
		floats.AddTo(out[s:e], v1[s:e], v2[s:e])
	}, k.cfg)
	return out, nil
}

// Sub returns v1 - v2.
func (k Kernel) Sub(v1, v2 Vector) (Vector, error) {
	if len(v1) != len(v2) {
		return nil, mismatch("sub", "length", len(v1), len(v2))
	}
	out := make(Vector, len(v1))
	parallel.ForChunks(len(out), func(_, s, e int) {
		floats.SubTo(out[s:e], v1[s:e], v2[s:e])
	}, k.cfg)
	return out, nil
}

// Mul returns the elementwise (Hadamard) product of v1 and v2.
func (k Kernel) Mul(v1, v2 Vector) (Vector, error) {
	if len(v1) != len(v2) {
		return nil, mismatch("mul", "length", len(v1), len(v2))
	}
	out := make(Vector, len(v1))
	parallel.ForChunks(len(out), func(_, s, e int) {
		floats.MulTo(out[s:e], v1[s:e], v2[s:e])
	}, k.cfg)
	return out, nil
}

// Scale returns v * c.
func (k Kernel) Scale(v Vector, c float64) Vector {
	out := make(Vector, len(v))
	parallel.ForChunks(len(out), func(_, s, e int) {
		floats.ScaleTo(out[s:e], c, v[s:e])
	}, k.cfg)
	return out
}

// Dot returns the sum of elementwise products of v1 and v2.
//
// See the package documentation for the rounding behavior of long vectors.
func (k Kernel) Dot(v1, v2 Vector) (float64, error) {
	if len(v1) != len(v2) {
		return 0, mismatch("dot", "length", len(v1), len(v2))
	}
	chunks := parallel.Chunks(len(v1), k.cfg)
	if chunks <= 1 {
		return floats.Dot(v1, v2), nil
	}
	partial := make([]float64, chunks)
	parallel.ForChunks(len(v1), func(c, s, e int) {
		partial[c] = floats.Dot(v1[s:e], v2[s:e])
	}, k.cfg)
	return floats.Sum(partial), nil
}

// Add returns v1 + v2 using the default kernel.
func Add(v1, v2 Vector) (Vector, error) { return defaultKernel.Add(v1, v2) }

// Sub returns v1 - v2 using the default kernel.
func Sub(v1, v2 Vector) (Vector, error) { return defaultKernel.Sub(v1, v2) }

// Mul returns the elementwise product of v1 and v2 using the default kernel.
func Mul(v1, v2 Vector) (Vector, error) { return defaultKernel.Mul(v1, v2) }

// Scale returns v * c using the default kernel.
func Scale(v Vector, c float64) Vector { return defaultKernel.Scale(v, c) }

// Dot returns the dot product of v1 and v2 using the default kernel.
func Dot(v1, v2 Vector) (float64, error) { return defaultKernel.Dot(v1, v2) }
