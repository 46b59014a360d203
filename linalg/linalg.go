// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/born-ml/xornet/internal/linalg"
	"github.com/born-ml/xornet/internal/parallel"
)

// Vector is a dense float64 vector.
type Vector = linalg.Vector

// Matrix is a row-major float64 matrix.
type Matrix = linalg.Matrix

// Kernel runs vector and matrix operations under a parallel.Config.
type Kernel = linalg.Kernel

// ShapeError describes an operation that rejected its operands.
type ShapeError = linalg.ShapeError

// ErrShapeMismatch is returned when operands have incompatible dimensions.
var ErrShapeMismatch = linalg.ErrShapeMismatch

// ParallelConfig controls how a Kernel splits work across goroutines.
type ParallelConfig = parallel.Config

// DefaultParallel returns one worker per CPU.
func DefaultParallel() ParallelConfig { return parallel.DefaultConfig() }

// Sequential returns a config that runs everything on the calling goroutine.
func Sequential() ParallelConfig { return parallel.Sequential() }

// NewKernel creates a kernel with the given parallelism.
func NewKernel(cfg ParallelConfig) Kernel { return linalg.NewKernel(cfg) }

// Default returns the shared kernel using parallel.DefaultConfig.
func Default() Kernel { return linalg.Default() }

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector { return linalg.NewVector(n) }

// NewMatrix returns a zero rows×cols matrix.
func NewMatrix(rows, cols int) Matrix { return linalg.NewMatrix(rows, cols) }

// Vector operations

// Add returns a + b.
func Add(a, b Vector) (Vector, error) { return linalg.Add(a, b) }

// Sub returns a - b.
func Sub(a, b Vector) (Vector, error) { return linalg.Sub(a, b) }

// Mul returns the elementwise product of a and b.
func Mul(a, b Vector) (Vector, error) { return linalg.Mul(a, b) }

// Scale returns s * v.
func Scale(v Vector, s float64) Vector { return linalg.Scale(v, s) }

// Dot returns Σ a[i]*b[i].
func Dot(a, b Vector) (float64, error) { return linalg.Dot(a, b) }

// Matrix operations

// AddMatrix returns a + b.
func AddMatrix(a, b Matrix) (Matrix, error) { return linalg.AddMatrix(a, b) }

// SubMatrix returns a - b.
func SubMatrix(a, b Matrix) (Matrix, error) { return linalg.SubMatrix(a, b) }

// ScaleMatrix returns s * m.
func ScaleMatrix(m Matrix, s float64) Matrix { return linalg.ScaleMatrix(m, s) }

// MatVecMul returns m · v.
func MatVecMul(m Matrix, v Vector) (Vector, error) { return linalg.MatVecMul(m, v) }

// Outer returns a ⊗ b.
func Outer(a, b Vector) Matrix { return linalg.Outer(a, b) }
