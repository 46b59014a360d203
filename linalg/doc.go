// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the dense vector and matrix arithmetic used by xornet.
//
// # Overview
//
// Vectors and matrices are plain float64 slices. Every operation returns a
// new value and leaves its operands untouched. Operations on incompatible
// shapes return an error wrapping ErrShapeMismatch.
//
// # Basic Usage
//
//	import "github.com/born-ml/xornet/linalg"
//
//	func main() {
//	    w := linalg.Matrix{{1, 2}, {3, 4}}
//	    x := linalg.Vector{1, 1}
//
//	    y, err := linalg.MatVecMul(w, x) // [3 7]
//	    if errors.Is(err, linalg.ErrShapeMismatch) {
//	        ...
//	    }
//	}
//
// # Kernels
//
// A Kernel runs elementwise operations across worker goroutines when the
// operands are large enough. Use NewKernel(Sequential()) when
// results must be bit-identical across runs.
package linalg
