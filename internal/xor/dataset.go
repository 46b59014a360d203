package xor

import "github.com/born-ml/xornet/internal/linalg"

// Network dimensions fixed by the dataset.
const (
	InputSize  = 2
	OutputSize = 1
)

// Sample is one row of the training set.
type Sample struct {
	Input  linalg.Vector
	Target float64
}

// Dataset returns the XOR truth table in training order.
//
// A fresh copy is returned on every call.
func Dataset() []Sample {
	return []Sample{
		{Input: linalg.Vector{0, 0}, Target: 0},
		{Input: linalg.Vector{1, 0}, Target: 1},
		{Input: linalg.Vector{0, 1}, Target: 1},
		{Input: linalg.Vector{1, 1}, Target: 0},
	}
}
