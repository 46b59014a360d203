package nn

import (
	"fmt"

	"github.com/born-ml/xornet/internal/linalg"
)

// WeightsGradient returns the weight gradient of a dense layer from its error
// vector and its input: result[i][j] = delta[i] * input[j].
func WeightsGradient(delta, input linalg.Vector) linalg.Matrix {
	return linalg.Outer(delta, input)
}

// Dense holds the parameters of a fully connected layer.
//
// Weights has shape [out, in] and Biases has length out.
type Dense struct {
	Weights linalg.Matrix
	Biases  linalg.Vector
}

// NewDense creates a layer with weights drawn from U(-bound, bound) and zero biases.
func NewDense(in, out int, bound float64, src Sampler) (*Dense, error) {
	w, err := Xavier(out, in, bound, src)
	if err != nil {
		return nil, err
	}
	return &Dense{Weights: w, Biases: Zeros(out)}, nil
}

// In returns the input width of the layer.
func (d *Dense) In() int { return d.Weights.Cols() }

// Out returns the number of units in the layer.
func (d *Dense) Out() int { return d.Weights.Rows() }

// Validate checks that the weights are rectangular and match the biases.
func (d *Dense) Validate() error {
	if err := d.Weights.Validate(); err != nil {
		return err
	}
	if d.Weights.Rows() != len(d.Biases) {
		return &linalg.ShapeError{Op: "dense", Dim: "rows", Want: len(d.Biases), Got: d.Weights.Rows()}
	}
	return nil
}

// Logits computes W·x + b using kernel k.
func (d *Dense) Logits(k linalg.Kernel, x linalg.Vector) (linalg.Vector, error) {
	z, err := k.MatVecMul(d.Weights, x)
	if err != nil {
		return nil, fmt.Errorf("dense logits: %w", err)
	}
	z, err = k.Add(z, d.Biases)
	if err != nil {
		return nil, fmt.Errorf("dense bias: %w", err)
	}
	return z, nil
}

// Clone returns a deep copy of the layer.
func (d *Dense) Clone() *Dense {
	return &Dense{Weights: d.Weights.Clone(), Biases: d.Biases.Clone()}
}
