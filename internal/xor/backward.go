package xor

import (
	"fmt"

	"github.com/born-ml/xornet/internal/linalg"
	"github.com/born-ml/xornet/internal/nn"
)

// LayerGradients holds the loss gradient for one Dense layer.
type LayerGradients struct {
	Weights linalg.Matrix
	Biases  linalg.Vector
}

// Gradients holds the loss gradient for every parameter of a Network.
type Gradients struct {
	Hidden LayerGradients
	Output LayerGradients
}

// ZeroGradients returns gradients shaped like n's parameters, all zero.
func ZeroGradients(n *Network) *Gradients {
	return &Gradients{
		Hidden: LayerGradients{
			Weights: linalg.NewMatrix(n.Hidden.Out(), n.Hidden.In()),
			Biases:  linalg.NewVector(n.Hidden.Out()),
		},
		Output: LayerGradients{
			Weights: linalg.NewMatrix(n.Output.Out(), n.Output.In()),
			Biases:  linalg.NewVector(n.Output.Out()),
		},
	}
}

// Add returns g + other.
func (g *Gradients) Add(k linalg.Kernel, other *Gradients) (*Gradients, error) {
	hidden, err := g.Hidden.add(k, other.Hidden)
	if err != nil {
		return nil, fmt.Errorf("hidden gradients: %w", err)
	}
	output, err := g.Output.add(k, other.Output)
	if err != nil {
		return nil, fmt.Errorf("output gradients: %w", err)
	}
	return &Gradients{Hidden: hidden, Output: output}, nil
}

func (l LayerGradients) add(k linalg.Kernel, other LayerGradients) (LayerGradients, error) {
	w, err := k.AddMatrix(l.Weights, other.Weights)
	if err != nil {
		return LayerGradients{}, err
	}
	b, err := k.Add(l.Biases, other.Biases)
	if err != nil {
		return LayerGradients{}, err
	}
	return LayerGradients{Weights: w, Biases: b}, nil
}

// OutputGradients returns the gradients of the single-unit output layer.
//
// delta is ∂loss/∂logit of the output unit; hidden is the layer input.
func OutputGradients(k linalg.Kernel, hidden linalg.Vector, delta float64) LayerGradients {
	return LayerGradients{
		Weights: linalg.Matrix{k.Scale(hidden, delta)},
		Biases:  linalg.Vector{delta},
	}
}

// HiddenGradients back-propagates the output delta through the output
// weights into the hidden layer:
//
//	deltaHidden[i] = outputWeights[i] * delta * act'(hiddenLogits[i])
//
// It returns the hidden layer gradients and deltaHidden.
func HiddenGradients(k linalg.Kernel, outputWeights, hiddenLogits, input linalg.Vector, delta float64, act nn.Activation) (LayerGradients, linalg.Vector, error) {
	deltaHidden, err := k.Mul(k.Scale(outputWeights, delta), act.ApplyDerivative(hiddenLogits))
	if err != nil {
		return LayerGradients{}, nil, fmt.Errorf("hidden delta: %w", err)
	}
	return LayerGradients{
		Weights: nn.WeightsGradient(deltaHidden, input),
		Biases:  deltaHidden.Clone(),
	}, deltaHidden, nil
}

// Backward returns the gradients of BCEWithLogits(f.OutputLogit, target)
// with respect to every parameter of n.
func (n *Network) Backward(k linalg.Kernel, f *Forward, target float64) (*Gradients, error) {
	delta := nn.BCEWithLogitsDelta(f.OutputLogit, target)

	output := OutputGradients(k, f.Hidden, delta)
	hidden, _, err := HiddenGradients(k, n.Output.Weights[0], f.HiddenLogits, f.Input, delta, n.Activation)
	if err != nil {
		return nil, err
	}

	return &Gradients{Hidden: hidden, Output: output}, nil
}
