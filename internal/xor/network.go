// Package xor implements a two-layer network trained on the XOR truth table.
//
// The network has one tanh hidden layer and a single output unit whose logit
// is trained with binary cross-entropy. Forward and backward passes are plain
// functions over immutable inputs; Engine strings them together into
// full-batch gradient descent.
package xor

import (
	"fmt"

	"github.com/born-ml/xornet/internal/linalg"
	"github.com/born-ml/xornet/internal/nn"
)

// Network holds the parameters of the hidden and output layers.
type Network struct {
	Hidden *nn.Dense // [hidden, InputSize]
	Output *nn.Dense // [OutputSize, hidden]

	// Activation is applied to the hidden logits.
	Activation nn.Activation
}

// Validate checks layer shapes against each other and the dataset.
func (n *Network) Validate() error {
	if err := n.Hidden.Validate(); err != nil {
		return fmt.Errorf("hidden layer: %w", err)
	}
	if err := n.Output.Validate(); err != nil {
		return fmt.Errorf("output layer: %w", err)
	}
	if n.Hidden.In() != InputSize {
		return &linalg.ShapeError{Op: "network", Dim: "columns", Want: InputSize, Got: n.Hidden.In()}
	}
	if n.Output.Out() != OutputSize {
		return &linalg.ShapeError{Op: "network", Dim: "rows", Want: OutputSize, Got: n.Output.Out()}
	}
	if n.Output.In() != n.Hidden.Out() {
		return &linalg.ShapeError{Op: "network", Dim: "columns", Want: n.Hidden.Out(), Got: n.Output.In()}
	}
	return nil
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	return &Network{
		Hidden:     n.Hidden.Clone(),
		Output:     n.Output.Clone(),
		Activation: n.Activation,
	}
}

// Forward holds the intermediate values of one forward pass.
type Forward struct {
	Input        linalg.Vector
	HiddenLogits linalg.Vector
	Hidden       linalg.Vector // Activation(HiddenLogits)
	OutputLogit  float64
}

// Probability returns σ(OutputLogit).
func (f *Forward) Probability() float64 {
	return nn.Sigmoid(f.OutputLogit)
}

// Forward runs the network on x.
func (n *Network) Forward(k linalg.Kernel, x linalg.Vector) (*Forward, error) {
	hiddenLogits, err := n.Hidden.Logits(k, x)
	if err != nil {
		return nil, fmt.Errorf("hidden layer: %w", err)
	}
	hidden := n.Activation.Apply(hiddenLogits)

	outLogits, err := n.Output.Logits(k, hidden)
	if err != nil {
		return nil, fmt.Errorf("output layer: %w", err)
	}

	return &Forward{
		Input:        x.Clone(),
		HiddenLogits: hiddenLogits,
		Hidden:       hidden,
		OutputLogit:  outLogits[0],
	}, nil
}

// Loss runs the forward pass and returns BCEWithLogits for the sample.
func (n *Network) Loss(k linalg.Kernel, s Sample) (float64, error) {
	f, err := n.Forward(k, s.Input)
	if err != nil {
		return 0, err
	}
	return nn.BCEWithLogits(f.OutputLogit, s.Target), nil
}
