package xor

import (
	"fmt"
	"math"

	"github.com/born-ml/xornet/internal/config"
	"github.com/born-ml/xornet/internal/linalg"
	"github.com/born-ml/xornet/internal/nn"
	"github.com/born-ml/xornet/internal/optim"
	"github.com/born-ml/xornet/internal/rng"
)

// Prediction is the network output for one sample during an epoch.
type Prediction struct {
	Input       linalg.Vector
	Probability float64
	Logit       float64
	Target      float64
}

// EpochResult summarizes one call to TrainEpoch.
type EpochResult struct {
	Epoch       int // 1-based
	MeanLoss    float64
	Predictions []Prediction // computed before the parameter update
}

// Parameters is a read-only snapshot of the network parameters.
type Parameters struct {
	Hidden nn.Dense
	Output nn.Dense
}

// Engine trains a Network on the XOR dataset with full-batch gradient descent.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg     config.Config
	kernel  linalg.Kernel
	opt     optim.Optimizer
	dataset []Sample

	net       *Network
	epoch     int
	bestLoss  float64
	bestEpoch int
}

// NewEngine validates cfg and returns an uninitialized engine.
func NewEngine(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kernel := linalg.NewKernel(cfg.Parallel)
	return &Engine{
		cfg:      *cfg,
		kernel:   kernel,
		opt:      optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate}, kernel),
		dataset:  Dataset(),
		bestLoss: math.Inf(1),
	}, nil
}

// Bounds returns the symmetric initialization bounds of the hidden and
// output weights for the configured layer sizes.
func (e *Engine) Bounds() (hidden, output float64) {
	hidden = nn.XavierLimit(InputSize, e.cfg.HiddenUnits)
	if e.cfg.OutputInit == config.OutputInitHidden {
		return hidden, hidden
	}
	return hidden, nn.XavierLimit(e.cfg.HiddenUnits, OutputSize)
}

// Initialize seeds src and draws the initial parameters from it.
//
// Hidden weights are drawn first, row by row, then output weights. Biases
// start at zero. Calling Initialize again returns ErrAlreadyInitialized and
// leaves the parameters unchanged. A nil src returns an error wrapping
// rng.ErrUninitialized.
func (e *Engine) Initialize(src *rng.Source, seed int64) error {
	if e.net != nil {
		return ErrAlreadyInitialized
	}
	if src == nil {
		return fmt.Errorf("initialize: nil source: %w", rng.ErrUninitialized)
	}
	src.Init(seed)

	hb, ob := e.Bounds()
	hidden, err := nn.NewDense(InputSize, e.cfg.HiddenUnits, hb, src)
	if err != nil {
		return fmt.Errorf("init hidden layer: %w", err)
	}
	output, err := nn.NewDense(e.cfg.HiddenUnits, OutputSize, ob, src)
	if err != nil {
		return fmt.Errorf("init output layer: %w", err)
	}

	net := &Network{Hidden: hidden, Output: output, Activation: nn.TanhActivation}
	if err := net.Validate(); err != nil {
		return err
	}
	e.net = net
	return nil
}

// TrainEpoch runs one forward/backward pass over every sample, then applies
// the averaged gradients.
func (e *Engine) TrainEpoch() (*EpochResult, error) {
	if e.net == nil {
		return nil, ErrNotInitialized
	}

	acc := ZeroGradients(e.net)
	totalLoss := 0.0
	preds := make([]Prediction, 0, len(e.dataset))

	for i, s := range e.dataset {
		f, err := e.net.Forward(e.kernel, s.Input)
		if err != nil {
			return nil, fmt.Errorf("sample %d forward: %w", i, err)
		}
		totalLoss += nn.BCEWithLogits(f.OutputLogit, s.Target)

		g, err := e.net.Backward(e.kernel, f, s.Target)
		if err != nil {
			return nil, fmt.Errorf("sample %d backward: %w", i, err)
		}
		if acc, err = acc.Add(e.kernel, g); err != nil {
			return nil, fmt.Errorf("sample %d accumulate: %w", i, err)
		}

		preds = append(preds, Prediction{
			Input:       s.Input.Clone(),
			Probability: f.Probability(),
			Logit:       f.OutputLogit,
			Target:      s.Target,
		})
	}

	if err := e.update(acc); err != nil {
		return nil, err
	}

	e.epoch++
	mean := totalLoss / float64(len(e.dataset))
	if e.epoch == 1 || mean < e.bestLoss {
		e.bestLoss = mean
		e.bestEpoch = e.epoch
	}

	return &EpochResult{Epoch: e.epoch, MeanLoss: mean, Predictions: preds}, nil
}

// update applies one optimizer step to every parameter in place.
func (e *Engine) update(g *Gradients) error {
	n := len(e.dataset)
	layers := []struct {
		name  string
		layer *nn.Dense
		grads LayerGradients
	}{
		{"hidden", e.net.Hidden, g.Hidden},
		{"output", e.net.Output, g.Output},
	}
	for _, l := range layers {
		w, err := e.opt.StepMatrix(l.layer.Weights, l.grads.Weights, n)
		if err != nil {
			return fmt.Errorf("update %s weights: %w", l.name, err)
		}
		b, err := e.opt.StepVector(l.layer.Biases, l.grads.Biases, n)
		if err != nil {
			return fmt.Errorf("update %s biases: %w", l.name, err)
		}
		l.layer.Weights, l.layer.Biases = w, b
	}
	return nil
}

// Predict returns the output probability for input without touching any
// training state.
func (e *Engine) Predict(input linalg.Vector) (float64, error) {
	if e.net == nil {
		return 0, ErrNotInitialized
	}
	f, err := e.net.Forward(e.kernel, input)
	if err != nil {
		return 0, err
	}
	return f.Probability(), nil
}

// Evaluate runs Predict over the whole dataset.
func (e *Engine) Evaluate() ([]Prediction, error) {
	if e.net == nil {
		return nil, ErrNotInitialized
	}
	out := make([]Prediction, 0, len(e.dataset))
	for _, s := range e.dataset {
		f, err := e.net.Forward(e.kernel, s.Input)
		if err != nil {
			return nil, err
		}
		out = append(out, Prediction{
			Input:       s.Input.Clone(),
			Probability: f.Probability(),
			Logit:       f.OutputLogit,
			Target:      s.Target,
		})
	}
	return out, nil
}

// CurrentParameters returns a deep copy of the parameters.
func (e *Engine) CurrentParameters() (Parameters, error) {
	if e.net == nil {
		return Parameters{}, ErrNotInitialized
	}
	return Parameters{
		Hidden: *e.net.Hidden.Clone(),
		Output: *e.net.Output.Clone(),
	}, nil
}

// Best returns the lowest mean epoch loss seen so far and the epoch it
// occurred in. Before the first epoch it returns (+Inf, 0).
func (e *Engine) Best() (loss float64, epoch int) {
	return e.bestLoss, e.bestEpoch
}

// Epoch returns the number of completed epochs.
func (e *Engine) Epoch() int {
	return e.epoch
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config {
	return e.cfg
}
