package nn

import "math"

// Sigmoid applies the logistic function: σ(x) = 1 / (1 + exp(-x)).
//
// Sigmoid squashes values to the range (0, 1) and is used to turn the
// output logit into a probability.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidDerivative returns σ(x) * (1 - σ(x)).
//
// Note that x is the pre-activation value, not σ(x).
func SigmoidDerivative(x float64) float64 {
	s := Sigmoid(x)
	return s * (1.0 - s)
}

// ReLU applies the rectified linear unit: f(x) = max(0, x).
func ReLU(x float64) float64 {
	return math.Max(0, x)
}

// ReLUDerivative returns 1 for x > 0 and 0 otherwise (including at x == 0).
func ReLUDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Tanh applies the hyperbolic tangent.
//
// Tanh squashes values to the range (-1, 1). It is zero-centered, which
// suits the hidden layer of a small network.
func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// TanhDerivative returns 1 - tanh(x)² for the pre-activation value x.
func TanhDerivative(x float64) float64 {
	t := math.Tanh(x)
	return 1.0 - t*t
}

// Activation pairs an elementwise function with its derivative.
type Activation struct {
	Name       string
	Func       func(float64) float64
	Derivative func(float64) float64
}

// Built-in activations.
var (
	SigmoidActivation = Activation{Name: "sigmoid", Func: Sigmoid, Derivative: SigmoidDerivative}
	TanhActivation    = Activation{Name: "tanh", Func: Tanh, Derivative: TanhDerivative}
	ReLUActivation    = Activation{Name: "relu", Func: ReLU, Derivative: ReLUDerivative}
)

// Apply returns a new vector with the activation applied to each element.
func (a Activation) Apply(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = a.Func(v)
	}
	return out
}

// ApplyDerivative returns a new vector with the derivative evaluated at each element.
func (a Activation) ApplyDerivative(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = a.Derivative(v)
	}
	return out
}
