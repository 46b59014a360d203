package nn

import "math"

// Eps bounds predicted probabilities away from 0 and 1 in BCE.
const Eps = 1e-12

// BCE computes binary cross-entropy for a probability prediction.
//
//	Loss = -(t·ln(p) + (1-t)·ln(1-p))
//
// The prediction is clamped to [Eps, 1-Eps] first so the loss stays finite
// for saturated predictions.
//
// Parameters:
//   - target: Ground truth, 0 or 1
//   - pred: Predicted probability
func BCE(target, pred float64) float64 {
	p := math.Min(math.Max(pred, Eps), 1.0-Eps)
	return -(target*math.Log(p) + (1.0-target)*math.Log(1.0-p))
}

// BCEDelta returns pred - target, the gradient of BCE(target, σ(z)) with
// respect to z when pred = σ(z).
func BCEDelta(target, pred float64) float64 {
	return pred - target
}

// BCEWithLogits computes binary cross-entropy directly from a logit.
//
// Mathematically equal to BCE(target, Sigmoid(logit)) but evaluated as
//
//	max(z, 0) - z·t + ln(1 + exp(-|z|))
//
// which never exponentiates a positive number, so it neither overflows for
// large negative logits nor loses precision near saturation.
func BCEWithLogits(logit, target float64) float64 {
	return math.Max(logit, 0) - logit*target + math.Log1p(math.Exp(-math.Abs(logit)))
}

// BCEWithLogitsDelta returns σ(logit) - target, the gradient of
// BCEWithLogits with respect to the logit.
func BCEWithLogitsDelta(logit, target float64) float64 {
	return Sigmoid(logit) - target
}
