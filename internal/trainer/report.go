package trainer

import (
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/xornet/internal/xor"
)

// WriteEpoch writes one progress block: a line per sample followed by the
// epoch's mean loss.
func WriteEpoch(w io.Writer, res *xor.EpochResult) error {
	var b strings.Builder
	for _, p := range res.Predictions {
		fmt.Fprintf(&b, "Epoch %d | Input: (%g, %g) | Output: %.8f | Logit: %.8f | Target: %g\n",
			res.Epoch, p.Input[0], p.Input[1], p.Probability, p.Logit, p.Target)
	}
	fmt.Fprintf(&b, "  Loss: %.8f\n\n", res.MeanLoss)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummary writes the best loss, the final evaluation and, if
// showWeights is set, the trained weights.
func WriteSummary(w io.Writer, r *Report, showWeights bool) error {
	var b strings.Builder
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintf(&b, "Run: %s (seed %d)\n", r.RunID, r.Seed)
	fmt.Fprintf(&b, "Best Loss: %.8f at Epoch %d\n\n", r.BestLoss, r.BestEpoch)

	fmt.Fprintln(&b, "Final XOR Evaluation:")
	for _, p := range r.Evaluation {
		fmt.Fprintf(&b, "   %g XOR %g = %.8f\n", p.Input[0], p.Input[1], p.Probability)
	}
	fmt.Fprintf(&b, "Accuracy: %.0f%%\n", 100*Accuracy(r.Evaluation))

	if showWeights {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Hidden Layer Weights:")
		for _, row := range r.Parameters.Hidden.Weights {
			fmt.Fprint(&b, "  ")
			for _, v := range row {
				fmt.Fprintf(&b, " %12.8f", v)
			}
			fmt.Fprintln(&b)
		}
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Output Layer Weights:")
		for _, v := range r.Parameters.Output.Weights[0] {
			fmt.Fprintf(&b, "   %12.8f\n", v)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Accuracy returns the fraction of predictions on the correct side of 0.5.
func Accuracy(preds []xor.Prediction) float64 {
	if len(preds) == 0 {
		return 0
	}
	correct := 0
	for _, p := range preds {
		if (p.Probability >= 0.5) == (p.Target >= 0.5) {
			correct++
		}
	}
	return float64(correct) / float64(len(preds))
}
