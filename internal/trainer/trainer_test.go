package trainer

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/xornet/internal/config"
	"github.com/born-ml/xornet/internal/linalg"
	"github.com/born-ml/xornet/internal/parallel"
	"github.com/born-ml/xornet/internal/rng"
	"github.com/born-ml/xornet/internal/xor"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func runConfig(epochs, printEvery int) *config.Config {
	cfg := config.Default()
	cfg.Seed = 42
	cfg.Epochs = epochs
	cfg.PrintEvery = printEvery
	cfg.Parallel = parallel.Sequential()
	return cfg
}

func TestRun_Converges(t *testing.T) {
	var progress bytes.Buffer
	report, err := Run(context.Background(), runConfig(5000, 1000), Options{
		Progress: &progress,
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, int64(42), report.Seed)
	assert.Equal(t, 5000, report.Epochs)
	assert.Less(t, report.FinalLoss, 0.05)
	assert.LessOrEqual(t, report.BestLoss, report.FinalLoss)
	assert.Equal(t, 1.0, Accuracy(report.Evaluation))
	require.Len(t, report.Evaluation, 4)
	assert.Equal(t, 4, report.Parameters.Hidden.Weights.Rows())
}

func TestRun_ProgressCadence(t *testing.T) {
	var progress bytes.Buffer
	_, err := Run(context.Background(), runConfig(25, 10), Options{
		Progress: &progress,
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	out := progress.String()
	// Epoch 1 always, then every 10th.
	assert.Equal(t, 3, strings.Count(out, "Loss:"))
	assert.Equal(t, 4, strings.Count(out, "Epoch 1 |"))
	assert.Equal(t, 4, strings.Count(out, "Epoch 10 |"))
	assert.Equal(t, 4, strings.Count(out, "Epoch 20 |"))
	assert.NotContains(t, out, "Epoch 25 |")
}

func TestRun_Reproducible(t *testing.T) {
	a, err := Run(context.Background(), runConfig(200, 1000), Options{Logger: quietLogger()})
	require.NoError(t, err)
	b, err := Run(context.Background(), runConfig(200, 1000), Options{Logger: quietLogger()})
	require.NoError(t, err)

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.FinalLoss, b.FinalLoss)
	assert.Equal(t, a.Parameters, b.Parameters)
}

func TestRun_SourceAlreadySeeded(t *testing.T) {
	src := rng.New()
	src.Init(7)

	report, err := Run(context.Background(), runConfig(10, 1000), Options{
		Source: src,
		Logger: quietLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), report.Seed)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, runConfig(10, 1000), Options{Logger: quietLogger()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := runConfig(0, 1000)
	_, err := Run(context.Background(), cfg, Options{Logger: quietLogger()})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_LogsLifecycle(t *testing.T) {
	var logs bytes.Buffer
	report, err := Run(context.Background(), runConfig(3, 1000), Options{
		Logger: log.New(&logs, "", 0),
	})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "run="+report.RunID.String())
	assert.Contains(t, logs.String(), "seed=42")
	assert.Contains(t, logs.String(), "finished")
}

func TestWriteSummary(t *testing.T) {
	report := &Report{
		RunID:     uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Seed:      3,
		BestLoss:  0.25,
		BestEpoch: 9,
		Evaluation: []xor.Prediction{
			{Input: linalg.Vector{0, 0}, Probability: 0.1, Target: 0},
			{Input: linalg.Vector{1, 0}, Probability: 0.4, Target: 1},
		},
	}
	report.Parameters.Hidden.Weights = linalg.Matrix{{1, -2}}
	report.Parameters.Output.Weights = linalg.Matrix{{0.5}}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, report, false))
	out := buf.String()
	assert.Contains(t, out, "Best Loss: 0.25000000 at Epoch 9")
	assert.Contains(t, out, "0 XOR 0 = 0.10000000")
	assert.Contains(t, out, "1 XOR 0 = 0.40000000")
	assert.Contains(t, out, "Accuracy: 50%")
	assert.NotContains(t, out, "Hidden Layer Weights")

	buf.Reset()
	require.NoError(t, WriteSummary(&buf, report, true))
	out = buf.String()
	assert.Contains(t, out, "Hidden Layer Weights:")
	assert.Contains(t, out, "-2.00000000")
	assert.Contains(t, out, "Output Layer Weights:")
	assert.Contains(t, out, "0.50000000")
}

func TestWriteEpoch(t *testing.T) {
	res := &xor.EpochResult{
		Epoch:    5,
		MeanLoss: 0.5,
		Predictions: []xor.Prediction{
			{Input: linalg.Vector{1, 1}, Probability: 0.75, Logit: 1.0986, Target: 0},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteEpoch(&buf, res))
	assert.Equal(t,
		"Epoch 5 | Input: (1, 1) | Output: 0.75000000 | Logit: 1.09860000 | Target: 0\n  Loss: 0.50000000\n\n",
		buf.String())
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, Accuracy(nil))
	preds := []xor.Prediction{
		{Probability: 0.9, Target: 1},
		{Probability: 0.2, Target: 0},
		{Probability: 0.6, Target: 0},
		{Probability: 0.5, Target: 1},
	}
	assert.Equal(t, 0.75, Accuracy(preds))
}

func TestRandomSeed(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, RandomSeed(), int64(0))
	}
}
