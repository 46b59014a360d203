// Package trainer drives a full XOR training run and renders its report.
package trainer

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/born-ml/xornet/internal/config"
	"github.com/born-ml/xornet/internal/rng"
	"github.com/born-ml/xornet/internal/xor"
)

// Report summarizes a finished training run.
type Report struct {
	RunID      uuid.UUID
	Seed       int64
	Epochs     int
	FinalLoss  float64
	BestLoss   float64
	BestEpoch  int
	Evaluation []xor.Prediction // after the last update
	Parameters xor.Parameters
}

// Options controls where a run writes and which generator it draws from.
type Options struct {
	// Source is seeded with the config seed. A fresh one is used when nil.
	Source *rng.Source
	// Progress receives the per-epoch tables. Nothing is written when nil.
	Progress io.Writer
	// Logger receives run lifecycle messages. log.Default() when nil.
	Logger *log.Logger
}

// RandomSeed returns a seed suitable for runs where none was requested.
func RandomSeed() int64 {
	return int64(rand.Uint32())
}

// Run trains a fresh engine for cfg.Epochs epochs.
//
// Progress is written after epoch 1 and every cfg.PrintEvery epochs. Run
// stops early with ctx.Err() if ctx is cancelled between epochs.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	engine, err := xor.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	src := opts.Source
	if src == nil {
		src = rng.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	if err := engine.Initialize(src, cfg.Seed); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	seed, _ := src.Seed()

	runID := uuid.New()
	logger.Printf("run=%s seed=%d epochs=%d lr=%g hidden=%d", runID, seed, cfg.Epochs, cfg.LearningRate, cfg.HiddenUnits)

	var last *xor.EpochResult
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := engine.TrainEpoch()
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		last = res

		if epoch == 1 || epoch%cfg.PrintEvery == 0 {
			if err := WriteEpoch(progress, res); err != nil {
				return nil, fmt.Errorf("write progress: %w", err)
			}
		}
	}

	eval, err := engine.Evaluate()
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	params, err := engine.CurrentParameters()
	if err != nil {
		return nil, err
	}
	best, bestEpoch := engine.Best()

	logger.Printf("run=%s finished best_loss=%.8f best_epoch=%d", runID, best, bestEpoch)

	return &Report{
		RunID:      runID,
		Seed:       seed,
		Epochs:     last.Epoch,
		FinalLoss:  last.MeanLoss,
		BestLoss:   best,
		BestEpoch:  bestEpoch,
		Evaluation: eval,
		Parameters: params,
	}, nil
}
