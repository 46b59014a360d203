package xor_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/xornet/internal/config"
	"github.com/born-ml/xornet/internal/linalg"
	"github.com/born-ml/xornet/internal/nn"
	"github.com/born-ml/xornet/internal/parallel"
	"github.com/born-ml/xornet/internal/rng"
	"github.com/born-ml/xornet/internal/xor"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.HiddenUnits = 4
	cfg.LearningRate = 0.5
	cfg.Epochs = 5000
	cfg.Parallel = parallel.Sequential()
	return cfg
}

func newEngine(t *testing.T, cfg *config.Config, seed int64) *xor.Engine {
	t.Helper()
	e, err := xor.NewEngine(cfg)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(rng.New(), seed))
	return e
}

func TestEngine_LearnsXOR(t *testing.T) {
	cfg := testConfig()
	e := newEngine(t, cfg, 42)

	var last *xor.EpochResult
	for i := 0; i < cfg.Epochs; i++ {
		res, err := e.TrainEpoch()
		require.NoError(t, err)
		last = res
	}

	assert.Equal(t, cfg.Epochs, last.Epoch)
	assert.Less(t, last.MeanLoss, 0.05)

	want := map[[2]float64]bool{
		{0, 0}: false,
		{1, 0}: true,
		{0, 1}: true,
		{1, 1}: false,
	}
	for in, high := range want {
		p, err := e.Predict(linalg.Vector{in[0], in[1]})
		require.NoError(t, err)
		if high {
			assert.Greater(t, p, 0.5, "predict(%v)", in)
		} else {
			assert.Less(t, p, 0.5, "predict(%v)", in)
		}
	}

	best, epoch := e.Best()
	assert.LessOrEqual(t, best, last.MeanLoss)
	assert.Greater(t, epoch, 0)
}

func TestEngine_BothOutputInitModesLearn(t *testing.T) {
	for _, mode := range []string{config.OutputInitOutput, config.OutputInitHidden} {
		t.Run(mode, func(t *testing.T) {
			cfg := testConfig()
			cfg.OutputInit = mode
			e := newEngine(t, cfg, 7)

			var loss float64
			for i := 0; i < cfg.Epochs; i++ {
				res, err := e.TrainEpoch()
				require.NoError(t, err)
				loss = res.MeanLoss
			}
			assert.Less(t, loss, 0.05)
		})
	}
}

func TestEngine_Bounds(t *testing.T) {
	cfg := testConfig()
	e, err := xor.NewEngine(cfg)
	require.NoError(t, err)

	hidden, output := e.Bounds()
	assert.Equal(t, nn.XavierLimit(2, 4), hidden)
	assert.Equal(t, nn.XavierLimit(4, 1), output)

	cfg.OutputInit = config.OutputInitHidden
	e, err = xor.NewEngine(cfg)
	require.NoError(t, err)
	hidden, output = e.Bounds()
	assert.Equal(t, hidden, output)
}

func TestEngine_InitialParameters(t *testing.T) {
	cfg := testConfig()
	e := newEngine(t, cfg, 3)

	params, err := e.CurrentParameters()
	require.NoError(t, err)

	hb, ob := e.Bounds()
	require.Equal(t, 4, params.Hidden.Weights.Rows())
	require.Equal(t, 2, params.Hidden.Weights.Cols())
	require.Equal(t, 1, params.Output.Weights.Rows())
	require.Equal(t, 4, params.Output.Weights.Cols())

	for _, row := range params.Hidden.Weights {
		for _, w := range row {
			assert.LessOrEqual(t, math.Abs(w), hb)
		}
	}
	for _, w := range params.Output.Weights[0] {
		assert.LessOrEqual(t, math.Abs(w), ob)
	}
	assert.Equal(t, linalg.Vector{0, 0, 0, 0}, params.Hidden.Biases)
	assert.Equal(t, linalg.Vector{0}, params.Output.Biases)
}

func TestEngine_Deterministic(t *testing.T) {
	cfg := testConfig()
	a := newEngine(t, cfg, 2024)
	b := newEngine(t, cfg, 2024)

	for i := 0; i < 50; i++ {
		ra, err := a.TrainEpoch()
		require.NoError(t, err)
		rb, err := b.TrainEpoch()
		require.NoError(t, err)
		require.Equal(t, ra.MeanLoss, rb.MeanLoss)
	}

	pa, err := a.CurrentParameters()
	require.NoError(t, err)
	pb, err := b.CurrentParameters()
	require.NoError(t, err)
	if diff := cmp.Diff(pa, pb); diff != "" {
		t.Errorf("parameters differ (-a +b):\n%s", diff)
	}
}

func TestEngine_ParallelKernelMatchesSequential(t *testing.T) {
	seqCfg := testConfig()
	parCfg := testConfig()
	parCfg.Parallel = parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	seq := newEngine(t, seqCfg, 9)
	par := newEngine(t, parCfg, 9)
	for i := 0; i < 100; i++ {
		_, err := seq.TrainEpoch()
		require.NoError(t, err)
		_, err = par.TrainEpoch()
		require.NoError(t, err)
	}

	ps, err := seq.CurrentParameters()
	require.NoError(t, err)
	pp, err := par.CurrentParameters()
	require.NoError(t, err)

	// Reductions may round differently; everything else is elementwise.
	opt := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(ps, pp, opt); diff != "" {
		t.Errorf("parallel run diverged (-seq +par):\n%s", diff)
	}
}

func TestEngine_DifferentSeedsDiffer(t *testing.T) {
	cfg := testConfig()
	pa, err := newEngine(t, cfg, 1).CurrentParameters()
	require.NoError(t, err)
	pb, err := newEngine(t, cfg, 2).CurrentParameters()
	require.NoError(t, err)
	assert.False(t, cmp.Equal(pa, pb))
}

func TestEngine_EpochResult(t *testing.T) {
	e := newEngine(t, testConfig(), 5)

	before, err := e.Evaluate()
	require.NoError(t, err)

	res, err := e.TrainEpoch()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Epoch)
	assert.Equal(t, 1, e.Epoch())
	require.Len(t, res.Predictions, 4)

	// Predictions are taken before the update, in dataset order.
	sum := 0.0
	for i, p := range res.Predictions {
		assert.Equal(t, xor.Dataset()[i].Input, p.Input)
		assert.Equal(t, xor.Dataset()[i].Target, p.Target)
		assert.Equal(t, before[i].Logit, p.Logit)
		assert.Equal(t, nn.Sigmoid(p.Logit), p.Probability)
		sum += nn.BCEWithLogits(p.Logit, p.Target)
	}
	assert.InDelta(t, sum/4, res.MeanLoss, 1e-15)

	best, epoch := e.Best()
	assert.Equal(t, res.MeanLoss, best)
	assert.Equal(t, 1, epoch)
}

func TestEngine_BestLossTracking(t *testing.T) {
	e := newEngine(t, testConfig(), 11)

	best := math.Inf(1)
	bestEpoch := 0
	for i := 0; i < 200; i++ {
		res, err := e.TrainEpoch()
		require.NoError(t, err)
		if res.MeanLoss < best {
			best, bestEpoch = res.MeanLoss, res.Epoch
		}
	}

	gotLoss, gotEpoch := e.Best()
	assert.Equal(t, best, gotLoss)
	assert.Equal(t, bestEpoch, gotEpoch)
}

func TestEngine_BestBeforeTraining(t *testing.T) {
	e := newEngine(t, testConfig(), 1)
	loss, epoch := e.Best()
	assert.True(t, math.IsInf(loss, 1))
	assert.Equal(t, 0, epoch)
}

func TestEngine_PredictDoesNotTrain(t *testing.T) {
	e := newEngine(t, testConfig(), 4)
	before, err := e.CurrentParameters()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err := e.Predict(linalg.Vector{1, 0})
		require.NoError(t, err)
	}

	after, err := e.CurrentParameters()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before, after))
	assert.Equal(t, 0, e.Epoch())
}

func TestEngine_SnapshotIsCopy(t *testing.T) {
	e := newEngine(t, testConfig(), 4)
	params, err := e.CurrentParameters()
	require.NoError(t, err)
	original := params.Hidden.Weights[0][0]

	params.Hidden.Weights[0][0] = 1e6
	params.Output.Biases[0] = 1e6

	again, err := e.CurrentParameters()
	require.NoError(t, err)
	assert.Equal(t, original, again.Hidden.Weights[0][0])
	assert.Equal(t, 0.0, again.Output.Biases[0])
}

func TestEngine_Errors(t *testing.T) {
	cfg := testConfig()
	e, err := xor.NewEngine(cfg)
	require.NoError(t, err)

	_, err = e.TrainEpoch()
	assert.ErrorIs(t, err, xor.ErrNotInitialized)
	_, err = e.Predict(linalg.Vector{0, 0})
	assert.ErrorIs(t, err, xor.ErrNotInitialized)
	_, err = e.CurrentParameters()
	assert.ErrorIs(t, err, xor.ErrNotInitialized)
	_, err = e.Evaluate()
	assert.ErrorIs(t, err, xor.ErrNotInitialized)

	src := rng.New()
	require.NoError(t, e.Initialize(src, 1))
	before, err := e.CurrentParameters()
	require.NoError(t, err)

	assert.ErrorIs(t, e.Initialize(src, 2), xor.ErrAlreadyInitialized)
	after, err := e.CurrentParameters()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before, after))

	_, err = e.Predict(linalg.Vector{0, 0, 1})
	assert.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestEngine_InitializeNilSource(t *testing.T) {
	e, err := xor.NewEngine(testConfig())
	require.NoError(t, err)

	assert.ErrorIs(t, e.Initialize(nil, 1), rng.ErrUninitialized)
	_, err = e.TrainEpoch()
	assert.ErrorIs(t, err, xor.ErrNotInitialized)

	// A failed Initialize leaves the engine ready for a real one.
	require.NoError(t, e.Initialize(rng.New(), 1))
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	for _, mutate := range []func(*config.Config){
		func(c *config.Config) { c.Epochs = 0 },
		func(c *config.Config) { c.HiddenUnits = 0 },
		func(c *config.Config) { c.LearningRate = -1 },
		func(c *config.Config) { c.LearningRate = math.Inf(1) },
	} {
		cfg := testConfig()
		mutate(cfg)
		_, err := xor.NewEngine(cfg)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	}
}

func TestEngine_SharedSourceKeepsFirstSeed(t *testing.T) {
	cfg := testConfig()

	// A source seeded elsewhere is not reseeded by Initialize.
	src := rng.New()
	src.Init(100)
	e, err := xor.NewEngine(cfg)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(src, 5))

	seed, ok := src.Seed()
	require.True(t, ok)
	assert.Equal(t, int64(100), seed)

	ref := newEngine(t, cfg, 100)
	pa, err := e.CurrentParameters()
	require.NoError(t, err)
	pb, err := ref.CurrentParameters()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(pa, pb))
}
