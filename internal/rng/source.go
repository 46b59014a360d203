// Package rng provides the seeded uniform generator used for weight initialization.
package rng

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrUninitialized is returned when a Source is sampled before Init.
var ErrUninitialized = errors.New("rng: source is not initialized, call Init first")

// Source is a seed-once uniform random generator backed by MT19937.
//
// A Source must be seeded with Init before use. Only the first Init takes
// effect; later calls are ignored so the sequence of a run is fixed by its
// first seed. A Source is safe for concurrent use.
type Source struct {
	once sync.Once

	mu     sync.Mutex
	seeded bool
	seed   int64
	mt     *prng.MT19937
}

// New returns an unseeded Source.
func New() *Source {
	return &Source{}
}

// Init seeds the generator. It reports whether this call performed the
// seeding; it returns false if the source was already initialized.
func (s *Source) Init(seed int64) bool {
	first := false
	s.once.Do(func() {
		mt := prng.NewMT19937()
		mt.Seed(uint64(seed))

		s.mu.Lock()
		s.mt = mt
		s.seed = seed
		s.seeded = true
		s.mu.Unlock()
		first = true
	})
	return first
}

// Initialized reports whether Init has been called.
func (s *Source) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeded
}

// Seed returns the seed in effect and whether the source is initialized.
func (s *Source) Seed() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed, s.seeded
}

// Sample returns a uniformly distributed value in [min, max). The upper
// bound is exclusive except when min == max, where min is returned.
func (s *Source) Sample(min, max float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		return 0, ErrUninitialized
	}
	u := distuv.Uniform{Min: min, Max: max, Src: s.mt}
	return u.Rand(), nil
}
