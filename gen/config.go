package gen

import "math/rand"

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:      rand.New(rand.NewSource(1)),
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the generator's RNG for reproducible topologies.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides how edge weights are sampled. A nil fn is a no-op.
func WithWeightFn(fn WeightFn) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.weightFn = fn
		}
	}
}
