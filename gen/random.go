package gen

import "fmt"

// RandomSparse samples an Erdős–Rényi-like graph over n vertices: each
// unordered pair {i, j}, i<j, is included independently with probability p.
// Requires n >= 1 and 0 <= p <= 1. Edge-trial order is i asc, j asc (i<j),
// matching builder's impl_random_sparse.go, so the result is deterministic
// for a fixed seed.
func RandomSparse(n int64, p float64, opts ...Option) (Instance, error) {
	if n < minVertices {
		return Instance{}, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return Instance{}, fmt.Errorf("RandomSparse: p=%.6f not in [0,1]", p)
	}

	cfg := newConfig(opts...)
	inst := Instance{N: n}
	for i := int64(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				inst.addEdge(i, j, cfg.weightFn(cfg.rng))
			}
		}
	}
	return inst, nil
}
