package gen

import "fmt"

const minVertices = 1

// Path builds a simple path 0-1-...-(n-1). Requires n >= 2.
func Path(n int64, opts ...Option) (Instance, error) {
	if n < 2 {
		return Instance{}, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	inst := Instance{N: n}
	for i := int64(1); i < n; i++ {
		inst.addEdge(i-1, i, cfg.weightFn(cfg.rng))
	}
	return inst, nil
}

// Cycle builds a simple cycle 0-1-...-(n-1)-0. Requires n >= 3.
func Cycle(n int64, opts ...Option) (Instance, error) {
	if n < 3 {
		return Instance{}, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	inst := Instance{N: n}
	for i := int64(0); i < n; i++ {
		inst.addEdge(i, (i+1)%n, cfg.weightFn(cfg.rng))
	}
	return inst, nil
}

// Star builds a star with center vertex 0 and n-1 leaves 1..n-1. Requires
// n >= 2.
func Star(n int64, opts ...Option) (Instance, error) {
	if n < 2 {
		return Instance{}, fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	inst := Instance{N: n}
	for i := int64(1); i < n; i++ {
		inst.addEdge(0, i, cfg.weightFn(cfg.rng))
	}
	return inst, nil
}

// Complete builds the complete graph K_n. Requires n >= 1.
func Complete(n int64, opts ...Option) (Instance, error) {
	if n < minVertices {
		return Instance{}, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	inst := Instance{N: n}
	for i := int64(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			inst.addEdge(i, j, cfg.weightFn(cfg.rng))
		}
	}
	return inst, nil
}

// Grid builds a rows x cols 4-neighborhood grid, vertex id r*cols+c in
// row-major order (right and bottom neighbors only, matching builder's
// impl_grid.go emission order). Requires rows, cols >= 1.
func Grid(rows, cols int64, opts ...Option) (Instance, error) {
	if rows < minVertices || cols < minVertices {
		return Instance{}, fmt.Errorf("Grid: rows=%d cols=%d: %w", rows, cols, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	inst := Instance{N: rows * cols}
	id := func(r, c int64) int64 { return r*cols + c }
	for r := int64(0); r < rows; r++ {
		for c := int64(0); c < cols; c++ {
			u := id(r, c)
			if c+1 < cols {
				inst.addEdge(u, id(r, c+1), cfg.weightFn(cfg.rng))
			}
			if r+1 < rows {
				inst.addEdge(u, id(r+1, c), cfg.weightFn(cfg.rng))
			}
		}
	}
	return inst, nil
}
