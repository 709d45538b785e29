package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers returns the number of workers to use when a caller hasn't
// specified one: the host's available parallelism.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// ForEach partitions the range [0, n) into at most workers contiguous
// blocks and runs body(worker, i) for every i in its worker's block,
// sequentially within that worker and concurrently across workers. It
// blocks until every worker has finished — the kernel's only
// synchronisation point — and returns the first non-nil error any worker
// produced, if any.
//
// Blocks are contiguous and ascending, not round-robin, so each worker
// processes its assigned masks/terminals in ascending order without any
// extra bookkeeping.
func ForEach(n, workers int, body func(worker, i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	block := n / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := w * block
		stop := start + block
		if w == workers-1 {
			stop = n
		}
		g.Go(func() error {
			for i := start; i < stop; i++ {
				if err := body(w, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
