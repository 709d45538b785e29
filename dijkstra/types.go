package dijkstra

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/Yishanmys/steiner-edge-linear/graphidx"
	"github.com/Yishanmys/steiner-edge-linear/pqueue"
)

// Undefined is the sentinel parent value for the source vertex and for
// vertices never reached.
const Undefined int64 = -1

// Scratch bundles the per-call mutable state Run needs: distance, parent,
// visited and the indexed heap. One Scratch is allocated once per worker and
// reused across every Dijkstra call that worker makes during a solve, rather
// than allocating fresh distance/parent/heap state per call. Visited is a
// *bitset.BitSet rather than []bool: it is reinitialised to all-zero at the
// start of every Run, and a bitset clears in O(size/64) words instead of O(size)
// bool writes.
type Scratch struct {
	Dist    []int64
	Parent  []int64
	Visited *bitset.BitSet
	heap    *pqueue.IndexedHeap
}

// NewScratch allocates a Scratch sized for size index slots (idx.Size()).
func NewScratch(size int) *Scratch {
	return &Scratch{
		Dist:    make([]int64, size),
		Parent:  make([]int64, size),
		Visited: bitset.New(uint(size)),
		heap:    pqueue.New(size),
	}
}

// reset reinitialises all scratch state for a fresh run from source.
func (s *Scratch) reset(source int64) {
	for i := range s.Dist {
		s.Dist[i] = graphidx.Inf
		s.Parent[i] = Undefined
	}
	s.Visited.ClearAll()
	s.heap.Reset()
	s.Dist[source] = 0
}
