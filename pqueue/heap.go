package pqueue

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrAlreadyPresent is returned by Insert when item is already in the heap.
var ErrAlreadyPresent = errors.New("pqueue: item already present")

// ErrNotPresent is returned by DecreaseKey when item is not in the heap.
var ErrNotPresent = errors.New("pqueue: item not present")

// ErrEmpty is returned by Min and DeleteMin when the heap is empty.
var ErrEmpty = errors.New("pqueue: heap is empty")

// ErrKeyIncreased is returned by DecreaseKey when newKey exceeds the item's
// current key.
var ErrKeyIncreased = errors.New("pqueue: new key exceeds current key")

// entry is one (item, key) pair stored in the backing array.
type entry struct {
	item int
	key  int64
}

// IndexedHeap is a min-heap over item ids in [0, N), keyed by int64. slot[i]
// gives the current position of item i in data, or -1 if i is absent — the
// side-array that turns DecreaseKey from an O(N) scan into an O(log N)
// heap.Fix call.
type IndexedHeap struct {
	data []entry
	slot []int
}

// New allocates an empty IndexedHeap over item ids [0, n).
func New(n int) *IndexedHeap {
	h := &IndexedHeap{
		data: make([]entry, 0, n),
		slot: make([]int, n),
	}
	for i := range h.slot {
		h.slot[i] = -1
	}
	return h
}

// Reset clears the heap for reuse without reallocating its backing arrays —
// callers reuse one IndexedHeap per worker across every Dijkstra call in a
// solve rather than allocating a fresh one per call.
func (h *IndexedHeap) Reset() {
	h.data = h.data[:0]
	for i := range h.slot {
		h.slot[i] = -1
	}
}

// Len reports the number of items currently in the heap.
func (h *IndexedHeap) Len() int { return len(h.data) }

// Contains reports whether item is currently present.
func (h *IndexedHeap) Contains(item int) bool { return h.slot[item] >= 0 }

// Insert adds item with the given key. item must not already be present.
func (h *IndexedHeap) Insert(item int, key int64) error {
	if h.Contains(item) {
		return fmt.Errorf("%w: item=%d", ErrAlreadyPresent, item)
	}
	h.data = append(h.data, entry{item: item, key: key})
	h.slot[item] = len(h.data) - 1
	heap.Fix(h, h.slot[item])
	return nil
}

// Min returns the item with the smallest key without removing it.
func (h *IndexedHeap) Min() (item int, key int64, err error) {
	if len(h.data) == 0 {
		return 0, 0, ErrEmpty
	}
	return h.data[0].item, h.data[0].key, nil
}

// DeleteMin removes and returns the item with the smallest key. Ties are
// broken by heap layout, which is deterministic within a single run (the
// same sequence of inserts/decreases always produces the same heap shape)
// but unspecified across runs with different insertion order.
func (h *IndexedHeap) DeleteMin() (item int, err error) {
	if len(h.data) == 0 {
		return 0, ErrEmpty
	}
	item = h.data[0].item
	heap.Remove(h, 0)
	return item, nil
}

// DecreaseKey lowers item's key to newKey. item must be present and newKey
// must be <= the current key; equal keys are a permitted no-op.
func (h *IndexedHeap) DecreaseKey(item int, newKey int64) error {
	pos := h.slot[item]
	if pos < 0 {
		return fmt.Errorf("%w: item=%d", ErrNotPresent, item)
	}
	if newKey > h.data[pos].key {
		return fmt.Errorf("%w: item=%d current=%d new=%d", ErrKeyIncreased, item, h.data[pos].key, newKey)
	}
	if newKey == h.data[pos].key {
		return nil
	}
	h.data[pos].key = newKey
	heap.Fix(h, pos)
	return nil
}

// Less, Swap, Push and Pop below implement container/heap.Interface (Len is
// defined above) over the backing entry slice, keeping h.slot in sync on
// every Swap so item→position lookups stay valid after Fix/Remove reshuffle
// the array. Callers use Insert/DeleteMin/DecreaseKey, never these directly.

// Less reports whether entry i has a smaller key than entry j.
func (h *IndexedHeap) Less(i, j int) bool { return h.data[i].key < h.data[j].key }

// Swap exchanges entries i and j and keeps the slot index array in sync.
func (h *IndexedHeap) Swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.slot[h.data[i].item] = i
	h.slot[h.data[j].item] = j
}

// Push is never called: Insert appends the entry to h.data itself and then
// calls heap.Fix, which does not use Push. It is a no-op beyond satisfying
// the interface.
func (h *IndexedHeap) Push(x any) {
	// no-op: Insert appends before calling heap.Fix, which never calls Push.
	_ = x
}

// Pop removes and returns the last entry, used internally by heap.Remove.
func (h *IndexedHeap) Pop() any {
	old := h.data
	n := len(old)
	e := old[n-1]
	h.data = old[:n-1]
	h.slot[e.item] = -1
	return e
}
