// Package pqueue implements an indexed binary min-heap: insert, delete-min
// and O(log N) decrease-key over integer item ids in [0, N), keyed by int64
// distances.
//
// It generalises katalvlaran/lvlath's dijkstra.nodePQ — a container/heap-based
// min-heap keyed by distance — from string vertex ids and a "lazy"
// decrease-key (push a duplicate, ignore stale pops) to dense int item ids
// with a true decrease-key: an index side-array tracks each item's current
// heap slot so DecreaseKey can call heap.Fix directly instead of pushing a
// duplicate entry.
package pqueue
