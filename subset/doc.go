// Package subset provides the two bitmask-enumeration primitives the EMV
// kernel drives its dynamic program with: iterating every K-bit mask of a
// given popcount, and iterating every proper non-empty submask of a mask.
//
// Both lean on the same "next integer with identical popcount" and
// "submask walk" bit tricks katalvlaran/lvlath's tsp package uses for its
// Held-Karp bitmask DP (tsp/exact.go precomputes masksBySize by filtering
// every mask 0..2^n; subset instead generates masks directly in O(1)
// amortised time per mask via math/bits, without ever materialising the
// full 2^k domain). Go 1.23 range-over-func iterators express the
// enumeration as a lazy, restartable sequence rather than a slice.
package subset
