package subset

import "math/bits"

// MasksOfPopcount yields, via seq, every k-bit mask (0 <= mask < 1<<k) with
// exactly m bits set, in ascending numeric order. It uses the classic "next
// higher integer with the same popcount" trick, so each mask after the first
// is produced in O(1) amortised time without scanning the gaps.
//
// m == 0 yields the single mask 0. Callers passing m > k get no masks.
func MasksOfPopcount(k, m int) func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		if m == 0 {
			yield(0)
			return
		}
		if m > k {
			return
		}

		limit := uint64(1) << uint(k)
		x := uint64(1)<<uint(m) - 1
		for x < limit {
			if !yield(x) {
				return
			}
			// Gosper's hack: smallest integer > x with the same popcount.
			c := x & -x
			r := x + c
			x = (((r ^ x) >> bits.TrailingZeros64(c)) >> 2) | r
		}
	}
}

// ProperNonEmptySubmasks yields, via seq, every x' with 0 < x' < x and
// x' & x == x', each exactly once; iteration order is unspecified, but
// every proper non-empty submask is produced exactly once.
func ProperNonEmptySubmasks(x uint64) func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		if x == 0 {
			return
		}
		for sub := (x - 1) & x; sub != 0; sub = (sub - 1) & x {
			if !yield(sub) {
				return
			}
		}
	}
}
