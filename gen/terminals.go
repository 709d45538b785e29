package gen

import (
	"fmt"
	"math/rand"
)

// RandomTerminals picks k distinct vertices from [0, n) using rng, in the
// order rng.Perm produces them. That order matters to callers: the last
// element becomes the EMV root terminal, so reusing the same rng for
// topology and terminal selection still yields a fully reproducible
// instance end to end.
func RandomTerminals(n int64, k int, rng *rand.Rand) ([]int64, error) {
	if k <= 0 || int64(k) > n {
		return nil, fmt.Errorf("gen: RandomTerminals: k=%d out of range for n=%d", k, n)
	}
	perm := rng.Perm(int(n))
	out := make([]int64, k)
	for i := 0; i < k; i++ {
		out[i] = int64(perm[i])
	}
	return out, nil
}
