package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/Yishanmys/steiner-edge-linear/pqueue"
	"github.com/stretchr/testify/require"
)

func TestInsertDeleteMinOrder(t *testing.T) {
	h := pqueue.New(5)
	require.NoError(t, h.Insert(3, 30))
	require.NoError(t, h.Insert(1, 10))
	require.NoError(t, h.Insert(4, 40))
	require.NoError(t, h.Insert(0, 5))
	require.NoError(t, h.Insert(2, 20))

	var order []int
	for h.Len() > 0 {
		item, err := h.DeleteMin()
		require.NoError(t, err)
		order = append(order, item)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestDecreaseKeyReordersMin(t *testing.T) {
	h := pqueue.New(3)
	require.NoError(t, h.Insert(0, 100))
	require.NoError(t, h.Insert(1, 200))
	require.NoError(t, h.Insert(2, 300))

	require.NoError(t, h.DecreaseKey(2, 1))
	item, key, err := h.Min()
	require.NoError(t, err)
	require.Equal(t, 2, item)
	require.EqualValues(t, 1, key)
}

func TestDecreaseKeyEqualIsNoop(t *testing.T) {
	h := pqueue.New(2)
	require.NoError(t, h.Insert(0, 10))
	require.NoError(t, h.DecreaseKey(0, 10))
	_, key, err := h.Min()
	require.NoError(t, err)
	require.EqualValues(t, 10, key)
}

func TestDecreaseKeyRejectsIncrease(t *testing.T) {
	h := pqueue.New(1)
	require.NoError(t, h.Insert(0, 10))
	require.ErrorIs(t, h.DecreaseKey(0, 20), pqueue.ErrKeyIncreased)
}

func TestInsertRejectsDuplicate(t *testing.T) {
	h := pqueue.New(1)
	require.NoError(t, h.Insert(0, 10))
	require.ErrorIs(t, h.Insert(0, 5), pqueue.ErrAlreadyPresent)
}

func TestDeleteMinAndMinOnEmpty(t *testing.T) {
	h := pqueue.New(0)
	_, err := h.DeleteMin()
	require.ErrorIs(t, err, pqueue.ErrEmpty)
	_, _, err = h.Min()
	require.ErrorIs(t, err, pqueue.ErrEmpty)
}

func TestResetAllowsReuse(t *testing.T) {
	h := pqueue.New(3)
	require.NoError(t, h.Insert(0, 1))
	require.NoError(t, h.Insert(1, 2))
	h.Reset()
	require.Equal(t, 0, h.Len())
	require.False(t, h.Contains(0))
	require.NoError(t, h.Insert(1, 99))
}

func TestRandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 200
	keys := make([]int64, n)
	h := pqueue.New(n)
	for i := 0; i < n; i++ {
		keys[i] = int64(rng.Intn(1000))
		require.NoError(t, h.Insert(i, keys[i]))
	}

	// Interleave a handful of decrease-keys before draining.
	for i := 0; i < 20; i++ {
		item := rng.Intn(n)
		if keys[item] > 0 {
			keys[item] = int64(rng.Intn(int(keys[item]) + 1))
			require.NoError(t, h.DecreaseKey(item, keys[item]))
		}
	}

	type pair struct {
		item int
		key  int64
	}
	want := make([]pair, n)
	for i := range keys {
		want[i] = pair{i, keys[i]}
	}
	sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })

	var got []int64
	for h.Len() > 0 {
		item, err := h.DeleteMin()
		require.NoError(t, err)
		got = append(got, keys[item])
	}

	wantKeys := make([]int64, n)
	for i, p := range want {
		wantKeys[i] = p.key
	}
	require.Equal(t, wantKeys, got)
}
