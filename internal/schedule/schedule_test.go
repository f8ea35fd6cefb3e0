package schedule_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpongeData-cz/primes/internal/schedule"
)

var kinds = []schedule.Kind{schedule.Bucketed, schedule.Flat, schedule.Heap}

func TestScheduleAdvance(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := schedule.New[uint64](kind)
			s.Insert(4, 2)
			s.Insert(6, 3)

			var composites []uint64
			for i := uint64(4); i <= 12; i++ {
				if s.Advance(i) {
					composites = append(composites, i)
				}
				assert.Equal(t, 2, s.Len(), "entries after position %d", i)
			}

			want := []uint64{4, 6, 8, 9, 10, 12}
			if diff := cmp.Diff(want, composites); diff != "" {
				t.Errorf("composites mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewKinds(t *testing.T) {
	assert.IsType(t, &schedule.Bucket[uint64]{}, schedule.New[uint64](schedule.Bucketed))
	assert.IsType(t, &schedule.Table[uint64]{}, schedule.New[uint64](schedule.Flat))
	assert.IsType(t, &schedule.MinHeap[uint64]{}, schedule.New[uint64](schedule.Heap))
}

func TestScheduleEmpty(t *testing.T) {
	for _, kind := range kinds {
		s := schedule.New[uint32](kind)
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Advance(7), kind.String())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bucket", schedule.Bucketed.String())
	assert.Equal(t, "flat", schedule.Flat.String())
	assert.Equal(t, "heap", schedule.Heap.String())
	assert.Equal(t, "Kind(9)", schedule.Kind(9).String())
	assert.Panics(t, func() { schedule.New[uint64](schedule.Kind(9)) })
}

func TestBucketSharedSlot(t *testing.T) {
	b := schedule.NewBucket[uint64]()
	b.Insert(6, 2)
	b.Insert(6, 3)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 1, b.Slots())

	require.True(t, b.Advance(6))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 2, b.Slots())
	assert.True(t, b.Advance(8))
	assert.True(t, b.Advance(9))
}

func TestInsertProbing(t *testing.T) {
	t.Run("Free position", func(t *testing.T) {
		table := map[uint64]uint64{}
		assert.Equal(t, uint64(9), schedule.Insert(table, 9, 6))
		assert.Equal(t, map[uint64]uint64{9: 6}, table)
	})

	t.Run("Collision", func(t *testing.T) {
		table := map[uint64]uint64{10: 2, 15: 3}
		landed := schedule.Insert(table, 10, 5)
		assert.Equal(t, uint64(20), landed)
		assert.Equal(t, map[uint64]uint64{10: 2, 15: 3, 20: 5}, table)
	})

	t.Run("Random", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		table := map[uint64]uint64{}
		for i := 0; i < 2000; i++ {
			m := uint64(rng.Intn(500))
			step := uint64(rng.Intn(20) + 1)
			before := make(map[uint64]uint64, len(table))
			for k, v := range table {
				before[k] = v
			}

			landed := schedule.Insert(table, m, step)

			require.GreaterOrEqual(t, landed, m)
			require.Zero(t, (landed-m)%step, "landed off the progression")
			_, taken := before[landed]
			require.False(t, taken, "overwrote position %d", landed)
			for k, v := range before {
				require.Equal(t, v, table[k])
			}
			require.Len(t, table, len(before)+1)
		}
	})
}

func TestTablePop(t *testing.T) {
	f := schedule.NewTable[uint64]()
	f.Insert(25, 10)
	f.Insert(25, 6)

	step, ok := f.Pop(25)
	require.True(t, ok)
	assert.Equal(t, uint64(10), step)
	step, ok = f.Pop(31)
	require.True(t, ok)
	assert.Equal(t, uint64(6), step)
	_, ok = f.Pop(31)
	assert.False(t, ok)
	assert.Equal(t, 0, f.Len())
}

func TestHeapRootIsMinimum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := schedule.NewHeap[uint64]()
	var shadow [][2]uint64

	checkRoot := func() {
		position, _, ok := h.Min()
		require.Equal(t, len(shadow) > 0, ok)
		if !ok {
			return
		}
		least := shadow[0][0]
		for _, e := range shadow {
			least = min(least, e[0])
		}
		require.Equal(t, least, position)
	}

	checkRoot()
	for i := 0; i < 1000; i++ {
		if len(shadow) == 0 || rng.Intn(3) > 0 {
			e := [2]uint64{uint64(rng.Intn(1000)), uint64(rng.Intn(50) + 1)}
			h.Insert(e[0], e[1])
			shadow = append(shadow, e)
		} else {
			position, step, _ := h.Min()
			h.ReplaceMin(position+step, step)
			for j := range shadow {
				if shadow[j] == [2]uint64{position, step} {
					shadow[j][0] += step
					break
				}
			}
		}
		checkRoot()
		require.Equal(t, len(shadow), h.Len())
	}
}

func TestHeapDuplicatePositions(t *testing.T) {
	h := schedule.NewHeap[uint64]()
	h.Insert(15, 6)
	h.Insert(15, 10)
	h.Insert(21, 14)

	require.True(t, h.Advance(15))
	position, step, ok := h.Min()
	require.True(t, ok)
	assert.Equal(t, uint64(21), position)
	assert.Equal(t, uint64(6), step)

	require.True(t, h.Advance(21))
	position, _, _ = h.Min()
	assert.Equal(t, uint64(25), position)
	assert.Equal(t, 3, h.Len())
}
