package schedule

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/constraints"
)

/*
Bucket keeps every step waiting at a position in one set.

Implements:
  - Schedule
*/
type Bucket[N constraints.Unsigned] struct {
	slots map[N]mapset.Set[N]
	size  int
}

/*
NewBucket is a constructor of an empty bucketed schedule.

Type parameters:
  - N - unsigned integer type of positions and steps.

Returns:
  - pointer to the new bucket schedule.
*/
func NewBucket[N constraints.Unsigned]() *Bucket[N] {
	return &Bucket[N]{slots: make(map[N]mapset.Set[N])}
}

func (ego *Bucket[N]) Insert(position, step N) {
	slot, ok := ego.slots[position]
	if !ok {
		slot = mapset.NewThreadUnsafeSet[N]()
		ego.slots[position] = slot
	}
	if slot.Add(step) {
		ego.size++
	}
}

func (ego *Bucket[N]) Advance(position N) bool {
	slot, ok := ego.slots[position]
	if !ok {
		return false
	}
	delete(ego.slots, position)
	ego.size -= slot.Cardinality()
	slot.Each(func(step N) bool {
		ego.Insert(position+step, step)
		return false
	})
	return true
}

func (ego *Bucket[N]) Len() int {
	return ego.size
}

// Slots returns the number of distinct occupied positions.
func (ego *Bucket[N]) Slots() int {
	return len(ego.slots)
}
