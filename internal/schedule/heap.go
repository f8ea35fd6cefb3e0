package schedule

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

type entry[N constraints.Unsigned] struct {
	position N
	step     N
}

type entries[N constraints.Unsigned] []entry[N]

func (e entries[N]) Len() int { return len(e) }

func (e entries[N]) Less(i, j int) bool {
	if e[i].position != e[j].position {
		return e[i].position < e[j].position
	}
	return e[i].step < e[j].step
}

func (e entries[N]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[N]) Push(x any) { *e = append(*e, x.(entry[N])) }

func (e *entries[N]) Pop() any {
	old := *e
	n := len(old)
	x := old[n-1]
	*e = old[:n-1]
	return x
}

/*
MinHeap keeps the entries ordered by (position, step); the root is always the smallest pending position.

Several entries may share a position. Advance relies on positions never being lower than the
queried one, which holds as long as candidates are queried in increasing order.

Implements:
  - Schedule
*/
type MinHeap[N constraints.Unsigned] struct {
	entries entries[N]
}

/*
NewHeap is a constructor of an empty heap schedule.

Type parameters:
  - N - unsigned integer type of positions and steps.

Returns:
  - pointer to the new heap.
*/
func NewHeap[N constraints.Unsigned]() *MinHeap[N] {
	return &MinHeap[N]{}
}

func (ego *MinHeap[N]) Insert(position, step N) {
	heap.Push(&ego.entries, entry[N]{position, step})
}

// Min returns the root entry. The ok flag is false on an empty heap.
func (ego *MinHeap[N]) Min() (position, step N, ok bool) {
	if len(ego.entries) == 0 {
		return
	}
	root := ego.entries[0]
	return root.position, root.step, true
}

// ReplaceMin pops the root and pushes (position, step) in a single sift.
func (ego *MinHeap[N]) ReplaceMin(position, step N) {
	ego.entries[0] = entry[N]{position, step}
	heap.Fix(&ego.entries, 0)
}

func (ego *MinHeap[N]) Advance(position N) bool {
	fired := false
	for len(ego.entries) > 0 && ego.entries[0].position == position {
		ego.ReplaceMin(position+ego.entries[0].step, ego.entries[0].step)
		fired = true
	}
	return fired
}

func (ego *MinHeap[N]) Len() int {
	return len(ego.entries)
}
