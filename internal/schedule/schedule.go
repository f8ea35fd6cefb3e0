/*
Package schedule provides the composite schedules used by the incremental sieves.

A schedule maps the next position at which a tracked prime's multiple lands to the step
by which that multiple advances afterwards. Three interchangeable representations exist:
a bucketed map (a slot holds a set of steps), a flat map with forward probing (a slot holds
exactly one step) and a binary min-heap.
*/
package schedule

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

/*
Schedule tracks, for every admitted prime, the next position at which one of its multiples lands.

Positions must be queried in increasing order; a schedule never holds a position below the last
one advanced.

Type parameters:
  - N - unsigned integer type of positions and steps.
*/
type Schedule[N constraints.Unsigned] interface {
	// Insert admits a new entry which fires at position and then every step.
	Insert(position, step N)

	// Advance fires every entry waiting at position, moving each to its next multiple.
	// Reports whether position was scheduled, i.e. whether it is composite.
	Advance(position N) bool

	// Len returns the number of live entries.
	Len() int
}

// Kind selects the representation backing a schedule.
type Kind uint8

const (
	// Bucketed keeps a set of steps per position.
	Bucketed Kind = iota
	// Flat keeps one step per position and moves forward by step on collision.
	Flat
	// Heap keeps a min-heap ordered by position.
	Heap
)

func (k Kind) String() string {
	switch k {
	case Bucketed:
		return "bucket"
	case Flat:
		return "flat"
	case Heap:
		return "heap"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

/*
New is a constructor of an empty schedule.

Type parameters:
  - N - unsigned integer type of positions and steps.

Parameters:
  - kind - representation backing the schedule.

Returns:
  - the new schedule.
*/
func New[N constraints.Unsigned](kind Kind) Schedule[N] {
	switch kind {
	case Bucketed:
		return NewBucket[N]()
	case Flat:
		return NewTable[N]()
	case Heap:
		return NewHeap[N]()
	}
	panic(fmt.Sprintf("unknown schedule kind %d", uint8(kind)))
}
