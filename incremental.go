package primes

import "github.com/SpongeData-cz/primes/internal/schedule"

// incremental admits every prime into the schedule as soon as it is found.
type incremental struct {
	schedule   schedule.Schedule[uint64]
	opts       Options
	candidates counter
	started    bool
}

/*
NewIncremental creates an unbounded generator which schedules each prime immediately after emitting it.

The first scheduled multiple is 2p, or 3p with the Odd option (steps of 2p skip even multiples),
or p*p with the Square option.

Parameters:
  - kind - representation of the composite schedule.
  - opts - combination of Square and Odd.

Returns:
  - the new generator.
*/
func NewIncremental(kind schedule.Kind, opts Options) Generator {
	return newGenerator(&incremental{
		schedule: schedule.New[uint64](kind),
		opts:     opts,
	})
}

// The named eager variants. Bucket ones share a schedule slot between primes, flat ones search forward for a free position.

func NewBucketSieve() Generator { return NewIncremental(schedule.Bucketed, 0) }
func NewBucketSieveSquare() Generator { return NewIncremental(schedule.Bucketed, Square) }
func NewBucketSieveOdd() Generator { return NewIncremental(schedule.Bucketed, Odd) }
func NewBucketSieveSquareOdd() Generator { return NewIncremental(schedule.Bucketed, Square|Odd) }
func NewFlatSieve() Generator { return NewIncremental(schedule.Flat, 0) }
func NewFlatSieveSquare() Generator { return NewIncremental(schedule.Flat, Square) }
func NewFlatSieveOdd() Generator { return NewIncremental(schedule.Flat, Odd) }
func NewFlatSieveSquareOdd() Generator { return NewIncremental(schedule.Flat, Square|Odd) }

func (ego *incremental) next() uint64 {
	if !ego.started {
		ego.started = true
		if ego.opts.has(Odd) {
			ego.candidates = counter{value: 3, step: 2}
			return 2
		}
		ego.candidates = counter{value: 2, step: 1}
	}
	for {
		i := ego.candidates.next()
		if !ego.schedule.Advance(i) {
			ego.admit(i)
			return i
		}
	}
}

func (ego *incremental) admit(p uint64) {
	first, step := 2*p, p
	if ego.opts.has(Odd) {
		first, step = 3*p, 2*p
	}
	if ego.opts.has(Square) {
		if p > maxRoot {
			return
		}
		first = p * p
	}
	ego.schedule.Insert(first, step)
}

func (ego *incremental) pending() int {
	return ego.schedule.Len()
}
