package primes

import (
	"math"

	"github.com/SpongeData-cz/primes/internal/schedule"
)

// gate is the next prime waiting to be admitted into the schedule and the candidate admitting it.
type gate struct {
	prime     uint64
	threshold uint64
	step      uint64
}

func newGate(p uint64, opts Options) gate {
	g := gate{prime: p, threshold: 2 * p, step: p}
	if opts.has(Odd) {
		g.threshold, g.step = 3*p, 2*p
	}
	if opts.has(Square) {
		g.threshold = math.MaxUint64
		if p <= maxRoot {
			g.threshold = p * p
		}
	}
	return g
}

/*
delayed admits a prime only once candidates reach its threshold.

The primes to admit come from a private nested instance of the same configuration, which runs
one prime ahead of the gate. The nested instance is created the first time the base primes are
exhausted and recursively owns its own lookahead; the base primes stop the recursion.
*/
type delayed struct {
	schedule    schedule.Schedule[uint64]
	kind        schedule.Kind
	opts        Options
	lookupFirst bool
	base        []uint64
	emitted     int
	candidates  counter
	lookahead   *delayed
	gate        gate
}

func newDelayed(kind schedule.Kind, opts Options, lookupFirst bool) *delayed {
	ego := &delayed{
		schedule:    schedule.New[uint64](kind),
		kind:        kind,
		opts:        opts,
		lookupFirst: lookupFirst,
		base:        []uint64{2},
		candidates:  counter{value: 3, step: 1},
	}
	if opts.has(Odd) {
		ego.base = []uint64{2, 3}
		ego.candidates = counter{value: 5, step: 2}
	}
	return ego
}

/*
NewDelayed creates an unbounded generator gating each prime's admission on a nested lookahead of itself.

With the Square option the live schedule holds only the primes up to the square root of the
current candidate.

Parameters:
  - kind - representation of the composite schedule.
  - opts - combination of Square and Odd.

Returns:
  - the new generator.
*/
func NewDelayed(kind schedule.Kind, opts Options) Generator {
	return newGenerator(newDelayed(kind, opts, false))
}

// The named gated variants, all on a flat schedule.

func NewDelayedSieve() Generator { return NewDelayed(schedule.Flat, 0) }
func NewDelayedSieveSquare() Generator { return NewDelayed(schedule.Flat, Square) }
func NewDelayedSieveOdd() Generator { return NewDelayed(schedule.Flat, Odd) }
func NewDelayedSieveSquareOdd() Generator { return NewDelayed(schedule.Flat, Square|Odd) }

// NewDelayedSieveOpt is the odd, square-gated variant consulting the schedule before the gate.
// A candidate found in the schedule skips the gate test entirely.
func NewDelayedSieveOpt() Generator {
	return newGenerator(newDelayed(schedule.Flat, Square|Odd, true))
}

func (ego *delayed) next() uint64 {
	if ego.emitted < len(ego.base) {
		p := ego.base[ego.emitted]
		ego.emitted++
		return p
	}
	if ego.lookahead == nil {
		ego.lookahead = newDelayed(ego.kind, ego.opts, ego.lookupFirst)
		if ego.opts.has(Odd) {
			// 2 has no odd multiples
			ego.lookahead.next()
		}
		ego.pull()
	}
	for {
		i := ego.candidates.next()
		if ego.lookupFirst {
			if ego.schedule.Advance(i) {
				continue
			}
			if i == ego.gate.threshold {
				ego.schedule.Insert(i+ego.gate.step, ego.gate.step)
				ego.pull()
				continue
			}
			return i
		}
		if i == ego.gate.threshold {
			ego.schedule.Insert(i, ego.gate.step)
			ego.pull()
		}
		if !ego.schedule.Advance(i) {
			return i
		}
	}
}

func (ego *delayed) pull() {
	ego.gate = newGate(ego.lookahead.next(), ego.opts)
}

func (ego *delayed) pending() int {
	return ego.schedule.Len()
}

// depth returns the number of nested lookahead instances created so far.
func (ego *delayed) depth() int {
	d := 0
	for o := ego.lookahead; o != nil; o = o.lookahead {
		d++
	}
	return d
}
