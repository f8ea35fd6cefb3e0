package primes

import "github.com/SpongeData-cz/primes/internal/schedule"

var heapBase = []uint64{2, 3, 5}

/*
heapSieve keeps the odd multiples of the admitted primes in a min-heap.

A candidate below the heap root is prime unless it is the square of the gate prime.
Candidates never pass the root, so primality needs no membership lookup.
*/
type heapSieve struct {
	schedule   *schedule.MinHeap[uint64]
	emitted    int
	candidates counter
	lookahead  *heapSieve
	gate       gate
}

func newHeapSieve() *heapSieve {
	h := schedule.NewHeap[uint64]()
	// first odd multiple of 3 not below its square
	h.Insert(9, 6)
	return &heapSieve{
		schedule:   h,
		candidates: counter{value: 7, step: 2},
	}
}

// NewHeapSieveOpt creates the odd, square-gated generator backed by a min-heap schedule.
func NewHeapSieveOpt() Generator {
	return newGenerator(newHeapSieve())
}

func (ego *heapSieve) next() uint64 {
	if ego.emitted < len(heapBase) {
		p := heapBase[ego.emitted]
		ego.emitted++
		return p
	}
	if ego.lookahead == nil {
		ego.lookahead = newHeapSieve()
		ego.lookahead.next()
		ego.lookahead.next()
		ego.pull()
	}
	for {
		i := ego.candidates.next()
		m, step, _ := ego.schedule.Min()
		if i < m {
			if i != ego.gate.threshold {
				return i
			}
			ego.schedule.Insert(i+ego.gate.step, ego.gate.step)
			ego.pull()
			continue
		}
		for i == m {
			ego.schedule.ReplaceMin(m+step, step)
			m, step, _ = ego.schedule.Min()
		}
	}
}

func (ego *heapSieve) pull() {
	ego.gate = newGate(ego.lookahead.next(), Square|Odd)
}

func (ego *heapSieve) pending() int {
	return ego.schedule.Len()
}

func (ego *heapSieve) depth() int {
	d := 0
	for o := ego.lookahead; o != nil; o = o.lookahead {
		d++
	}
	return d
}
