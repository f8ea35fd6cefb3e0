package primes

import (
	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set/v2"
)

// marks records the composites eliminated by a bounded sieve.
type marks interface {
	mark(n uint64)
	marked(n uint64) bool
}

type arrayMarks struct {
	bits *bitset.BitSet
}

func (m arrayMarks) mark(n uint64) { m.bits.Set(uint(n)) }
func (m arrayMarks) marked(n uint64) bool { return m.bits.Test(uint(n)) }

type setMarks struct {
	set mapset.Set[uint64]
}

func (m setMarks) mark(n uint64) { m.set.Add(n) }
func (m setMarks) marked(n uint64) bool { return m.set.Contains(n) }

/*
bounded is a sieve of Eratosthenes over [2, limit).
Each prime crosses out its multiples below the limit the moment it is emitted.

Implements:
  - Producer
*/
type bounded struct {
	DefaultClosable
	DefaultProducer[uint64]
	limit      uint64
	opts       Options
	marks      marks
	candidates counter
	started    bool
}

func newBounded(limit uint64, opts Options, m marks) *bounded {
	ego := &bounded{limit: limit, opts: opts, marks: m}
	ego.DefaultProducer = *NewDefaultProducer[uint64](ego)
	return ego
}

/*
NewLimitedSieveOpt is a constructor of the odd, square-started sieve marking composites in a bit array.

Parameters:
  - limit - exclusive upper bound of the emitted primes.

Returns:
  - the new finite producer.
*/
func NewLimitedSieveOpt(limit uint64) Producer[uint64] {
	return newBounded(limit, Square|Odd, arrayMarks{bitset.New(uint(limit))})
}

// NewLimitedSieve eliminates composites in a hash set, starting every prime at 2p.
func NewLimitedSieve(limit uint64) Producer[uint64] {
	return NewBounded(limit, 0)
}

func NewLimitedSieveSquare(limit uint64) Producer[uint64] {
	return NewBounded(limit, Square)
}

func NewLimitedSieveOdd(limit uint64) Producer[uint64] {
	return NewBounded(limit, Odd)
}

func NewLimitedSieveSquareOdd(limit uint64) Producer[uint64] {
	return NewBounded(limit, Square|Odd)
}

// NewBounded creates a set-based sieve emitting the primes below limit.
func NewBounded(limit uint64, opts Options) Producer[uint64] {
	return newBounded(limit, opts, setMarks{mapset.NewThreadUnsafeSet[uint64]()})
}

func (ego *bounded) Get() (value uint64, valid bool, err error) {
	if ego.Closed() {
		return
	}
	if !ego.started {
		ego.started = true
		ego.candidates = counter{value: 2, step: 1}
		if ego.opts.has(Odd) {
			ego.candidates = counter{value: 3, step: 2}
			if ego.limit > 2 {
				return 2, true, nil
			}
		}
	}
	for {
		i := ego.candidates.next()
		if i >= ego.limit {
			ego.Close()
			return 0, false, nil
		}
		if ego.marks.marked(i) {
			continue
		}
		ego.eliminate(i)
		return i, true, nil
	}
}

func (ego *bounded) eliminate(p uint64) {
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
	for j := first; j < ego.limit; j += step {
		ego.marks.mark(j)
	}
}
