package primes

import "math"

// maxRoot is the largest prime whose square fits in uint64.
// Larger primes are never scheduled at their square; no representable candidate needs them.
const maxRoot = math.MaxUint32

// Options select the optimisations of a generator or bounded sieve; combine them with |.
type Options uint8

const (
	// Square defers the first scheduled multiple of a prime to its square.
	Square Options = 1 << iota
	// Odd emits 2 up front and then examines odd candidates only.
	Odd
)

func (o Options) has(flag Options) bool {
	return o&flag != 0
}

// counter is an unbounded arithmetic progression.
type counter struct {
	value uint64
	step  uint64
}

func (c *counter) next() uint64 {
	v := c.value
	c.value += c.step
	return v
}

// oracle decides primality of increasing candidates and yields the primes.
type oracle interface {
	next() uint64
	pending() int
}

/*
generator adapts an oracle to the stream interfaces.

Implements:
  - Generator
*/
type generator struct {
	DefaultClosable
	DefaultProducer[uint64]
	oracle oracle
}

func newGenerator(o oracle) *generator {
	ego := &generator{oracle: o}
	ego.DefaultProducer = *NewDefaultProducer[uint64](ego)
	return ego
}

func (ego *generator) Next() uint64 {
	return ego.oracle.next()
}

func (ego *generator) Pending() int {
	return ego.oracle.pending()
}

func (ego *generator) Get() (value uint64, valid bool, err error) {
	if ego.Closed() {
		return
	}
	return ego.Next(), true, nil
}
