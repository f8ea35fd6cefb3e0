package primes

// Family tells bounded sieves from unbounded generators.
type Family uint8

const (
	Unbounded Family = iota
	Bounded
)

func (f Family) String() string {
	if f == Bounded {
		return "bounded"
	}
	return "unbounded"
}

// Variant is a named prime sieve.
type Variant struct {
	Name   string
	Family Family

	generator func() Generator
	bounded   func(limit uint64) Producer[uint64]
}

/*
Open starts a fresh stream of the variant.

Parameters:
  - limit - exclusive bound of a bounded sieve; unbounded generators ignore it.

Returns:
  - the new producer.
*/
func (v Variant) Open(limit uint64) Producer[uint64] {
	if v.Family == Bounded {
		return v.bounded(limit)
	}
	return v.generator()
}

// Generator returns a fresh instance of an unbounded variant, or false for a bounded one.
func (v Variant) Generator() (Generator, bool) {
	if v.Family != Unbounded {
		return nil, false
	}
	return v.generator(), true
}

func unbounded(name string, fn func() Generator) Variant {
	return Variant{Name: name, Family: Unbounded, generator: fn}
}

func limited(name string, fn func(uint64) Producer[uint64]) Variant {
	return Variant{Name: name, Family: Bounded, bounded: fn}
}

var variants = []Variant{
	limited("limited_sieve_opt", NewLimitedSieveOpt),
	limited("limited_sieve", NewLimitedSieve),
	limited("limited_sieve_square", NewLimitedSieveSquare),
	limited("limited_sieve_odd", NewLimitedSieveOdd),
	limited("limited_sieve_square_odd", NewLimitedSieveSquareOdd),
	unbounded("bucket_sieve", NewBucketSieve),
	unbounded("bucket_sieve_square", NewBucketSieveSquare),
	unbounded("bucket_sieve_odd", NewBucketSieveOdd),
	unbounded("bucket_sieve_square_odd", NewBucketSieveSquareOdd),
	unbounded("flat_sieve", NewFlatSieve),
	unbounded("flat_sieve_square", NewFlatSieveSquare),
	unbounded("flat_sieve_odd", NewFlatSieveOdd),
	unbounded("flat_sieve_square_odd", NewFlatSieveSquareOdd),
	unbounded("delayed_sieve", NewDelayedSieve),
	unbounded("delayed_sieve_square", NewDelayedSieveSquare),
	unbounded("delayed_sieve_odd", NewDelayedSieveOdd),
	unbounded("delayed_sieve_square_odd", NewDelayedSieveSquareOdd),
	unbounded("delayed_sieve_opt", NewDelayedSieveOpt),
	unbounded("heap_sieve_opt", NewHeapSieveOpt),
}

// Variants lists every sieve, bounded ones first.
func Variants() []Variant {
	return append([]Variant(nil), variants...)
}

// Generators lists the unbounded variants.
func Generators() []Variant {
	var out []Variant
	for _, v := range variants {
		if v.Family == Unbounded {
			out = append(out, v)
		}
	}
	return out
}

/*
Lookup finds a variant by name.

Parameters:
  - name - registered name, e.g. "heap_sieve_opt".

Returns:
  - the variant and true, or false when no variant has that name.
*/
func Lookup(name string) (Variant, bool) {
	for _, v := range variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
