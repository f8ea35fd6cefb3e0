package primes

type filter[T any] struct {
	DefaultConsumer[T]
	DefaultProducer[T]
	DefaultClosable
	filter func(T) bool
}

// NewFilter creates a filter dropping the values for which fn returns false.
func NewFilter[T any](fn func(T) bool) Filter[T] {
	ego := &filter[T]{filter: fn}
	ego.DefaultProducer = *NewDefaultProducer[T](ego)
	return ego
}

func (ego *filter[T]) Get() (value T, valid bool, err error) {
	if ego.Closed() {
		return
	}
	value, valid, err = ego.Consume()
	for err == nil && valid && !ego.filter(value) {
		value, valid, err = ego.Consume()
	}
	if !valid || err != nil {
		ego.Close()
	}
	return
}

type takeWhile[T any] struct {
	DefaultConsumer[T]
	DefaultProducer[T]
	DefaultClosable
	predicate func(T) bool
}

/*
NewTakeWhile creates a filter passing values until the first one failing the predicate.
That value is dropped and the stream closes, so an infinite source becomes finite.

Type parameters:
  - T - type of the consumed and produced values.

Parameters:
  - fn - predicate every passed value satisfies.

Returns:
  - pointer to the new filter.
*/
func NewTakeWhile[T any](fn func(T) bool) Filter[T] {
	ego := &takeWhile[T]{predicate: fn}
	ego.DefaultProducer = *NewDefaultProducer[T](ego)
	return ego
}

func (ego *takeWhile[T]) Get() (value T, valid bool, err error) {
	if ego.Closed() {
		return
	}
	value, valid, err = ego.Consume()
	if valid && err == nil && !ego.predicate(value) {
		value, valid = *new(T), false
	}
	if !valid || err != nil {
		ego.Close()
	}
	return
}

// Below passes primes strictly less than limit.
func Below(limit uint64) Filter[uint64] {
	return NewTakeWhile(func(p uint64) bool { return p < limit })
}
