package primes

import "github.com/pkg/errors"

var (
	ErrPiped     = errors.New("the stream is piped")
	ErrNoSource  = errors.New("no source to consume from")
	ErrSourceSet = errors.New("the source has already been set")
)

/*
DefaultClosable is a closed flag to be included as a promoted field.

Implements:
  - Closable
*/
type DefaultClosable struct {
	closed bool
}

func (ego *DefaultClosable) Closed() bool {
	return ego.closed
}

func (ego *DefaultClosable) Close() {
	ego.closed = true
}

/*
DefaultConsumer is a default partial implementation of the Consumer.

Implements:
  - Consumer
*/
type DefaultConsumer[T any] struct {
	source Producer[T]
}

func (ego *DefaultConsumer[T]) Consume() (value T, valid bool, err error) {
	if ego.source == nil {
		return value, false, errors.WithStack(ErrNoSource)
	}
	return ego.source.Get()
}

func (ego *DefaultConsumer[T]) SetSource(s Producer[T]) error {
	if !ego.CanSetSource() {
		return errors.WithStack(ErrSourceSet)
	}
	ego.source = s
	return nil
}

func (ego *DefaultConsumer[T]) CanSetSource() bool {
	return ego.source == nil
}

/*
DefaultProducer derives the bulk operations of a Producer from its Get.
Include it as a promoted field and initialize it with NewDefaultProducer.

Collect, ForEach and Count return only once the stream ends. On an unbounded
generator they have to be preceded by a limiting filter such as Below.

Implements:
  - Producer (partially)
*/
type DefaultProducer[T any] struct {
	producer Producer[T]
	piped    bool
}

/*
NewDefaultProducer is a constructor of the DefaultProducer.

Type parameters:
  - T - type of the produced values.

Parameters:
  - p - full implementation of the Producer (embedding this struct).

Returns:
  - pointer to the new DefaultProducer.
*/
func NewDefaultProducer[T any](p Producer[T]) *DefaultProducer[T] {
	return &DefaultProducer[T]{producer: p}
}

func (ego *DefaultProducer[T]) Pipe(c Consumer[T]) Consumer[T] {
	if !c.CanSetSource() {
		panic("the consumer does not accept new sources")
	}
	if err := c.SetSource(ego.producer); err != nil {
		panic(err)
	}
	ego.piped = true
	return c
}

// drain pulls values into fn until the stream ends, fn fails or limit values were pulled (negative limit means no bound).
func (ego *DefaultProducer[T]) drain(limit int, fn func(T) error) (n int, err error) {
	if ego.piped {
		return 0, errors.WithStack(ErrPiped)
	}
	for limit < 0 || n < limit {
		value, valid, err := ego.producer.Get()
		if err != nil || !valid {
			return n, err
		}
		if err := fn(value); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (ego *DefaultProducer[T]) Read(dst []T) (int, error) {
	if dst == nil {
		return 0, errors.New("the input slice is not initialized")
	}
	i := 0
	return ego.drain(len(dst), func(value T) error {
		dst[i] = value
		i++
		return nil
	})
}

func (ego *DefaultProducer[T]) Collect() ([]T, error) {
	output := make([]T, 0)
	_, err := ego.drain(-1, func(value T) error {
		output = append(output, value)
		return nil
	})
	if errors.Is(err, ErrPiped) {
		return nil, err
	}
	return output, err
}

func (ego *DefaultProducer[T]) ForEach(fn func(T) error) error {
	_, err := ego.drain(-1, fn)
	return err
}

// Count consumes the stream and returns the number of values it held.
func (ego *DefaultProducer[T]) Count() (int, error) {
	return ego.drain(-1, func(T) error { return nil })
}
