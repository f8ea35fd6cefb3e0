/*
Package primes is a laboratory of prime sieves built on pull-based streams.

Every sieve is a Producer[uint64]. Bounded sieves eliminate composites below a fixed limit and
end when it is reached. Unbounded generators run forever, lazily scheduling the future multiples
of each prime they discover; they end only when closed by the consumer.
*/
package primes

type Closable interface {
	Closed() bool
	Close()
}

type Writer[T any] interface {
	Write(p ...T) (int, error)
}

type Reader[T any] interface {
	Read(dest []T) (int, error)
}

type Collector[T any] interface {
	Collect() ([]T, error)
}

type Iterator[T any] interface {
	ForEach(fn func(T) error) error
}

type Counter interface {
	Count() (int, error)
}

type Producer[T any] interface {
	Closable
	Reader[T]
	Collector[T]
	Iterator[T]
	Counter
	Get() (value T, valid bool, err error)
	Pipe(Consumer[T]) Consumer[T]
}

type ChanneledProducer[T any] interface {
	Producer[T]
	Channel() chan T
}

type Consumer[T any] interface {
	SetSource(s Producer[T]) error
	CanSetSource() bool
	Consume() (value T, valid bool, err error)
}

type Transformer[T, U any] interface {
	Consumer[T]
	Producer[U]
}

type Filter[T any] interface {
	Consumer[T]
	Producer[T]
}

type ChanneledInput[T any] interface {
	ChanneledProducer[T]
	Writer[T]
}

type NdjsonInput[T any] interface {
	Producer[T]
}

type NdjsonOutput[T any] interface {
	Consumer[T]
	Run() error
}

/*
Generator is an unbounded prime stream.

Values are strictly increasing, starting at 2. An instance carries mutable state and must be
advanced by a single consumer; a new instance starts over.
*/
type Generator interface {
	Producer[uint64]

	// Next returns the next prime.
	Next() uint64

	// Pending returns the number of live entries in the instance's own composite schedule.
	Pending() int
}
