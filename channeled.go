package primes

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrInputClosed is returned when writing to a closed channeled input.
var ErrInputClosed = errors.New("the channeled input is closed")

/*
channeledInput is a producer fed through a buffered channel.
Writers may run on several goroutines; Get blocks until a value arrives or the input is closed
and drained. Writes racing with Close either deliver their value or fail with ErrInputClosed.

Implements:
  - ChanneledInput
*/
type channeledInput[T any] struct {
	DefaultProducer[T]
	queue chan T
	mu    sync.RWMutex
	shut  atomic.Bool
}

/*
NewChanneledInput is a constructor of the channeled input.

Type parameters:
  - T - type of the produced values.

Parameters:
  - capacity - number of values buffered before Write blocks.

Returns:
  - the new channeled input.
*/
func NewChanneledInput[T any](capacity int) ChanneledInput[T] {
	ego := &channeledInput[T]{queue: make(chan T, capacity)}
	ego.DefaultProducer = *NewDefaultProducer[T](ego)
	return ego
}

func (ego *channeledInput[T]) Channel() chan T {
	return ego.queue
}

func (ego *channeledInput[T]) Get() (value T, valid bool, err error) {
	value, valid = <-ego.queue
	return value, valid, nil
}

func (ego *channeledInput[T]) Close() {
	ego.mu.Lock()
	defer ego.mu.Unlock()
	if ego.shut.Load() {
		return
	}
	ego.shut.Store(true)
	close(ego.queue)
}

// Closed reports whether the input is closed and drained. It never waits on a pending Close.
func (ego *channeledInput[T]) Closed() bool {
	return ego.shut.Load() && len(ego.queue) == 0
}

// Write sends the values in order and returns how many were delivered.
// A write blocked on a full buffer holds off Close until there is room.
func (ego *channeledInput[T]) Write(values ...T) (int, error) {
	if values == nil {
		return 0, errors.New("input slice is not initialized")
	}
	ego.mu.RLock()
	defer ego.mu.RUnlock()
	for n, v := range values {
		if ego.shut.Load() {
			return n, errors.WithStack(ErrInputClosed)
		}
		ego.queue <- v
	}
	return len(values), nil
}
