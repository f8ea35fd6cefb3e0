package primes

/*
transformer maps every value of its source through a function.
It closes together with its source; values are mapped only when pulled.

Implements:
  - Transformer
*/
type transformer[T, U any] struct {
	DefaultConsumer[T]
	DefaultProducer[U]
	DefaultClosable
	mapping func(T) U
}

/*
NewTransformer is a constructor of the transformer.

Type parameters:
  - T - type of the consumed values.
  - U - type of the produced values.

Parameters:
  - fn - mapping applied to each consumed value.

Returns:
  - the new transformer, to be attached with Pipe.
*/
func NewTransformer[T, U any](fn func(T) U) Transformer[T, U] {
	ego := &transformer[T, U]{mapping: fn}
	ego.DefaultProducer = *NewDefaultProducer[U](ego)
	return ego
}

func (ego *transformer[T, U]) Get() (value U, valid bool, err error) {
	if ego.Closed() {
		return
	}
	in, valid, err := ego.Consume()
	if valid && err == nil {
		return ego.mapping(in), true, nil
	}
	ego.Close()
	return value, false, err
}

// Indexed is a prime together with its 1-based position in the stream.
type Indexed struct {
	N     int    `json:"n"`
	Prime uint64 `json:"prime"`
}

/*
NewIndexer numbers the primes passing through it, starting at 1.
The count belongs to the returned transformer; each stream needs its own indexer.
*/
func NewIndexer() Transformer[uint64, Indexed] {
	var n int
	return NewTransformer(func(p uint64) Indexed {
		n++
		return Indexed{N: n, Prime: p}
	})
}
