package primes

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// FileMode tells an NDJSON output whether to truncate or append to its file.
type FileMode uint8

const (
	FileWrite FileMode = iota
	FileAppend
)

/*
ndjsonInput decodes one JSON document per line of a file, opening it on the first Get.
A failure to close the file is returned by the Get ending the stream and by every Get after it.

Implements:
  - NdjsonInput
*/
type ndjsonInput[T any] struct {
	DefaultClosable
	DefaultProducer[T]
	path     string
	file     *os.File
	decoder  *json.Decoder
	closeErr error
}

/*
NewNdjsonInput is a constructor of the NDJSON input.

Type parameters:
  - T - type each line decodes into.

Parameters:
  - path - file to read; it is opened on the first Get.

Returns:
  - the new input.
*/
func NewNdjsonInput[T any](path string) NdjsonInput[T] {
	ego := &ndjsonInput[T]{path: path}
	ego.DefaultProducer = *NewDefaultProducer[T](ego)
	return ego
}

func (ego *ndjsonInput[T]) Get() (value T, valid bool, err error) {
	if ego.Closed() {
		return value, false, ego.closeErr
	}

	if ego.file == nil {
		file, err := os.Open(ego.path)
		if err != nil {
			ego.Close()
			return value, false, errors.Wrapf(err, "open %s", ego.path)
		}
		ego.file = file
		ego.decoder = json.NewDecoder(bufio.NewReader(file))
	}

	if !ego.decoder.More() {
		ego.Close()
		return value, false, ego.closeErr
	}
	if err = ego.decoder.Decode(&value); err != nil {
		ego.Close()
		return value, false, multierr.Append(errors.Wrapf(err, "decode %s", ego.path), ego.closeErr)
	}
	return value, true, nil
}

func (ego *ndjsonInput[T]) Close() {
	if ego.file != nil {
		if err := ego.file.Close(); err != nil {
			ego.closeErr = errors.Wrapf(err, "close %s", ego.path)
		}
		ego.file = nil
	}
	ego.DefaultClosable.Close()
}

/*
ndjsonOutput drains its source into a file, one JSON document per line.

Implements:
  - NdjsonOutput
*/
type ndjsonOutput[T any] struct {
	DefaultConsumer[T]
	path string
	mode FileMode
	done bool
}

/*
NewNdjsonOutput is a constructor of the NDJSON output. Nothing is written until Run.

Type parameters:
  - T - type of the consumed values.

Parameters:
  - path - file to write.
  - mode - FileWrite or FileAppend; any other value panics.

Returns:
  - the new output, to be attached with Pipe.
*/
func NewNdjsonOutput[T any](path string, mode FileMode) NdjsonOutput[T] {
	if mode != FileAppend && mode != FileWrite {
		panic("unknown mode")
	}
	return &ndjsonOutput[T]{path: path, mode: mode}
}

// Run writes every value of the source and returns once the source ends.
func (ego *ndjsonOutput[T]) Run() (err error) {
	if ego.done {
		return errors.New("the stream has been already run")
	}
	ego.done = true

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if ego.mode == FileAppend {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(ego.path, flags, 0664)
	if err != nil {
		return errors.Wrapf(err, "open %s", ego.path)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", ego.path)
		}
	}()

	w := bufio.NewWriter(file)
	encoder := json.NewEncoder(w)
	for {
		value, valid, err := ego.Consume()
		if err != nil {
			return err
		}
		if !valid {
			break
		}
		if err := encoder.Encode(value); err != nil {
			return errors.Wrapf(err, "encode %s", ego.path)
		}
	}
	return errors.Wrapf(w.Flush(), "flush %s", ego.path)
}
