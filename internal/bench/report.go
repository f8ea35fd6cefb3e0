package bench

import (
	"github.com/SpongeData-cz/primes"
)

// WriteReport stores results as NDJSON, replacing the file.
func WriteReport(path string, results []Result) error {
	in := primes.NewChanneledInput[Result](len(results))
	if _, err := in.Write(results...); err != nil {
		return err
	}
	in.Close()

	out := primes.NewNdjsonOutput[Result](path, primes.FileWrite)
	in.Pipe(out)
	return out.Run()
}

// ReadReport loads results written by WriteReport.
func ReadReport(path string) ([]Result, error) {
	return primes.NewNdjsonInput[Result](path).Collect()
}
