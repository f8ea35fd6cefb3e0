// Package bench times the prime sieves and checks them against each other.
package bench

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/SpongeData-cz/primes"
)

// cancellation is checked once per this many primes
const checkEvery = 4096

// Result is one timed consumption of a sieve.
type Result struct {
	Variant string        `json:"variant"`
	Family  string        `json:"family"`
	Limit   uint64        `json:"limit"`
	Round   int           `json:"round"`
	Count   int           `json:"count"`
	Pending int           `json:"pending,omitempty"`
	Elapsed time.Duration `json:"elapsed"`
}

/*
Measure consumes a fresh instance of the variant up to limit and times it.

Parameters:
  - ctx - stops the consumption when cancelled.
  - v - the sieve to time.
  - limit - exclusive bound of the consumed primes.

Returns:
  - the result, Pending set for unbounded generators.
  - ctx.Err() wrapped if cancelled, or the CheckLimit error.
*/
func Measure(ctx context.Context, v primes.Variant, limit uint64) (Result, error) {
	res := Result{Variant: v.Name, Family: v.Family.String(), Limit: limit}
	if err := CheckLimit(limit); err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, errors.Wrapf(err, "measure %s", v.Name)
	}

	src := v.Open(limit)
	start := time.Now()
	err := src.Pipe(primes.Below(limit)).(primes.Filter[uint64]).ForEach(func(uint64) error {
		res.Count++
		if res.Count%checkEvery == 0 {
			return ctx.Err()
		}
		return nil
	})
	res.Elapsed = time.Since(start)
	if err != nil {
		return res, errors.Wrapf(err, "measure %s", v.Name)
	}

	if gen, ok := src.(primes.Generator); ok {
		res.Pending = gen.Pending()
	}
	return res, nil
}

// Runner executes configured benchmark runs.
type Runner struct {
	config Config
	logger zerolog.Logger
}

/*
NewRunner is a constructor of the runner.

Parameters:
  - config - run description; zero fields take their defaults.
  - logger - receives one debug event per measurement.

Returns:
  - pointer to the new runner.
*/
func NewRunner(config Config, logger zerolog.Logger) *Runner {
	config.SetDefaults()
	return &Runner{config: config, logger: logger}
}

/*
Run measures every configured variant Repeat times on Parallel workers.
Results are returned in completion order and written to the report file when one is configured.
*/
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := r.config.checkNumbers(); err != nil {
		return nil, err
	}
	variants, err := resolve(r.config.Variants)
	if err != nil {
		return nil, err
	}

	results := primes.NewChanneledInput[Result](len(variants) * r.config.Repeat)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Parallel)
	for round := 1; round <= r.config.Repeat; round++ {
		for _, v := range variants {
			round, v := round, v
			g.Go(func() error {
				res, err := Measure(gctx, v, r.config.Limit)
				if err != nil {
					return err
				}
				res.Round = round
				r.logger.Debug().
					Str("variant", res.Variant).
					Int("round", round).
					Int("count", res.Count).
					Dur("elapsed", res.Elapsed).
					Msg("variant measured")
				_, err = results.Write(res)
				return err
			})
		}
	}
	err = g.Wait()
	results.Close()
	if err != nil {
		return nil, err
	}

	if r.config.Report == "" {
		return results.Collect()
	}

	collected, err := results.Collect()
	if err != nil {
		return nil, err
	}
	if err := WriteReport(r.config.Report, collected); err != nil {
		return nil, err
	}
	r.logger.Info().Str("report", r.config.Report).Int("results", len(collected)).Msg("report written")
	return collected, nil
}
