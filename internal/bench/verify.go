package bench

import (
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/SpongeData-cz/primes"
)

// First25 are the primes below 100.
var First25 = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

/*
Verify checks that every named variant emits exactly the primes below limit.

The reference is the bit-array sieve over [2, limit); every variant is also checked against
the first 25 primes. All mismatches are reported, combined into one error.
*/
func Verify(limit uint64, names []string) error {
	if err := CheckLimit(limit); err != nil {
		return err
	}
	variants, err := resolve(names)
	if err != nil {
		return err
	}
	reference, err := primes.NewLimitedSieveOpt(limit).Collect()
	if err != nil {
		return err
	}

	var errs error
	for _, v := range variants {
		errs = multierr.Append(errs, check(v, 100, First25))
		errs = multierr.Append(errs, check(v, limit, reference))
	}
	return errs
}

func check(v primes.Variant, limit uint64, want []uint64) error {
	got, err := v.Open(limit).Pipe(primes.Below(limit)).(primes.Filter[uint64]).Collect()
	if err != nil {
		return errors.Wrapf(err, "%s", v.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		return errors.Errorf("%s: primes below %d mismatch (-want +got):\n%s", v.Name, limit, diff)
	}
	return nil
}
