package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpongeData-cz/primes/internal/bench"
)

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, []bench.Result{
		{Variant: "heap_sieve_opt", Count: 78498, Elapsed: 1500 * time.Millisecond},
		{Variant: "flat_sieve", Count: 25, Elapsed: 10 * time.Millisecond},
	})
	assert.Equal(t,
		"heap_sieve_opt               78498 1.50\n"+
			"flat_sieve                      25 0.01\n",
		buf.String())
}

func TestLimitArg(t *testing.T) {
	tests := []struct {
		name    string
		in      int64
		want    uint64
		wantErr string
	}{
		{name: "positive", in: 100, want: 100},
		{name: "maximum", in: bench.MaxLimit, want: bench.MaxLimit},
		{name: "zero", in: 0, wantErr: "limit must be positive, got 0"},
		{name: "negative", in: -5, wantErr: "limit must be positive, got -5"},
		{name: "too large", in: bench.MaxLimit + 1, wantErr: "exceeds the maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := limitArg(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
