package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        Config
		wantErr     bool
		errContains string
	}{
		{
			name: "all fields",
			content: `
limit: 5000
variants: [heap_sieve_opt, delayed_sieve_opt]
repeat: 3
parallel: 2
report: out.ndjson
`,
			want: Config{
				Limit:    5000,
				Variants: []string{"heap_sieve_opt", "delayed_sieve_opt"},
				Repeat:   3,
				Parallel: 2,
				Report:   "out.ndjson",
			},
		},
		{
			name:    "defaults",
			content: `variants: [flat_sieve]`,
			want: Config{
				Limit:    DefaultLimit,
				Variants: []string{"flat_sieve"},
				Repeat:   DefaultRepeat,
				Parallel: DefaultParallel,
			},
		},
		{
			name:        "unknown variant",
			content:     `variants: [wheel_sieve]`,
			wantErr:     true,
			errContains: `unknown variant "wheel_sieve"`,
		},
		{
			name:        "limit too large",
			content:     `limit: 5000000000`,
			wantErr:     true,
			errContains: "limit 5000000000 exceeds the maximum of 4294967296",
		},
		{
			name:        "negative repeat",
			content:     `repeat: -1`,
			wantErr:     true,
			errContains: "repeat cannot be negative",
		},
		{
			name:        "malformed",
			content:     `limit: [`,
			wantErr:     true,
			errContains: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bench.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			config, err := LoadConfig(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *config)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestDefaultVariants(t *testing.T) {
	var c Config
	c.SetDefaults()
	assert.Len(t, c.Variants, 19)
	assert.Equal(t, "limited_sieve_opt", c.Variants[0])
	assert.Equal(t, "heap_sieve_opt", c.Variants[18])
}

func TestCheckLimit(t *testing.T) {
	negative := int64(-5)
	tests := []struct {
		name    string
		limit   uint64
		wantErr string
	}{
		{name: "zero", limit: 0, wantErr: "limit must be positive"},
		{name: "one", limit: 1},
		{name: "maximum", limit: MaxLimit},
		{name: "above maximum", limit: MaxLimit + 1, wantErr: "exceeds the maximum"},
		{name: "wrapped negative", limit: uint64(negative), wantErr: "exceeds the maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLimit(tt.limit)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateWrappedLimit(t *testing.T) {
	negative := int64(-5)
	c := Config{Limit: uint64(negative)}
	c.SetDefaults()
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit 18446744073709551611 exceeds the maximum")
}
