package bench

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/SpongeData-cz/primes"
)

const (
	DefaultLimit    = 1000000
	DefaultRepeat   = 1
	DefaultParallel = 1

	// MaxLimit bounds the limit of a run; the bit-array reference allocates one bit per candidate.
	MaxLimit = 1 << 32
)

/*
CheckLimit rejects limits no sieve can serve.

Parameters:
  - limit - exclusive bound of the consumed primes.

Returns:
  - nil when 0 < limit <= MaxLimit.
*/
func CheckLimit(limit uint64) error {
	if limit == 0 {
		return errors.New("limit must be positive")
	}
	if limit > MaxLimit {
		return errors.Errorf("limit %d exceeds the maximum of %d", limit, uint64(MaxLimit))
	}
	return nil
}

// Config describes a benchmark run.
type Config struct {
	Limit    uint64   `yaml:"limit" json:"limit"`
	Variants []string `yaml:"variants" json:"variants"`
	Repeat   int      `yaml:"repeat" json:"repeat"`
	Parallel int      `yaml:"parallel" json:"parallel"`
	Report   string   `yaml:"report" json:"report"`
}

// LoadConfig reads a YAML config file and fills in the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	config.SetDefaults()

	return &config, config.Validate()
}

// SetDefaults fills every zero field with its default; no variants means all of them.
func (c *Config) SetDefaults() {
	if c.Limit == 0 {
		c.Limit = DefaultLimit
	}
	if len(c.Variants) == 0 {
		for _, v := range primes.Variants() {
			c.Variants = append(c.Variants, v.Name)
		}
	}
	if c.Repeat == 0 {
		c.Repeat = DefaultRepeat
	}
	if c.Parallel == 0 {
		c.Parallel = DefaultParallel
	}
}

// Validate checks the config after defaults have been applied.
func (c *Config) Validate() error {
	if err := c.checkNumbers(); err != nil {
		return err
	}
	_, err := resolve(c.Variants)
	return err
}

func (c *Config) checkNumbers() error {
	if err := CheckLimit(c.Limit); err != nil {
		return err
	}
	if c.Repeat < 0 {
		return errors.New("repeat cannot be negative")
	}
	if c.Parallel < 0 {
		return errors.New("parallel cannot be negative")
	}
	return nil
}

func resolve(names []string) ([]primes.Variant, error) {
	out := make([]primes.Variant, 0, len(names))
	for _, name := range names {
		v, ok := primes.Lookup(name)
		if !ok {
			return nil, errors.Errorf("unknown variant %q", name)
		}
		out = append(out, v)
	}
	return out, nil
}
