package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/SpongeData-cz/primes"
	"github.com/SpongeData-cz/primes/internal/bench"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "primebench",
		Usage:   "Compare bounded and unbounded prime sieves",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("PRIMEBENCH_LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, errors.Wrap(err, "failed to parse log level")
			}
			log.Logger = log.Level(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Time every sieve consuming the primes below a limit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "exclusive bound of the consumed primes", Value: bench.DefaultLimit},
					&cli.StringSliceFlag{Name: "variant", Usage: "sieve to run, repeatable (default all)"},
					&cli.IntFlag{Name: "repeat", Usage: "rounds per sieve", Value: bench.DefaultRepeat},
					&cli.IntFlag{Name: "parallel", Usage: "sieves timed at once", Value: bench.DefaultParallel},
					&cli.StringFlag{Name: "report", Usage: "NDJSON file receiving the results"},
				},
				Action: run,
			},
			{
				Name:  "verify",
				Usage: "Check every sieve against the reference sieve",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 100000},
					&cli.StringSliceFlag{Name: "variant"},
				},
				Action: verify,
			},
			{
				Name:  "list",
				Usage: "Print the primes below a limit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "variant", Value: "heap_sieve_opt"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 100},
					&cli.StringFlag{Name: "out", Usage: "write NDJSON records to this file instead of stdout"},
				},
				Action: list,
			},
			{
				Name:      "show",
				Usage:     "Print a report written by run",
				ArgsUsage: "REPORT",
				Action:    show,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run primebench")
	}
}

// limitArg converts the signed --limit flag, refusing values that would wrap around.
func limitArg(n int64) (uint64, error) {
	if n <= 0 {
		return 0, errors.Errorf("limit must be positive, got %d", n)
	}
	limit := uint64(n)
	return limit, bench.CheckLimit(limit)
}

func config(c *cli.Command) (bench.Config, error) {
	var cfg bench.Config
	if path := c.String("config"); path != "" {
		loaded, err := bench.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	if c.IsSet("limit") || cfg.Limit == 0 {
		limit, err := limitArg(int64(c.Int("limit")))
		if err != nil {
			return cfg, err
		}
		cfg.Limit = limit
	}
	if c.IsSet("variant") {
		cfg.Variants = c.StringSlice("variant")
	}
	if c.IsSet("repeat") || cfg.Repeat == 0 {
		cfg.Repeat = int(c.Int("repeat"))
	}
	if c.IsSet("parallel") || cfg.Parallel == 0 {
		cfg.Parallel = int(c.Int("parallel"))
	}
	if c.IsSet("report") {
		cfg.Report = c.String("report")
	}
	return cfg, nil
}

func run(ctx context.Context, c *cli.Command) error {
	cfg, err := config(c)
	if err != nil {
		return err
	}
	log.Info().
		Uint64("limit", cfg.Limit).
		Int("repeat", cfg.Repeat).
		Int("parallel", cfg.Parallel).
		Msg("benchmark started")

	results, err := bench.NewRunner(cfg, log.Logger).Run(ctx)
	if err != nil {
		return err
	}
	printResults(os.Stdout, results)
	return nil
}

func printResults(w io.Writer, results []bench.Result) {
	for _, res := range results {
		fmt.Fprintf(w, "%-25s %8d %.2f\n", res.Variant, res.Count, res.Elapsed.Seconds())
	}
}

func verify(ctx context.Context, c *cli.Command) error {
	names := c.StringSlice("variant")
	if len(names) == 0 {
		for _, v := range primes.Variants() {
			names = append(names, v.Name)
		}
	}
	limit, err := limitArg(int64(c.Int("limit")))
	if err != nil {
		return err
	}
	if err := bench.Verify(limit, names); err != nil {
		return err
	}
	log.Info().Int("variants", len(names)).Uint64("limit", limit).Msg("all sieves agree")
	return nil
}

func list(ctx context.Context, c *cli.Command) error {
	v, ok := primes.Lookup(c.String("variant"))
	if !ok {
		return errors.Errorf("unknown variant %q", c.String("variant"))
	}
	limit, err := limitArg(int64(c.Int("limit")))
	if err != nil {
		return err
	}
	indexed := v.Open(limit).
		Pipe(primes.Below(limit)).(primes.Filter[uint64]).
		Pipe(primes.NewIndexer()).(primes.Transformer[uint64, primes.Indexed])

	if path := c.String("out"); path != "" {
		out := primes.NewNdjsonOutput[primes.Indexed](path, primes.FileWrite)
		indexed.Pipe(out)
		return out.Run()
	}
	return indexed.ForEach(func(p primes.Indexed) error {
		_, err := fmt.Fprintf(os.Stdout, "%d\t%d\n", p.N, p.Prime)
		return err
	})
}

func show(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("missing report path")
	}
	results, err := bench.ReadReport(path)
	if err != nil {
		return err
	}
	printResults(os.Stdout, results)
	return nil
}
