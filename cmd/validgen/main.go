package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/syssam/validgen"
	"github.com/syssam/validgen/compiler/gen"
	"github.com/syssam/validgen/compiler/load"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}
	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "validgen",
		Usage:   "Generate runtime validator declarations from a GraphQL schema.",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("VALIDGEN_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to validgen.yml",
				Value: "validgen.yml",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}
			log.Logger = log.Level(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate validator declarations from the schema",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "schema", Usage: "schema file(s), overrides config"},
					&cli.StringFlag{Name: "target", Usage: "output directory, overrides config"},
					&cli.StringFlag{Name: "package", Usage: "target package import path, overrides config"},
					&cli.StringFlag{Name: "model-package", Usage: "native model package import path, overrides config"},
					&cli.StringFlag{Name: "from-snapshot", Usage: "generate from a snapshot file instead of parsing SDL"},
					&cli.BoolFlag{Name: "watch", Usage: "regenerate when schema files change"},
				},
				Action: runGenerate,
			},
			{
				Name:  "snapshot",
				Usage: "Parse the schema and write a snapshot cache file",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "schema", Usage: "schema file(s), overrides config"},
					&cli.StringFlag{Name: "out", Usage: "snapshot output path", Value: ".validgen.snap"},
				},
				Action: runSnapshot,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("validgen failed")
	}
}

// settings merges the yaml config file with command line overrides.
func settings(c *cli.Command) (*FileConfig, error) {
	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if schemas := c.StringSlice("schema"); len(schemas) > 0 {
		cfg.Schema = schemas
	}
	if target := c.String("target"); target != "" {
		cfg.Target = target
	}
	if pkg := c.String("package"); pkg != "" {
		cfg.Package = pkg
	}
	if pkg := c.String("model-package"); pkg != "" {
		cfg.ModelPackage = pkg
	}
	return cfg, nil
}

func (cfg *FileConfig) options() []gen.Option {
	opts := []gen.Option{
		gen.WithPackage(cfg.Package),
		gen.WithTarget(cfg.Target),
	}
	if cfg.ModelPackage != "" {
		opts = append(opts, gen.WithModelPackage(cfg.ModelPackage))
	}
	if cfg.Header != "" {
		opts = append(opts, gen.WithHeader(cfg.Header))
	}
	return opts
}

func runGenerate(ctx context.Context, c *cli.Command) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}

	run := func() error {
		if snap := c.String("from-snapshot"); snap != "" {
			s, err := load.ReadSnapshot(snap)
			if err != nil {
				return err
			}
			return validgen.GenerateSnapshot(ctx, s, cfg.options()...)
		}
		return validgen.Generate(ctx, cfg.Schema, cfg.options()...)
	}

	if err := run(); err != nil {
		return err
	}
	log.Info().Strs("schema", cfg.Schema).Str("target", cfg.Target).Msg("generated validators")

	if !c.Bool("watch") {
		return nil
	}
	return watch(ctx, cfg.Schema, run)
}

func runSnapshot(ctx context.Context, c *cli.Command) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	snap, err := load.Load(cfg.Schema...)
	if err != nil {
		return err
	}
	out := c.String("out")
	if err := load.WriteSnapshot(out, snap); err != nil {
		return err
	}
	log.Info().Str("out", out).Msg("wrote schema snapshot")
	return nil
}
