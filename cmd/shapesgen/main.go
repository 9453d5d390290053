// Command shapesgen generates a dataset of shape images.
//
// The images are written as PNG files into the output directory, together
// with a file latents.json which records the factor names, the latent
// vectors and the resolved sample descriptions.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"seehuhn.de/go/shapes/dataset"
	"seehuhn.de/go/shapes/internal/config"
	logpkg "seehuhn.de/go/shapes/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	env := flag.String("env", logpkg.Env(), "logging environment (local, dev, prod)")
	verbose := flag.Bool("v", false, "log debug messages")
	samples := flag.Int("n", 0, "number of samples (overrides output.samples)")
	outDir := flag.String("o", "", "output directory (overrides output.dir)")
	workers := flag.Int("workers", 0, "number of render workers (overrides output.workers)")
	seed := flag.Uint64("seed", 0, "random seed (overrides output.seed)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "shapesgen:", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Output.Samples = *samples
		case "workers":
			cfg.Output.Workers = *workers
		case "seed":
			cfg.Output.Seed = seed
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "shapesgen:", err)
		os.Exit(1)
	}

	logger, err := logpkg.New(logpkg.Options{
		Env:     *env,
		Level:   cfg.Logging.Level,
		Verbose: *verbose,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "shapesgen: failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("dataset generation failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg, err := config.Parse(nil)
		if err != nil {
			return config.Config{}, err
		}
		return cfg, cfg.Validate()
	}
	return config.Load(path)
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	dc, err := cfg.Dataset()
	if err != nil {
		return err
	}

	seed := uint64(time.Now().UnixNano())
	if cfg.Output.Seed != nil {
		seed = *cfg.Output.Seed
	}

	g, err := dataset.New(dc,
		dataset.WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		dataset.WithWorkers(cfg.Output.Workers),
		dataset.WithLogger(logger.Named("dataset")))
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	logger.Info("generating dataset",
		zap.Strings("factors", cfg.Factors),
		zap.String("distribution", cfg.Distribution.Type),
		zap.Int("samples", cfg.Output.Samples),
		zap.Int("workers", cfg.Output.Workers),
		zap.Uint64("seed", seed),
		zap.String("dir", cfg.Output.Dir))

	start := time.Now()
	images, _, err := g.Generate(ctx, cfg.Output.Samples)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err := writeDataset(cfg.Output.Dir, g, images, seed); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	logger.Info("dataset written",
		zap.Int("samples", images.N),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
