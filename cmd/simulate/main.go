// Package main is the entry point for the headless platformer simulator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/platformer/internal/config"
	"github.com/Faultbox/platformer/internal/game/world"
	"github.com/Faultbox/platformer/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Platformer Simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := runAll(ctx, cfg, logger.Log)
	if err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}

	r := results[0]
	logger.Info("simulation finished",
		zap.Uint64("frames", r.Frames),
		zap.Int("runs", len(results)),
		zap.Int("respawns", r.Respawns),
		zap.Stringer("state", r.State),
		zap.Int("health", r.Health),
		zap.Float32("x", r.Position.X),
		zap.Float32("y", r.Position.Y),
		zap.Float32("z", r.Position.Z),
		zap.String("digest", fmt.Sprintf("%016x", r.Digest)))
}

// runAll plays cfg.Simulation.Runs replays concurrently and fails when any
// two of them disagree.
func runAll(ctx context.Context, cfg *config.Config, log *zap.Logger) ([]world.Result, error) {
	runs := max(cfg.Simulation.Runs, 1)
	results := make([]world.Result, runs)

	g, ctx := errgroup.WithContext(ctx)
	for i := range runs {
		g.Go(func() error {
			r, err := world.Run(ctx, cfg, log.With(zap.Int("run", i)))
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, r := range results[1:] {
		if r.Digest != results[0].Digest {
			return nil, fmt.Errorf("run %d diverged: digest %016x, want %016x", i+1, r.Digest, results[0].Digest)
		}
	}
	return results, nil
}
