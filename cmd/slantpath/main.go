package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/star/slantpath/internal/api"
	"github.com/star/slantpath/internal/atmosphere"
	"github.com/star/slantpath/internal/config"
	"github.com/star/slantpath/internal/health"
	"github.com/star/slantpath/internal/metrics"
	"github.com/star/slantpath/internal/raytrace"
	"github.com/star/slantpath/internal/spectral"
	"github.com/star/slantpath/internal/sweep"
)

func main() {
	var level slog.LevelVar
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: &level,
	}))

	cfg := config.Load(logger)
	level.Set(cfg.LogLevel)

	var profile atmosphere.Profile = cfg.Atmosphere
	if cfg.MemoizeProfile {
		profile = atmosphere.Memoize(profile)
	}

	tracer := raytrace.NewTracer(cfg.BatchWidth)
	pool := sweep.NewPool(cfg.Sweep.Workers, tracer, logger)
	metrics.SetSweepWorkers(pool.Workers())

	svc := &api.Service{
		Tracer:         tracer,
		Pool:           pool,
		Profile:        profile,
		Model:          spectral.Model{Width: cfg.BatchWidth},
		MaxSweepPoints: cfg.Sweep.MaxPoints,
	}

	ready := &health.Readiness{}
	srv := api.NewServer(cfg.HTTPAddr, logger, ready, svc)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "workers", pool.Workers(), "batch_width", int(cfg.BatchWidth))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	if err := selfCheck(tracer, profile, logger); err != nil {
		logger.Error("startup self-check failed, staying not ready", "error", err)
	} else {
		ready.SetReady(true)
	}

	<-ctx.Done()
	logger.Info("shutting down server...")
	ready.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// selfCheck traces a zenith path through the water vapour line and verifies
// the result is finite and physically plausible.
func selfCheck(tracer *raytrace.Tracer, profile atmosphere.Profile, logger *slog.Logger) error {
	start := time.Now()
	res := tracer.Trace(22.235, 0, 10, 0, profile)
	if !res.Valid() {
		return sweep.ErrNonFinite
	}
	if !(res.AbsorptionDB > 0) || !(res.ExcessPathLengthKm > 0) {
		return errors.New("self-check trace has no absorption or excess path")
	}

	logger.Info("self-check passed",
		"absorption_db", res.AbsorptionDB,
		"excess_path_m", res.ExcessPathLengthKm*1000,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
