// Package main serves the HTML site with its chat command box.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/internal/website"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/tracing"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	log := logger.NewLogger()
	if err := run(log); err != nil {
		log.Error("website stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig(log)
	if err != nil {
		return err
	}

	tp, err := tracing.Setup(ctx, cfg.Otel, log)
	if err != nil {
		return err
	}
	if tp != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			_ = tp.Shutdown(shutdownCtx)
		}()
	}

	httpLogger := logger.NewHTTPLogger(log)
	defer func() { _ = httpLogger.Close() }()

	app, err := website.New(ctx, cfg, log, httpLogger, nil)
	if err != nil {
		return err
	}

	if cfg.Scheduler.Enabled {
		if err := app.Scheduler.Start(ctx); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			_ = app.Scheduler.Stop(shutdownCtx)
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Website.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("website starting", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down website")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
