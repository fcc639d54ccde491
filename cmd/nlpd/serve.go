package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"nlpd/internal/config"
	"nlpd/internal/httpapi"
	"nlpd/internal/nlp"
	"nlpd/internal/registry"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// loadHost resolves the configured model and loads it. Any error here is fatal.
func loadHost(cfg config.Config, log zerolog.Logger) (*nlp.Host, error) {
	path, err := registry.Resolve(cfg.ModelsDir, cfg.Model)
	if err != nil {
		return nil, err
	}
	return nlp.New(nlp.Config{
		ModelPath:     path,
		MaxInflight:   cfg.MaxInflight,
		MaxQueueDepth: cfg.MaxQueueDepth,
		MaxWait:       time.Duration(cfg.MaxWaitMS) * time.Millisecond,
		Logger:        &log,
	})
}

func runServe(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	// The model must be loaded before the port is bound.
	host, err := loadHost(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return fmt.Errorf("startup: %w", err)
	}

	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(cfg.LogLevel)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSOrigins, nil, nil)

	baseCtx, cancelBase := context.WithCancel(ctx)
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(host),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("model", host.ModelName()).Msg("nlpd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)
	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-stop:
	case <-ctx.Done():
	}

	host.Drain()
	cancelBase()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
		return err
	}
	log.Info().Msg("nlpd stopped")
	return nil
}
