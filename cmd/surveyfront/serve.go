package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/surveyfront/internal/metrics"
	chiTransport "github.com/kailas-cloud/surveyfront/internal/transport/chi"
	healthuc "github.com/kailas-cloud/surveyfront/internal/usecase/health"
	"github.com/kailas-cloud/surveyfront/internal/version"
)

func newServeCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the survey lookup page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := f.newApp(appOptions{registerer: prometheus.DefaultRegisterer})
			if err != nil {
				return err
			}
			defer a.close()

			return serve(cmd.Context(), a)
		},
	}
}

// newRouter builds the HTTP handler: middleware chain plus front-end routes.
func newRouter(a *app) http.Handler {
	// Browser exports stream through the response, so the download directory
	// is not part of the server's health.
	health := healthuc.New(a.backend, nil)
	server := chiTransport.NewServer(a.lookup, a.export, health, a.logger)

	r := chi.NewRouter()
	r.Use(chiTransport.Recoverer(a.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.RequestLog(a.logger))
	r.Use(chiTransport.BasicAuthMiddleware(a.cfg.Auth.Passwords))
	r.Use(metrics.Middleware())
	server.Register(r)
	return r
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, a *app) error {
	// Register flow metrics explicitly (no init())
	metrics.RegisterFlowMetrics()

	a.logger.Info("Starting surveyfront",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", a.env),
		zap.Int("http_port", a.cfg.HTTP.Port),
		zap.String("backend", a.cfg.Backend.BaseURL),
		zap.Bool("auth", len(a.cfg.Auth.Passwords) > 0),
	)

	addr := fmt.Sprintf(":%d", a.cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(a),
		ReadTimeout:  time.Duration(a.cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(a.cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.HTTP.ShutdownSec)*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	a.logger.Info("Server stopped gracefully")
	return nil
}
