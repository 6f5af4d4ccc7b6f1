package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/manuver-backend/internal/adapter/postgres"
	riwayatrepo "github.com/heartmarshall/manuver-backend/internal/adapter/postgres/riwayat"
	"github.com/heartmarshall/manuver-backend/internal/auth"
	"github.com/heartmarshall/manuver-backend/internal/config"
	"github.com/heartmarshall/manuver-backend/internal/metrics"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat"
	"github.com/heartmarshall/manuver-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the riwayat service and its sessions, and serves the
// HTTP API until ctx is cancelled or the process receives SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	m := metrics.New()
	m.ObservePool(pool)
	opts := RiwayatOptions(cfg.Riwayat)

	svc := riwayat.NewService(
		logger,
		riwayatrepo.NewRecordRepo(pool),
		riwayatrepo.NewItemRepo(pool),
		postgres.NewTxManager(pool),
		m,
		opts,
	)
	sessions := riwayat.NewSessionManager(logger, svc, m, opts, cfg.Riwayat.SessionIdleTTL)
	defer sessions.Close()

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, cfg.Auth.MasterGardu)

	health := rest.NewHealthHandler(pool, sessions, BuildVersion())
	router := rest.NewRouter(rest.RouterDeps{
		Log:     logger,
		CORS:    cfg.CORS,
		Tokens:  tokens,
		Health:  health,
		Riwayat: rest.NewRiwayatHandler(svc, sessions, logger),
		Metrics: m.Handler(),
	})

	srv := newHTTPServer(cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sessions.Run(gctx, 0)
		return nil
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		health.Drain()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("application stopped")
	return nil
}

// RiwayatOptions maps the riwayat config section onto service options.
func RiwayatOptions(cfg config.RiwayatConfig) riwayat.Options {
	return riwayat.Options{
		PageSize:       cfg.PageSize,
		SearchDebounce: cfg.SearchDebounce,
		UndoDepth:      cfg.UndoDepth,
		BatchWait:      cfg.BatchWait,
	}
}

func newHTTPServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
