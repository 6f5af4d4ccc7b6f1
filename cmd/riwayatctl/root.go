package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/manuver-backend/internal/adapter/postgres"
	riwayatrepo "github.com/heartmarshall/manuver-backend/internal/adapter/postgres/riwayat"
	"github.com/heartmarshall/manuver-backend/internal/app"
	"github.com/heartmarshall/manuver-backend/internal/config"
	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat"
)

// scopeFlags selects whose records a command sees.
type scopeFlags struct {
	gardu  string
	master bool
	user   string
}

func (f *scopeFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.gardu, "gardu", "", "substation code to act as")
	cmd.PersistentFlags().BoolVar(&f.master, "master", false, "act as the master account (all substations)")
	cmd.PersistentFlags().StringVar(&f.user, "user", "", "user id (random when empty)")
}

func (f *scopeFlags) scope() (domain.Scope, error) {
	userID := uuid.New()
	if f.user != "" {
		id, err := uuid.Parse(f.user)
		if err != nil {
			return domain.Scope{}, fmt.Errorf("invalid --user: %w", err)
		}
		userID = id
	}

	gardu := domain.NormalizeGardu(f.gardu)
	if !f.master && gardu == "" {
		return domain.Scope{}, fmt.Errorf("either --gardu or --master is required")
	}

	return domain.Scope{UserID: userID, Gardu: gardu, Master: f.master}, nil
}

// backend holds everything a database-backed command needs.
type backend struct {
	cfg      *config.Config
	log      *slog.Logger
	service  *riwayat.Service
	sessions *riwayat.SessionManager
	close    func()
}

func openBackend(ctx context.Context, configPath string, debug bool) (*backend, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	if !debug {
		cfg.Log.Level = "warn"
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	opts := app.RiwayatOptions(cfg.Riwayat)
	// Nobody is typing here, so the search can run right away.
	opts.SearchDebounce = time.Millisecond

	svc := riwayat.NewService(
		logger,
		riwayatrepo.NewRecordRepo(pool),
		riwayatrepo.NewItemRepo(pool),
		postgres.NewTxManager(pool),
		nil,
		opts,
	)
	sessions := riwayat.NewSessionManager(logger, svc, nil, opts, cfg.Riwayat.SessionIdleTTL)

	return &backend{
		cfg:      cfg,
		log:      logger,
		service:  svc,
		sessions: sessions,
		close: func() {
			sessions.Close()
			pool.Close()
		},
	}, nil
}

func rootCmd() *cobra.Command {
	var (
		flags      scopeFlags
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "riwayatctl",
		Short: "Inspect the maneuver logbook",
		Long: `riwayatctl searches maneuver records and renders their WhatsApp
reports straight from the database, scoped to one substation or to the
master account.

Examples:
  riwayatctl search --gardu BTG --query "23 mar" --bay "LINE 1"
  riwayatctl report --master 5f0c...
  riwayatctl token --gardu BTG`,
		SilenceUsage: true,
	}

	flags.register(cmd)
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (defaults to CONFIG_PATH or ./config.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at the configured level instead of warn")

	open := func(ctx context.Context) (*backend, domain.Scope, error) {
		scope, err := flags.scope()
		if err != nil {
			return nil, domain.Scope{}, err
		}
		b, err := openBackend(ctx, configPath, debug)
		if err != nil {
			return nil, domain.Scope{}, err
		}
		return b, scope, nil
	}

	cmd.AddCommand(searchCmd(open))
	cmd.AddCommand(reportCmd(open))
	cmd.AddCommand(tokenCmd(&flags))

	return cmd
}

type opener func(ctx context.Context) (*backend, domain.Scope, error)
