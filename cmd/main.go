package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "mesa-auction/internal/adapter/http"
	"mesa-auction/internal/adapter/memory"
	"mesa-auction/internal/adapter/postgres"
	"mesa-auction/internal/adapter/usecase"
	"mesa-auction/internal/auth"
	"mesa-auction/internal/clock"
	"mesa-auction/internal/config"
	"mesa-auction/internal/config/configs"
	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
	"mesa-auction/internal/db"
	"mesa-auction/internal/logger"
	"mesa-auction/internal/obs"
)

const shutdownTimeout = 5 * time.Second

// main loads configuration, opens the configured ledger store, wires the
// auction engine behind the HTTP adapter and serves until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	log := logger.New(cfg.Log, os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("ledger store error", slog.Any("error", err))
		return
	}
	defer closeStore()

	if cfg.Psql.Seed {
		created, err := db.Seed(ctx, store, nil)
		if err != nil {
			log.Error("seed error", slog.Any("error", err))
			return
		}
		log.Info("demo data seeded", slog.Int("records", len(created)))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := obs.NewMetrics(reg)

	tokens, err := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.Issuer)
	if err != nil {
		log.Error("auth config error", slog.Any("error", err))
		return
	}

	svc := usecase.NewAuctionUseCase(store, usecase.Options{
		AuctionDuration: domain.Tick(cfg.Auction.DurationTicks),
		MinimumBidFloor: cfg.Auction.MinimumBidFloor,
		DayLength:       domain.Tick(cfg.Auction.DayLengthTicks),
		Operator:        domain.Identity(cfg.Auth.Operator),
	}, log, metrics)

	handler := httpadapter.NewHandler(svc, log, httpadapter.Config{
		Tokens:        tokens,
		Clock:         clock.NewTicker(cfg.Auction.Genesis, cfg.Auction.TickInterval),
		Metrics:       metrics,
		RatePerSecond: cfg.HTTP.RatePerSecond,
		RateBurst:     cfg.HTTP.RateBurst,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.NormalizedDriver()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			log.Error("server error", slog.Any("error", err))
			return
		}
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		log.Info("server gracefully stopped")
	}
}

// openStore builds the ledger backend selected by STORE_DRIVER. The
// returned func releases it.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (port.LedgerStore, func(), error) {
	if cfg.Store.NormalizedDriver() != configs.StorePostgres {
		return memory.NewLedgerStore(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String(), log); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewLedgerStore(pool), pool.Close, nil
}
