package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/svaldez/stockwise/internal/config"
	"github.com/svaldez/stockwise/internal/domain/materials"
	"github.com/svaldez/stockwise/internal/i18n"
	"github.com/svaldez/stockwise/internal/infra/db"
	"github.com/svaldez/stockwise/internal/infra/httpx"
	"github.com/svaldez/stockwise/internal/infra/logger"
	"github.com/svaldez/stockwise/internal/infra/notify"
	"github.com/svaldez/stockwise/internal/storage"
	filestore "github.com/svaldez/stockwise/internal/storage/file"
	pgstore "github.com/svaldez/stockwise/internal/storage/postgres"
	"github.com/svaldez/stockwise/internal/web"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (storage.Store, error) {
	if cfg.Storage.Backend == "postgres" {
		if err := runMigrations(cfg.Postgres.DSN); err != nil {
			return nil, err
		}
		log.Info("migrations applied")

		pool, err := db.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		log.Info("db connected")
		return pgstore.New(pool), nil
	}
	return filestore.New(cfg.Storage.Dir)
}

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(os.Stdout, cfg.App.Env)
	bundle := i18n.New(cfg.App.Locale)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("storage open failed", "backend", cfg.Storage.Backend, "err", err)
		return
	}
	defer func() { _ = st.Close() }()

	var notifier materials.Notifier
	tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID, bundle, log)
	if err != nil {
		log.Error("telegram init failed, alerts disabled", "err", err)
	} else if tg != nil {
		notifier = tg
		log.Info("telegram alerts enabled", "chat_id", cfg.Telegram.ChatID)
	}

	// the initial load happens here, before the server accepts requests
	svc := materials.NewService(ctx, st, log, notifier)
	handler := web.New(svc, bundle, log)

	srv := httpx.New(cfg.HTTP.Addr, handler.Routes(), cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr, "locale", bundle.Tag().String())

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
