package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/upmon/upmon/internal/config"
	"github.com/upmon/upmon/internal/httpapi"
	"github.com/upmon/upmon/internal/logging"
	"github.com/upmon/upmon/internal/notify"
	"github.com/upmon/upmon/internal/probe"
	"github.com/upmon/upmon/internal/repo"
	"github.com/upmon/upmon/internal/repo/memory"
	"github.com/upmon/upmon/internal/repo/sqlite"
	"github.com/upmon/upmon/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var (
		checks  repo.CheckStore
		results repo.ResultStore
	)
	if cfg.DBPath != "" {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			logger.Fatal("sqlite_open_error", zap.String("path", cfg.DBPath), zap.Error(err))
		}
		defer store.Close()
		checks, results = store, store
		logger.Info("store_sqlite", zap.String("path", cfg.DBPath))
	} else {
		store := memory.New()
		checks, results = store, store
		logger.Warn("store_memory", zap.String("hint", "set DB_PATH for durable storage"))
	}

	var notifiers notify.Multi
	if tg := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID); tg != nil {
		notifiers = append(notifiers, tg)
		logger.Info("alerts_telegram_enabled")
	}
	if sl := notify.NewSlack(cfg.SlackWebhook); sl != nil {
		notifiers = append(notifiers, sl)
		logger.Info("alerts_slack_enabled")
	}
	var notifier notify.Notifier
	if len(notifiers) > 0 {
		notifier = notifiers
	} else {
		logger.Info("alerts_disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := scheduler.NewSweeper(
		logger,
		checks,
		probe.NewHTTPChecker(cfg.ProbeTimeout),
		scheduler.NewRecorder(logger, checks, results),
		scheduler.NewDispatcher(logger, notifier),
		scheduler.SweeperConfig{
			Interval:    cfg.SweepInterval,
			Backoff:     cfg.SweepBackoff,
			Timeout:     cfg.ProbeTimeout,
			Concurrency: cfg.Concurrency,
		},
	)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		sweeper.Run(ctx)
	}()

	api := httpapi.NewServer(logger, checks, results)
	srv := &http.Server{Addr: cfg.Addr, Handler: api.Router(cfg.APIKeys)}

	go func() {
		logger.Info("api_listen", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api_serve_error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("api_shutdown_error", zap.Error(err))
	}
	<-workerDone
	logger.Info("bye")
}
