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

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/pgapool/internal/api/espn"
	"github.com/omarshaarawi/pgapool/internal/api/fantasy"
	"github.com/omarshaarawi/pgapool/internal/bot"
	"github.com/omarshaarawi/pgapool/internal/config"
	"github.com/omarshaarawi/pgapool/internal/draft"
	"github.com/omarshaarawi/pgapool/internal/repository/memory"
	"github.com/omarshaarawi/pgapool/internal/repository/redis"
	"github.com/omarshaarawi/pgapool/internal/scheduler"
	"github.com/omarshaarawi/pgapool/internal/service"
	"github.com/omarshaarawi/pgapool/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	if err := draft.Pool.Validate(); err != nil {
		return fmt.Errorf("invalid draft: %w", err)
	}

	espnClient := espn.NewClient(cfg.ESPNAPI)
	espnAPI := espn.NewAPI(espnClient)
	fantasyAPI := fantasy.NewAPI(espnAPI, draft.Pool, draft.Prizes)

	repo, closeRepo, err := newRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	poolService := service.NewPoolService(fantasyAPI, repo, cfg.Refresh.CacheTTL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sendMessage func(string) error
	if cfg.TelegramBot.Enabled() {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, poolService)
		if err != nil {
			return err
		}
		if cfg.TelegramBot.ChatID != 0 {
			sendMessage = telegramBot.SendMessage
		}

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	}

	sched, err := scheduler.NewScheduler(poolService, sendMessage, cfg.Refresh)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      web.NewHandler(poolService, cfg.Refresh.Interval),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRepository(cfg *config.Config) (service.Repository, func(), error) {
	if cfg.Cache.RedisURL == "" {
		return memory.NewRepository(), func() {}, nil
	}

	repo, err := redis.NewRepository(cfg.Cache.RedisURL, cfg.Cache.Key, cfg.Refresh.CacheTTL)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := repo.Ping(ctx); err != nil {
		slog.Warn("Redis unreachable, cache reads will fall through to ESPN", "error", err)
	}

	return repo, func() {
		if err := repo.Close(); err != nil {
			slog.Error("Error closing redis", "error", err)
		}
	}, nil
}
