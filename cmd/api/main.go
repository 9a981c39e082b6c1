package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gvpass/gvpass-go/internal/config"
	"github.com/gvpass/gvpass-go/internal/crypto"
	"github.com/gvpass/gvpass-go/internal/handler"
	"github.com/gvpass/gvpass-go/internal/repository"
	"github.com/gvpass/gvpass-go/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	var (
		recorder     service.EventRecorder
		statsService *service.StatsService
	)

	// Usage statistics are only available when a database is reachable.
	db, err := repository.NewDB(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, statistics disabled", "error", err)
	} else {
		defer db.Close()

		statsRepo := repository.NewStatsRepository(db)
		if err := statsRepo.Migrate(context.Background()); err != nil {
			slog.Error("migrating statistics schema failed", "error", err)
			os.Exit(1)
		}
		recorder = statsRepo
		statsService = service.NewStatsService(statsRepo)
	}

	genService := service.NewGeneratorService(crypto.NewGenerator(nil), recorder)

	router := handler.NewRouter(
		handler.NewGeneratorHandler(genService),
		handler.NewStatsHandler(statsService),
		handler.RouterConfig{
			JWTSecret:      cfg.JWTSecret,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
		},
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "statistics", statsService != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
