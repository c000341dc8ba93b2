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

	"github.com/Dosada05/bracketboard/brackets"
	"github.com/Dosada05/bracketboard/config"
	"github.com/Dosada05/bracketboard/db"
	"github.com/Dosada05/bracketboard/handlers"
	"github.com/Dosada05/bracketboard/repositories"
	api "github.com/Dosada05/bracketboard/routes"
	"github.com/Dosada05/bracketboard/services"
	"github.com/Dosada05/bracketboard/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Duration("refresh_interval", cfg.RefreshInterval),
		slog.Bool("snapshot_storage", cfg.R2 != nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	if err := db.EnsureSchema(ctx, dbConn); err != nil {
		logger.Error("failed to prepare database schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.R2 != nil {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	}

	wsHub := brackets.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket Hub started")

	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	performanceRepo := repositories.NewPostgresPerformanceRepository(dbConn)

	bracketService := services.NewBracketService(tournamentRepo, matchRepo, logger)
	leaderboardService := services.NewLeaderboardService(tournamentRepo, performanceRepo, logger)
	publisher := services.NewSnapshotPublisher(bracketService, leaderboardService, wsHub, uploader, logger)

	go runRefresher(ctx, publisher, cfg.RefreshInterval, logger)

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Bracket:     handlers.NewBracketHandler(bracketService),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardService),
		Publish:     handlers.NewPublishHandler(publisher),
		WebSocket:   handlers.NewWebSocketHandler(wsHub, publisher, logger),
	}, []byte(cfg.JWTSecretKey), logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}

// runRefresher republishes watched tournaments until ctx is cancelled.
func runRefresher(ctx context.Context, publisher *services.SnapshotPublisher, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	logger.Info("snapshot refresher started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("snapshot refresher stopped")
			return
		case <-ticker.C:
			if err := publisher.RefreshActive(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("snapshot refresh incomplete", slog.Any("error", err))
			}
		}
	}
}
