package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/qrasickz/vovabank_backend/internal/core/services"
	"github.com/qrasickz/vovabank_backend/internal/dto"
	"github.com/qrasickz/vovabank_backend/internal/handlers"
	"github.com/qrasickz/vovabank_backend/internal/middleware"
	"github.com/qrasickz/vovabank_backend/internal/platform/config"
	"github.com/qrasickz/vovabank_backend/internal/repositories/storage/jsonfile"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := jsonfile.Open(cfg.DataFile)
	if err != nil {
		logger.Error("Failed to open data file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing data file", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Snapshot store opened", slog.String("path", cfg.DataFile))

	repos := jsonfile.NewRepositoryProvider(store)
	container := services.NewServiceContainer(cfg, repos)

	if err := container.User.EnsureSeedAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword, cfg.AdminFullName); err != nil {
		logger.Error("Failed to ensure seed admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterCustomValidators()

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the browser frontend)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
