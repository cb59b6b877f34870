package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-intake-backend/internal/api/routes"
	"project-intake-backend/internal/config"
	"project-intake-backend/internal/database"
	"project-intake-backend/internal/logger"
	"project-intake-backend/internal/repository"
	"project-intake-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "project-intake-backend/docs" // This is needed for swag
)

//	@title			Project Intake Backend API
//	@version		1.0
//	@description	Backend API for student project intake: team registration, similarity screening against prior projects, mentor allocation and phase evaluation.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api/v1

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

func run() error {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(cfg.LogLevel, os.Stdout)
	log := logger.WithComponent("server")

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	similarityService, index := service.NewSimilarityServiceFromConfig(cfg, repository.NewArchivedProjectRepository(db))
	// a missing index is not fatal: evaluations degrade until one is built
	if found, err := index.Load(); err != nil {
		log.WithError(err).Warn("failed to load similarity index")
	} else if !found {
		log.WithField("dir", cfg.IndexDir).Warn("similarity index not found; run the indexer or POST /api/v1/similarity/index/rebuild")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg, similarityService)
	if err != nil {
		return err
	}

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		log.WithField("port", port).Info("starting server")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
	return nil
}
