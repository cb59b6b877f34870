// Command indexer rebuilds the similarity index from the archived projects table
// and writes the artifacts to INDEX_DIR. A running server picks them up on its next
// lazy load, or immediately through POST /api/v1/similarity/index/rebuild.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"project-intake-backend/internal/config"
	"project-intake-backend/internal/database"
	"project-intake-backend/internal/logger"
	"project-intake-backend/internal/repository"
	"project-intake-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	migrate := flag.Bool("migrate", false, "run schema migrations before indexing")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	logger.Setup(cfg.LogLevel, os.Stdout)
	log := logger.WithComponent("indexer")

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrate: !*migrate})
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}

	similarityService, _ := service.NewSimilarityServiceFromConfig(cfg, repository.NewArchivedProjectRepository(db))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	status, err := similarityService.RebuildFromStore(ctx)
	if err != nil {
		log.WithError(err).Fatal("failed to rebuild similarity index")
	}

	log.WithFields(map[string]interface{}{
		"projects": status.Projects,
		"dir":      cfg.IndexDir,
	}).Info("similarity index written")
}
