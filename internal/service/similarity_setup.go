package service

import (
	"time"

	"project-intake-backend/internal/config"
	"project-intake-backend/internal/judge"
	"project-intake-backend/internal/logger"
	"project-intake-backend/internal/repository"
	"project-intake-backend/internal/vectorindex"
	"project-intake-backend/internal/vectorindex/embedding"
)

// NewSimilarityServiceFromConfig wires the embedder, the on-disk index and the judge
// client named by cfg. The index is returned unloaded. When the embedder cannot be
// built the service still comes up: every search fails and evaluations return the
// degraded result, so submissions keep working.
func NewSimilarityServiceFromConfig(cfg *config.Config, archiveRepo repository.ArchivedProjectRepositoryInterface) (*SimilarityService, *vectorindex.Index) {
	embedder, err := embedding.New(embedding.Config{
		Provider:  cfg.EmbeddingProvider,
		Model:     cfg.EmbeddingModel,
		BaseURL:   cfg.EmbeddingBaseURL,
		APIKey:    cfg.EmbeddingAPIKey,
		CacheDir:  cfg.EmbeddingCacheDir,
		Dimension: cfg.EmbeddingDimension,
	})
	if err != nil {
		logger.WithComponent("similarity").
			WithError(err).
			WithField("provider", cfg.EmbeddingProvider).
			Warn("embedding provider unavailable; similarity checks will be degraded")
		embedder = embedding.NewUnavailable(cfg.EmbeddingDimension, err)
	}

	index := vectorindex.New(cfg.IndexDir, embedder)
	judgeClient := judge.New(judge.Config{
		APIKey:    cfg.OpenRouterAPIKey,
		BaseURL:   cfg.OpenRouterBaseURL,
		Model:     cfg.LLMModel,
		Referer:   cfg.JudgeReferer,
		RateLimit: cfg.JudgeRateLimit,
		Burst:     cfg.JudgeBurst,
	})

	timeout := time.Duration(cfg.JudgeTimeoutSec) * time.Second
	return NewSimilarityService(index, judgeClient, archiveRepo, timeout), index
}
