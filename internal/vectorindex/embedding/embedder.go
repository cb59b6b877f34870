// Package embedding turns project text into fixed-dimension vectors for the similarity index.
package embedding

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates empty or nil input texts
	ErrEmptyInput = errors.New("empty or nil input texts")

	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmbeddingFailed indicates embedding generation failure
	ErrEmbeddingFailed = errors.New("embedding generation failed")
)

// Provider names accepted by New
const (
	ProviderFastEmbed = "fastembed"
	ProviderOpenAI    = "openai"
	ProviderHash      = "hash"
)

// DefaultModel is the sentence-transformers model the similarity score calibration assumes.
const DefaultModel = "sentence-transformers/all-MiniLM-L6-v2"

// Embedder produces one vector per input text. Implementations must be deterministic
// for a given model and safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
	Name() string
}

// Config selects and configures an embedding provider
type Config struct {
	Provider  string
	Model     string
	BaseURL   string
	APIKey    string
	CacheDir  string
	Dimension int
}

// New builds the embedder named by cfg.Provider.
func New(cfg Config) (Embedder, error) {
	switch cfg.Provider {
	case ProviderFastEmbed, "":
		model := cfg.Model
		if model == "" {
			model = DefaultModel
		}
		p, err := NewFastEmbed(FastEmbedConfig{Model: model, CacheDir: cfg.CacheDir})
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderOpenAI:
		p, err := NewOpenAI(OpenAIConfig{
			BaseURL:   cfg.BaseURL,
			Model:     cfg.Model,
			APIKey:    cfg.APIKey,
			Dimension: cfg.Dimension,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderHash:
		return NewHash(cfg.Dimension), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
