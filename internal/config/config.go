package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// MentorCapacity is the maximum number of projects a single mentor can supervise.
const MentorCapacity = 5

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Vector index configuration
	IndexDir string `mapstructure:"INDEX_DIR"`

	// Embedding configuration
	EmbeddingProvider  string `mapstructure:"EMBEDDING_PROVIDER"`
	EmbeddingModel     string `mapstructure:"EMBEDDING_MODEL"`
	EmbeddingBaseURL   string `mapstructure:"EMBEDDING_BASE_URL"`
	EmbeddingAPIKey    string `mapstructure:"EMBEDDING_API_KEY"`
	EmbeddingCacheDir  string `mapstructure:"EMBEDDING_CACHE_DIR"`
	EmbeddingDimension int    `mapstructure:"EMBEDDING_DIMENSION"`

	// Judge (OpenAI-compatible chat completion) configuration
	OpenRouterAPIKey  string  `mapstructure:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string  `mapstructure:"OPENROUTER_BASE_URL"`
	LLMModel          string  `mapstructure:"LLM_MODEL"`
	JudgeReferer      string  `mapstructure:"JUDGE_REFERER"`
	JudgeTimeoutSec   int     `mapstructure:"JUDGE_TIMEOUT_SEC"`
	JudgeRateLimit    float64 `mapstructure:"JUDGE_RATE_LIMIT"`
	JudgeBurst        int     `mapstructure:"JUDGE_BURST"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}
	config.EmbeddingProvider = strings.ToLower(strings.TrimSpace(config.EmbeddingProvider))

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "project_intake")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	viper.SetDefault("INDEX_DIR", "./data/index")

	// Embedding defaults
	viper.SetDefault("EMBEDDING_PROVIDER", "fastembed")
	viper.SetDefault("EMBEDDING_MODEL", "")
	viper.SetDefault("EMBEDDING_BASE_URL", "")
	viper.SetDefault("EMBEDDING_API_KEY", "")
	viper.SetDefault("EMBEDDING_CACHE_DIR", "./data/models")
	viper.SetDefault("EMBEDDING_DIMENSION", 384)

	// Judge defaults
	viper.SetDefault("OPENROUTER_API_KEY", "")
	viper.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	viper.SetDefault("LLM_MODEL", "xiaomi/mimo-v2-flash:free")
	viper.SetDefault("JUDGE_REFERER", "http://localhost:3000")
	viper.SetDefault("JUDGE_TIMEOUT_SEC", 30)
	viper.SetDefault("JUDGE_RATE_LIMIT", 2.0)
	viper.SetDefault("JUDGE_BURST", 4)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.EmbeddingProvider {
	case "fastembed", "hash":
	case "openai":
		if config.EmbeddingBaseURL == "" && config.EmbeddingAPIKey == "" {
			return fmt.Errorf("EMBEDDING_API_KEY or EMBEDDING_BASE_URL is required for the openai embedding provider")
		}
	default:
		return fmt.Errorf("unsupported EMBEDDING_PROVIDER %q (want fastembed, openai or hash)", config.EmbeddingProvider)
	}

	if config.EmbeddingDimension <= 0 {
		return fmt.Errorf("EMBEDDING_DIMENSION must be positive")
	}

	if config.JudgeTimeoutSec <= 0 {
		return fmt.Errorf("JUDGE_TIMEOUT_SEC must be positive")
	}

	if config.IsProduction() && config.OpenRouterAPIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY must be set in production")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
