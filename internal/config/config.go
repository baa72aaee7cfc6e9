package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/godilite/intro-scorer/internal/rubric"
	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	GRPCPort              int
	GRPCReflectionEnabled bool
	HTTPPort              int
	CORSOrigins           []string

	// RedisAddr enables the report cache when set.
	RedisAddr string
	CacheTTL  time.Duration

	// RubricPath (.csv, .xlsx, .yaml) takes precedence over RubricDBPath.
	RubricPath   string
	RubricDBPath string

	GrammarURL          string
	GrammarLanguage     string
	SentimentURL        string
	OpenAIAPIKey        string
	EmbeddingModel      string
	EmbeddingBaseURL    string
	CollaboratorTimeout time.Duration
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
	BatchConcurrency    int

	// Rubric parameter overrides; zero values keep the rubric's own.
	IdealWPMMin float64
	IdealWPMMax float64
	FillerWords []string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		GRPCPort:              getEnvInt("GRPC_PORT", 50051),
		GRPCReflectionEnabled: getEnvBool("GRPC_REFLECTION_ENABLED", false),
		HTTPPort:              getEnvInt("HTTP_PORT", 8080),
		CORSOrigins:           getEnvList("CORS_ORIGINS"),
		RedisAddr:             getEnv("REDIS_ADDR", ""),
		CacheTTL:              getEnvDuration("CACHE_TTL", 10*time.Minute),
		RubricPath:            getEnv("RUBRIC_PATH", ""),
		RubricDBPath:          getEnv("RUBRIC_DB_PATH", ""),
		GrammarURL:            getEnv("GRAMMAR_URL", ""),
		GrammarLanguage:       getEnv("GRAMMAR_LANGUAGE", "en-US"),
		SentimentURL:          getEnv("SENTIMENT_URL", ""),
		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
		EmbeddingModel:        getEnv("EMBEDDING_MODEL", ""),
		EmbeddingBaseURL:      getEnv("EMBEDDING_BASE_URL", ""),
		CollaboratorTimeout:   getEnvDuration("COLLABORATOR_TIMEOUT", 3*time.Second),
		BreakerMaxFailures:    getEnvInt("BREAKER_MAX_FAILURES", 5),
		BreakerResetTimeout:   getEnvDuration("BREAKER_RESET_TIMEOUT", 30*time.Second),
		BatchConcurrency:      getEnvInt("BATCH_CONCURRENCY", 4),
		IdealWPMMin:           getEnvFloat("IDEAL_WPM_MIN", 0),
		IdealWPMMax:           getEnvFloat("IDEAL_WPM_MAX", 0),
		FillerWords:           getEnvList("FILLER_WORDS"),
	}
}

// ApplyParams overlays the configured overrides on p.
func (c *Config) ApplyParams(p rubric.Params) rubric.Params {
	if c.IdealWPMMin > 0 {
		p.IdealWPMMin = c.IdealWPMMin
	}
	if c.IdealWPMMax > 0 {
		p.IdealWPMMax = c.IdealWPMMax
	}
	if len(c.FillerWords) > 0 {
		p.FillerWords = append([]string(nil), c.FillerWords...)
	}
	return p
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

// getEnvDuration accepts Go durations ("3s") or plain seconds ("3").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs > 0 {
		return time.Duration(secs * float64(time.Second))
	}
	return fallback
}

// getEnvList splits a comma-separated value, dropping empty items.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
