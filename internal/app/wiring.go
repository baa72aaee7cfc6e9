package app

import (
	"context"
	"fmt"
	"time"

	"github.com/godilite/intro-scorer/internal/config"
	"github.com/godilite/intro-scorer/internal/nlp"
	"github.com/godilite/intro-scorer/internal/repository"
	"github.com/godilite/intro-scorer/internal/resilience"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/signals"
	dbbuilder "github.com/godilite/intro-scorer/pkg/database"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// LoadRubric resolves the rubric once at start-up: RubricPath, then
// RubricDBPath, then the built-in default. Environment parameter overrides
// are applied last. Any error is fatal to the caller.
func LoadRubric(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*rubric.Rubric, error) {
	var (
		r      *rubric.Rubric
		err    error
		source string
	)
	switch {
	case cfg.RubricPath != "":
		source = cfg.RubricPath
		r, err = rubric.LoadFile(cfg.RubricPath, rubric.DefaultParams())
	case cfg.RubricDBPath != "":
		source = cfg.RubricDBPath
		r, err = loadRubricFromDB(ctx, cfg.RubricDBPath)
	default:
		source = "built-in"
		r = rubric.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load rubric from %s: %w", source, err)
	}

	r, err = rubric.New(r.Criteria(), r.OverallBands(), cfg.ApplyParams(r.Params()))
	if err != nil {
		return nil, fmt.Errorf("apply rubric overrides: %w", err)
	}

	logger.Info("rubric loaded", zap.String("source", source), zap.String("version", r.Version()))
	return r, nil
}

func loadRubricFromDB(ctx context.Context, path string) (*rubric.Rubric, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbbuilder.New(ctx,
		dbbuilder.WithDataSource(path),
		dbbuilder.WithReadOnly(),
		dbbuilder.WithRetry(2, 500*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	defer db.Close()

	return repository.NewRubricRepository(db).Load(ctx, rubric.DefaultParams())
}

// NewExtractor wires the configured collaborators, each behind its breaker
// and local fallback. Unconfigured collaborators use the local heuristics.
func NewExtractor(cfg *config.Config, logger *zap.Logger) *signals.Extractor {
	breaker := resilience.CircuitBreakerConfig{
		MaxFailures:  cfg.BreakerMaxFailures,
		ResetTimeout: cfg.BreakerResetTimeout,
		Logger:       logger,
	}
	fallback := resilience.FallbackConfig{CircuitBreaker: breaker, Logger: logger}

	opts := []signals.Option{
		signals.WithTimeout(cfg.CollaboratorTimeout),
		signals.WithLogger(logger),
	}

	if cfg.GrammarURL != "" {
		client := nlp.NewLanguageToolClient(cfg.GrammarURL, cfg.GrammarLanguage, nil, logger)
		opts = append(opts, signals.WithGrammarChecker(nlp.NewGuardedGrammar(client, fallback)))
		logger.Info("grammar collaborator enabled", zap.String("url", cfg.GrammarURL))
	}
	if cfg.SentimentURL != "" {
		client := nlp.NewSentimentClient(cfg.SentimentURL, nil, logger)
		opts = append(opts, signals.WithSentimentAnalyzer(nlp.NewGuardedSentiment(client, fallback)))
		logger.Info("sentiment collaborator enabled", zap.String("url", cfg.SentimentURL))
	}
	if cfg.OpenAIAPIKey != "" {
		embedder, err := nlp.NewOpenAIEmbedder(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.EmbeddingBaseURL, nil)
		if err != nil {
			logger.Warn("similarity collaborator disabled", zap.Error(err))
		} else {
			simBreaker := breaker
			simBreaker.Name = "similarity"
			opts = append(opts, signals.WithSimilarityScorer(nlp.NewGuardedSimilarity(nlp.NewEmbeddingSimilarity(embedder), simBreaker)))
			logger.Info("similarity collaborator enabled", zap.String("model", embedder.Model()))
		}
	}

	return signals.NewExtractor(opts...)
}
