package grpc

import (
	"context"

	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/service"
	"github.com/godilite/intro-scorer/pkg/cache"
)

// Cacher defines the interface for cache operations.
type Cacher = cache.Store

type ScoringService interface {
	Score(ctx context.Context, req service.ScoreRequest) (report.ScoreReport, error)
	ScoreBatch(ctx context.Context, reqs []service.ScoreRequest) ([]report.ScoreReport, error)
	ScoreCombined(ctx context.Context, reqs []service.ScoreRequest) (report.ScoreReport, error)
	Rubric() *rubric.Rubric
}
