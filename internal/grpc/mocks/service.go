package mocks

import (
	"context"
	"errors"

	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/service"
)

// MockScoringService is a mock implementation of the ScoringService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockScoringService struct {
	ScoreFunc         func(ctx context.Context, req service.ScoreRequest) (report.ScoreReport, error)
	ScoreBatchFunc    func(ctx context.Context, reqs []service.ScoreRequest) ([]report.ScoreReport, error)
	ScoreCombinedFunc func(ctx context.Context, reqs []service.ScoreRequest) (report.ScoreReport, error)
	RubricValue       *rubric.Rubric
}

// Score implements the ScoringService interface
func (m *MockScoringService) Score(ctx context.Context, req service.ScoreRequest) (report.ScoreReport, error) {
	if m.ScoreFunc != nil {
		return m.ScoreFunc(ctx, req)
	}
	return report.ScoreReport{}, errors.New("ScoreFunc not implemented")
}

// ScoreBatch implements the ScoringService interface
func (m *MockScoringService) ScoreBatch(ctx context.Context, reqs []service.ScoreRequest) ([]report.ScoreReport, error) {
	if m.ScoreBatchFunc != nil {
		return m.ScoreBatchFunc(ctx, reqs)
	}
	return nil, errors.New("ScoreBatchFunc not implemented")
}

// ScoreCombined implements the ScoringService interface
func (m *MockScoringService) ScoreCombined(ctx context.Context, reqs []service.ScoreRequest) (report.ScoreReport, error) {
	if m.ScoreCombinedFunc != nil {
		return m.ScoreCombinedFunc(ctx, reqs)
	}
	return report.ScoreReport{}, errors.New("ScoreCombinedFunc not implemented")
}

// Rubric implements the ScoringService interface
func (m *MockScoringService) Rubric() *rubric.Rubric {
	if m.RubricValue != nil {
		return m.RubricValue
	}
	return rubric.Default()
}
