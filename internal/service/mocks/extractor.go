package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/signals"
)

// MockExtractor is a mock implementation of the SignalExtractor interface
// for testing the service layer.
type MockExtractor struct {
	ExtractFunc func(ctx context.Context, t signals.Transcript, p rubric.Params) signals.Bundle
}

// Extract implements the SignalExtractor interface
func (m *MockExtractor) Extract(ctx context.Context, t signals.Transcript, p rubric.Params) signals.Bundle {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, t, p)
	}
	return signals.Bundle{Text: t.Text}
}

// MockObserver records every observed report.
type MockObserver struct {
	mu      sync.Mutex
	Reports []report.ScoreReport
}

// ObserveScore implements the Observer interface
func (m *MockObserver) ObserveScore(_ context.Context, rep report.ScoreReport, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reports = append(m.Reports, rep)
}

// Count returns the number of observed runs.
func (m *MockObserver) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Reports)
}
