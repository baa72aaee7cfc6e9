package service

import (
	"context"
	"time"

	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/signals"
)

// SignalExtractor measures a transcript.
type SignalExtractor interface {
	Extract(ctx context.Context, t signals.Transcript, p rubric.Params) signals.Bundle
}

// Observer receives the outcome of every completed scoring run.
type Observer interface {
	ObserveScore(ctx context.Context, rep report.ScoreReport, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveScore(context.Context, report.ScoreReport, time.Duration) {}
