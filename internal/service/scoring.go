package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/scoring"
	"github.com/godilite/intro-scorer/internal/signals"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxTranscriptBytes bounds a single transcript or reference.
	MaxTranscriptBytes = 64 << 10
	// MaxBatchSize bounds the number of transcripts in one batch call.
	MaxBatchSize = 100

	defaultBatchConcurrency = 4
	combineSeparator        = "\n\n"
)

var ErrInvalidRequest = errors.New("invalid request")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// ScoringService runs the extraction, scoring and aggregation pipeline
// against one immutable rubric.
type ScoringService struct {
	rubric           *rubric.Rubric
	extractor        SignalExtractor
	observer         Observer
	batchConcurrency int
	logger           *zap.Logger
}

// Option configures a ScoringService.
type Option func(*ScoringService)

// WithObserver registers a run observer.
func WithObserver(o Observer) Option {
	return func(s *ScoringService) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithBatchConcurrency bounds parallel runs inside ScoreBatch.
func WithBatchConcurrency(n int) Option {
	return func(s *ScoringService) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// NewScoringService creates a new ScoringService instance.
func NewScoringService(r *rubric.Rubric, extractor SignalExtractor, logger *zap.Logger, opts ...Option) *ScoringService {
	if r == nil {
		panic("rubric must not be nil")
	}
	if extractor == nil {
		panic("extractor must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	s := &ScoringService{
		rubric:           r,
		extractor:        extractor,
		observer:         nopObserver{},
		batchConcurrency: defaultBatchConcurrency,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rubric returns the rubric every run is scored against.
func (s *ScoringService) Rubric() *rubric.Rubric { return s.rubric }

// Score evaluates one transcript. An empty transcript yields a complete zero
// report. Collaborator failures never surface here; only invalid requests,
// cancellation and report invariant violations do.
func (s *ScoringService) Score(ctx context.Context, req ScoreRequest) (report.ScoreReport, error) {
	if err := req.validate(); err != nil {
		return report.ScoreReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return report.ScoreReport{}, err
	}
	start := time.Now()

	bundle := s.extractor.Extract(ctx, req.transcript(), s.rubric.Params())
	results := scoring.Score(bundle, s.rubric)
	rep := report.Aggregate(s.rubric, results, report.QuickStats{
		WordCount:     bundle.WordCount,
		CharCount:     bundle.CharCount,
		SentenceCount: bundle.SentenceCount,
		EstimatedWPM:  bundle.EstimatedWPM,
	})

	if err := report.Validate(rep); err != nil {
		s.logger.Error("score report failed validation", zap.Error(err))
		return report.ScoreReport{}, err
	}

	elapsed := time.Since(start)
	s.observer.ObserveScore(ctx, rep, elapsed)
	s.logger.Info("transcript scored",
		zap.Float64("total", rep.TotalScore),
		zap.String("band", rep.OverallBandLabel),
		zap.Int("words", rep.QuickStats.WordCount),
		zap.Bool("degraded", bundle.GrammarDegraded || bundle.SentimentDegraded),
		zap.Duration("elapsed", elapsed))

	return rep, nil
}

// ScoreBatch scores every request independently and in parallel. Reports
// are returned in input order.
func (s *ScoringService) ScoreBatch(ctx context.Context, reqs []ScoreRequest) ([]report.ScoreReport, error) {
	if len(reqs) == 0 {
		return nil, invalidf("batch is empty")
	}
	if len(reqs) > MaxBatchSize {
		return nil, invalidf("batch of %d exceeds %d transcripts", len(reqs), MaxBatchSize)
	}
	for i, r := range reqs {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("transcript %d: %w", i, err)
		}
	}

	out := make([]report.ScoreReport, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, r := range reqs {
		g.Go(func() error {
			rep, err := s.Score(gctx, r)
			if err != nil {
				return fmt.Errorf("transcript %d: %w", i, err)
			}
			out[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("batch scored", zap.Int("transcripts", len(reqs)))
	return out, nil
}

// ScoreCombined joins the transcripts with a blank line and scores them as
// one.
func (s *ScoringService) ScoreCombined(ctx context.Context, reqs []ScoreRequest) (report.ScoreReport, error) {
	if len(reqs) == 0 {
		return report.ScoreReport{}, invalidf("nothing to combine")
	}
	if len(reqs) > MaxBatchSize {
		return report.ScoreReport{}, invalidf("%d transcripts exceed %d", len(reqs), MaxBatchSize)
	}
	return s.Score(ctx, combine(reqs))
}

// QuickStats counts words, characters and sentences without scoring.
func (s *ScoringService) QuickStats(text string) TextStats {
	return TextStats{
		WordCount:     signals.WordCount(text),
		CharCount:     signals.CharCount(text),
		SentenceCount: signals.SentenceCount(text),
	}
}
