package signals

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/godilite/intro-scorer/internal/rubric"
	"go.uber.org/zap"
)

const defaultCollaboratorTimeout = 3 * time.Second

// Optional carries a value that may be absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// Present reports whether a value is set.
func (o Optional[T]) Present() bool { return o.ok }

// OrElse returns the value, or d when absent.
func (o Optional[T]) OrElse(d T) T {
	if o.ok {
		return o.value
	}
	return d
}

// Transcript is the immutable input of one scoring run.
type Transcript struct {
	Text        string
	DurationSec Optional[float64]
	Reference   string
}

// Span locates one grammar issue in the transcript.
type Span struct {
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
	Message string `json:"message,omitempty"`
}

// GrammarResult is what a grammar capability reports.
type GrammarResult struct {
	Errors   int
	Spans    []Span
	Degraded bool
}

// SentimentResult is a polarity in [-1,1].
type SentimentResult struct {
	Score    float64
	Degraded bool
}

// GrammarChecker counts grammar issues in a text.
type GrammarChecker interface {
	CheckGrammar(ctx context.Context, text string) (GrammarResult, error)
}

// SentimentAnalyzer scores text polarity.
type SentimentAnalyzer interface {
	Sentiment(ctx context.Context, text string) (SentimentResult, error)
}

// SimilarityScorer compares text with a reference answer, returning [0,1].
type SimilarityScorer interface {
	Similarity(ctx context.Context, text, reference string) (float64, error)
}

// Bundle holds every signal measured for one transcript. It is created once
// per run and never modified afterwards.
type Bundle struct {
	Text            string
	WordCount       int
	CharCount       int
	SentenceCount   int
	SentenceLengths []int
	FillerCount     int
	FillerRatio     float64
	TypeTokenRatio  float64

	GrammarErrors   int
	GrammarSpans    []Span
	GrammarDegraded bool

	Sentiment         float64
	SentimentDegraded bool

	Similarity   Optional[float64]
	DurationSec  Optional[float64]
	EstimatedWPM float64
}

// Empty reports whether the transcript had no words.
func (b Bundle) Empty() bool { return b.WordCount == 0 }

// Option configures an Extractor.
type Option func(*Extractor)

// WithGrammarChecker sets the grammar capability. Without one the local
// heuristic is used.
func WithGrammarChecker(c GrammarChecker) Option {
	return func(e *Extractor) { e.grammar = c }
}

// WithSentimentAnalyzer sets the sentiment capability. Without one the local
// lexicon is used.
func WithSentimentAnalyzer(a SentimentAnalyzer) Option {
	return func(e *Extractor) { e.sentiment = a }
}

// WithSimilarityScorer enables the optional similarity signal.
func WithSimilarityScorer(s SimilarityScorer) Option {
	return func(e *Extractor) { e.similarity = s }
}

// WithTimeout bounds each collaborator call.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// Extractor measures a Transcript. It holds no per-run state and is safe for
// concurrent use.
type Extractor struct {
	grammar    GrammarChecker
	sentiment  SentimentAnalyzer
	similarity SimilarityScorer
	timeout    time.Duration
	logger     *zap.Logger
}

// NewExtractor builds an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		timeout: defaultCollaboratorTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Named("signals")
	return e
}

// HasSimilarity reports whether a similarity collaborator is configured.
func (e *Extractor) HasSimilarity() bool { return e.similarity != nil }

// Extract computes the bundle. Collaborator failures never surface: grammar
// and sentiment fall back to local heuristics and are marked degraded, and a
// failed similarity call leaves the signal absent.
func (e *Extractor) Extract(ctx context.Context, t Transcript, p rubric.Params) Bundle {
	words := Tokenize(t.Text)
	b := Bundle{
		Text:            t.Text,
		WordCount:       len(words),
		CharCount:       CharCount(t.Text),
		SentenceCount:   SentenceCount(t.Text),
		SentenceLengths: SentenceLengths(t.Text),
		DurationSec:     t.DurationSec,
	}
	if b.Empty() {
		return b
	}

	b.FillerCount = FillerCount(words, p.FillerWords)
	b.FillerRatio = Ratio(b.FillerCount, b.WordCount)
	b.TypeTokenRatio = TypeTokenRatio(words)
	b.EstimatedWPM = EstimateWPM(b.WordCount, t.DurationSec, p.AssumedWPM)

	b.GrammarErrors, b.GrammarSpans, b.GrammarDegraded = e.grammarSignal(ctx, t.Text)
	b.Sentiment, b.SentimentDegraded = e.sentimentSignal(ctx, t.Text, words)
	b.Similarity = e.similaritySignal(ctx, t.Text, t.Reference)
	return b
}

func (e *Extractor) grammarSignal(ctx context.Context, text string) (int, []Span, bool) {
	if e.grammar == nil {
		return HeuristicGrammarErrors(text), nil, false
	}
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	res, err := e.grammar.CheckGrammar(callCtx, text)
	if err != nil {
		e.logger.Warn("grammar collaborator unavailable, using heuristic", zap.Error(err))
		return HeuristicGrammarErrors(text), nil, true
	}
	if res.Errors < 0 {
		res.Errors = 0
	}
	return res.Errors, res.Spans, res.Degraded
}

func (e *Extractor) sentimentSignal(ctx context.Context, text string, words []string) (float64, bool) {
	if e.sentiment == nil {
		return LexiconSentiment(words), false
	}
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	res, err := e.sentiment.Sentiment(callCtx, text)
	if err != nil || math.IsNaN(res.Score) {
		e.logger.Warn("sentiment collaborator unavailable, using lexicon", zap.Error(err))
		return LexiconSentiment(words), true
	}
	return clamp(res.Score, -1, 1), res.Degraded
}

func (e *Extractor) similaritySignal(ctx context.Context, text, reference string) Optional[float64] {
	if e.similarity == nil || strings.TrimSpace(reference) == "" {
		return None[float64]()
	}
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	sim, err := e.similarity.Similarity(callCtx, text, reference)
	if err != nil || math.IsNaN(sim) {
		e.logger.Warn("similarity collaborator unavailable, signal skipped", zap.Error(err))
		return None[float64]()
	}
	return Some(clamp(sim, 0, 1))
}

// EstimateWPM derives words per minute. Without a usable duration the
// duration is estimated from assumedWPM, never below one second.
func EstimateWPM(words int, duration Optional[float64], assumedWPM float64) float64 {
	if words == 0 {
		return 0
	}
	secs, ok := UsableDuration(duration)
	if !ok {
		secs = math.Max(1, float64(words)/assumedWPM*60)
	}
	return float64(words) / (secs / 60)
}

// UsableDuration returns the duration when it is present, finite and
// positive.
func UsableDuration(duration Optional[float64]) (float64, bool) {
	secs, ok := duration.Get()
	if !ok || secs <= 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, false
	}
	return secs, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
