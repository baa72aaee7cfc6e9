package nlp

import (
	"context"

	"github.com/godilite/intro-scorer/internal/resilience"
	"github.com/godilite/intro-scorer/internal/signals"
)

const (
	remoteProvider = "remote"
	localProvider  = "local"
)

// GuardedGrammar puts a remote grammar checker behind a circuit breaker with
// the local heuristic as fallback. A result served by the fallback is marked
// degraded.
type GuardedGrammar struct {
	group *resilience.FallbackGroup[signals.GrammarChecker]
}

// NewGuardedGrammar wraps remote.
func NewGuardedGrammar(remote signals.GrammarChecker, cfg resilience.FallbackConfig) *GuardedGrammar {
	fg := resilience.NewFallbackGroup[signals.GrammarChecker](remote, remoteProvider, cfg)
	fg.AddFallback(localProvider, HeuristicChecker{})
	return &GuardedGrammar{group: fg}
}

// CheckGrammar implements signals.GrammarChecker.
func (g *GuardedGrammar) CheckGrammar(ctx context.Context, text string) (signals.GrammarResult, error) {
	res, served, err := resilience.ExecuteWithResult(g.group, func(c signals.GrammarChecker) (signals.GrammarResult, error) {
		return c.CheckGrammar(ctx, text)
	})
	if err != nil {
		return signals.GrammarResult{}, err
	}
	res.Degraded = res.Degraded || served != g.group.Primary()
	return res, nil
}

// Breaker exposes the remote breaker.
func (g *GuardedGrammar) Breaker() *resilience.CircuitBreaker { return g.group.Breaker(remoteProvider) }

// GuardedSentiment is the sentiment counterpart of GuardedGrammar.
type GuardedSentiment struct {
	group *resilience.FallbackGroup[signals.SentimentAnalyzer]
}

// NewGuardedSentiment wraps remote.
func NewGuardedSentiment(remote signals.SentimentAnalyzer, cfg resilience.FallbackConfig) *GuardedSentiment {
	fg := resilience.NewFallbackGroup[signals.SentimentAnalyzer](remote, remoteProvider, cfg)
	fg.AddFallback(localProvider, LexiconAnalyzer{})
	return &GuardedSentiment{group: fg}
}

// Sentiment implements signals.SentimentAnalyzer.
func (g *GuardedSentiment) Sentiment(ctx context.Context, text string) (signals.SentimentResult, error) {
	res, served, err := resilience.ExecuteWithResult(g.group, func(a signals.SentimentAnalyzer) (signals.SentimentResult, error) {
		return a.Sentiment(ctx, text)
	})
	if err != nil {
		return signals.SentimentResult{}, err
	}
	res.Degraded = res.Degraded || served != g.group.Primary()
	return res, nil
}

// Breaker exposes the remote breaker.
func (g *GuardedSentiment) Breaker() *resilience.CircuitBreaker { return g.group.Breaker(remoteProvider) }

// GuardedSimilarity puts the similarity collaborator behind a breaker. It
// has no local fallback, so an open circuit fails fast and the signal is
// skipped.
type GuardedSimilarity struct {
	breaker *resilience.CircuitBreaker
	inner   signals.SimilarityScorer
}

// NewGuardedSimilarity wraps inner.
func NewGuardedSimilarity(inner signals.SimilarityScorer, cfg resilience.CircuitBreakerConfig) *GuardedSimilarity {
	if cfg.Name == "" {
		cfg.Name = "similarity"
	}
	return &GuardedSimilarity{breaker: resilience.NewCircuitBreaker(cfg), inner: inner}
}

// Similarity implements signals.SimilarityScorer.
func (g *GuardedSimilarity) Similarity(ctx context.Context, text, reference string) (float64, error) {
	var sim float64
	err := g.breaker.Execute(func() error {
		var err error
		sim, err = g.inner.Similarity(ctx, text, reference)
		return err
	})
	return sim, err
}
