package resilience

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrAllFailed is returned when no entry of a FallbackGroup produced a result.
var ErrAllFailed = errors.New("all providers failed")

// FallbackConfig configures the breakers created for each group entry.
type FallbackConfig struct {
	CircuitBreaker CircuitBreakerConfig
	Logger         *zap.Logger
}

type fallbackEntry[T any] struct {
	name    string
	value   T
	breaker *CircuitBreaker
}

// FallbackGroup holds a primary capability and ordered fallbacks of the same
// type, each behind its own circuit breaker. Entries are registered during
// setup; Execute is safe for concurrent use afterwards.
type FallbackGroup[T any] struct {
	entries []fallbackEntry[T]
	cfg     FallbackConfig
	logger  *zap.Logger
}

// NewFallbackGroup creates a group with primary as its first entry.
func NewFallbackGroup[T any](primary T, primaryName string, cfg FallbackConfig) *FallbackGroup[T] {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	fg := &FallbackGroup[T]{cfg: cfg, logger: cfg.Logger.Named("fallback")}
	fg.AddFallback(primaryName, primary)
	return fg
}

// AddFallback appends an entry tried after all earlier ones.
func (fg *FallbackGroup[T]) AddFallback(name string, value T) {
	cbCfg := fg.cfg.CircuitBreaker
	cbCfg.Name = name
	if cbCfg.Logger == nil {
		cbCfg.Logger = fg.cfg.Logger
	}
	fg.entries = append(fg.entries, fallbackEntry[T]{
		name:    name,
		value:   value,
		breaker: NewCircuitBreaker(cbCfg),
	})
}

// Primary is the name of the preferred entry.
func (fg *FallbackGroup[T]) Primary() string { return fg.entries[0].name }

// Breaker exposes an entry's breaker by name, or nil.
func (fg *FallbackGroup[T]) Breaker(name string) *CircuitBreaker {
	for i := range fg.entries {
		if fg.entries[i].name == name {
			return fg.entries[i].breaker
		}
	}
	return nil
}

// ExecuteWithResult tries fn on each entry in order and returns the first
// successful value together with the name of the entry that produced it.
func ExecuteWithResult[T any, R any](fg *FallbackGroup[T], fn func(T) (R, error)) (R, string, error) {
	var (
		zero    R
		lastErr error
	)
	for i := range fg.entries {
		entry := &fg.entries[i]
		var result R
		err := entry.breaker.Execute(func() error {
			var innerErr error
			result, innerErr = fn(entry.value)
			return innerErr
		})
		if err == nil {
			return result, entry.name, nil
		}
		lastErr = err
		if errors.Is(err, ErrCircuitOpen) {
			fg.logger.Debug("skipping provider, circuit open", zap.String("provider", entry.name))
		} else {
			fg.logger.Warn("provider failed, trying next", zap.String("provider", entry.name), zap.Error(err))
		}
	}
	return zero, "", fmt.Errorf("%w: %v", ErrAllFailed, lastErr)
}
