// Package scoring maps a signal bundle to per-criterion sub-scores. Every
// strategy is a pure function returning a value clamped to [0,100] and
// returns 0 for a transcript without words.
package scoring

import (
	"fmt"
	"math"

	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/signals"
)

// Result is the unweighted outcome of one strategy.
type Result struct {
	Score    float64
	Degraded bool
	Notes    []string
}

// Func is a scoring strategy.
type Func func(b signals.Bundle, p rubric.Params) Result

var strategies = map[rubric.Strategy]Func{
	rubric.StrategyContentStructure: ContentStructure,
	rubric.StrategySpeechRate:       SpeechRate,
	rubric.StrategyLanguageGrammar:  LanguageGrammar,
	rubric.StrategyVocabulary:       VocabularyRichness,
	rubric.StrategyClarity:          Clarity,
	rubric.StrategyEngagement:       Engagement,
}

// For returns the strategy registered under s.
func For(s rubric.Strategy) (Func, bool) {
	fn, ok := strategies[s]
	return fn, ok
}

// Score evaluates every criterion of r against b, in rubric order.
func Score(b signals.Bundle, r *rubric.Rubric) []report.CriterionResult {
	params := r.Params()
	criteria := r.Criteria()
	out := make([]report.CriterionResult, 0, len(criteria))

	for _, c := range criteria {
		var res Result
		if fn, ok := For(c.Strategy); ok {
			res = fn(b, params)
		} else {
			res = Result{Notes: []string{fmt.Sprintf("no scorer for strategy %q", c.Strategy)}}
		}

		sub := report.Round(clamp100(res.Score), 2)
		out = append(out, report.CriterionResult{
			Name:                 c.Name,
			Weight:               c.Weight,
			RawSubScore:          sub,
			WeightedContribution: sub * c.Weight,
			BandLabel:            rubric.BandFor(c.Bands, sub),
			Degraded:             res.Degraded,
			Notes:                res.Notes,
		})
	}
	return out
}

func clamp100(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

// linearDown is 100 at x <= 0 falling to 0 at x >= width.
func linearDown(x, width float64) float64 {
	if x <= 0 {
		return 100
	}
	if width <= 0 || x >= width {
		return 0
	}
	return 100 * (1 - x/width)
}
