package scoring

import (
	"fmt"
	"math"

	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/signals"
)

// SpeechRate is 100 inside the ideal WPM band and decays linearly with the
// distance from it, reaching 0 one decay width away.
func SpeechRate(b signals.Bundle, p rubric.Params) Result {
	if b.Empty() {
		return Result{}
	}
	wpm := b.EstimatedWPM
	var distance float64
	switch {
	case wpm < p.IdealWPMMin:
		distance = p.IdealWPMMin - wpm
	case wpm > p.IdealWPMMax:
		distance = wpm - p.IdealWPMMax
	}

	res := Result{Score: linearDown(distance, p.WPMDecayWidth)}
	res.Notes = append(res.Notes, fmt.Sprintf("%.0f words per minute, ideal %.0f-%.0f", wpm, p.IdealWPMMin, p.IdealWPMMax))
	if _, ok := signals.UsableDuration(b.DurationSec); !ok {
		res.Notes = append(res.Notes, fmt.Sprintf("no duration supplied, assumed %.0f words per minute", p.AssumedWPM))
	}
	return res
}

// LanguageGrammar falls from 100 to 0 as grammar errors per 100 words rise to
// MaxErrorsPer100. A degraded grammar signal caps the score at
// DegradedCeiling.
func LanguageGrammar(b signals.Bundle, p rubric.Params) Result {
	if b.Empty() {
		return Result{}
	}
	per100 := float64(b.GrammarErrors) / float64(b.WordCount) * 100
	res := Result{
		Score: linearDown(per100, p.MaxErrorsPer100),
		Notes: []string{fmt.Sprintf("%d grammar issues, %.1f per 100 words", b.GrammarErrors, per100)},
	}
	if b.GrammarDegraded {
		res.Degraded = true
		res.Score = math.Min(res.Score, p.DegradedCeiling)
		res.Notes = append(res.Notes, fmt.Sprintf("grammar checker unavailable, capped at %.0f", p.DegradedCeiling))
	}
	return res
}

// VocabularyRichness is linear in the type-token ratio between TTRFloor (0)
// and TTRCeiling (100).
func VocabularyRichness(b signals.Bundle, p rubric.Params) Result {
	if b.Empty() {
		return Result{}
	}
	score := (b.TypeTokenRatio - p.TTRFloor) / (p.TTRCeiling - p.TTRFloor) * 100
	return Result{
		Score: clamp100(score),
		Notes: []string{fmt.Sprintf("type-token ratio %.2f", b.TypeTokenRatio)},
	}
}

const (
	clarityFillerShare   = 0.7
	claritySentenceShare = 0.3
	variationPenalty     = 20.0
)

// Clarity blends a filler component (70%) with a sentence-length component
// (30%). Long average sentences and uneven sentence lengths lower the latter.
func Clarity(b signals.Bundle, p rubric.Params) Result {
	if b.Empty() {
		return Result{}
	}
	filler := linearDown(b.FillerRatio, p.MaxFillerRatio)
	sentence := sentenceComponent(b.SentenceLengths, p.ComfortableSentenceLen)

	return Result{
		Score: clarityFillerShare*filler + claritySentenceShare*sentence,
		Notes: []string{fmt.Sprintf("%d filler words (%.1f%% of words)", b.FillerCount, b.FillerRatio*100)},
	}
}

func sentenceComponent(lengths []int, comfortable float64) float64 {
	if len(lengths) == 0 {
		return 0
	}
	var sum float64
	for _, n := range lengths {
		sum += float64(n)
	}
	mean := sum / float64(len(lengths))

	var variance float64
	for _, n := range lengths {
		d := float64(n) - mean
		variance += d * d
	}
	variance /= float64(len(lengths))
	cv := math.Sqrt(variance) / mean

	score := linearDown(mean-comfortable, comfortable)
	score -= variationPenalty * math.Min(cv, 1)
	return clamp100(score)
}

// Engagement maps sentiment from [-1,1] onto [0,100]. With a similarity
// signal it blends the two by EngagementSentimentWeight; without one,
// sentiment carries the whole score.
func Engagement(b signals.Bundle, p rubric.Params) Result {
	if b.Empty() {
		return Result{}
	}
	sentiment := (b.Sentiment + 1) / 2 * 100
	res := Result{Score: sentiment, Degraded: b.SentimentDegraded}

	if sim, ok := b.Similarity.Get(); ok {
		w := p.EngagementSentimentWeight
		res.Score = w*sentiment + (1-w)*sim*100
		res.Notes = append(res.Notes, fmt.Sprintf("sentiment %.2f, reference similarity %.2f", b.Sentiment, sim))
	} else {
		res.Notes = append(res.Notes, fmt.Sprintf("sentiment %.2f, no similarity signal", b.Sentiment))
	}
	if b.SentimentDegraded {
		res.Notes = append(res.Notes, "sentiment analyzer unavailable, lexicon used")
	}
	return res
}
