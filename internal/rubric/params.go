package rubric

import (
	"errors"
	"fmt"
	"strings"
)

// Params are the tunable constants behind the scoring strategies. They travel
// with the rubric so that a rubric file can override them.
type Params struct {
	IdealWPMMin   float64 `json:"ideal_wpm_min" yaml:"ideal_wpm_min"`
	IdealWPMMax   float64 `json:"ideal_wpm_max" yaml:"ideal_wpm_max"`
	WPMDecayWidth float64 `json:"wpm_decay_width" yaml:"wpm_decay_width"`
	// AssumedWPM estimates duration when the caller supplies none.
	AssumedWPM float64 `json:"assumed_wpm" yaml:"assumed_wpm"`

	FillerWords    []string `json:"filler_words" yaml:"filler_words"`
	MaxFillerRatio float64  `json:"max_filler_ratio" yaml:"max_filler_ratio"`

	MaxErrorsPer100 float64 `json:"max_errors_per_100" yaml:"max_errors_per_100"`
	DegradedCeiling float64 `json:"degraded_ceiling" yaml:"degraded_ceiling"`

	TTRFloor   float64 `json:"ttr_floor" yaml:"ttr_floor"`
	TTRCeiling float64 `json:"ttr_ceiling" yaml:"ttr_ceiling"`

	ComfortableSentenceLen float64 `json:"comfortable_sentence_len" yaml:"comfortable_sentence_len"`

	// EngagementSentimentWeight is the share of sentiment in the engagement
	// score when a similarity signal is present.
	EngagementSentimentWeight float64 `json:"engagement_sentiment_weight" yaml:"engagement_sentiment_weight"`

	MustHaveKeywords   []string `json:"must_have_keywords" yaml:"must_have_keywords"`
	GoodToHaveKeywords []string `json:"good_to_have_keywords" yaml:"good_to_have_keywords"`
	FuzzyThreshold     float64  `json:"fuzzy_threshold" yaml:"fuzzy_threshold"`
}

// DefaultFillerWords is the disfluency list used when none is configured.
var DefaultFillerWords = []string{
	"um", "uh", "uhm", "erm", "hmm", "ah",
	"like", "so", "actually", "basically", "right", "well", "okay", "kinda",
	"you know", "i mean", "sort of",
}

// DefaultParams returns the built-in scoring parameters.
func DefaultParams() Params {
	return Params{
		IdealWPMMin:               110,
		IdealWPMMax:               160,
		WPMDecayWidth:             60,
		AssumedWPM:                120,
		FillerWords:               append([]string(nil), DefaultFillerWords...),
		MaxFillerRatio:            0.15,
		MaxErrorsPer100:           10,
		DegradedCeiling:           70,
		TTRFloor:                  0.3,
		TTRCeiling:                0.9,
		ComfortableSentenceLen:    25,
		EngagementSentimentWeight: 0.6,
		MustHaveKeywords:          []string{"name", "age", "school", "class", "family", "hobbies", "hobby", "interest"},
		GoodToHaveKeywords:        []string{"fun fact", "ambition", "goal", "dream", "strength", "achievement", "origin", "from", "about family"},
		FuzzyThreshold:            0.92,
	}
}

// withDefaults fills zero-valued fields from DefaultParams.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.IdealWPMMin == 0 {
		p.IdealWPMMin = d.IdealWPMMin
	}
	if p.IdealWPMMax == 0 {
		p.IdealWPMMax = d.IdealWPMMax
	}
	if p.WPMDecayWidth == 0 {
		p.WPMDecayWidth = d.WPMDecayWidth
	}
	if p.AssumedWPM == 0 {
		p.AssumedWPM = d.AssumedWPM
	}
	if len(p.FillerWords) == 0 {
		p.FillerWords = d.FillerWords
	}
	if p.MaxFillerRatio == 0 {
		p.MaxFillerRatio = d.MaxFillerRatio
	}
	if p.MaxErrorsPer100 == 0 {
		p.MaxErrorsPer100 = d.MaxErrorsPer100
	}
	if p.DegradedCeiling == 0 {
		p.DegradedCeiling = d.DegradedCeiling
	}
	if p.TTRCeiling == 0 {
		p.TTRFloor, p.TTRCeiling = d.TTRFloor, d.TTRCeiling
	}
	if p.ComfortableSentenceLen == 0 {
		p.ComfortableSentenceLen = d.ComfortableSentenceLen
	}
	if p.EngagementSentimentWeight == 0 {
		p.EngagementSentimentWeight = d.EngagementSentimentWeight
	}
	if len(p.MustHaveKeywords) == 0 {
		p.MustHaveKeywords = d.MustHaveKeywords
	}
	if len(p.GoodToHaveKeywords) == 0 {
		p.GoodToHaveKeywords = d.GoodToHaveKeywords
	}
	if p.FuzzyThreshold == 0 {
		p.FuzzyThreshold = d.FuzzyThreshold
	}
	p.FillerWords = normalizeWords(p.FillerWords)
	p.MustHaveKeywords = normalizeWords(p.MustHaveKeywords)
	p.GoodToHaveKeywords = normalizeWords(p.GoodToHaveKeywords)
	return p
}

func (p Params) validate() error {
	switch {
	case p.IdealWPMMin <= 0 || p.IdealWPMMax < p.IdealWPMMin:
		return fmt.Errorf("ideal WPM band [%v,%v] is invalid", p.IdealWPMMin, p.IdealWPMMax)
	case p.WPMDecayWidth <= 0:
		return errors.New("wpm_decay_width must be positive")
	case p.AssumedWPM <= 0:
		return errors.New("assumed_wpm must be positive")
	case p.MaxFillerRatio <= 0 || p.MaxFillerRatio > 1:
		return errors.New("max_filler_ratio must be in (0,1]")
	case p.MaxErrorsPer100 <= 0:
		return errors.New("max_errors_per_100 must be positive")
	case p.DegradedCeiling <= 0 || p.DegradedCeiling > 100:
		return errors.New("degraded_ceiling must be in (0,100]")
	case p.TTRFloor < 0 || p.TTRCeiling <= p.TTRFloor || p.TTRCeiling > 1:
		return fmt.Errorf("ttr range [%v,%v] is invalid", p.TTRFloor, p.TTRCeiling)
	case p.ComfortableSentenceLen <= 0:
		return errors.New("comfortable_sentence_len must be positive")
	case p.EngagementSentimentWeight <= 0 || p.EngagementSentimentWeight > 1:
		return errors.New("engagement_sentiment_weight must be in (0,1]")
	case p.FuzzyThreshold <= 0 || p.FuzzyThreshold > 1:
		return errors.New("fuzzy_threshold must be in (0,1]")
	}
	return nil
}

func (p Params) clone() Params {
	p.FillerWords = append([]string(nil), p.FillerWords...)
	p.MustHaveKeywords = append([]string(nil), p.MustHaveKeywords...)
	p.GoodToHaveKeywords = append([]string(nil), p.GoodToHaveKeywords...)
	return p
}

func normalizeWords(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.Join(strings.Fields(strings.ToLower(w)), " ")
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
