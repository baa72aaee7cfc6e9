package rubric

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

// ErrConfiguration is returned for any rubric definition that must not be
// used for scoring.
var ErrConfiguration = errors.New("invalid rubric configuration")

const weightTolerance = 1e-6

// Strategy selects the scoring function applied to a criterion.
type Strategy string

const (
	StrategyContentStructure Strategy = "content_structure"
	StrategySpeechRate       Strategy = "speech_rate"
	StrategyLanguageGrammar  Strategy = "language_grammar"
	StrategyVocabulary       Strategy = "vocabulary_richness"
	StrategyClarity          Strategy = "clarity"
	StrategyEngagement       Strategy = "engagement"
)

var strategies = []Strategy{
	StrategyContentStructure,
	StrategySpeechRate,
	StrategyLanguageGrammar,
	StrategyVocabulary,
	StrategyClarity,
	StrategyEngagement,
}

// ParseStrategy resolves a strategy identifier. Hyphens, spaces and case are
// ignored so that spreadsheet values such as "Speech Rate" resolve.
func ParseStrategy(s string) (Strategy, bool) {
	norm := normalizeKey(s)
	for _, st := range strategies {
		if string(st) == norm {
			return st, true
		}
	}
	switch norm {
	case "content", "structure":
		return StrategyContentStructure, true
	case "grammar", "language":
		return StrategyLanguageGrammar, true
	case "vocabulary", "vocab":
		return StrategyVocabulary, true
	}
	return "", false
}

func normalizeKey(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "_")
}

// InferStrategy guesses the strategy from a criterion name.
func InferStrategy(name string) (Strategy, bool) {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "content"), strings.Contains(n, "structure"):
		return StrategyContentStructure, true
	case strings.Contains(n, "speech"), strings.Contains(n, "rate"), strings.Contains(n, "pace"):
		return StrategySpeechRate, true
	case strings.Contains(n, "grammar"), strings.Contains(n, "language"):
		return StrategyLanguageGrammar, true
	case strings.Contains(n, "vocab"):
		return StrategyVocabulary, true
	case strings.Contains(n, "clarity"), strings.Contains(n, "filler"):
		return StrategyClarity, true
	case strings.Contains(n, "engagement"), strings.Contains(n, "sentiment"):
		return StrategyEngagement, true
	}
	return "", false
}

// Band is one qualitative tier. A score belongs to the highest band whose
// Lower bound it reaches.
type Band struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Label string  `json:"label" yaml:"label"`
}

// Criterion is one weighted rubric entry.
type Criterion struct {
	Name     string   `json:"name" yaml:"name"`
	Weight   float64  `json:"weight" yaml:"weight"`
	Strategy Strategy `json:"strategy" yaml:"strategy"`
	Bands    []Band   `json:"bands" yaml:"bands"`
}

// Rubric is a validated, immutable rubric. It is safe to share between
// concurrent scoring runs.
type Rubric struct {
	criteria []Criterion
	index    map[string]int
	overall  []Band
	params   Params
	version  string
}

// New validates the definition and builds a Rubric. Every failure wraps
// ErrConfiguration.
func New(criteria []Criterion, overall []Band, params Params) (*Rubric, error) {
	if len(criteria) == 0 {
		return nil, fmt.Errorf("%w: no criteria defined", ErrConfiguration)
	}

	r := &Rubric{
		criteria: make([]Criterion, 0, len(criteria)),
		index:    make(map[string]int, len(criteria)),
		overall:  cloneBands(overall),
		params:   params.withDefaults(),
	}

	var sum float64
	for _, c := range criteria {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: criterion with empty name", ErrConfiguration)
		}
		key := strings.ToLower(name)
		if _, dup := r.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate criterion %q", ErrConfiguration, name)
		}
		if math.IsNaN(c.Weight) || c.Weight < 0 || c.Weight > 1 {
			return nil, fmt.Errorf("%w: criterion %q weight %v outside [0,1]", ErrConfiguration, name, c.Weight)
		}
		st := c.Strategy
		if st == "" {
			inferred, ok := InferStrategy(name)
			if !ok {
				return nil, fmt.Errorf("%w: criterion %q has no strategy and none can be inferred", ErrConfiguration, name)
			}
			st = inferred
		} else if parsed, ok := ParseStrategy(string(st)); ok {
			st = parsed
		} else {
			return nil, fmt.Errorf("%w: criterion %q has unknown strategy %q", ErrConfiguration, name, c.Strategy)
		}
		if err := validateBands(c.Bands); err != nil {
			return nil, fmt.Errorf("%w: criterion %q: %v", ErrConfiguration, name, err)
		}

		sum += c.Weight
		r.index[key] = len(r.criteria)
		r.criteria = append(r.criteria, Criterion{
			Name:     name,
			Weight:   c.Weight,
			Strategy: st,
			Bands:    cloneBands(c.Bands),
		})
	}

	if math.Abs(sum-1.0) > weightTolerance {
		return nil, fmt.Errorf("%w: weights sum to %.6f, want 1.0", ErrConfiguration, sum)
	}
	if err := validateBands(r.overall); err != nil {
		return nil, fmt.Errorf("%w: overall bands: %v", ErrConfiguration, err)
	}
	if err := r.params.validate(); err != nil {
		return nil, fmt.Errorf("%w: params: %v", ErrConfiguration, err)
	}

	r.version = r.fingerprint()
	return r, nil
}

func validateBands(bands []Band) error {
	if len(bands) == 0 {
		return errors.New("at least one band is required")
	}
	for i, b := range bands {
		if strings.TrimSpace(b.Label) == "" {
			return fmt.Errorf("band %d has an empty label", i)
		}
		if math.IsNaN(b.Lower) || b.Lower < 0 || b.Lower >= 100 {
			return fmt.Errorf("band %q lower bound %v outside [0,100)", b.Label, b.Lower)
		}
		if i == 0 && b.Lower != 0 {
			return fmt.Errorf("first band %q must start at 0, got %v", b.Label, b.Lower)
		}
		if i > 0 && b.Lower <= bands[i-1].Lower {
			return fmt.Errorf("band %q is not ascending", b.Label)
		}
	}
	return nil
}

// BandFor returns the label of the highest band whose lower bound is reached
// by score. Bands must be validated.
func BandFor(bands []Band, score float64) string {
	idx := sort.Search(len(bands), func(i int) bool { return bands[i].Lower > score })
	if idx == 0 {
		if len(bands) == 0 {
			return ""
		}
		return bands[0].Label
	}
	return bands[idx-1].Label
}

// Criteria returns the criteria in rubric order.
func (r *Rubric) Criteria() []Criterion {
	out := make([]Criterion, len(r.criteria))
	for i, c := range r.criteria {
		c.Bands = cloneBands(c.Bands)
		out[i] = c
	}
	return out
}

// Lookup finds a criterion by name, ignoring case.
func (r *Rubric) Lookup(name string) (Criterion, bool) {
	i, ok := r.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Criterion{}, false
	}
	c := r.criteria[i]
	c.Bands = cloneBands(c.Bands)
	return c, true
}

// OverallBands returns the bands applied to the total score.
func (r *Rubric) OverallBands() []Band { return cloneBands(r.overall) }

// Params returns the scoring parameters.
func (r *Rubric) Params() Params { return r.params.clone() }

// Version is a short content hash identifying this rubric definition.
func (r *Rubric) Version() string { return r.version }

// Len reports the number of criteria.
func (r *Rubric) Len() int { return len(r.criteria) }

// Document is the published form of a rubric.
type Document struct {
	Version      string      `json:"version"`
	Criteria     []Criterion `json:"criteria"`
	OverallBands []Band      `json:"overall_bands"`
	Params       Params      `json:"params"`
}

// Document snapshots r.
func (r *Rubric) Document() Document {
	return Document{
		Version:      r.version,
		Criteria:     r.Criteria(),
		OverallBands: r.OverallBands(),
		Params:       r.Params(),
	}
}

func (r *Rubric) fingerprint() string {
	doc := struct {
		Criteria []Criterion `json:"criteria"`
		Overall  []Band      `json:"overall"`
		Params   Params      `json:"params"`
	}{r.criteria, r.overall, r.params}
	raw, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:6])
}

func cloneBands(in []Band) []Band {
	if in == nil {
		return nil
	}
	out := make([]Band, len(in))
	copy(out, in)
	return out
}

// DefaultBands is the tier scale used when a source omits bands.
func DefaultBands() []Band {
	return []Band{
		{Lower: 0, Label: "Needs Improvement"},
		{Lower: 40, Label: "Fair"},
		{Lower: 60, Label: "Good"},
		{Lower: 80, Label: "Excellent"},
	}
}

// Default returns the built-in six-criterion self-introduction rubric.
func Default() *Rubric {
	criteria := []Criterion{
		{Name: "Content & Structure", Weight: 0.36, Strategy: StrategyContentStructure, Bands: DefaultBands()},
		{Name: "Speech Rate", Weight: 0.09, Strategy: StrategySpeechRate, Bands: DefaultBands()},
		{Name: "Language & Grammar", Weight: 0.18, Strategy: StrategyLanguageGrammar, Bands: DefaultBands()},
		{Name: "Vocabulary Richness", Weight: 0.09, Strategy: StrategyVocabulary, Bands: DefaultBands()},
		{Name: "Clarity", Weight: 0.14, Strategy: StrategyClarity, Bands: DefaultBands()},
		{Name: "Engagement", Weight: 0.14, Strategy: StrategyEngagement, Bands: DefaultBands()},
	}
	r, err := New(criteria, DefaultBands(), DefaultParams())
	if err != nil {
		panic("rubric: built-in default is invalid: " + err.Error())
	}
	return r
}
