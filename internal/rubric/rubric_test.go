package rubric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sixCriteria() []Criterion {
	return Default().Criteria()
}

func TestDefault(t *testing.T) {
	r := Default()

	require.Equal(t, 6, r.Len())

	var sum float64
	for _, c := range r.Criteria() {
		sum += c.Weight
		assert.NotEmpty(t, c.Bands)
	}
	assert.InDelta(t, 1.0, sum, weightTolerance)
	assert.NotEmpty(t, r.Version())
}

func TestNew(t *testing.T) {
	t.Run("weights not summing to one", func(t *testing.T) {
		criteria := sixCriteria()
		criteria[0].Weight = 0.5

		r, err := New(criteria, DefaultBands(), DefaultParams())

		assert.ErrorIs(t, err, ErrConfiguration)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "weights sum")
	})

	t.Run("weights within tolerance", func(t *testing.T) {
		criteria := sixCriteria()
		criteria[0].Weight += 5e-7

		_, err := New(criteria, DefaultBands(), DefaultParams())

		assert.NoError(t, err)
	})

	t.Run("missing bands", func(t *testing.T) {
		criteria := sixCriteria()
		criteria[2].Bands = nil

		_, err := New(criteria, DefaultBands(), DefaultParams())

		assert.ErrorIs(t, err, ErrConfiguration)
		assert.Contains(t, err.Error(), "Language & Grammar")
	})

	t.Run("bands not ascending", func(t *testing.T) {
		criteria := sixCriteria()
		criteria[1].Bands = []Band{{0, "Low"}, {70, "High"}, {50, "Mid"}}

		_, err := New(criteria, DefaultBands(), DefaultParams())

		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("gap below first band", func(t *testing.T) {
		_, err := New(sixCriteria(), []Band{{10, "Low"}}, DefaultParams())

		assert.ErrorIs(t, err, ErrConfiguration)
		assert.Contains(t, err.Error(), "must start at 0")
	})

	t.Run("duplicate names", func(t *testing.T) {
		criteria := sixCriteria()
		criteria[1].Name = "content & STRUCTURE"

		_, err := New(criteria, DefaultBands(), DefaultParams())

		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		criteria := sixCriteria()
		criteria[0].Strategy = "charisma"

		_, err := New(criteria, DefaultBands(), DefaultParams())

		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("strategy inferred from name", func(t *testing.T) {
		criteria := sixCriteria()
		for i := range criteria {
			criteria[i].Strategy = ""
		}

		r, err := New(criteria, DefaultBands(), DefaultParams())

		require.NoError(t, err)
		c, ok := r.Lookup("speech rate")
		require.True(t, ok)
		assert.Equal(t, StrategySpeechRate, c.Strategy)
	})

	t.Run("invalid params", func(t *testing.T) {
		p := DefaultParams()
		p.IdealWPMMax = 50

		_, err := New(sixCriteria(), DefaultBands(), p)

		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("NaN weight", func(t *testing.T) {
		criteria := sixCriteria()
		criteria[0].Weight = math.NaN()

		_, err := New(criteria, DefaultBands(), DefaultParams())

		assert.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestRubricIsImmutable(t *testing.T) {
	r := Default()
	version := r.Version()

	criteria := r.Criteria()
	criteria[0].Weight = 0.99
	criteria[0].Bands[0].Label = "mutated"

	params := r.Params()
	params.FillerWords[0] = "mutated"

	c, ok := r.Lookup("Content & Structure")
	require.True(t, ok)
	assert.Equal(t, 0.36, c.Weight)
	assert.Equal(t, "Needs Improvement", c.Bands[0].Label)
	assert.NotEqual(t, "mutated", r.Params().FillerWords[0])
	assert.Equal(t, version, r.Version())
}

func TestBandFor(t *testing.T) {
	bands := DefaultBands()

	cases := []struct {
		score float64
		want  string
	}{
		{0, "Needs Improvement"},
		{39.99, "Needs Improvement"},
		{40, "Fair"},
		{59.9, "Fair"},
		{60, "Good"},
		{80, "Excellent"},
		{100, "Excellent"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BandFor(bands, tc.score), "score %v", tc.score)
	}
	assert.Equal(t, "", BandFor(nil, 50))
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"speech_rate":         StrategySpeechRate,
		"Speech Rate":         StrategySpeechRate,
		"Language & Grammar":  StrategyLanguageGrammar,
		"vocabulary-richness": StrategyVocabulary,
		"grammar":             StrategyLanguageGrammar,
		"CLARITY":             StrategyClarity,
	}
	for in, want := range cases {
		got, ok := ParseStrategy(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseStrategy("charisma")
	assert.False(t, ok)
}

func TestVersionDependsOnContent(t *testing.T) {
	p := DefaultParams()
	p.IdealWPMMin = 100

	other, err := New(sixCriteria(), DefaultBands(), p)
	require.NoError(t, err)

	assert.NotEqual(t, Default().Version(), other.Version())
	assert.Equal(t, Default().Version(), Default().Version())
}

func TestDocument(t *testing.T) {
	r := Default()
	doc := r.Document()

	assert.Equal(t, r.Version(), doc.Version)
	assert.Len(t, doc.Criteria, 6)
	assert.Equal(t, DefaultBands(), doc.OverallBands)

	doc.Criteria[0].Name = "changed"
	assert.Equal(t, "Content & Structure", r.Criteria()[0].Name, "document is a copy")
}
