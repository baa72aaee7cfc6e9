package report

import (
	"encoding/json"
	"math"
	"testing"

	pb "github.com/godilite/intro-scorer/api/v1"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultsFor pairs the default rubric's criteria with the given sub-scores.
func resultsFor(r *rubric.Rubric, subs ...float64) []CriterionResult {
	out := make([]CriterionResult, 0, r.Len())
	for i, c := range r.Criteria() {
		out = append(out, CriterionResult{
			Name:        c.Name,
			Weight:      c.Weight,
			RawSubScore: subs[i],
			BandLabel:   rubric.BandFor(c.Bands, subs[i]),
		})
	}
	return out
}

var stats = QuickStats{WordCount: 120, CharCount: 640, SentenceCount: 8, EstimatedWPM: 131.456}

func TestAggregate(t *testing.T) {
	r := rubric.Default()

	t.Run("weighted sum and bands", func(t *testing.T) {
		rep := Aggregate(r, resultsFor(r, 82.5, 100, 90, 60, 70, 40), stats)

		// 0.36*82.5 + 0.09*100 + 0.18*90 + 0.09*60 + 0.14*70 + 0.14*40
		assert.Equal(t, 75.7, rep.TotalScore)
		assert.Equal(t, "Good", rep.OverallBandLabel)
		assert.Equal(t, 29.7, rep.Criteria[0].WeightedContribution)
		assert.Equal(t, 131.5, rep.QuickStats.EstimatedWPM)
		assert.Equal(t, r.Version(), rep.RubricVersion)
		assert.Empty(t, rep.Notes)
		require.NoError(t, Validate(rep))
	})

	t.Run("criteria keep rubric order", func(t *testing.T) {
		rep := Aggregate(r, resultsFor(r, 1, 2, 3, 4, 5, 6), stats)

		for i, c := range r.Criteria() {
			assert.Equal(t, c.Name, rep.Criteria[i].Name)
		}
	})

	t.Run("sub-scores are clamped", func(t *testing.T) {
		rep := Aggregate(r, resultsFor(r, 140, -5, math.NaN(), 100, 100, 100), stats)

		assert.Equal(t, 100.0, rep.Criteria[0].RawSubScore)
		assert.Equal(t, 0.0, rep.Criteria[1].RawSubScore)
		assert.Equal(t, 0.0, rep.Criteria[2].RawSubScore)
		require.NoError(t, Validate(rep))
	})

	t.Run("all perfect", func(t *testing.T) {
		rep := Aggregate(r, resultsFor(r, 100, 100, 100, 100, 100, 100), stats)

		assert.Equal(t, 100.0, rep.TotalScore)
		assert.Equal(t, "Excellent", rep.OverallBandLabel)
	})

	t.Run("empty transcript", func(t *testing.T) {
		rep := Aggregate(r, resultsFor(r, 0, 0, 0, 0, 0, 0), QuickStats{})

		assert.Equal(t, 0.0, rep.TotalScore)
		assert.Equal(t, "Needs Improvement", rep.OverallBandLabel)
		assert.Equal(t, []string{NoteEmptyTranscript}, rep.Notes)
		require.NoError(t, Validate(rep))
	})

	t.Run("degraded criteria are noted", func(t *testing.T) {
		results := resultsFor(r, 50, 50, 50, 50, 50, 50)
		results[2].Degraded = true
		results[2].Notes = []string{"grammar checker unavailable"}

		rep := Aggregate(r, results, stats)

		require.Len(t, rep.Notes, 1)
		assert.Contains(t, rep.Notes[0], "Language & Grammar")
		assert.True(t, rep.Criteria[2].Degraded)

		results[2].Notes[0] = "mutated"
		assert.Equal(t, "grammar checker unavailable", rep.Criteria[2].Notes[0], "notes are copied")
	})
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2.13, Round(2.125, 2))
	assert.Equal(t, 0.3, Round(0.25, 1))
	assert.Equal(t, -1.3, Round(-1.25, 1))
	assert.Equal(t, 3.0, Round(3, 0))
}

func TestValidate(t *testing.T) {
	r := rubric.Default()
	valid := func() ScoreReport {
		return Aggregate(r, resultsFor(r, 80, 70, 60, 50, 40, 30), stats)
	}

	tests := []struct {
		name   string
		mutate func(*ScoreReport)
	}{
		{"no criteria", func(s *ScoreReport) { s.Criteria = nil }},
		{"total above 100", func(s *ScoreReport) { s.TotalScore = 100.5 }},
		{"total mismatch", func(s *ScoreReport) { s.TotalScore += 1 }},
		{"missing overall band", func(s *ScoreReport) { s.OverallBandLabel = "" }},
		{"negative stats", func(s *ScoreReport) { s.QuickStats.WordCount = -1 }},
		{"duplicate name", func(s *ScoreReport) { s.Criteria[1].Name = " content & structure" }},
		{"empty name", func(s *ScoreReport) { s.Criteria[0].Name = " " }},
		{"weight above one", func(s *ScoreReport) { s.Criteria[0].Weight = 1.2 }},
		{"weights do not sum to one", func(s *ScoreReport) {
			s.Criteria[0].Weight = 0.3
			s.Criteria[0].WeightedContribution = Round(s.Criteria[0].RawSubScore*0.3, 2)
		}},
		{"sub-score out of range", func(s *ScoreReport) { s.Criteria[3].RawSubScore = 101 }},
		{"contribution mismatch", func(s *ScoreReport) { s.Criteria[4].WeightedContribution += 1 }},
		{"missing band label", func(s *ScoreReport) { s.Criteria[5].BandLabel = "" }},
	}

	require.NoError(t, Validate(valid()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := valid()
			tt.mutate(&rep)
			assert.ErrorIs(t, Validate(rep), ErrSerialization)
		})
	}
}

func TestCodec(t *testing.T) {
	r := rubric.Default()
	results := resultsFor(r, 82.5, 100, 90, 60, 70, 40)
	results[4].Degraded = true
	results[4].Notes = []string{"3 fillers"}
	rep := Aggregate(r, results, stats)

	t.Run("json round trip", func(t *testing.T) {
		b, err := Marshal(rep)
		require.NoError(t, err)

		var keys map[string]any
		require.NoError(t, json.Unmarshal(b, &keys))
		assert.Contains(t, keys, "total_score")
		assert.Contains(t, keys, "overall_band_label")
		assert.Contains(t, keys, "quick_stats")

		got, err := Unmarshal(b)
		require.NoError(t, err)
		assert.Equal(t, rep, got)
	})

	t.Run("proto round trip", func(t *testing.T) {
		m, err := ToProto(rep)
		require.NoError(t, err)
		assert.Equal(t, rep.TotalScore, m.GetTotalScore())
		assert.Equal(t, int32(rep.QuickStats.WordCount), m.GetQuickStats().GetWordCount())
		require.Len(t, m.GetCriteria(), len(rep.Criteria))
		assert.True(t, m.GetCriteria()[4].GetDegraded())

		got, err := FromProto(m)
		require.NoError(t, err)
		assert.Equal(t, rep, got)
	})

	t.Run("proto without quick stats", func(t *testing.T) {
		m, err := ToProto(rep)
		require.NoError(t, err)
		m.QuickStats = nil

		got, err := FromProto(m)
		require.NoError(t, err)
		assert.Equal(t, QuickStats{}, got.QuickStats)
	})

	t.Run("invalid report is not encoded", func(t *testing.T) {
		bad := rep
		bad.OverallBandLabel = ""

		_, err := Marshal(bad)
		assert.ErrorIs(t, err, ErrSerialization)
		_, err = ToProto(bad)
		assert.ErrorIs(t, err, ErrSerialization)
	})

	t.Run("malformed documents", func(t *testing.T) {
		for _, doc := range []string{
			`not json`,
			`{"total_score": 10, "unexpected": true}`,
			`{"total_score": 10, "overall_band_label": "Fair", "criteria": []}`,
		} {
			_, err := Unmarshal([]byte(doc))
			assert.ErrorIs(t, err, ErrSerialization, doc)
		}

		_, err := FromProto(nil)
		assert.ErrorIs(t, err, ErrSerialization)

		_, err = FromProto(&pb.ScoreReport{TotalScore: 10, OverallBandLabel: "Fair"})
		assert.ErrorIs(t, err, ErrSerialization)
	})
}
