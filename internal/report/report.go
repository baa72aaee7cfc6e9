// Package report aggregates criterion results into the final score report
// and converts it to and from its wire forms.
package report

import (
	"fmt"
	"math"

	"github.com/godilite/intro-scorer/internal/rubric"
)

const (
	NoteEmptyTranscript = "empty transcript: every criterion scored 0"
	degradedNoteFormat  = "%s: degraded confidence, scored from a local fallback signal"
)

// CriterionResult is the outcome of one criterion for one run.
type CriterionResult struct {
	Name                 string   `json:"name"`
	Weight               float64  `json:"weight"`
	RawSubScore          float64  `json:"raw_sub_score"`
	WeightedContribution float64  `json:"weighted_contribution"`
	BandLabel            string   `json:"band_label"`
	Degraded             bool     `json:"degraded"`
	Notes                []string `json:"notes,omitempty"`
}

// QuickStats are surface counts of the transcript.
type QuickStats struct {
	WordCount     int     `json:"word_count"`
	CharCount     int     `json:"char_count"`
	SentenceCount int     `json:"sentence_count"`
	EstimatedWPM  float64 `json:"estimated_wpm"`
}

// ScoreReport is the terminal artifact of a scoring run.
type ScoreReport struct {
	TotalScore       float64           `json:"total_score"`
	OverallBandLabel string            `json:"overall_band_label"`
	QuickStats       QuickStats        `json:"quick_stats"`
	Criteria         []CriterionResult `json:"criteria"`
	Notes            []string          `json:"notes,omitempty"`
	RubricVersion    string            `json:"rubric_version,omitempty"`
}

// Aggregate sums the weighted contributions of results, which must be in
// rubric order, and labels the total with the rubric's overall bands. The
// total is clamped to [0,100] and rounded to one decimal; per-criterion
// figures are rounded to two.
func Aggregate(r *rubric.Rubric, results []CriterionResult, stats QuickStats) ScoreReport {
	out := ScoreReport{
		QuickStats: QuickStats{
			WordCount:     stats.WordCount,
			CharCount:     stats.CharCount,
			SentenceCount: stats.SentenceCount,
			EstimatedWPM:  Round(stats.EstimatedWPM, 1),
		},
		Criteria:      make([]CriterionResult, 0, len(results)),
		RubricVersion: r.Version(),
	}

	var total float64
	for _, res := range results {
		sub := clamp(res.RawSubScore)
		contribution := sub * res.Weight
		total += contribution

		res.RawSubScore = Round(sub, 2)
		res.WeightedContribution = Round(contribution, 2)
		res.Notes = append([]string(nil), res.Notes...)
		out.Criteria = append(out.Criteria, res)

		if res.Degraded {
			out.Notes = append(out.Notes, fmt.Sprintf(degradedNoteFormat, res.Name))
		}
	}

	if stats.WordCount == 0 {
		out.Notes = append(out.Notes, NoteEmptyTranscript)
	}

	out.TotalScore = Round(clamp(total), 1)
	out.OverallBandLabel = rubric.BandFor(r.OverallBands(), out.TotalScore)
	return out
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
