package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	pb "github.com/godilite/intro-scorer/api/v1"
)

// ErrSerialization reports a report that violates its own invariants or a
// document that does not decode into one.
var ErrSerialization = errors.New("malformed score report")

const (
	weightSumTolerance    = 1e-6
	contributionTolerance = 0.02
	totalTolerance        = 0.1
)

// Validate checks the structural invariants of r.
func Validate(r ScoreReport) error {
	if len(r.Criteria) == 0 {
		return fmt.Errorf("%w: no criteria", ErrSerialization)
	}
	if !inRange(r.TotalScore) {
		return fmt.Errorf("%w: total score %v outside [0,100]", ErrSerialization, r.TotalScore)
	}
	if r.OverallBandLabel == "" {
		return fmt.Errorf("%w: missing overall band label", ErrSerialization)
	}
	if r.QuickStats.WordCount < 0 || r.QuickStats.CharCount < 0 || r.QuickStats.SentenceCount < 0 || r.QuickStats.EstimatedWPM < 0 {
		return fmt.Errorf("%w: negative quick stats", ErrSerialization)
	}

	seen := make(map[string]struct{}, len(r.Criteria))
	var weights, contributions float64
	for i, c := range r.Criteria {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			return fmt.Errorf("%w: criterion %d has no name", ErrSerialization, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate criterion %q", ErrSerialization, c.Name)
		}
		seen[name] = struct{}{}

		if c.Weight < 0 || c.Weight > 1 || math.IsNaN(c.Weight) {
			return fmt.Errorf("%w: criterion %q weight %v outside [0,1]", ErrSerialization, c.Name, c.Weight)
		}
		if !inRange(c.RawSubScore) {
			return fmt.Errorf("%w: criterion %q sub-score %v outside [0,100]", ErrSerialization, c.Name, c.RawSubScore)
		}
		if math.Abs(c.WeightedContribution-c.RawSubScore*c.Weight) > contributionTolerance {
			return fmt.Errorf("%w: criterion %q contribution %v does not match sub-score × weight", ErrSerialization, c.Name, c.WeightedContribution)
		}
		if c.BandLabel == "" {
			return fmt.Errorf("%w: criterion %q has no band label", ErrSerialization, c.Name)
		}
		weights += c.Weight
		contributions += c.WeightedContribution
	}

	if math.Abs(weights-1) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %v", ErrSerialization, weights)
	}
	if math.Abs(math.Min(contributions, 100)-r.TotalScore) > totalTolerance {
		return fmt.Errorf("%w: total %v does not match contributions %v", ErrSerialization, r.TotalScore, contributions)
	}
	return nil
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 100
}

// Marshal validates r and encodes it as the JSON report document.
func Marshal(r ScoreReport) ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return b, nil
}

// Unmarshal decodes and validates a JSON report document.
func Unmarshal(data []byte) (ScoreReport, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var r ScoreReport
	if err := dec.Decode(&r); err != nil {
		return ScoreReport{}, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if err := Validate(r); err != nil {
		return ScoreReport{}, err
	}
	return r, nil
}

// ToProto validates r and converts it to its gRPC message.
func ToProto(r ScoreReport) (*pb.ScoreReport, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	out := &pb.ScoreReport{
		TotalScore:       r.TotalScore,
		OverallBandLabel: r.OverallBandLabel,
		QuickStats: &pb.QuickStats{
			WordCount:     int32(r.QuickStats.WordCount),
			CharCount:     int32(r.QuickStats.CharCount),
			SentenceCount: int32(r.QuickStats.SentenceCount),
			EstimatedWpm:  r.QuickStats.EstimatedWPM,
		},
		Criteria:      make([]*pb.CriterionResult, len(r.Criteria)),
		Notes:         cloneNotes(r.Notes),
		RubricVersion: r.RubricVersion,
	}
	for i, c := range r.Criteria {
		out.Criteria[i] = &pb.CriterionResult{
			Name:                 c.Name,
			Weight:               c.Weight,
			RawSubScore:          c.RawSubScore,
			WeightedContribution: c.WeightedContribution,
			BandLabel:            c.BandLabel,
			Degraded:             c.Degraded,
			Notes:                cloneNotes(c.Notes),
		}
	}
	return out, nil
}

// FromProto is the inverse of ToProto. A missing quick_stats message reads
// as zero counts.
func FromProto(m *pb.ScoreReport) (ScoreReport, error) {
	if m == nil {
		return ScoreReport{}, fmt.Errorf("%w: nil message", ErrSerialization)
	}
	stats := m.GetQuickStats()
	r := ScoreReport{
		TotalScore:       m.GetTotalScore(),
		OverallBandLabel: m.GetOverallBandLabel(),
		QuickStats: QuickStats{
			WordCount:     int(stats.GetWordCount()),
			CharCount:     int(stats.GetCharCount()),
			SentenceCount: int(stats.GetSentenceCount()),
			EstimatedWPM:  stats.GetEstimatedWpm(),
		},
		Criteria:      make([]CriterionResult, len(m.GetCriteria())),
		Notes:         cloneNotes(m.GetNotes()),
		RubricVersion: m.GetRubricVersion(),
	}
	for i, c := range m.GetCriteria() {
		r.Criteria[i] = CriterionResult{
			Name:                 c.GetName(),
			Weight:               c.GetWeight(),
			RawSubScore:          c.GetRawSubScore(),
			WeightedContribution: c.GetWeightedContribution(),
			BandLabel:            c.GetBandLabel(),
			Degraded:             c.GetDegraded(),
			Notes:                cloneNotes(c.GetNotes()),
		}
	}
	if err := Validate(r); err != nil {
		return ScoreReport{}, err
	}
	return r, nil
}

func cloneNotes(notes []string) []string {
	if len(notes) == 0 {
		return nil
	}
	return append([]string(nil), notes...)
}
