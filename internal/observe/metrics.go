// Package observe records scoring metrics through the OpenTelemetry metrics
// API and exposes them for Prometheus scraping.
package observe

import (
	"context"
	"time"

	"github.com/godilite/intro-scorer/internal/report"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/godilite/intro-scorer"

// Metrics holds the instruments of the scoring service. All fields are safe
// for concurrent use.
type Metrics struct {
	// Runs counts completed scoring runs, by overall band.
	Runs metric.Int64Counter

	// TotalScore is the distribution of report totals.
	TotalScore metric.Float64Histogram

	// CriterionScore is the distribution of sub-scores, by criterion.
	CriterionScore metric.Float64Histogram

	// DegradedCriteria counts criteria scored from a fallback signal.
	DegradedCriteria metric.Int64Counter

	// EmptyTranscripts counts runs on transcripts without words.
	EmptyTranscripts metric.Int64Counter

	// RunDuration is the latency of one scoring run.
	RunDuration metric.Float64Histogram

	// HTTPRequestDuration is the latency of HTTP requests, by method, route
	// and status.
	HTTPRequestDuration metric.Float64Histogram
}

var (
	scoreBuckets   = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	latencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
)

// NewMetrics creates the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Runs, err = m.Int64Counter("scorer.runs",
		metric.WithDescription("Completed scoring runs."),
	); err != nil {
		return nil, err
	}
	if met.TotalScore, err = m.Float64Histogram("scorer.total_score",
		metric.WithDescription("Total score of each report."),
		metric.WithExplicitBucketBoundaries(scoreBuckets...),
	); err != nil {
		return nil, err
	}
	if met.CriterionScore, err = m.Float64Histogram("scorer.criterion_score",
		metric.WithDescription("Sub-score of each criterion."),
		metric.WithExplicitBucketBoundaries(scoreBuckets...),
	); err != nil {
		return nil, err
	}
	if met.DegradedCriteria, err = m.Int64Counter("scorer.degraded_criteria",
		metric.WithDescription("Criteria scored from a local fallback signal."),
	); err != nil {
		return nil, err
	}
	if met.EmptyTranscripts, err = m.Int64Counter("scorer.empty_transcripts",
		metric.WithDescription("Runs on transcripts without words."),
	); err != nil {
		return nil, err
	}
	if met.RunDuration, err = m.Float64Histogram("scorer.run.duration",
		metric.WithDescription("Latency of one scoring run."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("scorer.http.request.duration",
		metric.WithDescription("Latency of HTTP requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	return met, nil
}

// ObserveScore records one completed run.
func (m *Metrics) ObserveScore(ctx context.Context, rep report.ScoreReport, elapsed time.Duration) {
	m.Runs.Add(ctx, 1, metric.WithAttributes(attribute.String("band", rep.OverallBandLabel)))
	m.TotalScore.Record(ctx, rep.TotalScore)
	m.RunDuration.Record(ctx, elapsed.Seconds())

	if rep.QuickStats.WordCount == 0 {
		m.EmptyTranscripts.Add(ctx, 1)
	}

	for _, c := range rep.Criteria {
		attrs := metric.WithAttributes(attribute.String("criterion", c.Name))
		m.CriterionScore.Record(ctx, c.RawSubScore, attrs)
		if c.Degraded {
			m.DegradedCriteria.Add(ctx, 1, attrs)
		}
	}
}
