package observe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/godilite/intro-scorer/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func findMetric(t *testing.T, reader *sdkmetric.ManualReader, name string) *metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumFor(t *testing.T, m *metricdata.Metrics, key, value string) int64 {
	t.Helper()
	require.NotNil(t, m)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key(key)); key == "" || (ok && v.AsString() == value) {
			total += dp.Value
		}
	}
	return total
}

func TestObserveScore(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.ObserveScore(ctx, report.ScoreReport{
		TotalScore:       72.4,
		OverallBandLabel: "Good",
		QuickStats:       report.QuickStats{WordCount: 90},
		Criteria: []report.CriterionResult{
			{Name: "Clarity", RawSubScore: 80},
			{Name: "Language & Grammar", RawSubScore: 60, Degraded: true},
		},
	}, 12*time.Millisecond)
	m.ObserveScore(ctx, report.ScoreReport{
		OverallBandLabel: "Needs Improvement",
		Criteria:         []report.CriterionResult{{Name: "Clarity"}},
	}, time.Millisecond)

	assert.Equal(t, int64(1), sumFor(t, findMetric(t, reader, "scorer.runs"), "band", "Good"))
	assert.Equal(t, int64(2), sumFor(t, findMetric(t, reader, "scorer.runs"), "", ""))
	assert.Equal(t, int64(1), sumFor(t, findMetric(t, reader, "scorer.degraded_criteria"), "criterion", "Language & Grammar"))
	assert.Equal(t, int64(1), sumFor(t, findMetric(t, reader, "scorer.empty_transcripts"), "", ""))

	hist := findMetric(t, reader, "scorer.criterion_score")
	require.NotNil(t, hist)
	data, ok := hist.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var count uint64
	for _, dp := range data.DataPoints {
		count += dp.Count
	}
	assert.Equal(t, uint64(3), count)
}

func TestMiddleware(t *testing.T) {
	m, reader := newTestMetrics(t)

	r := chi.NewRouter()
	r.Use(Middleware(m))
	r.Get("/v1/rubric", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rubric", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	hist := findMetric(t, reader, "scorer.http.request.duration")
	require.NotNil(t, hist)
	data := hist.Data.(metricdata.Histogram[float64])
	require.Len(t, data.DataPoints, 1)

	route, _ := data.DataPoints[0].Attributes.Value("route")
	status, _ := data.DataPoints[0].Attributes.Value("status")
	assert.Equal(t, "/v1/rubric", route.AsString())
	assert.Equal(t, "418", status.AsString())
}

func TestProviderHandler(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	m, err := NewMetrics(p.MeterProvider())
	require.NoError(t, err)
	m.Runs.Add(context.Background(), 1)

	srv := httptest.NewServer(p.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "scorer_runs_total")
	assert.Contains(t, string(body), "go_goroutines")
}
