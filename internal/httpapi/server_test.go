package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/godilite/intro-scorer/internal/observe"
	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/service"
	"github.com/godilite/intro-scorer/internal/signals"
	"github.com/godilite/intro-scorer/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	introText  = "Good morning everyone. My name is Priya and I study in class 10 at Green Valley School. I love painting with my family."
	fillerText = "Hi, I am John. I am, um, a student, um, at a college, um, like, studying, um, computer science."
)

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memStore) Get(_ context.Context, key string, dest any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

// countingScorer delegates to a real service and counts Score calls.
type countingScorer struct {
	*service.ScoringService
	calls    atomic.Int32
	scoreErr error
	override *report.ScoreReport
}

func (c *countingScorer) Score(ctx context.Context, req service.ScoreRequest) (report.ScoreReport, error) {
	c.calls.Add(1)
	if c.scoreErr != nil {
		return report.ScoreReport{}, c.scoreErr
	}
	if c.override != nil {
		return *c.override, nil
	}
	return c.ScoringService.Score(ctx, req)
}

func newScorer(t *testing.T) *countingScorer {
	t.Helper()
	return &countingScorer{ScoringService: service.NewScoringService(rubric.Default(), signals.NewExtractor(), zaptest.NewLogger(t))}
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNew(t *testing.T) {
	assert.Panics(t, func() { New(nil) })

	s := New(newScorer(t), WithCache(nil, 0), WithRequestTimeout(0))
	assert.Equal(t, defaultCacheTTL, s.cacheTTL)
	assert.Equal(t, defaultRequestTimeout, s.timeout)
}

func TestHealthAndRequestID(t *testing.T) {
	h := New(newScorer(t), WithLogger(zaptest.NewLogger(t))).Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "trace-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "trace-42", rec.Header().Get(requestIDHeader))
}

func TestRubricAndStats(t *testing.T) {
	h := New(newScorer(t)).Handler()

	t.Run("rubric", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/v1/rubric", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var doc rubric.Document
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Len(t, doc.Criteria, 6)
		assert.Equal(t, rubric.Default().Version(), doc.Version)
	})

	t.Run("stats", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/stats", `{"transcript":"`+fillerText+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var stats service.TextStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, 19, stats.WordCount)
		assert.Equal(t, 2, stats.SentenceCount)
	})
}

func TestScore(t *testing.T) {
	t.Run("report is served and cached", func(t *testing.T) {
		scorer := newScorer(t)
		h := New(scorer, WithCache(&memStore{data: map[string][]byte{}}, time.Minute)).Handler()
		body := `{"transcript":"` + introText + `","duration_sec":45}`

		rec := do(t, h, http.MethodPost, "/v1/score", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		rep, err := report.Unmarshal(rec.Body.Bytes())
		require.NoError(t, err)
		assert.Len(t, rep.Criteria, 6)
		assert.Greater(t, rep.TotalScore, 0.0)

		rec = do(t, h, http.MethodPost, "/v1/score", body)
		require.Equal(t, http.StatusOK, rec.Code)
		again, err := report.Unmarshal(rec.Body.Bytes())
		require.NoError(t, err)
		assert.Equal(t, rep, again)
		assert.Equal(t, int32(1), scorer.calls.Load())
	})

	t.Run("without cache every request scores", func(t *testing.T) {
		scorer := newScorer(t)
		h := New(scorer).Handler()

		for i := 0; i < 2; i++ {
			rec := do(t, h, http.MethodPost, "/v1/score", `{"transcript":"Hello."}`)
			require.Equal(t, http.StatusOK, rec.Code)
		}
		assert.Equal(t, int32(2), scorer.calls.Load())
	})

	t.Run("empty transcript", func(t *testing.T) {
		rec := do(t, New(newScorer(t)).Handler(), http.MethodPost, "/v1/score", `{"transcript":""}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rep, err := report.Unmarshal(rec.Body.Bytes())
		require.NoError(t, err)
		assert.Equal(t, 0.0, rep.TotalScore)
		assert.Contains(t, rep.Notes, report.NoteEmptyTranscript)
	})
}

func TestScoreErrors(t *testing.T) {
	tests := []struct {
		name   string
		scorer func(*countingScorer)
		body   string
		status int
		errMsg string
	}{
		{name: "unknown field", body: `{"transcript":"hi","speaker":"x"}`, status: http.StatusBadRequest, errMsg: "malformed request body"},
		{name: "not json", body: `transcript=hi`, status: http.StatusBadRequest, errMsg: "malformed request body"},
		{name: "negative duration", body: `{"transcript":"hi","duration_sec":-1}`, status: http.StatusBadRequest, errMsg: "duration"},
		{name: "oversized transcript", body: `{"transcript":"` + strings.Repeat("a", service.MaxTranscriptBytes+1) + `"}`, status: http.StatusBadRequest, errMsg: "exceeds"},
		{
			name:   "invalid report",
			scorer: func(c *countingScorer) { c.override = &report.ScoreReport{TotalScore: 10} },
			body:   `{"transcript":"hi"}`,
			status: http.StatusInternalServerError,
			errMsg: "score report could not be produced",
		},
		{
			name:   "unexpected error",
			scorer: func(c *countingScorer) { c.scoreErr = errors.New("disk on fire") },
			body:   `{"transcript":"hi"}`,
			status: http.StatusInternalServerError,
			errMsg: "score failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := newScorer(t)
			if tt.scorer != nil {
				tt.scorer(scorer)
			}
			rec := do(t, New(scorer).Handler(), http.MethodPost, "/v1/score", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.errMsg)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestBatch(t *testing.T) {
	h := New(newScorer(t)).Handler()

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) []report.ScoreReport {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp batchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		out := make([]report.ScoreReport, len(resp.Reports))
		for i, raw := range resp.Reports {
			rep, err := report.Unmarshal(raw)
			require.NoError(t, err)
			out[i] = rep
		}
		return out
	}

	t.Run("reports in input order", func(t *testing.T) {
		reps := decode(t, do(t, h, http.MethodPost, "/v1/score/batch",
			`{"transcripts":[{"transcript":"`+introText+`"},{"transcript":""},{"transcript":"Hi."}]}`))

		require.Len(t, reps, 3)
		assert.Equal(t, 0.0, reps[1].TotalScore)
		assert.Greater(t, reps[0].TotalScore, reps[2].TotalScore)
	})

	t.Run("combine flag", func(t *testing.T) {
		reps := decode(t, do(t, h, http.MethodPost, "/v1/score/batch",
			`{"combine":true,"transcripts":[{"transcript":"Hello everyone."},{"transcript":"My name is Priya."}]}`))

		require.Len(t, reps, 1)
		assert.Equal(t, 6, reps[0].QuickStats.WordCount)
	})

	t.Run("combined route", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/score/combined",
			`{"transcripts":[{"transcript":"Hello everyone.","duration_sec":2},{"transcript":"My name is Priya.","duration_sec":2}]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rep, err := report.Unmarshal(rec.Body.Bytes())
		require.NoError(t, err)
		assert.Equal(t, 2, rep.QuickStats.SentenceCount)
		assert.Equal(t, 90.0, rep.QuickStats.EstimatedWPM)
	})

	t.Run("empty batch", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/score/batch", `{"transcripts":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(t, h, http.MethodPost, "/v1/score/combined", `{"transcripts":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCORS(t *testing.T) {
	h := New(newScorer(t), WithAllowedOrigins("http://localhost:3000")).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/v1/score", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsRoute(t *testing.T) {
	p, err := observe.NewProvider()
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	m, err := observe.NewMetrics(p.MeterProvider())
	require.NoError(t, err)

	h := New(newScorer(t), WithMetrics(m, p.Handler())).Handler()

	require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)
	rec := do(t, h, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "scorer_http_request_duration")
}

func TestServeAndShutdown(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := New(newScorer(t), WithLogger(zaptest.NewLogger(t)))

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(lis) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + lis.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}
