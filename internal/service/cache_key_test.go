package service

import (
	"context"
	"testing"

	"github.com/godilite/intro-scorer/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScore(t *testing.T) report.ScoreReport {
	t.Helper()
	rep, err := newTestService(t).Score(context.Background(), ScoreRequest{Transcript: introText})
	require.NoError(t, err)
	return rep
}

func TestReportCacheKey(t *testing.T) {
	d0, d60 := 0.0, 60.0
	base := ScoreRequest{Transcript: "Hello, I am Ravi.", Reference: "introduce yourself"}

	key := ReportCacheKey("v1", base)
	assert.Regexp(t, `^score:[0-9a-f]{64}$`, key)
	assert.Equal(t, key, ReportCacheKey("v1", base), "deterministic")

	withDur := base
	withDur.DurationSec = &d60
	zeroDur := base
	zeroDur.DurationSec = &d0

	keys := map[string]string{
		"base":        key,
		"version":     ReportCacheKey("v2", base),
		"duration":    ReportCacheKey("v1", withDur),
		"zero":        ReportCacheKey("v1", zeroDur),
		"transcript":  ReportCacheKey("v1", ScoreRequest{Transcript: "Hello, I am Ravi!", Reference: base.Reference}),
		"reference":   ReportCacheKey("v1", ScoreRequest{Transcript: base.Transcript}),
		"boundary":    ReportCacheKey("v1", ScoreRequest{Transcript: "Hello, I am Ravi.intro", Reference: "duce yourself"}),
		"emptyFields": ReportCacheKey("", ScoreRequest{}),
	}
	seen := map[string]string{}
	for name, k := range keys {
		if other, dup := seen[k]; dup {
			t.Fatalf("%s and %s share cache key %s", name, other, k)
		}
		seen[k] = name
	}
}

func TestReportIsStale(t *testing.T) {
	rep := sampleScore(t)
	assert.False(t, ReportIsStale(rep))

	rep.Criteria[2].Degraded = true
	assert.True(t, ReportIsStale(rep))
}
