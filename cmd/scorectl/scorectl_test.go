package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pb "github.com/godilite/intro-scorer/api/v1"
	grpchandlers "github.com/godilite/intro-scorer/internal/grpc"
	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/service"
	"github.com/godilite/intro-scorer/internal/signals"
	"github.com/godilite/intro-scorer/pkg/grpc/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
)

var introFile = filepath.Join("..", "..", "testdata", "intro.txt")

// isolate keeps the host environment from wiring remote collaborators.
func isolate(t *testing.T) {
	for _, key := range []string{
		"RUBRIC_PATH", "RUBRIC_DB_PATH", "GRAMMAR_URL", "SENTIMENT_URL",
		"OPENAI_API_KEY", "IDEAL_WPM_MIN", "IDEAL_WPM_MAX", "FILLER_WORDS",
	} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	isolate(t)

	t.Run("single file", func(t *testing.T) {
		out, err := run(t, "", "score", "--duration", "60", introFile)
		require.NoError(t, err)

		rep, err := report.Unmarshal([]byte(strings.TrimSpace(out)))
		require.NoError(t, err)
		assert.Len(t, rep.Criteria, 6)
		assert.Greater(t, rep.TotalScore, 0.0)
		assert.Greater(t, rep.QuickStats.EstimatedWPM, 0.0)
	})

	t.Run("standard input", func(t *testing.T) {
		out, err := run(t, "Hello everyone. My name is Ravi.", "score")
		require.NoError(t, err)

		rep, err := report.Unmarshal([]byte(strings.TrimSpace(out)))
		require.NoError(t, err)
		assert.Equal(t, 6, rep.QuickStats.WordCount)
	})

	t.Run("batch", func(t *testing.T) {
		out, err := run(t, "", "score", introFile, introFile)
		require.NoError(t, err)

		var docs []json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(out), &docs))
		require.Len(t, docs, 2)
		first, err := report.Unmarshal(docs[0])
		require.NoError(t, err)
		second, err := report.Unmarshal(docs[1])
		require.NoError(t, err)
		assert.Equal(t, first.TotalScore, second.TotalScore)
	})

	t.Run("combined", func(t *testing.T) {
		single, err := run(t, "", "score", introFile)
		require.NoError(t, err)
		combined, err := run(t, "", "score", "--combine", introFile, introFile)
		require.NoError(t, err)

		one, err := report.Unmarshal([]byte(strings.TrimSpace(single)))
		require.NoError(t, err)
		both, err := report.Unmarshal([]byte(strings.TrimSpace(combined)))
		require.NoError(t, err)
		assert.Equal(t, 2*one.QuickStats.WordCount, both.QuickStats.WordCount)
	})

	t.Run("custom rubric", func(t *testing.T) {
		out, err := run(t, "", "score", "--rubric", filepath.Join("..", "..", "testdata", "rubric.yaml"), introFile)
		require.NoError(t, err)

		rep, err := report.Unmarshal([]byte(strings.TrimSpace(out)))
		require.NoError(t, err)
		assert.Len(t, rep.Criteria, 5)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "score", filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("negative duration", func(t *testing.T) {
		_, err := run(t, "", "score", "--duration", "-5", introFile)
		assert.ErrorIs(t, err, service.ErrInvalidRequest)
	})
}

func TestStatsCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "Hi there. I am Mia!", "stats", "-")
	require.NoError(t, err)

	var stats service.TextStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, service.TextStats{WordCount: 5, CharCount: 19, SentenceCount: 2}, stats)

	_, err = run(t, "", "stats")
	assert.Error(t, err, "a file argument is required")
}

func TestRubricCommand(t *testing.T) {
	out, err := run(t, "", "rubric", "validate", filepath.Join("..", "..", "testdata", "rubric.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 6 criteria")

	_, err = run(t, "", "rubric", "validate", filepath.Join(t.TempDir(), "rubric.json"))
	assert.ErrorIs(t, err, rubric.ErrConfiguration)

	out, err = run(t, "", "rubric", "show")
	require.NoError(t, err)
	var doc rubric.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Criteria, 6)
	assert.Equal(t, rubric.Default().Version(), doc.Version)
}

func TestRemoteCommand(t *testing.T) {
	logger := zaptest.NewLogger(t)
	scoring := service.NewScoringService(rubric.Default(), signals.NewExtractor(), logger)
	handlers := grpchandlers.NewGRPCHandlers(scoring, nil, logger, time.Minute)

	srv, err := server.New(server.WithPort(0), server.WithLogger(logger))
	require.NoError(t, err)
	srv.RegisterServiceWithHealth(pb.ServiceName, func(s *grpc.Server) {
		pb.RegisterTranscriptScoringServer(s, handlers)
	})
	srv.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	addr := fmt.Sprintf("127.0.0.1:%d", srv.Addr().(*net.TCPAddr).Port)

	out, err := run(t, "", "remote", "--addr", addr, introFile)
	require.NoError(t, err)
	rep, err := report.Unmarshal([]byte(strings.TrimSpace(out)))
	require.NoError(t, err)
	assert.Len(t, rep.Criteria, 6)

	out, err = run(t, "", "remote", "--addr", addr, introFile, introFile)
	require.NoError(t, err)
	var docs []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.Len(t, docs, 2)
}
