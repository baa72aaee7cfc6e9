package nlp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/godilite/intro-scorer/internal/resilience"
	"github.com/godilite/intro-scorer/internal/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLanguageToolClient(t *testing.T) {
	t.Run("counts matches", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/check", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "en-GB", r.PostForm.Get("language"))
			assert.Equal(t, "he go home", r.PostForm.Get("text"))
			_, _ = w.Write([]byte(`{"matches":[{"message":"Capitalise","offset":0,"length":2},{"message":"Agreement","offset":3,"length":2}]}`))
		}))
		defer srv.Close()

		c := NewLanguageToolClient(srv.URL+"/", "en-GB", nil, zap.NewNop())
		res, err := c.CheckGrammar(context.Background(), "he go home")

		require.NoError(t, err)
		assert.Equal(t, 2, res.Errors)
		assert.Equal(t, signals.Span{Offset: 3, Length: 2, Message: "Agreement"}, res.Spans[1])
		assert.False(t, res.Degraded)
	})

	t.Run("non-200 is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := NewLanguageToolClient(srv.URL, "", nil, zap.NewNop()).CheckGrammar(context.Background(), "x")

		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("malformed body is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"matches":`))
		}))
		defer srv.Close()

		_, err := NewLanguageToolClient(srv.URL, "", nil, zap.NewNop()).CheckGrammar(context.Background(), "x")

		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("context deadline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := NewLanguageToolClient(srv.URL, "", nil, zap.NewNop()).CheckGrammar(ctx, "x")

		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestSentimentClient(t *testing.T) {
	t.Run("compound score", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sentiment", r.URL.Path)
			var req sentimentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "I love it", req.Text)
			_, _ = w.Write([]byte(`{"compound": 0.64}`))
		}))
		defer srv.Close()

		res, err := NewSentimentClient(srv.URL, nil, zap.NewNop()).Sentiment(context.Background(), "I love it")

		require.NoError(t, err)
		assert.InDelta(t, 0.64, res.Score, 1e-9)
	})

	t.Run("out of range is clamped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"compound": -4}`))
		}))
		defer srv.Close()

		res, err := NewSentimentClient(srv.URL, nil, zap.NewNop()).Sentiment(context.Background(), "x")

		require.NoError(t, err)
		assert.Equal(t, -1.0, res.Score)
	})

	t.Run("missing compound is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"label":"POSITIVE"}`))
		}))
		defer srv.Close()

		_, err := NewSentimentClient(srv.URL, nil, zap.NewNop()).Sentiment(context.Background(), "x")

		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

type embedFunc func(ctx context.Context, texts []string) ([][]float32, error)

func (f embedFunc) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return f(ctx, texts)
}

func TestEmbeddingSimilarity(t *testing.T) {
	t.Run("maps cosine into unit range", func(t *testing.T) {
		cases := map[string]struct {
			a, b []float32
			want float64
		}{
			"identical":  {a: []float32{1, 2}, b: []float32{1, 2}, want: 1},
			"orthogonal": {a: []float32{1, 0}, b: []float32{0, 1}, want: 0.5},
			"opposite":   {a: []float32{1, 0}, b: []float32{-1, 0}, want: 0},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				s := NewEmbeddingSimilarity(embedFunc(func(_ context.Context, texts []string) ([][]float32, error) {
					require.Len(t, texts, 2)
					return [][]float32{tc.a, tc.b}, nil
				}))

				got, err := s.Similarity(context.Background(), "text", "reference")

				require.NoError(t, err)
				assert.InDelta(t, tc.want, got, 1e-6)
			})
		}
	})

	t.Run("embedder failure", func(t *testing.T) {
		s := NewEmbeddingSimilarity(embedFunc(func(context.Context, []string) ([][]float32, error) {
			return nil, errors.New("quota exceeded")
		}))

		_, err := s.Similarity(context.Background(), "a", "b")

		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		s := NewEmbeddingSimilarity(embedFunc(func(context.Context, []string) ([][]float32, error) {
			return [][]float32{{1, 2}, {1}}, nil
		}))

		_, err := s.Similarity(context.Background(), "a", "b")

		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("zero vector", func(t *testing.T) {
		_, err := Cosine([]float32{0, 0}, []float32{1, 1})
		assert.Error(t, err)
	})
}

func TestOpenAIEmbedder(t *testing.T) {
	_, err := NewOpenAIEmbedder("", "", "", nil)
	require.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "list",
			"model": "text-embedding-3-small",
			"data": [
				{"object": "embedding", "index": 1, "embedding": [0, 1]},
				{"object": "embedding", "index": 0, "embedding": [1, 0]}
			],
			"usage": {"prompt_tokens": 4, "total_tokens": 4}
		}`))
	}))
	defer srv.Close()

	e, err := NewOpenAIEmbedder("sk-test", "", srv.URL+"/v1/", srv.Client())
	require.NoError(t, err)
	assert.Equal(t, DefaultEmbeddingModel, e.Model())

	vecs, err := e.EmbedBatch(context.Background(), []string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0}, {0, 1}}, vecs)
}

type failingGrammar struct{ calls int }

func (f *failingGrammar) CheckGrammar(context.Context, string) (signals.GrammarResult, error) {
	f.calls++
	return signals.GrammarResult{}, ErrUnavailable
}

type failingSentiment struct{}

func (failingSentiment) Sentiment(context.Context, string) (signals.SentimentResult, error) {
	return signals.SentimentResult{}, ErrUnavailable
}

func TestGuarded(t *testing.T) {
	cfg := resilience.FallbackConfig{
		CircuitBreaker: resilience.CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour},
		Logger:         zap.NewNop(),
	}

	t.Run("grammar falls back and degrades", func(t *testing.T) {
		remote := &failingGrammar{}
		g := NewGuardedGrammar(remote, cfg)

		for i := 0; i < 4; i++ {
			res, err := g.CheckGrammar(context.Background(), "My name is is Asha.")
			require.NoError(t, err)
			assert.Equal(t, 1, res.Errors)
			assert.True(t, res.Degraded)
		}
		assert.Equal(t, 2, remote.calls, "breaker stops calling the remote once open")
		assert.Equal(t, resilience.StateOpen, g.Breaker().State())
	})

	t.Run("grammar primary is not degraded", func(t *testing.T) {
		g := NewGuardedGrammar(HeuristicChecker{}, cfg)

		res, err := g.CheckGrammar(context.Background(), "Fine text.")

		require.NoError(t, err)
		assert.False(t, res.Degraded)
	})

	t.Run("sentiment falls back to lexicon", func(t *testing.T) {
		g := NewGuardedSentiment(failingSentiment{}, cfg)

		res, err := g.Sentiment(context.Background(), "I am happy")

		require.NoError(t, err)
		assert.True(t, res.Degraded)
		assert.Greater(t, res.Score, 0.0)
		assert.NotNil(t, g.Breaker())
	})

	t.Run("similarity fails fast when open", func(t *testing.T) {
		calls := 0
		inner := similarityStub(func() (float64, error) { calls++; return 0, ErrUnavailable })
		g := NewGuardedSimilarity(inner, resilience.CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour})

		_, err := g.Similarity(context.Background(), "a", "b")
		assert.ErrorIs(t, err, ErrUnavailable)
		_, err = g.Similarity(context.Background(), "a", "b")
		assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
		assert.Equal(t, 1, calls)
	})
}

type similarityStub func() (float64, error)

func (f similarityStub) Similarity(context.Context, string, string) (float64, error) { return f() }
