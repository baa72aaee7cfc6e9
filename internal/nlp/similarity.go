package nlp

import (
	"context"
	"fmt"
	"math"
)

// Embedder maps texts to dense vectors of one fixed dimensionality.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// EmbeddingSimilarity compares a transcript with a reference answer by the
// cosine similarity of their embeddings, shifted from [-1,1] into [0,1].
type EmbeddingSimilarity struct {
	embedder Embedder
}

// NewEmbeddingSimilarity wraps an embedder.
func NewEmbeddingSimilarity(e Embedder) *EmbeddingSimilarity {
	return &EmbeddingSimilarity{embedder: e}
}

// Similarity returns (cos+1)/2 of the two embeddings.
func (s *EmbeddingSimilarity) Similarity(ctx context.Context, text, reference string) (float64, error) {
	vecs, err := s.embedder.EmbedBatch(ctx, []string{text, reference})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(vecs) != 2 {
		return 0, fmt.Errorf("%w: expected 2 embeddings, got %d", ErrUnavailable, len(vecs))
	}
	cos, err := Cosine(vecs[0], vecs[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return (cos + 1) / 2, nil
}

// Cosine returns the cosine similarity of a and b.
func Cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0, fmt.Errorf("zero vector")
	}
	return math.Max(-1, math.Min(1, dot/(math.Sqrt(na)*math.Sqrt(nb)))), nil
}
