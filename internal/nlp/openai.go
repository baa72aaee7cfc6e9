package nlp

import (
	"context"
	"fmt"
	"net/http"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultEmbeddingModel is used when no model is configured.
const DefaultEmbeddingModel = oai.EmbeddingModelTextEmbedding3Small

// OpenAIEmbedder implements Embedder with the OpenAI embeddings API or any
// compatible server.
type OpenAIEmbedder struct {
	client oai.Client
	model  string
}

// NewOpenAIEmbedder builds an embedder. baseURL may be empty.
func NewOpenAIEmbedder(apiKey, model, baseURL string, httpClient *http.Client) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai embeddings: api key must not be empty")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &OpenAIEmbedder{client: oai.NewClient(opts...), model: model}, nil
}

// Model is the embedding model in use.
func (e *OpenAIEmbedder) Model() string { return e.model }

// EmbedBatch embeds texts in one request, preserving order.
func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	resp, err := e.client.Embeddings.New(ctx, oai.EmbeddingNewParams{
		Model: e.model,
		Input: oai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai embeddings: expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || int(d.Index) >= len(texts) {
			return nil, fmt.Errorf("openai embeddings: unexpected index %d", d.Index)
		}
		vec := make([]float32, len(d.Embedding))
		for i, v := range d.Embedding {
			vec[i] = float32(v)
		}
		out[d.Index] = vec
	}
	return out, nil
}
