package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/godilite/intro-scorer/internal/signals"
	"go.uber.org/zap"
)

// SentimentClient calls a JSON sentiment service: POST /sentiment with
// {"text": ...} answering {"compound": float}, VADER style.
type SentimentClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewSentimentClient creates a client for baseURL.
func NewSentimentClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *SentimentClient {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &SentimentClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(httpClient),
		logger:  logger.Named("sentiment"),
	}
}

type sentimentRequest struct {
	Text string `json:"text"`
}

type sentimentResponse struct {
	Compound *float64 `json:"compound"`
}

// Sentiment returns the compound polarity in [-1,1].
func (c *SentimentClient) Sentiment(ctx context.Context, text string) (signals.SentimentResult, error) {
	payload, err := json.Marshal(sentimentRequest{Text: text})
	if err != nil {
		return signals.SentimentResult{}, fmt.Errorf("%w: encoding request: %v", ErrUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sentiment", bytes.NewReader(payload))
	if err != nil {
		return signals.SentimentResult{}, fmt.Errorf("%w: building request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return signals.SentimentResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return signals.SentimentResult{}, fmt.Errorf("%w: sentiment status %d", ErrUnavailable, resp.StatusCode)
	}

	var out sentimentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return signals.SentimentResult{}, fmt.Errorf("%w: decoding sentiment response: %v", ErrUnavailable, err)
	}
	if out.Compound == nil || math.IsNaN(*out.Compound) {
		return signals.SentimentResult{}, fmt.Errorf("%w: sentiment response has no compound score", ErrUnavailable)
	}
	return signals.SentimentResult{Score: math.Max(-1, math.Min(1, *out.Compound))}, nil
}

// LexiconAnalyzer is the local sentiment capability. It never fails.
type LexiconAnalyzer struct{}

// Sentiment scores text with the built-in polarity lexicon.
func (LexiconAnalyzer) Sentiment(_ context.Context, text string) (signals.SentimentResult, error) {
	return signals.SentimentResult{Score: signals.LexiconSentiment(signals.Tokenize(text))}, nil
}
