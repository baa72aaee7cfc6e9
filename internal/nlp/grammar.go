package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/godilite/intro-scorer/internal/signals"
	"go.uber.org/zap"
)

const defaultGrammarLanguage = "en-US"

// LanguageToolClient checks grammar against a LanguageTool compatible
// server (POST /v2/check).
type LanguageToolClient struct {
	baseURL  string
	language string
	http     *http.Client
	logger   *zap.Logger
}

// NewLanguageToolClient creates a client for baseURL. An empty language
// defaults to en-US and a nil http client gets a bounded default.
func NewLanguageToolClient(baseURL, language string, httpClient *http.Client, logger *zap.Logger) *LanguageToolClient {
	if language == "" {
		language = defaultGrammarLanguage
	}
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &LanguageToolClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		http:     newHTTPClient(httpClient),
		logger:   logger.Named("languagetool"),
	}
}

type languageToolResponse struct {
	Matches []struct {
		Message string `json:"message"`
		Offset  int    `json:"offset"`
		Length  int    `json:"length"`
	} `json:"matches"`
}

// CheckGrammar returns one error per LanguageTool match.
func (c *LanguageToolClient) CheckGrammar(ctx context.Context, text string) (signals.GrammarResult, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return signals.GrammarResult{}, fmt.Errorf("%w: building request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return signals.GrammarResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return signals.GrammarResult{}, fmt.Errorf("%w: languagetool status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out languageToolResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return signals.GrammarResult{}, fmt.Errorf("%w: decoding languagetool response: %v", ErrUnavailable, err)
	}

	spans := make([]signals.Span, 0, len(out.Matches))
	for _, m := range out.Matches {
		spans = append(spans, signals.Span{Offset: m.Offset, Length: m.Length, Message: m.Message})
	}
	c.logger.Debug("grammar checked", zap.Int("matches", len(spans)))
	return signals.GrammarResult{Errors: len(spans), Spans: spans}, nil
}

// HeuristicChecker is the local grammar capability. It never fails.
type HeuristicChecker struct{}

// CheckGrammar counts heuristic issues in text.
func (HeuristicChecker) CheckGrammar(_ context.Context, text string) (signals.GrammarResult, error) {
	return signals.GrammarResult{Errors: signals.HeuristicGrammarErrors(text)}, nil
}
