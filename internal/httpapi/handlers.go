package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/service"
	"github.com/godilite/intro-scorer/pkg/cache"
	"go.uber.org/zap"
)

// Request bodies carry at most one transcript and one reference, or a full
// batch of them, plus JSON overhead.
const (
	maxSingleBody = 2*service.MaxTranscriptBytes + 4<<10
	maxBatchBody  = service.MaxBatchSize * maxSingleBody
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type statsRequest struct {
	Transcript string `json:"transcript"`
}

type scoreRequest struct {
	Transcript  string   `json:"transcript"`
	DurationSec *float64 `json:"duration_sec,omitempty"`
	Reference   string   `json:"reference,omitempty"`
}

type batchRequest struct {
	Transcripts []scoreRequest `json:"transcripts"`
	Combine     bool           `json:"combine,omitempty"`
}

type batchResponse struct {
	Reports []json.RawMessage `json:"reports"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := http.StatusInternalServerError, op+" failed"
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		status, msg = http.StatusGatewayTimeout, "request timed out"
	case errors.Is(err, context.Canceled):
		status, msg = statusClientClosed, "request canceled"
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, errMalformedBody):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, report.ErrSerialization):
		msg = "score report could not be produced"
	}

	fields := []zap.Field{zap.String("op", op), zap.Int("status", status), zap.Error(err)}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields...)
	} else {
		s.logger.Info("request rejected", fields...)
	}
	respondJSON(w, status, errorResponse{Error: msg, RequestID: middleware.GetReqID(r.Context())})
}

// statusClientClosed is the conventional status for a request the client
// abandoned.
const statusClientClosed = 499

var errMalformedBody = errors.New("malformed request body")

func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return nil
}

func toServiceRequest(r scoreRequest) service.ScoreRequest {
	return service.ScoreRequest{Transcript: r.Transcript, DurationSec: r.DurationSec, Reference: r.Reference}
}

func toServiceRequests(in []scoreRequest) []service.ScoreRequest {
	out := make([]service.ScoreRequest, len(in))
	for i, r := range in {
		out[i] = toServiceRequest(r)
	}
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRubric(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.scorer.Rubric().Document())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req statsRequest
	if err := decodeBody(w, r, maxSingleBody, &req); err != nil {
		s.respondError(w, r, "stats", err)
		return
	}
	respondJSON(w, http.StatusOK, s.scorer.QuickStats(req.Transcript))
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var in scoreRequest
	if err := decodeBody(w, r, maxSingleBody, &in); err != nil {
		s.respondError(w, r, "score", err)
		return
	}
	req := toServiceRequest(in)
	key := service.ReportCacheKey(s.scorer.Rubric().Version(), req)

	rep, err := cache.FindAndCache(r.Context(), s.cache, &s.sfGroup, key, s.cacheTTL, s.logger, service.ReportIsStale,
		func(ctx context.Context) (report.ScoreReport, error) {
			return s.scorer.Score(ctx, req)
		})
	if err != nil {
		s.respondError(w, r, "score", err)
		return
	}
	s.writeReport(w, r, "score", rep)
}

func (s *Server) handleCombined(w http.ResponseWriter, r *http.Request) {
	var in batchRequest
	if err := decodeBody(w, r, maxBatchBody, &in); err != nil {
		s.respondError(w, r, "combined", err)
		return
	}
	rep, err := s.scorer.ScoreCombined(r.Context(), toServiceRequests(in.Transcripts))
	if err != nil {
		s.respondError(w, r, "combined", err)
		return
	}
	s.writeReport(w, r, "combined", rep)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var in batchRequest
	if err := decodeBody(w, r, maxBatchBody, &in); err != nil {
		s.respondError(w, r, "batch", err)
		return
	}
	if in.Combine {
		s.handleCombinedRequests(w, r, in.Transcripts)
		return
	}

	reports, err := s.scorer.ScoreBatch(r.Context(), toServiceRequests(in.Transcripts))
	if err != nil {
		s.respondError(w, r, "batch", err)
		return
	}
	out := batchResponse{Reports: make([]json.RawMessage, len(reports))}
	for i, rep := range reports {
		b, err := report.Marshal(rep)
		if err != nil {
			s.respondError(w, r, "batch", err)
			return
		}
		out.Reports[i] = b
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCombinedRequests(w http.ResponseWriter, r *http.Request, in []scoreRequest) {
	rep, err := s.scorer.ScoreCombined(r.Context(), toServiceRequests(in))
	if err != nil {
		s.respondError(w, r, "batch", err)
		return
	}
	b, err := report.Marshal(rep)
	if err != nil {
		s.respondError(w, r, "batch", err)
		return
	}
	respondJSON(w, http.StatusOK, batchResponse{Reports: []json.RawMessage{b}})
}

func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, op string, rep report.ScoreReport) {
	b, err := report.Marshal(rep)
	if err != nil {
		s.respondError(w, r, op, err)
		return
	}
	respondRaw(w, http.StatusOK, b)
}
