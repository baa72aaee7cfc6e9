package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pb "github.com/godilite/intro-scorer/api/v1"
	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/service"
	"github.com/godilite/intro-scorer/pkg/cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 30 * time.Second
)

type GRPCHandlers struct {
	pb.UnimplementedTranscriptScoringServer
	scoring  ScoringService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers. cache may be nil.
func NewGRPCHandlers(scoring ScoringService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if scoring == nil {
		panic("nil ScoringService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRPCHandlers{
		scoring:  scoring,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func toServiceRequest(r *pb.ScoreRequest) service.ScoreRequest {
	req := service.ScoreRequest{Transcript: r.GetTranscript(), Reference: r.GetReference()}
	if r != nil && r.DurationSec != nil {
		d := r.GetDurationSec()
		req.DurationSec = &d
	}
	return req
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		s.logger.Info("invalid request", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, report.ErrSerialization):
		s.logger.Error("report invariant violated", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "score report could not be produced")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

// ScoreTranscript scores one transcript. Reports are cached by content.
func (s *GRPCHandlers) ScoreTranscript(ctx context.Context, in *pb.ScoreRequest) (*pb.ScoreReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	sreq := toServiceRequest(in)
	key := service.ReportCacheKey(s.scoring.Rubric().Version(), sreq)

	rep, err := cache.FindAndCache(ctx, s.cache, &s.sfGroup, key, s.cacheTTL, s.logger, service.ReportIsStale, func(fetchCtx context.Context) (report.ScoreReport, error) {
		return s.scoring.Score(fetchCtx, sreq)
	})
	if err != nil {
		return nil, s.handleError(ctx, "ScoreTranscript", err)
	}

	out, err := report.ToProto(rep)
	if err != nil {
		return nil, s.handleError(ctx, "ScoreTranscript", err)
	}
	return out, nil
}

// ScoreBatch scores several transcripts individually, or as one combined
// transcript when combine is set.
func (s *GRPCHandlers) ScoreBatch(ctx context.Context, in *pb.BatchRequest) (*pb.BatchResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	reqs := make([]service.ScoreRequest, len(in.GetTranscripts()))
	for i, r := range in.GetTranscripts() {
		reqs[i] = toServiceRequest(r)
	}

	var reports []report.ScoreReport
	if in.GetCombine() {
		rep, err := s.scoring.ScoreCombined(ctx, reqs)
		if err != nil {
			return nil, s.handleError(ctx, "ScoreBatch", err)
		}
		reports = []report.ScoreReport{rep}
	} else {
		var err error
		reports, err = s.scoring.ScoreBatch(ctx, reqs)
		if err != nil {
			return nil, s.handleError(ctx, "ScoreBatch", err)
		}
	}

	out := &pb.BatchResponse{Reports: make([]*pb.ScoreReport, len(reports))}
	for i, rep := range reports {
		m, err := report.ToProto(rep)
		if err != nil {
			return nil, s.handleError(ctx, "ScoreBatch", err)
		}
		out.Reports[i] = m
	}
	return out, nil
}

// GetRubric returns the rubric every transcript is scored against.
func (s *GRPCHandlers) GetRubric(ctx context.Context, _ *emptypb.Empty) (*pb.Rubric, error) {
	out, err := rubricToProto(s.scoring.Rubric().Document())
	if err != nil {
		return nil, s.handleError(ctx, "GetRubric", err)
	}
	return out, nil
}

func rubricToProto(doc rubric.Document) (*pb.Rubric, error) {
	out := &pb.Rubric{
		Version:      doc.Version,
		Criteria:     make([]*pb.Criterion, len(doc.Criteria)),
		OverallBands: bandsToProto(doc.OverallBands),
	}
	for i, c := range doc.Criteria {
		out.Criteria[i] = &pb.Criterion{
			Name:     c.Name,
			Weight:   c.Weight,
			Strategy: string(c.Strategy),
			Bands:    bandsToProto(c.Bands),
		}
	}

	b, err := json.Marshal(doc.Params)
	if err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	var params map[string]any
	if err := json.Unmarshal(b, &params); err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	if out.Params, err = structpb.NewStruct(params); err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	return out, nil
}

func bandsToProto(bands []rubric.Band) []*pb.Band {
	out := make([]*pb.Band, len(bands))
	for i, b := range bands {
		out[i] = &pb.Band{Lower: b.Lower, Label: b.Label}
	}
	return out
}

// DecodeReports converts the reports of a ScoreBatch response.
func DecodeReports(resp *pb.BatchResponse) ([]report.ScoreReport, error) {
	if resp == nil {
		return nil, errors.New("response has no reports")
	}
	out := make([]report.ScoreReport, 0, len(resp.GetReports()))
	for _, m := range resp.GetReports() {
		rep, err := report.FromProto(m)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, nil
}
