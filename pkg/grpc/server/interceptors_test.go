package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/introscorer.v1.TranscriptScoring/ScoreTranscript"}

func TestLoggingInterceptor(t *testing.T) {
	interceptor := LoggingInterceptor(zaptest.NewLogger(t))

	t.Run("successful request", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
			return "success", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "success", resp)
	})

	t.Run("error request keeps status", func(t *testing.T) {
		_, err := interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.InvalidArgument, "transcript exceeds limit")
		})

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestRequestIDInterceptor(t *testing.T) {
	interceptor := RequestIDInterceptor()

	t.Run("assigns an id", func(t *testing.T) {
		var seen string
		_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
			seen = RequestID(ctx)
			return nil, nil
		})

		require.NoError(t, err)
		assert.Len(t, seen, 36)
	})

	t.Run("reuses the caller id", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "abc-123"))
		var seen string
		_, _ = interceptor(ctx, nil, testInfo, func(ctx context.Context, req any) (any, error) {
			seen = RequestID(ctx)
			return nil, nil
		})

		assert.Equal(t, "abc-123", seen)
	})

	assert.Empty(t, RequestID(context.Background()))
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor(zaptest.NewLogger(t))

	resp, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestNewRejectsInvalidPort(t *testing.T) {
	_, err := New(WithPort(70000))
	assert.Error(t, err)
}

func TestServerBuilderWithLogging(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server, err := New(
		WithListener(lis),
		WithLogger(zaptest.NewLogger(t)),
		WithLogging(true),
		WithMaxRecvMsgSize(1<<20),
	)
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	assert.Equal(t, lis.Addr().String(), server.Addr().String())

	server.Start()

	conn, err := grpc.NewClient(server.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var header metadata.MD
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
	assert.NotEmpty(t, header.Get(RequestIDHeader))
}
