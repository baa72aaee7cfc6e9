package server

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// DefaultPort is used when no port or listener is configured.
const DefaultPort = 50051

type Option func(*options)

type options struct {
	host              string
	port              int
	listener          net.Listener
	logger            *zap.Logger
	reflection        bool
	unaryInterceptors []grpc.UnaryServerInterceptor
	enableLogging     bool
	maxRecvMsgSize    int
}

// WithPort sets the TCP port. Port 0 picks a free port.
func WithPort(port int) Option {
	return func(o *options) {
		o.port = port
	}
}

// WithHost binds to one interface instead of all of them.
func WithHost(host string) Option {
	return func(o *options) {
		o.host = host
	}
}

// WithListener serves on an existing listener; host and port are ignored.
func WithListener(lis net.Listener) Option {
	return func(o *options) {
		o.listener = lis
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithReflection(enabled bool) Option {
	return func(o *options) {
		o.reflection = enabled
	}
}

func WithUnaryInterceptors(interceptors ...grpc.UnaryServerInterceptor) Option {
	return func(o *options) {
		o.unaryInterceptors = append(o.unaryInterceptors, interceptors...)
	}
}

// WithLogging adds request ID, recovery and request logging interceptors
// ahead of any custom ones.
func WithLogging(enabled bool) Option {
	return func(o *options) {
		o.enableLogging = enabled
	}
}

// WithMaxRecvMsgSize bounds incoming messages, in bytes. A batch of scoring
// requests is larger than the grpc default of 4 MiB.
func WithMaxRecvMsgSize(n int) Option {
	return func(o *options) {
		o.maxRecvMsgSize = n
	}
}

type Server struct {
	grpcServer   *grpc.Server
	lis          net.Listener
	logger       *zap.Logger
	healthServer *health.Server
}

// New builds a server and opens its listener. Serving starts with Start.
func New(opts ...Option) (*Server, error) {
	o := &options{port: DefaultPort}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	lis, err := listen(o)
	if err != nil {
		return nil, err
	}

	var serverOpts []grpc.ServerOption
	if o.maxRecvMsgSize > 0 {
		serverOpts = append(serverOpts, grpc.MaxRecvMsgSize(o.maxRecvMsgSize))
	}
	if chain := interceptorChain(o); len(chain) > 0 {
		serverOpts = append(serverOpts, grpc.ChainUnaryInterceptor(chain...))
	}

	grpcServer := grpc.NewServer(serverOpts...)
	if o.reflection {
		reflection.Register(grpcServer)
	}

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return &Server{
		grpcServer:   grpcServer,
		lis:          lis,
		logger:       o.logger.Named("grpc-server"),
		healthServer: healthServer,
	}, nil
}

func listen(o *options) (net.Listener, error) {
	if o.listener != nil {
		return o.listener, nil
	}
	if o.port < 0 || o.port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 0 and 65535", o.port)
	}
	addr := net.JoinHostPort(o.host, strconv.Itoa(o.port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return lis, nil
}

func interceptorChain(o *options) []grpc.UnaryServerInterceptor {
	var chain []grpc.UnaryServerInterceptor
	if o.enableLogging {
		chain = append(chain,
			RequestIDInterceptor(),
			RecoveryInterceptor(o.logger),
			LoggingInterceptor(o.logger),
		)
	}
	return append(chain, o.unaryInterceptors...)
}

// RegisterServiceWithHealth registers a service and reports it as serving.
func (s *Server) RegisterServiceWithHealth(serviceName string, registerFunc func(s *grpc.Server)) {
	registerFunc(s.grpcServer)

	if serviceName != "" {
		s.healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
		s.logger.Info("registered service with health check", zap.String("service", serviceName))
	}
}

// Drain reports every service as NOT_SERVING while in-flight calls keep
// running, so health-checking clients stop routing new work here. It cannot
// be undone.
func (s *Server) Drain() {
	s.healthServer.Shutdown()
	s.logger.Info("gRPC server draining")
}

// Start serves in a goroutine and returns immediately.
func (s *Server) Start() {
	s.logger.Info("gRPC server starting", zap.String("addr", s.lis.Addr().String()))

	go func() {
		if err := s.grpcServer.Serve(s.lis); err != nil {
			s.logger.Error("gRPC server failed", zap.Error(err))
		}
	}()
}

// Shutdown drains the server and stops it gracefully, forcing the stop when
// ctx ends first.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("gRPC server shutting down")
	s.Drain()

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("gRPC server stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("forced shutdown due to timeout")
		s.grpcServer.Stop()
		return ctx.Err()
	}
}

// Addr returns the server's listening address.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}
