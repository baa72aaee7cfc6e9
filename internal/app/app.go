package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	pb "github.com/godilite/intro-scorer/api/v1"
	"github.com/godilite/intro-scorer/internal/config"
	handler "github.com/godilite/intro-scorer/internal/grpc"
	"github.com/godilite/intro-scorer/internal/httpapi"
	"github.com/godilite/intro-scorer/internal/observe"
	"github.com/godilite/intro-scorer/internal/service"
	"github.com/godilite/intro-scorer/pkg/cache"
	grpcsrv "github.com/godilite/intro-scorer/pkg/grpc/server"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger     *zap.Logger
	cache      *cache.Cache
	metrics    *observe.Provider
	grpcServer *grpcsrv.Server
	httpServer *httpapi.Server
	httpLis    net.Listener
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	r, err := LoadRubric(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	provider, err := observe.NewProvider()
	if err != nil {
		return nil, fmt.Errorf("metrics init failed: %w", err)
	}
	metrics, err := observe.NewMetrics(provider.MeterProvider())
	if err != nil {
		return nil, fmt.Errorf("metrics init failed: %w", err)
	}

	scoringService := service.NewScoringService(r, NewExtractor(cfg, logger), logger,
		service.WithObserver(metrics),
		service.WithBatchConcurrency(cfg.BatchConcurrency),
	)

	a := &App{logger: logger, metrics: provider}

	// A nil Store, not a nil *Cache, disables caching.
	var store cache.Store
	if cfg.RedisAddr != "" {
		a.cache, err = cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
			cache.WithNamespace("intro-scorer"),
		)
		if err != nil {
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		store = a.cache
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	}

	grpcHandlers := handler.NewGRPCHandlers(scoringService, store, logger, cfg.CacheTTL)

	a.grpcServer, err = grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithMaxRecvMsgSize(service.MaxBatchSize*2*service.MaxTranscriptBytes),
	)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}
	a.grpcServer.RegisterServiceWithHealth(pb.ServiceName, func(s *grpc.Server) {
		pb.RegisterTranscriptScoringServer(s, grpcHandlers)
	})

	a.httpLis, err = net.Listen("tcp", fmt.Sprintf(":%d", cfg.HTTPPort))
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to listen on HTTP port %d: %w", cfg.HTTPPort, err)
	}
	a.httpServer = httpapi.New(scoringService,
		httpapi.WithLogger(logger),
		httpapi.WithCache(store, cfg.CacheTTL),
		httpapi.WithMetrics(metrics, provider.Handler()),
		httpapi.WithAllowedOrigins(cfg.CORSOrigins...),
	)

	logger.Info("application initialized",
		zap.String("rubric_version", r.Version()),
		zap.Int("criteria", r.Len()),
		zap.Bool("cache", store != nil))
	return a, nil
}

// GRPCAddr is the address the gRPC server listens on.
func (a *App) GRPCAddr() net.Addr { return a.grpcServer.Addr() }

// HTTPAddr is the address the HTTP server listens on.
func (a *App) HTTPAddr() net.Addr { return a.httpLis.Addr() }

// Run serves gRPC and HTTP until ctx is done or the HTTP server fails, then
// shuts both down.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.httpServer.Serve(a.httpLis)
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("application shutting down")
		a.grpcServer.Drain()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		if err := a.grpcServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
		}
		if err := a.metrics.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("metrics shutdown error", zap.Error(err))
		}
		return errors.Join(errs...)
	})

	err := g.Wait()
	a.close()
	if err != nil {
		return err
	}
	a.logger.Info("graceful shutdown completed successfully")
	return nil
}

func (a *App) close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("cache shutdown error", zap.Error(err))
		}
	}
}
