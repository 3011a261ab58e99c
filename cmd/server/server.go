package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/onenight-api/internal/config"
	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/onenight-api/internal/orchestrators/table"
	"github.com/KirkDiggler/onenight-api/internal/pkg/clock"
	"github.com/KirkDiggler/onenight-api/internal/pkg/idgen"
	"github.com/KirkDiggler/onenight-api/internal/presets"
	redisclient "github.com/KirkDiggler/onenight-api/internal/redis"
	"github.com/KirkDiggler/onenight-api/internal/repositories/rounds"
	"github.com/KirkDiggler/onenight-api/internal/repositories/tables"
)

const shutdownTimeout = 30 * time.Second

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the table server. Settings come from ONENIGHT_* environment variables.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides ONENIGHT_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv, cleanup, err := newServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting grpc server", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down grpc server")

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

// newServer wires the table service and returns a server ready to Serve
func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*grpc.Server, func(), error) {
	cleanup := func() {}

	presetTable := presets.Default()
	if cfg.PresetsPath != "" {
		loaded, err := presets.Load(cfg.PresetsPath)
		if err != nil {
			return nil, cleanup, fmt.Errorf("loading presets: %w", err)
		}
		presetTable = loaded
		logger.Info("loaded presets", "path", cfg.PresetsPath, "counts", loaded.Counts())
	}

	clk := clock.New()
	orchCfg := &table.Config{
		TableRepo:   tables.NewInMemory(cfg.MaxTables),
		Presets:     presetTable,
		IDGenerator: idgen.NewUUID("table"),
		Clock:       clk,
		Roller:      dice.DefaultRoller,
		RoundTTL:    cfg.RoundTTL,
	}

	if cfg.ArchiveEnabled() {
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			UseTLS:   cfg.RedisTLS,
		})
		if err != nil {
			return nil, cleanup, fmt.Errorf("creating redis client: %w", err)
		}
		cleanup = func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close redis client", "error", err)
			}
		}
		if err := redisclient.Ping(ctx, client, 5*time.Second); err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("connecting to redis: %w", err)
		}

		archive, err := rounds.NewRedisRepository(&rounds.Config{
			Client: client,
			Clock:  clk,
			TTL:    cfg.RoundTTL,
		})
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("creating round archive: %w", err)
		}
		orchCfg.RoundArchive = archive
		logger.Info("round archive enabled", "addr", cfg.RedisAddr, "ttl", cfg.RoundTTL)
	}

	tableService, err := table.NewOrchestrator(orchCfg)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to create table orchestrator: %w", err)
	}

	tableHandler, err := v1alpha1.NewTableHandler(&v1alpha1.TableHandlerConfig{
		TableService: tableService,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to create table handler: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic(logger))),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic(logger))),
		),
	)

	v1alpha1.RegisterTableServiceServer(srv, tableHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.TableServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, cleanup, nil
}

// interceptorLogger routes middleware logs to slog. The middleware levels
// share slog's numbering.
func interceptorLogger(logger *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
}

func recoverPanic(logger *slog.Logger) grpc_recovery.RecoveryHandlerFunc {
	return func(p any) error {
		logger.Error("recovered from panic", "panic", p)
		return errors.ToGRPCError(errors.Internalf("internal error: %v", p))
	}
}
