package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-memento-editor/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-memento-editor/internal/config"
	"github.com/KirkDiggler/rpg-memento-editor/internal/handlers/mementos/v1alpha1"
	"github.com/KirkDiggler/rpg-memento-editor/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-memento-editor/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-memento-editor/internal/redis"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights"
	"github.com/KirkDiggler/rpg-memento-editor/internal/services/session"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the memento editor gRPC server backed by Redis and a catalog file.`,
	RunE:  runServer,
}

func init() {
	f := serverCmd.Flags()
	f.Int("port", 50051, "gRPC server port")
	f.String("redis-addr", "localhost:6379", "Redis address")
	f.StringSlice("redis-cluster-addrs", nil, "Redis cluster addresses, overrides --redis-addr")
	f.Int("redis-pool-size", 0, "Redis connection pool size, 0 keeps the client default")
	f.Bool("redis-tls", false, "Connect to Redis over TLS")
	f.String("highlight-store", config.StoreRedis, "Highlight store: redis or badger")
	f.String("badger-dir", "", "Badger directory for the badger highlight store, empty for in-memory")
	f.String("catalog", "catalog.yaml", "Catalog YAML file")
	f.String("locale", "en", "Locale used to order memento names")
	f.String("log-level", "info", "Log level: debug, info, warn or error")
	f.Duration("session-ttl", session.DefaultTTL, "Idle time before a session expires")
	f.Duration("sweep-interval", time.Minute, "How often idle sessions are swept")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	catalogClient, err := catalog.NewFileClient(&catalog.FileConfig{Path: cfg.CatalogPath})
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	redisOpts := &redisclient.Options{PoolSize: cfg.RedisPoolSize, UseTLS: cfg.RedisTLS}
	var redisClient redisclient.Client
	if len(cfg.RedisClusterAddrs) > 0 {
		redisClient, err = redisclient.NewClusterClient(cfg.RedisClusterAddrs, redisOpts)
	} else {
		redisClient, err = redisclient.NewClient(cfg.RedisAddr, redisOpts)
	}
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	gameSetupRepo, err := gamesetup.NewRedis(&gamesetup.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create game setup repository: %w", err)
	}

	highlightRepo, closeHighlights, err := newHighlightRepo(cfg, redisClient)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeHighlights.Close()
	}()

	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}

	manager, err := session.NewManager(&session.Config{
		CatalogClient: catalogClient,
		HighlightRepo: highlightRepo,
		GameSetupRepo: gameSetupRepo,
		IDGenerator:   idgen.NewUUID("sess"),
		Clock:         clock.New(),
		TTL:           cfg.SessionTTL,
		Locale:        locale,
	})
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}
	go manager.Run(ctx, cfg.SweepInterval)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SessionService: manager,
	})
	if err != nil {
		return fmt.Errorf("failed to create memento handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterMementoEditorServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newHighlightRepo builds the configured highlight store. The returned
// closer releases the badger database.
func newHighlightRepo(cfg *config.Config, client redisclient.Client) (highlights.Repository, io.Closer, error) {
	switch cfg.HighlightStore {
	case config.StoreBadger:
		repo, err := highlights.NewBadger(&highlights.BadgerConfig{Dir: cfg.BadgerDir})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open badger highlight store: %w", err)
		}
		return repo, repo, nil
	default:
		repo, err := highlights.NewRedis(&highlights.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis highlight store: %w", err)
		}
		return repo, nopCloser{}, nil
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}
