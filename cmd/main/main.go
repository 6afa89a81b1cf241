package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	temporalclient "go.temporal.io/sdk/client"

	"github.com/talkifydocs/ingest-backend/config"
	"github.com/talkifydocs/ingest-backend/pkg/client"
	"github.com/talkifydocs/ingest-backend/pkg/handler"
	"github.com/talkifydocs/ingest-backend/pkg/logger"
	"github.com/talkifydocs/ingest-backend/pkg/parser"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/service"
	"github.com/talkifydocs/ingest-backend/pkg/temporal"
	"github.com/talkifydocs/ingest-backend/pkg/worker"

	database "github.com/talkifydocs/ingest-backend/pkg/db"
	otelx "github.com/instill-ai/x/otel"
)

const (
	executorTemporal = "temporal"

	readHeaderTimeout       = 10 * time.Second
	gracefulShutdownTimeout = 30 * time.Second
	// poolShutdownTimeout is how long in-process runs may take to complete
	// after a termination signal. Runs still going are recorded as FAILED.
	poolShutdownTimeout = 60 * time.Second
)

var (
	// These variables might be overridden at buildtime.
	serviceName    = "ingest-backend"
	serviceVersion = "dev"
)

func main() {
	// gorm's autoUpdate will use local timezone by default, so we need to set it to UTC
	time.Local = time.UTC

	if err := config.Init(config.ParseConfigFlag()); err != nil {
		log.Fatal(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cleanup := otelx.SetupWithCleanup(ctx,
		otelx.WithServiceName(serviceName),
		otelx.WithServiceVersion(serviceVersion),
		otelx.WithHost(config.Config.OTELCollector.Host),
		otelx.WithPort(config.Config.OTELCollector.Port),
		otelx.WithCollectorEnable(config.Config.OTELCollector.Enable),
	)
	defer cleanup()

	logger, _ := logger.GetZapLogger(ctx)
	defer func() {
		// can't handle the error due to https://github.com/uber-go/zap/issues/880
		_ = logger.Sync()
	}()

	repo, svc, closeClients := newService(ctx, logger)
	defer closeClients()

	var (
		executor handler.Executor
		stopPool func()
	)
	if config.Config.Server.Executor == executorTemporal {
		executor, stopPool = newWorkflowExecutor(logger, svc)
	} else {
		executor, stopPool = newPoolExecutor(ctx, logger, svc, repo)
	}

	if config.Config.Server.WebhookSecret == "" {
		logger.Warn("No webhook secret configured, upload events are not authenticated")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Config.Server.PublicPort),
		Handler:           handler.NewPublicHandler(svc, executor, config.Config.Server.WebhookSecret).Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		var err error
		if config.Config.Server.HTTPS.Cert != "" && config.Config.Server.HTTPS.Key != "" {
			err = srv.ListenAndServeTLS(config.Config.Server.HTTPS.Cert, config.Config.Server.HTTPS.Key)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("ingest-backend is serving",
		zap.Int("port", config.Config.Server.PublicPort),
		zap.String("executor", config.Config.Server.Executor))

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}

	// No new events come in, let the running pipelines complete.
	stopPool()
}

// newService initializes the clients of the pipeline and returns the service
// built on them, together with a function closing every client.
func newService(ctx context.Context, logger *zap.Logger) (repository.Repository, service.Service, func()) {
	closeFuncs := map[string]func() error{}

	db := database.GetSharedConnection()
	closeFuncs["database"] = func() error {
		database.Close(db)
		return nil
	}

	redisClient := redis.NewClient(&config.Config.Cache.Redis.RedisOptions)
	closeFuncs["redis"] = redisClient.Close

	vectorIndex, vclose, err := client.NewVectorIndex(ctx, config.Config.VectorIndex, config.Config.Embedding.Dimensionality)
	if err != nil {
		logger.Fatal("Failed to create vector index client", zap.Error(err))
	}
	closeFuncs["vectorIndex"] = vclose

	fetcher, fclose, err := client.NewFetcher(ctx, config.Config)
	if err != nil {
		logger.Fatal("Failed to create fetcher", zap.Error(err))
	}
	closeFuncs["fetcher"] = fclose

	embedder, err := client.NewEmbedder(ctx, config.Config.Embedding)
	if err != nil {
		logger.Fatal("Failed to create embedding client", zap.Error(err))
	}
	logger.Info("Embedding client initialized",
		zap.String("client", embedder.Name()),
		zap.Int("dimensionality", embedder.Dimensionality()))

	repo := repository.NewRepository(db, vectorIndex, redisClient)
	svc := service.NewService(repo, fetcher, parser.NewPDFParser(), embedder, service.Options{
		LocationBaseURL: config.Config.Ingest.LocationBaseURL,
		StepTimeout:     config.Config.Ingest.StepTimeout,
	})

	closer := func() {
		for conn, fn := range closeFuncs {
			if err := fn(); err != nil {
				logger.Error("Failed to close conn", zap.Error(err), zap.String("conn", conn))
			}
		}
	}

	return repo, svc, closer
}

// newPoolExecutor runs the pipelines in this process and starts the sweeper
// that fails the records of interrupted runs.
func newPoolExecutor(ctx context.Context, logger *zap.Logger, svc service.Service, repo repository.Repository) (handler.Executor, func()) {
	cfg := config.Config.Worker

	// Runs outlive the signal context so that they can complete during the
	// graceful shutdown.
	pool, err := worker.NewPool(context.WithoutCancel(ctx), svc, repo, worker.PoolConfig{
		Size:        cfg.Pool.Size,
		LeaseTTL:    cfg.Lease.TTL,
		LeasePeriod: cfg.Lease.Period,
	})
	if err != nil {
		logger.Fatal("Failed to create worker pool", zap.Error(err))
	}

	sweeper := worker.NewSweeper(repo, worker.SweeperConfig{
		Period:     cfg.Sweeper.Period,
		StaleAfter: cfg.Sweeper.StaleAfter,
		BatchSize:  cfg.Sweeper.BatchSize,
	})
	go sweeper.Start(ctx)

	return pool, func() {
		if err := pool.GracefulStop(poolShutdownTimeout); err != nil {
			logger.Warn("Runs were interrupted by the shutdown", zap.Error(err))
		}
	}
}

// newWorkflowExecutor starts a Temporal workflow per upload event. The
// workflows are handled by cmd/worker.
func newWorkflowExecutor(logger *zap.Logger, svc service.Service) (handler.Executor, func()) {
	opts, err := temporal.ClientOptions(config.Config.Temporal, logger, config.Config.OTELCollector.Enable, serviceName)
	if err != nil {
		logger.Fatal("Unable to build Temporal client options", zap.Error(err))
	}

	temporalClient, err := temporalclient.Dial(opts)
	if err != nil {
		logger.Fatal("Unable to create Temporal client", zap.Error(err))
	}

	w, err := worker.New(worker.Config{Service: svc}, logger)
	if err != nil {
		logger.Fatal("Unable to create worker", zap.Error(err))
	}

	executor := worker.NewProcessUploadWorkflow(temporalClient, w)
	return executor, temporalClient.Close
}
