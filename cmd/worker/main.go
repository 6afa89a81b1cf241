package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"

	temporalclient "go.temporal.io/sdk/client"

	"github.com/talkifydocs/ingest-backend/config"
	"github.com/talkifydocs/ingest-backend/pkg/client"
	"github.com/talkifydocs/ingest-backend/pkg/logger"
	"github.com/talkifydocs/ingest-backend/pkg/parser"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/service"
	"github.com/talkifydocs/ingest-backend/pkg/temporal"

	database "github.com/talkifydocs/ingest-backend/pkg/db"
	ingestworker "github.com/talkifydocs/ingest-backend/pkg/worker"
	otelx "github.com/instill-ai/x/otel"
)

const gracefulShutdownWaitPeriod = 15 * time.Second // Wait period before stopping worker
const gracefulShutdownTimeout = 20 * time.Minute    // Maximum time for in-flight activities to complete

var (
	// These variables might be overridden at buildtime.
	serviceName    = "ingest-backend-worker"
	serviceVersion = "dev"
)

func main() {
	time.Local = time.UTC

	if err := config.Init(config.ParseConfigFlag()); err != nil {
		log.Fatal(err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	svc, temporalClient, closeClients := newClients(ctx, logger)
	defer closeClients()

	iw, err := ingestworker.New(ingestworker.Config{Service: svc}, logger)
	if err != nil {
		logger.Fatal("Unable to create worker", zap.Error(err))
	}

	w := worker.New(temporalClient, ingestworker.TaskQueue, worker.Options{
		WorkflowPanicPolicy: worker.BlockWorkflow,
		WorkerStopTimeout:   gracefulShutdownTimeout,
		Interceptors: func() []interceptor.WorkerInterceptor {
			if !config.Config.OTELCollector.Enable {
				return nil
			}
			workerInterceptor, err := temporal.NewTracingInterceptor(serviceName)
			if err != nil {
				logger.Fatal("Unable to create worker tracing interceptor", zap.Error(err))
			}
			return []interceptor.WorkerInterceptor{workerInterceptor}
		}(),
	})

	w.RegisterWorkflow(iw.ProcessUploadWorkflow)

	w.RegisterActivity(iw.CreateFileActivity)       // Create the ingestion record in PROCESSING status
	w.RegisterActivity(iw.ProcessFileActivity)      // Fetch, parse, embed and index the file
	w.RegisterActivity(iw.UpdateFileStatusActivity) // Record the terminal status

	if err := w.Start(); err != nil {
		logger.Fatal("Unable to start worker", zap.Error(err))
	}

	logger.Info("Temporal worker started successfully and is polling for tasks")

	// Setup graceful shutdown on SIGTERM (kill) and SIGINT (Ctrl+C)
	quitSig := make(chan os.Signal, 1)
	signal.Notify(quitSig, syscall.SIGINT, syscall.SIGTERM)
	<-quitSig

	logger.Info("Shutdown signal received, waiting for in-flight activities to complete...")
	time.Sleep(gracefulShutdownWaitPeriod)

	logger.Info("Shutting down worker...")
	w.Stop()
}

// newClients initializes all external service clients and returns the
// pipeline service, the Temporal client and a cleanup function.
func newClients(ctx context.Context, logger *zap.Logger) (service.Service, temporalclient.Client, func()) {
	closeFuncs := map[string]func() error{}

	db := database.GetSharedConnection()
	closeFuncs["database"] = func() error {
		database.Close(db)
		return nil
	}

	// Redis holds the run leases of the local executor. The worker only
	// needs it to satisfy the repository.
	redisClient := redis.NewClient(&config.Config.Cache.Redis.RedisOptions)
	closeFuncs["redis"] = redisClient.Close

	temporalClientOptions, err := temporal.ClientOptions(config.Config.Temporal, logger, config.Config.OTELCollector.Enable, serviceName)
	if err != nil {
		logger.Fatal("Unable to build Temporal client options", zap.Error(err))
	}

	temporalClient, err := temporalclient.Dial(temporalClientOptions)
	if err != nil {
		logger.Fatal("Unable to create Temporal client", zap.Error(err))
	}
	closeFuncs["temporal"] = func() error {
		temporalClient.Close()
		return nil
	}

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

	return svc, temporalClient, closer
}
