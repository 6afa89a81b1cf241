package worker

import (
	"time"

	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/service"
)

// TaskQueue is the Temporal task queue name for all workflows and activities.
const TaskQueue = "ingest-backend"

// ActivityTimeoutStandard is the timeout of record store activities.
// ActivityTimeoutLong bounds a whole fetch, parse, embed and index run.
const (
	ActivityTimeoutStandard = 1 * time.Minute
	ActivityTimeoutLong     = 15 * time.Minute
)

// Retry policy of the status activity. Pipeline activities are never retried.
const (
	RetryInitialInterval         = 1 * time.Second
	RetryBackoffCoefficient      = 2.0
	RetryMaximumIntervalStandard = 30 * time.Second
	RetryMaximumAttempts         = 5
)

// Config defines the configuration for the worker
type Config struct {
	Service service.Service
}

// Worker implements the Temporal worker with all workflows and activities
type Worker struct {
	service service.Service
	log     *zap.Logger
}

// New creates a new worker instance
func New(config Config, log *zap.Logger) (*Worker, error) {
	w := &Worker{
		service: config.Service,
		log:     log,
	}
	return w, nil
}
