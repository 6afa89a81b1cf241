// Package temporal builds the Temporal client shared by the API server, when
// it runs pipelines as workflows, and the worker.
package temporal

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/contrib/opentelemetry"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/config"
)

// ClientOptions returns the options to dial the Temporal server in cfg. SDK
// logs are written to l. When tracing is enabled, the client propagates the
// spans of the caller to workflows and activities.
func ClientOptions(cfg config.TemporalConfig, l *zap.Logger, tracing bool, serviceName string) (client.Options, error) {
	if cfg.HostPort == "" {
		return client.Options{}, fmt.Errorf("missing Temporal host")
	}

	opts := client.Options{
		HostPort:  cfg.HostPort,
		Namespace: cfg.Namespace,
		Logger:    NewLogger(l),
	}

	if tracing {
		tracingInterceptor, err := NewTracingInterceptor(serviceName)
		if err != nil {
			return client.Options{}, err
		}
		opts.Interceptors = []interceptor.ClientInterceptor{tracingInterceptor}
	}

	return opts, nil
}

// NewTracingInterceptor creates the OpenTelemetry interceptor of the client
// and the worker.
func NewTracingInterceptor(serviceName string) (interceptor.Interceptor, error) {
	i, err := opentelemetry.NewTracingInterceptor(opentelemetry.TracerOptions{
		Tracer:            otel.Tracer(serviceName),
		TextMapPropagator: otel.GetTextMapPropagator(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating Temporal tracing interceptor: %w", err)
	}
	return i, nil
}

// logger adapts zap to the key-value logger of the Temporal SDK.
type logger struct {
	l *zap.SugaredLogger
}

// NewLogger returns a Temporal logger writing to l.
func NewLogger(l *zap.Logger) log.Logger {
	return &logger{l: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (z *logger) Debug(msg string, keyvals ...any) { z.l.Debugw(msg, keyvals...) }
func (z *logger) Info(msg string, keyvals ...any)  { z.l.Infow(msg, keyvals...) }
func (z *logger) Warn(msg string, keyvals ...any)  { z.l.Warnw(msg, keyvals...) }
func (z *logger) Error(msg string, keyvals ...any) { z.l.Errorw(msg, keyvals...) }

// With implements log.WithLogger.
func (z *logger) With(keyvals ...any) log.Logger {
	return &logger{l: z.l.With(keyvals...)}
}
