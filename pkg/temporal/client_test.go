package temporal

import (
	"testing"

	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/config"
)

func TestClientOptions(t *testing.T) {
	c := qt.New(t)

	c.Run("ok", func(c *qt.C) {
		opts, err := ClientOptions(config.TemporalConfig{
			HostPort:  "temporal:7233",
			Namespace: "ingest",
		}, zap.NewNop(), false, "ingest-backend")
		c.Assert(err, qt.IsNil)
		c.Check(opts.HostPort, qt.Equals, "temporal:7233")
		c.Check(opts.Namespace, qt.Equals, "ingest")
		c.Check(opts.Logger, qt.Not(qt.IsNil))
		c.Check(opts.Interceptors, qt.HasLen, 0)
	})

	c.Run("ok - tracing", func(c *qt.C) {
		opts, err := ClientOptions(config.TemporalConfig{HostPort: "temporal:7233"}, zap.NewNop(), true, "ingest-backend")
		c.Assert(err, qt.IsNil)
		c.Check(opts.Interceptors, qt.HasLen, 1)
	})

	c.Run("nok - missing host", func(c *qt.C) {
		_, err := ClientOptions(config.TemporalConfig{}, zap.NewNop(), false, "ingest-backend")
		c.Check(err, qt.ErrorMatches, "missing Temporal host")
	})
}

func TestLogger(t *testing.T) {
	c := qt.New(t)

	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLogger(zap.New(core))

	l.Info("Started workflow", "workflowID", "process-upload-k")
	l.(log.WithLogger).With("attempt", 2).Error("Activity failed")

	entries := logs.All()
	c.Assert(entries, qt.HasLen, 2)

	c.Check(entries[0].Level, qt.Equals, zapcore.InfoLevel)
	c.Check(entries[0].Message, qt.Equals, "Started workflow")
	c.Check(entries[0].ContextMap(), qt.DeepEquals, map[string]any{"workflowID": "process-upload-k"})

	c.Check(entries[1].Level, qt.Equals, zapcore.ErrorLevel)
	c.Check(entries[1].ContextMap(), qt.DeepEquals, map[string]any{"attempt": int64(2)})
}
