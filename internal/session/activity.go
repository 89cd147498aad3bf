package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
	"github.com/spec-kit/supplychain-service/internal/gateway"
)

// ActivityRecord is one user-initiated action reported for auditing. Records
// are fire-and-forget: the session never waits on, or fails because of, the
// sink.
type ActivityRecord struct {
	ActorID   int64
	Action    string
	Details   string
	Timestamp time.Time
}

// ActivitySink receives activity records. Implementations must not block.
type ActivitySink interface {
	Record(rec ActivityRecord)
}

// LoggerSink writes activity records to the structured log.
type LoggerSink struct {
	logger *zap.Logger
}

// NewLoggerSink builds a sink over logger.
func NewLoggerSink(logger *zap.Logger) *LoggerSink {
	return &LoggerSink{logger: logger}
}

func (s *LoggerSink) Record(rec ActivityRecord) {
	s.logger.Info("activity",
		zap.Int64("actor_id", rec.ActorID),
		zap.String("action", rec.Action),
		zap.String("details", rec.Details),
		zap.Time("timestamp", rec.Timestamp),
	)
}

// RemoteSink ships activity records to the API's audit endpoint from a
// background worker. Records are dropped when the buffer is full so a slow
// or unreachable server never stalls the caller.
type RemoteSink struct {
	activity *gateway.Activity
	logger   *zap.Logger
	queue    chan ActivityRecord
	timeout  time.Duration
	done     chan struct{}
}

// NewRemoteSink builds the sink and starts its worker.
func NewRemoteSink(activity *gateway.Activity, logger *zap.Logger, buffer int) *RemoteSink {
	if buffer <= 0 {
		buffer = 64
	}
	s := &RemoteSink{
		activity: activity,
		logger:   logger,
		queue:    make(chan ActivityRecord, buffer),
		timeout:  10 * time.Second,
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *RemoteSink) Record(rec ActivityRecord) {
	select {
	case s.queue <- rec:
	default:
		s.logger.Warn("activity queue full, dropping record", zap.String("action", rec.Action))
	}
}

// Close stops the worker after draining queued records.
func (s *RemoteSink) Close() {
	close(s.queue)
	<-s.done
}

func (s *RemoteSink) run() {
	defer close(s.done)
	for rec := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		err := s.activity.Record(ctx, dto.ActivityCreateRequest{
			Action:  rec.Action,
			Details: rec.Details,
		})
		cancel()
		if err != nil {
			s.logger.Warn("failed to ship activity record", zap.String("action", rec.Action), zap.Error(err))
		}
	}
}
