package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/supplychain-service/internal/events"
)

const defaultListLimit = 100

func clampLimit(limit int) int {
	if limit <= 0 || limit > defaultListLimit {
		return defaultListLimit
	}
	return limit
}

// publish stamps and fires an event; delivery failures never surface to the
// request path.
func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}
