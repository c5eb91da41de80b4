package service

import (
	"context"

	"github.com/dheerghayush/naturals/internal/events"
	"github.com/dheerghayush/naturals/pkg/logging"
)

// publish emits ev and logs, but never returns, a publishing failure.
func publish(ctx context.Context, p events.Publisher, topic, key string, ev any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, ev); err != nil {
		logging.FromContext(ctx).Warn("publish_event_error", "topic", topic, "key", key, "error", err)
	}
}
