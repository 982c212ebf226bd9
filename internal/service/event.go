package service

import (
	"Agora/internal/pkg/event"
	"Agora/internal/pkg/metrics"
	"context"
	log "log/slog"
)

// publish 事件投递失败只记录，不影响已提交的写操作
func publish(ctx context.Context, publisher event.Publisher, e *event.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, e); err != nil {
		metrics.EventPublishFailures.WithLabelValues(e.Type).Inc()
		log.WarnContext(ctx, "publish event failed", "type", e.Type, "post_id", e.PostID, "err", err)
	}
}
