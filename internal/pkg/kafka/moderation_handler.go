package kafka

import (
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/logger"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// CacheInvalidator 删除缓存键
type CacheInvalidator interface {
	DeleteKey(ctx context.Context, key string) error
}

// ModerationHandler 消费举报和审核事件，使被举报帖子计数缓存失效
type ModerationHandler struct {
	cache CacheInvalidator
}

func NewModerationHandler(cache CacheInvalidator) *ModerationHandler {
	return &ModerationHandler{cache: cache}
}

func (s *ModerationHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("moderation consumer setup")
	return nil
}

func (s *ModerationHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("moderation consumer cleanup")
	return nil
}

func (s *ModerationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("moderation consume claim error", "err", err)
		return err
	}
	return nil
}

func (s *ModerationHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	e, err := decodeEvent(msg)
	if err != nil {
		// 格式错误的消息重试也无意义，直接跳过
		log.ErrorContext(ctx, "skip malformed event", "err", err)
		return nil
	}
	ctx = logger.WithTrace(ctx, "event-"+e.ID)

	if !e.IsModeration() {
		return nil
	}

	if err := s.cache.DeleteKey(ctx, consts.ReportedPostsCountKey); err != nil {
		return err
	}
	log.InfoContext(ctx, "reported posts count cache invalidated", "type", e.Type, "post_id", e.PostID)
	return nil
}
