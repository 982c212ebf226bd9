package kafka

import (
	"Agora/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// ConsumerManager 管理 Kafka 消费者
type ConsumerManager struct {
	topic              string
	moderationConsumer sarama.ConsumerGroup
	moderationHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg config.KafkaConfig, cache CacheInvalidator) (*ConsumerManager, error) {
	moderationConsumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, newSaramaConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "create moderation consumer group")
	}

	return &ConsumerManager{
		topic:              cfg.ModerationTopic,
		moderationConsumer: moderationConsumer,
		moderationHandler:  NewModerationHandler(cache),
	}, nil
}

// Start 阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.moderationConsumer.Errors() {
			log.Error("moderation consumer error", "err", err)
		}
	}()

	go func() {
		log.Info("Moderation consumer started", "topic", m.topic)
		for {
			if err := m.moderationConsumer.Consume(ctx, []string{m.topic}, m.moderationHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.moderationConsumer.Close(); err != nil {
		log.Error("Failed to close moderation consumer", "err", err)
	}
	return nil
}
