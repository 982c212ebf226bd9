package nats

import (
	"Agora/internal/api/config"
	"Agora/internal/pkg/event"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// Conn 发布所需的最小连接能力
type Conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// Publisher 以 <prefix>.<event type> 为 subject 发布事件
type Publisher struct {
	conn   Conn
	prefix string
}

func NewPublisher(cfg config.NATSConfig) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("agora-posts"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(time.Duration(cfg.ReconnectWait) * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Warn("NATS disconnected", "err", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "connect nats")
	}
	return NewPublisherWith(conn, cfg.SubjectPrefix), nil
}

func NewPublisherWith(conn Conn, prefix string) *Publisher {
	return &Publisher{conn: conn, prefix: prefix}
}

// Subject 事件对应的 subject
func (s *Publisher) Subject(eventType string) string {
	if s.prefix == "" {
		return eventType
	}
	return s.prefix + "." + eventType
}

func (s *Publisher) Publish(ctx context.Context, e *event.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return errors.Wrapf(err, "marshal event %s", e.Type)
	}
	subject := s.Subject(e.Type)
	if err := s.conn.Publish(subject, data); err != nil {
		return errors.Wrapf(err, "publish %s", subject)
	}
	log.DebugContext(ctx, "event published", "subject", subject, "post_id", e.PostID)
	return nil
}

// Close 发送完缓冲中的消息后关闭连接
func (s *Publisher) Close() error {
	return s.conn.Drain()
}
