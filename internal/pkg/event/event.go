package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	PostCreated     = "post.created"
	ReportCreated   = "report.created"
	PostDeactivated = "post.deactivated"
	PostRestored    = "post.restored"
)

// Event 帖子与举报相关的领域事件
type Event struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	PostID         string    `json:"post_id"`
	ActorID        string    `json:"actor_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	ActorUsername  string    `json:"actor_username,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func New(typ, postID, actorID string) *Event {
	return &Event{
		ID:         uuid.NewString(),
		Type:       typ,
		PostID:     postID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
}

// IsModeration 是否会改变被举报帖子的聚合结果
func (e *Event) IsModeration() bool {
	switch e.Type {
	case ReportCreated, PostDeactivated, PostRestored:
		return true
	}
	return false
}

type Publisher interface {
	Publish(ctx context.Context, e *Event) error
	Close() error
}

// NopPublisher 未配置消息中间件时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *Event) error { return nil }

func (NopPublisher) Close() error { return nil }
