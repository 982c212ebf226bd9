package repository

import (
	"Agora/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	CountVisibleByPostSince(ctx context.Context, postID string, since time.Time) (int64, error)
	ListVisibleByPostSince(ctx context.Context, postID string, since time.Time, limit, offset int) ([]*model.CommentWithAuthor, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) CountVisibleByPostSince(ctx context.Context, postID string, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Scopes(visible("")).
		Where("post_id = ? AND created_at >= ?", postID, since).
		Count(&count).Error
	return count, err
}

// ListVisibleByPostSince 评论按时间正序
func (s *CommentRepoImpl) ListVisibleByPostSince(ctx context.Context, postID string, since time.Time, limit, offset int) ([]*model.CommentWithAuthor, error) {
	comments := make([]*model.CommentWithAuthor, 0, limit)
	err := s.db.WithContext(ctx).
		Table("comments c").
		Select("c.*, u.username, u.profile_picture").
		Joins("JOIN users u ON u.id = c.user_id").
		Scopes(visible("c.")).
		Where("c.post_id = ? AND c.created_at >= ?", postID, since).
		Order("c.created_at ASC").Order("c.id ASC").
		Limit(limit).Offset(offset).
		Scan(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
