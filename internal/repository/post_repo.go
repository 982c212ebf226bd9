package repository

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id string) (*model.Post, error)
	GetVisiblePost(ctx context.Context, id string) (*model.Post, error)
	GetPostDetail(ctx context.Context, id string) (*model.PostDetail, error)
	SoftDeletePost(ctx context.Context, id string) error

	CountVisibleByUser(ctx context.Context, userID string) (int64, error)
	ListVisibleByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Post, error)
	CountVisibleByUserBefore(ctx context.Context, userID string, before time.Time) (int64, error)
	ListVisibleByUserBefore(ctx context.Context, userID string, before time.Time, limit int) ([]*model.Post, error)

	CountVisibleBefore(ctx context.Context, before time.Time) (int64, error)
	ListFeedBefore(ctx context.Context, before time.Time, limit int) ([]*model.FeedPost, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// visible 帖子可见条件
func visible(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+"is_active = ? AND "+alias+"status = ?", true, consts.PostStatusVisible)
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// GetPost 按 id 查询帖子，不区分状态，不存在返回 nil
func (s *PostRepoImpl) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetVisiblePost 只返回可见帖子
func (s *PostRepoImpl) GetVisiblePost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Scopes(visible("")).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostDetail 帖子详情，带作者、评论数和举报统计
func (s *PostRepoImpl) GetPostDetail(ctx context.Context, id string) (*model.PostDetail, error) {
	var detail model.PostDetail
	res := s.db.WithContext(ctx).
		Table("posts p").
		Select(`p.*, u.username, u.email, u.profile_picture,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id AND c.is_active = ?) AS total_comments,
			(SELECT COUNT(*) FROM reports r WHERE r.reported_content_id = p.id AND r.status = ?) AS active_reports,
			(SELECT COUNT(*) FROM reports r WHERE r.reported_content_id = p.id) AS total_reports`,
			true, consts.ReportStatusActive).
		Joins("JOIN users u ON u.id = p.user_id").
		Scopes(visible("p.")).
		Where("p.id = ?", id).
		Limit(1).
		Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &detail, nil
}

// SoftDeletePost 软删除，只改 is_active
func (s *PostRepoImpl) SoftDeletePost(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("is_active", false).Error
}

func (s *PostRepoImpl) CountVisibleByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Scopes(visible("")).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) ListVisibleByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, limit)
	err := s.db.WithContext(ctx).
		Scopes(visible("")).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountVisibleByUserBefore(ctx context.Context, userID string, before time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Scopes(visible("")).
		Where("user_id = ? AND created_at < ?", userID, before).
		Count(&count).Error
	return count, err
}

// ListVisibleByUserBefore 游标之前的帖子，新的在前
func (s *PostRepoImpl) ListVisibleByUserBefore(ctx context.Context, userID string, before time.Time, limit int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, limit)
	err := s.db.WithContext(ctx).
		Scopes(visible("")).
		Where("user_id = ? AND created_at < ?", userID, before).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountVisibleBefore(ctx context.Context, before time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Scopes(visible("")).
		Where("created_at < ?", before).
		Count(&count).Error
	return count, err
}

// ListFeedBefore 全站信息流
func (s *PostRepoImpl) ListFeedBefore(ctx context.Context, before time.Time, limit int) ([]*model.FeedPost, error) {
	posts := make([]*model.FeedPost, 0, limit)
	err := s.db.WithContext(ctx).
		Table("posts p").
		Select(`p.*, u.username, u.profile_picture,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id AND c.is_active = ? AND c.status = ?) AS comments_count`,
			true, consts.PostStatusVisible).
		Joins("JOIN users u ON u.id = p.user_id").
		Scopes(visible("p.")).
		Where("p.created_at < ?", before).
		Order("p.created_at DESC").Order("p.id DESC").
		Limit(limit).
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
