package repository

import (
	"Agora/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type PostStatsRepo interface {
	ListActiveCreatedAt(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type PostStatsRepoImpl struct {
	db *gorm.DB
}

func NewPostStatsRepository(db *gorm.DB) PostStatsRepo {
	return &PostStatsRepoImpl{db: db}
}

// ListActiveCreatedAt 区间 [start, end) 内未下架帖子的创建时间，分桶在服务层完成
func (s *PostStatsRepoImpl) ListActiveCreatedAt(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var createdAt []time.Time
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("is_active = ? AND created_at >= ? AND created_at < ?", true, start, end).
		Order("created_at ASC").
		Pluck("created_at", &createdAt).Error
	if err != nil {
		return nil, err
	}
	return createdAt, nil
}
