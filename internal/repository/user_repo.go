package repository

import (
	"Agora/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	IsSuspended(ctx context.Context, userID string, at time.Time) (bool, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// IsSuspended at 落在任一封禁区间 [start_date, end_date) 内即为封禁
func (s *UserRepoImpl) IsSuspended(ctx context.Context, userID string, at time.Time) (bool, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&model.UserSuspension{}).
		Where("user_id = ? AND start_date <= ? AND end_date > ?", userID, at, at).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}
