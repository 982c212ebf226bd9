package service

import (
	"Agora/internal/pkg/consts"
	"Agora/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type SuspensionService interface {
	IsSuspended(ctx context.Context, userID string) (bool, error)
}

type suspensionServiceImpl struct {
	userRepo repository.UserRepo
	cache    Cache
	now      func() time.Time
}

func NewSuspensionService(userRepo repository.UserRepo, cache Cache) SuspensionService {
	return &suspensionServiceImpl{
		userRepo: userRepo,
		cache:    cache,
		now:      time.Now,
	}
}

// IsSuspended 只缓存封禁中的结果，解封后最多延迟一个 TTL 生效
func (s *suspensionServiceImpl) IsSuspended(ctx context.Context, userID string) (bool, error) {
	key := consts.UserSuspendedKey + userID
	cached, err := s.cache.GetValue(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "read suspension cache error", "err", err)
	} else if cached == "1" {
		return true, nil
	}

	suspended, err := s.userRepo.IsSuspended(ctx, userID, s.now().UTC())
	if err != nil {
		return false, err
	}
	if suspended {
		if err = s.cache.SetWithExpiration(ctx, key, "1", consts.UserSuspendedTTL); err != nil {
			log.WarnContext(ctx, "write suspension cache error", "err", err)
		}
	}
	return suspended, nil
}
