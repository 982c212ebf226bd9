package service

import (
	"context"
	"time"
)

// Cache 服务层用到的缓存与分布式锁能力，由 redis.Store 实现
type Cache interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	TryLock(ctx context.Context, key string, value string, expiration time.Duration, retryTimes int) (bool, error)
	UnLock(ctx context.Context, key string, value string)
	HGetInt64(ctx context.Context, key, field string) (int64, bool, error)
	HSetWithExpiration(ctx context.Context, key, field string, value int64, expiration time.Duration) error
	DeleteKey(ctx context.Context, key string) error
}
