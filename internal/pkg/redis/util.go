package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const unlockScript = "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end"

// 已有过期时间的哈希不再续期
const hsetExpireScript = "redis.call('hset', KEYS[1], ARGV[1], ARGV[2]) if redis.call('pttl', KEYS[1]) < 0 then redis.call('pexpire', KEYS[1], ARGV[3]) end return 1"

// GetValue 获取字符串类型的值，不存在返回空串
func (s *Store) GetValue(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetWithExpiration 设置键值对并设置过期时间
func (s *Store) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.rdb.Set(ctx, key, value, expiration).Err()
}

// TryLock SETNX 加锁，retryTimes 为 -1 时一直重试
func (s *Store) TryLock(ctx context.Context, key string, value string, expiration time.Duration, retryTimes int) (bool, error) {
	for i := 0; i <= retryTimes || retryTimes == -1; i++ {
		success, err := s.rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if success {
			return true, nil
		}
		if i == retryTimes {
			break
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
	return false, nil
}

// UnLock 只释放自己持有的锁
func (s *Store) UnLock(ctx context.Context, key string, value string) {
	s.rdb.Eval(ctx, unlockScript, []string{key}, value)
}

// HGetInt64 读取哈希中的整数字段
func (s *Store) HGetInt64(ctx context.Context, key, field string) (int64, bool, error) {
	value, err := s.rdb.HGet(ctx, key, field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// HSetWithExpiration 写入哈希字段，过期时间只在键首次创建时设置，
// 所有字段最多存活 expiration
func (s *Store) HSetWithExpiration(ctx context.Context, key, field string, value int64, expiration time.Duration) error {
	return s.rdb.Eval(ctx, hsetExpireScript, []string{key}, field, value, expiration.Milliseconds()).Err()
}

// DeleteKey 删除一个键
func (s *Store) DeleteKey(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
