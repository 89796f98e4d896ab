package persistent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/redis/go-redis/v9"
)

const redisProfileKey = "steam-profile:%s" // <userID>

// RedisProfileCache shares player summaries between plugin server instances.
type RedisProfileCache struct {
	Rdb *redis.Client
	TTL time.Duration
}

var _ steamprofile.ProfileCache = (*RedisProfileCache)(nil)

func RedisOpen(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func (c *RedisProfileCache) Get(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error) {
	value, err := c.Rdb.Get(ctx, fmt.Sprintf(redisProfileKey, userId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return steamprofile.Profile{}, steamprofile.ErrCacheMiss
		}
		return steamprofile.Profile{}, fmt.Errorf("redis get: %w", err)
	}

	var profile steamprofile.Profile
	if err := json.Unmarshal(value, &profile); err != nil {
		return steamprofile.Profile{}, fmt.Errorf("deserialize profile: %w", err)
	}
	return profile, nil
}

func (c *RedisProfileCache) Set(ctx context.Context, userId steamprofile.UserId, profile steamprofile.Profile) error {
	value, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("serialize profile: %w", err)
	}
	if err := c.Rdb.Set(ctx, fmt.Sprintf(redisProfileKey, userId), value, c.TTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisProfileCache) Delete(ctx context.Context, userId steamprofile.UserId) error {
	if err := c.Rdb.Del(ctx, fmt.Sprintf(redisProfileKey, userId)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
