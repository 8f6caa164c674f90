package flags

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type redisStore struct {
	rdb *goredis.Client
	log *logger.Logger
}

func NewRedisStore(rdb *goredis.Client, baseLog *logger.Logger) Store {
	return &redisStore{rdb: rdb, log: baseLog.With("store", "RedisFlagStore")}
}

func (s *redisStore) Set(ctx context.Context, key string, value bool, ttl time.Duration) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("redis flag store not initialized")
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := s.rdb.Set(ctx, key, strconv.FormatBool(value), ttl).Err(); err != nil {
		return fmt.Errorf("set flag %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, key string) (bool, error) {
	if s == nil || s.rdb == nil {
		return false, fmt.Errorf("redis flag store not initialized")
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get flag %s: %w", key, err)
	}
	v, perr := strconv.ParseBool(raw)
	if perr != nil {
		s.log.Warn("Unparseable flag value", "flag_key", key, "value", raw)
		return false, nil
	}
	return v, nil
}
