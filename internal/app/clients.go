package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/mh1-bff/internal/clients/graphql"
	"github.com/yungbote/mh1-bff/internal/clients/redis"
	"github.com/yungbote/mh1-bff/internal/observability"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type Clients struct {
	CMS   graphql.Client
	Redis *goredis.Client
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config, metrics *observability.Metrics) (Clients, error) {
	log.Info("Wiring clients...")

	cms, err := graphql.NewClient(log, graphql.Config{
		Endpoint: cfg.CMSGraphQLURL,
		Token:    cfg.CMSAPIToken,
		Timeout:  cfg.CMSTimeout,
	}, graphql.WithMetrics(metrics))
	if err != nil {
		return Clients{}, fmt.Errorf("init cms client: %w", err)
	}

	var rdb *goredis.Client
	if cfg.RedisAddr != "" {
		rdb, err = redis.NewClient(ctx, log, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return Clients{}, fmt.Errorf("init redis: %w", err)
		}
	}

	return Clients{CMS: cms, Redis: rdb}, nil
}

func (c Clients) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
