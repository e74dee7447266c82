package clients

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// RedisClient оборачивает клиент go-redis, собранный из RedisCfg.
type RedisClient struct {
	Client *r.Client
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	client := r.NewClient(&r.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	return &RedisClient{
		Client: client,
	}
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *RedisClient) Close() error {
	if err := c.Client.Close(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
