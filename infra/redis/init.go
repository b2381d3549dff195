package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mbeoliero/iou/infra/config"
	"github.com/mbeoliero/iou/infra/resource"
)

type Client = resource.Lazy[config.RedisConfig, redis.UniversalClient]

var client *Client

// Init registers the redis client from the global config. Nothing is dialed
// until GetClient is first called.
func Init() *Client {
	client = New(config.Get().Redis)
	return client
}

func New(cfg config.RedisConfig) *Client {
	return resource.NewLazy("redis", cfg, Connect, func(c redis.UniversalClient) error {
		return c.Close()
	})
}

// Connect dials redis and checks the connection.
func Connect(cfg config.RedisConfig) (redis.UniversalClient, error) {
	c := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     100,
		MinIdleConns: 10,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.TODO(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	return c, nil
}

func GetClient() (redis.UniversalClient, error) {
	return client.Get()
}

func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}
